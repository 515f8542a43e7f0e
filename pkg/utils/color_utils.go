package utils

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LerpColor 在两个颜色之间插值
// t 会被限制在 [0, 1]；RGB 通道通过 go-colorful 混合，透明度单独线性插值
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{
		R: r,
		G: g,
		B: bl,
		A: uint8(Lerp(float64(a.A), float64(b.A), t)),
	}
}

// WithAlpha 返回替换了透明度的颜色（非预乘）
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// AlphaFromIntensity 将 [0,1] 强度换算为透明度
// base 为强度为 1 时的透明度
func AlphaFromIntensity(base, intensity float64) uint8 {
	return uint8(Clamp(base*intensity, 0, 255))
}
