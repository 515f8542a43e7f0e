package systems

import (
	"image/color"

	"github.com/decker502/alexandria/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// point 图标上的点，坐标以图标半径为单位，原点在中心，y 向下
type point struct{ X, Y float64 }

// iconStroke 图标描边，Closed 为 true 时首尾相连
type iconStroke struct {
	Points []point
	Closed bool
}

// iconShape 图标 = 若干折线 + 若干圆（描边）
type iconShape struct {
	Strokes []iconStroke
	Circles []iconCircle
}

// iconCircle 图标中的圆，Filled 为 true 时填充
type iconCircle struct {
	Center point
	Radius float64
	Filled bool
}

// footerIconShapes 页脚图标的矢量定义
var footerIconShapes = map[config.FooterIcon]iconShape{
	config.FooterIconTwitter: {
		Strokes: []iconStroke{
			{Points: []point{{-0.7, -0.75}, {0.7, 0.75}}},
			{Points: []point{{0.7, -0.75}, {-0.7, 0.75}}},
		},
	},
	config.FooterIconGithub: {
		Strokes: []iconStroke{
			{Points: []point{{-0.3, -0.2}, {-0.38, -0.55}, {-0.12, -0.4}}},
			{Points: []point{{0.3, -0.2}, {0.38, -0.55}, {0.12, -0.4}}},
			{Points: []point{{-0.12, 0.3}, {-0.12, 0.8}}},
			{Points: []point{{0.12, 0.3}, {0.12, 0.8}}},
		},
		Circles: []iconCircle{
			{Center: point{0, 0}, Radius: 0.85},
			{Center: point{0, -0.05}, Radius: 0.35, Filled: true},
		},
	},
	config.FooterIconWhitepaper: {
		Strokes: []iconStroke{
			{Points: []point{{-0.55, -0.8}, {0.25, -0.8}, {0.55, -0.5}, {0.55, 0.8}, {-0.55, 0.8}}, Closed: true},
			{Points: []point{{0.25, -0.8}, {0.25, -0.5}, {0.55, -0.5}}},
			{Points: []point{{-0.3, -0.2}, {0.3, -0.2}}},
			{Points: []point{{-0.3, 0.1}, {0.3, 0.1}}},
			{Points: []point{{-0.3, 0.4}, {0.15, 0.4}}},
		},
	},
	config.FooterIconAudit: {
		Strokes: []iconStroke{
			{Points: []point{{0, -0.85}, {0.65, -0.6}, {0.6, 0.15}, {0, 0.85}, {-0.6, 0.15}, {-0.65, -0.6}}, Closed: true},
			{Points: []point{{-0.3, 0}, {-0.05, 0.25}, {0.35, -0.25}}},
		},
	},
	config.FooterIconKongSwap: {
		Strokes: []iconStroke{
			{Points: []point{{-0.45, -0.75}, {-0.45, 0.75}}},
			{Points: []point{{0.5, -0.75}, {-0.45, 0.1}}},
			{Points: []point{{-0.15, -0.15}, {0.5, 0.75}}},
		},
	},
	config.FooterIconIcpSwap: {
		Strokes: []iconStroke{
			{Points: []point{{-0.7, -0.3}, {0.7, -0.3}}},
			{Points: []point{{0.4, -0.55}, {0.7, -0.3}, {0.4, -0.05}}},
			{Points: []point{{0.7, 0.3}, {-0.7, 0.3}}},
			{Points: []point{{-0.4, 0.05}, {-0.7, 0.3}, {-0.4, 0.55}}},
		},
	},
	config.FooterIconDexScreener: {
		Strokes: []iconStroke{
			{Points: []point{{-0.75, -0.75}, {-0.75, 0.75}, {0.75, 0.75}}},
			{Points: []point{{-0.55, 0.45}, {-0.2, 0.05}, {0.1, 0.3}, {0.6, -0.5}}},
		},
	},
	config.FooterIconIcpTokens: {
		Circles: []iconCircle{
			{Center: point{0, 0}, Radius: 0.85},
			{Center: point{-0.22, 0}, Radius: 0.22},
			{Center: point{0.22, 0}, Radius: 0.22},
		},
	},
}

// defaultIconShape 未知图标显示为空心圆
var defaultIconShape = iconShape{
	Circles: []iconCircle{{Center: point{0, 0}, Radius: 0.8}},
}

// footerIconShape 返回图标的矢量定义
func footerIconShape(icon config.FooterIcon) iconShape {
	if shape, ok := footerIconShapes[icon]; ok {
		return shape
	}
	return defaultIconShape
}

// drawFooterIcon 以 (cx, cy) 为中心绘制边长为 size 的页脚图标
func drawFooterIcon(screen *ebiten.Image, icon config.FooterIcon, cx, cy, size float64, clr color.RGBA) {
	shape := footerIconShape(icon)
	r := size / 2
	strokeWidth := float32(size / 14)
	c := paint(clr)

	at := func(p point) (float32, float32) {
		return float32(cx + p.X*r), float32(cy + p.Y*r)
	}

	for _, st := range shape.Strokes {
		n := len(st.Points)
		for i := 0; i+1 < n; i++ {
			x0, y0 := at(st.Points[i])
			x1, y1 := at(st.Points[i+1])
			vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, c, true)
		}
		if st.Closed && n > 2 {
			x0, y0 := at(st.Points[n-1])
			x1, y1 := at(st.Points[0])
			vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, c, true)
		}
	}

	for _, circle := range shape.Circles {
		x, y := at(circle.Center)
		radius := float32(circle.Radius * r)
		if circle.Filled {
			vector.DrawFilledCircle(screen, x, y, radius, c, true)
		} else {
			vector.StrokeCircle(screen, x, y, radius, strokeWidth, c, true)
		}
	}
}
