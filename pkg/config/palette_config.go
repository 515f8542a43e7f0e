package config

import "image/color"

// 页面配色
// 黑色背景 + 白色文字层级 + 铁锈色系强调色（rust / copper / ember）
// 透明度为非预乘值，绘制前需通过 utils.WithAlpha 转为 color.NRGBA
var (
	ColorBackground    = color.RGBA{0, 0, 0, 255}
	ColorTextPrimary   = color.RGBA{255, 255, 255, 255}
	ColorTextSecondary = color.RGBA{255, 255, 255, 178}
	ColorTextMuted     = color.RGBA{255, 255, 255, 100}
	ColorBorder        = color.RGBA{255, 255, 255, 40}
	ColorTagBackground = color.RGBA{255, 255, 255, 20}
	ColorTagText       = color.RGBA{255, 255, 255, 200}
	ColorTooltipBg     = color.RGBA{20, 20, 20, 255}

	// ColorAccentRust 主强调色 #F74C00
	ColorAccentRust = color.RGBA{247, 76, 0, 255}
	// ColorAccentCopper 暗铜色 #B7410E
	ColorAccentCopper = color.RGBA{183, 65, 14, 255}
	// ColorAccentEmber 余烬色 #FF8C32
	ColorAccentEmber = color.RGBA{255, 140, 50, 255}
)
