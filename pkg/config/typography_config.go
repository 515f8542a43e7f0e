package config

// Typography 字号预设
// 根据视口宽度选择，不参与动画状态
type Typography struct {
	TitleSize       float64
	SubtitleSize    float64
	MetricValueSize float64
	MetricLabelSize float64
	ProductNameSize float64
	TaglineSize     float64
	DescriptionSize float64
	TagSize         float64
}

// 视口宽度断点
const (
	// MobileBreakpoint 小于该宽度使用手机字号
	MobileBreakpoint = 480.0

	// TabletBreakpoint 小于该宽度使用平板字号
	TabletBreakpoint = 768.0
)

var (
	mobileTypography = Typography{
		TitleSize: 28, SubtitleSize: 14, MetricValueSize: 18, MetricLabelSize: 9,
		ProductNameSize: 15, TaglineSize: 12, DescriptionSize: 11, TagSize: 8,
	}
	tabletTypography = Typography{
		TitleSize: 36, SubtitleSize: 16, MetricValueSize: 22, MetricLabelSize: 10,
		ProductNameSize: 16, TaglineSize: 13, DescriptionSize: 12, TagSize: 9,
	}
	desktopTypography = Typography{
		TitleSize: 52, SubtitleSize: 20, MetricValueSize: 26, MetricLabelSize: 11,
		ProductNameSize: 18, TaglineSize: 14, DescriptionSize: 13, TagSize: 9,
	}
)

// TypographyForWidth 根据视口宽度返回字号预设
func TypographyForWidth(width float64) Typography {
	switch {
	case width < MobileBreakpoint:
		return mobileTypography
	case width < TabletBreakpoint:
		return tabletTypography
	default:
		return desktopTypography
	}
}
