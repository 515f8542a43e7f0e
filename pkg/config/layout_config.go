package config

// 页面布局常量（像素）
const (
	// WindowWidth 桌面端初始窗口宽度
	WindowWidth = 1100

	// WindowHeight 桌面端初始窗口高度
	WindowHeight = 800

	// WindowTitle 窗口标题
	WindowTitle = "Alexandria"

	// MaxContentWidth 内容列最大宽度
	MaxContentWidth = 1100.0

	// ContentSideMargin 内容列两侧最小留白之和
	ContentSideMargin = 32.0

	// HeroTopSpacing 标题上方留白
	HeroTopSpacing = 40.0

	// SubtitleSpacing 标题与副标题之间的间距
	SubtitleSpacing = 12.0

	// SectionSpacing 区块之间的间距
	SectionSpacing = 40.0

	// MetricHeight 指标卡片高度
	MetricHeight = 60.0

	// MetricWidthNarrow 窄屏下的指标卡片宽度（视口宽度 < MetricNarrowBreakpoint）
	MetricWidthNarrow = 70.0

	// MetricWidthWide 宽屏下的指标卡片宽度
	MetricWidthWide = 120.0

	// MetricNarrowBreakpoint 指标卡片窄屏断点
	MetricNarrowBreakpoint = 500.0

	// MetricMinGap 指标卡片最小间距
	MetricMinGap = 8.0

	// MetricBandPadding 指标区上下内边距
	MetricBandPadding = 20.0

	// ProductPadding 产品卡片上下内边距
	ProductPadding = 16.0

	// ProductLogoSize 产品图标尺寸
	ProductLogoSize = 40.0

	// ProductLogoGap 产品图标与名称的间距
	ProductLogoGap = 12.0

	// ProductLineGap 产品卡片内各段文字的间距
	ProductLineGap = 8.0

	// ProductCardGap 产品卡片之间的间距
	ProductCardGap = 12.0

	// LineHeightRatio 行高与字号之比
	LineHeightRatio = 1.4

	// ProductTagPaddingX 标签左右内边距
	ProductTagPaddingX = 5.0

	// ProductTagPaddingY 标签上下内边距
	ProductTagPaddingY = 2.0

	// ProductTagGap 标签之间的间距
	ProductTagGap = 6.0

	// FooterIconSize 页脚图标尺寸
	FooterIconSize = 28.0

	// FooterIconSlot 页脚图标的可点击区域边长
	FooterIconSlot = FooterIconSize + 8.0

	// FooterIconGap 页脚图标间距
	FooterIconGap = 12.0

	// FooterBottomSpacing 页脚下方留白
	FooterBottomSpacing = 60.0

	// FooterHoverScale 悬停时图标放大倍数
	FooterHoverScale = 1.15
)

// ContentWidth 根据视口宽度计算内容列宽度
func ContentWidth(viewportWidth float64) float64 {
	w := viewportWidth - ContentSideMargin
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 0 {
		return 0
	}
	return w
}

// MetricWidth 根据视口宽度返回指标卡片宽度
func MetricWidth(viewportWidth float64) float64 {
	if viewportWidth < MetricNarrowBreakpoint {
		return MetricWidthNarrow
	}
	return MetricWidthWide
}
