package components

// HoverTargetKind 可交互实体的类型
type HoverTargetKind int

const (
	// HoverTargetProduct 产品卡片（平滑发光 + 扫描线，按产品 ID 索引）
	HoverTargetProduct HoverTargetKind = iota
	// HoverTargetMetric 指标卡片（平滑发光，固定 4 个槽位）
	HoverTargetMetric
	// HoverTargetFooter 页脚图标（平滑发光，数量由配置决定）
	HoverTargetFooter
	// HoverTargetTag 产品标签（悬停时立即显示脉冲发光，不做平滑）
	HoverTargetTag
)

// String 返回类型名称（用于日志）
func (k HoverTargetKind) String() string {
	switch k {
	case HoverTargetProduct:
		return "product"
	case HoverTargetMetric:
		return "metric"
	case HoverTargetFooter:
		return "footer"
	case HoverTargetTag:
		return "tag"
	default:
		return "unknown"
	}
}

// HoverTargetComponent 可悬停实体
// 与 PositionComponent 一起定义命中区域（页面坐标，未减去滚动偏移）
type HoverTargetComponent struct {
	// Kind 实体类型
	Kind HoverTargetKind

	// Key 产品 ID（产品卡片和标签使用）
	Key string

	// Index 在所属列表中的索引（指标、页脚图标、标签序号）
	Index int

	// Width, Height 命中区域尺寸
	Width  float64
	Height float64

	// URL 点击后打开的链接，为空表示不可点击
	URL string

	// Title 悬停提示文本（页脚图标）
	Title string
}

// Clickable 是否可点击
func (c *HoverTargetComponent) Clickable() bool {
	return c.URL != ""
}
