package components

// HoverGlowComponent 悬停发光效果组件
// 保存本帧的悬停判定结果和平滑后的动画参数，供渲染系统读取
//
// 使用场景：产品卡片、指标卡片、页脚图标、产品标签
type HoverGlowComponent struct {
	// Hovered 指针当前是否在该实体上
	Hovered bool

	// Intensity 发光强度（0.0 - 1.0）
	// 1.0 = 完全悬停，0.0 = 无效果
	Intensity float64

	// Scanline 扫描线位置（仅产品卡片使用）
	// 取值范围 [-0.3, 1.3]，只有 [0, 1] 区间内才会绘制
	Scanline float64
}
