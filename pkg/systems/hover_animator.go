package systems

import (
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/utils"
)

// HoverEntityState 单个产品卡片的悬停动画状态
type HoverEntityState struct {
	// Intensity 发光强度 [0, 1]
	Intensity float64
	// Scanline 扫描线位置 [ScanlineStart, ScanlineEnd]
	Scanline float64
}

// HoverAnimator 悬停动画状态
//
// 存储方式：
//   - 产品卡片：来自内容配置，数量不固定，以产品 ID 为键的 map，首次访问时创建
//   - 指标卡片：固定 config.MetricSlots 个槽位的数组
//   - 页脚图标：数量在构造时确定，使用定长切片
//
// 条目一旦创建就一直保留；不存在的条目视为"从未悬停"（强度 0）。
// 每个条目只由对应实体自己的更新调用写入，互不影响。
type HoverAnimator struct {
	cfg      config.HoverConfig
	products map[string]*HoverEntityState
	metrics  [config.MetricSlots]float64
	footer   []float64
}

// NewHoverAnimator 创建悬停动画状态
//
// 参数：
//   - cfg: 悬停参数（速度、扫描线范围）
//   - footerCount: 页脚图标数量
func NewHoverAnimator(cfg config.HoverConfig, footerCount int) *HoverAnimator {
	if footerCount < 0 {
		footerCount = 0
	}
	return &HoverAnimator{
		cfg:      cfg,
		products: make(map[string]*HoverEntityState),
		footer:   make([]float64, footerCount),
	}
}

// product 获取产品状态，不存在时以默认值创建
func (a *HoverAnimator) product(id string) *HoverEntityState {
	st, ok := a.products[id]
	if !ok {
		st = &HoverEntityState{Intensity: 0, Scanline: a.cfg.ScanlineStart}
		a.products[id] = st
	}
	return st
}

// hoverTarget 悬停目标值
func hoverTarget(hovered bool) float64 {
	if hovered {
		return 1.0
	}
	return 0.0
}

// UpdateIntensity 更新产品卡片发光强度
// 向 1（悬停）或 0（未悬停）指数逼近，结果限制在 [0, 1]
func (a *HoverAnimator) UpdateIntensity(id string, hovered bool, dt float64) float64 {
	st := a.product(id)
	st.Intensity = utils.ApproachClamped(st.Intensity, hoverTarget(hovered), a.cfg.ProductSpeed, dt)
	return st.Intensity
}

// UpdateScanline 更新产品卡片扫描线位置
//
// 悬停时每秒前进 ScanlineSpeed，超过 ScanlineEnd 后回到 ScanlineStart，
// 起止点都在卡片外（-0.3 / 1.3），扫描线从边缘外平滑进入而不是在 0 处突然出现。
// 未悬停时立即复位到 ScanlineStart，不做平滑。
func (a *HoverAnimator) UpdateScanline(id string, hovered bool, dt float64) float64 {
	st := a.product(id)
	if !hovered {
		st.Scanline = a.cfg.ScanlineStart
		return st.Scanline
	}

	st.Scanline += dt * a.cfg.ScanlineSpeed
	if st.Scanline > a.cfg.ScanlineEnd {
		st.Scanline = a.cfg.ScanlineStart
	}
	return st.Scanline
}

// UpdateMetric 更新指标卡片发光强度
// 索引超出 [0, MetricSlots) 时不做任何事，返回 0
func (a *HoverAnimator) UpdateMetric(idx int, hovered bool, dt float64) float64 {
	if idx < 0 || idx >= len(a.metrics) {
		return 0.0
	}
	a.metrics[idx] = utils.ApproachClamped(a.metrics[idx], hoverTarget(hovered), a.cfg.MetricSpeed, dt)
	return a.metrics[idx]
}

// UpdateFooter 更新页脚图标发光强度
// 索引越界时返回 0
func (a *HoverAnimator) UpdateFooter(idx int, hovered bool, dt float64) float64 {
	if idx < 0 || idx >= len(a.footer) {
		return 0.0
	}
	a.footer[idx] = utils.ApproachClamped(a.footer[idx], hoverTarget(hovered), a.cfg.FooterSpeed, dt)
	return a.footer[idx]
}

// ProductIntensity 读取产品发光强度，不存在时返回 0（不会创建条目）
func (a *HoverAnimator) ProductIntensity(id string) float64 {
	if st, ok := a.products[id]; ok {
		return st.Intensity
	}
	return 0.0
}

// Scanline 读取产品扫描线位置，不存在时返回 ScanlineStart
func (a *HoverAnimator) Scanline(id string) float64 {
	if st, ok := a.products[id]; ok {
		return st.Scanline
	}
	return a.cfg.ScanlineStart
}

// MetricIntensity 读取指标发光强度，越界返回 0
func (a *HoverAnimator) MetricIntensity(idx int) float64 {
	if idx < 0 || idx >= len(a.metrics) {
		return 0.0
	}
	return a.metrics[idx]
}

// FooterIntensity 读取页脚图标发光强度，越界返回 0
func (a *HoverAnimator) FooterIntensity(idx int) float64 {
	if idx < 0 || idx >= len(a.footer) {
		return 0.0
	}
	return a.footer[idx]
}

// TrackedProducts 返回已创建状态的产品数量
func (a *HoverAnimator) TrackedProducts() int {
	return len(a.products)
}
