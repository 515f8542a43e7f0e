package systems

import (
	"log"
	"math"

	"github.com/decker502/alexandria/pkg/components"
	"github.com/decker502/alexandria/pkg/ecs"
	"github.com/decker502/alexandria/pkg/utils"
)

// clickDragThreshold 按下到释放之间移动超过该距离（像素）视为拖动，不算点击
const clickDragThreshold = 8.0

// URLOpener 打开外部链接（桌面端调用系统浏览器，浏览器中打开新标签页）
type URLOpener func(url string) error

// HoverInputSystem 悬停输入系统
//
// 职责：
//   - 维护页面滚动偏移（滚轮 / 触摸拖动），限制在 [0, MaxScroll]
//   - 将指针位置转换为页面坐标，判定每个可交互实体是否被悬停
//   - 用判定结果驱动 HoverAnimator，并把平滑后的数值写入 HoverGlowComponent
//   - 点击可点击实体时打开其链接
//
// 每帧必须在 FrameDriver.Tick 之后调用，使用同一帧的 dt。
type HoverInputSystem struct {
	entityManager *ecs.EntityManager
	animator      *HoverAnimator
	opener        URLOpener

	scrollY float64

	// hovered 本帧悬停的最上层实体（页脚图标、标签优先于产品卡片）
	hovered    ecs.EntityID
	hasHovered bool

	// clickURL 本帧点击会打开的链接，为空表示指针不在可点击区域
	clickURL string

	pointerX, pointerY float64
	pointerPresent     bool

	// pressed 当前是否处于按下状态（JustPressed 之后、JustReleased 之前）
	pressed bool
	// gestureDrag 本次按下以来累计的拖动距离
	// 按下期间累计指针移动距离，未按下时累计滚动量（无法确定按下时刻时按拖动处理）
	gestureDrag float64
}

// NewHoverInputSystem 创建悬停输入系统
// opener 为 nil 时点击不做任何事
func NewHoverInputSystem(em *ecs.EntityManager, animator *HoverAnimator, opener URLOpener) *HoverInputSystem {
	return &HoverInputSystem{
		entityManager: em,
		animator:      animator,
		opener:        opener,
	}
}

// Scroll 返回当前滚动偏移
func (s *HoverInputSystem) Scroll() float64 {
	return s.scrollY
}

// Pointer 返回本帧指针的屏幕坐标
func (s *HoverInputSystem) Pointer() (float64, float64) {
	return s.pointerX, s.pointerY
}

// Hovered 返回本帧悬停的实体
func (s *HoverInputSystem) Hovered() (ecs.EntityID, bool) {
	return s.hovered, s.hasHovered
}

// HoveredTarget 返回本帧悬停实体的 HoverTargetComponent
func (s *HoverInputSystem) HoveredTarget() (*components.HoverTargetComponent, bool) {
	if !s.hasHovered {
		return nil, false
	}
	return ecs.GetComponent[*components.HoverTargetComponent](s.entityManager, s.hovered)
}

// HoveringClickable 指针是否在可点击区域上（用于切换手型光标）
func (s *HoverInputSystem) HoveringClickable() bool {
	return s.clickURL != ""
}

// Update 处理一帧输入
//
// 参数：
//   - pointer: 本帧指针状态（屏幕坐标）
//   - maxScroll: 允许的最大滚动偏移
//   - dt: 本帧已限制的时间间隔
func (s *HoverInputSystem) Update(pointer utils.PointerState, maxScroll, dt float64) {
	s.scrollY = utils.Clamp(s.scrollY+pointer.ScrollY, 0, maxScroll)
	s.trackGesture(pointer)
	s.pointerX, s.pointerY = float64(pointer.X), float64(pointer.Y)
	s.pointerPresent = pointer.Present

	px, py := s.pointerX, s.pointerY+s.scrollY
	s.hasHovered = false
	hoveredPriority := -1
	s.clickURL = ""

	entities := ecs.GetEntitiesWith3[*components.PositionComponent, *components.HoverTargetComponent, *components.HoverGlowComponent](s.entityManager)
	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		target, _ := ecs.GetComponent[*components.HoverTargetComponent](s.entityManager, id)
		glow, _ := ecs.GetComponent[*components.HoverGlowComponent](s.entityManager, id)

		hovered := pointer.Present && utils.PointInRect(px, py, pos.X, pos.Y, target.Width, target.Height)
		glow.Hovered = hovered
		s.animate(target, glow, dt)

		if !hovered {
			continue
		}
		if p := hoverPriority(target.Kind); p > hoveredPriority {
			hoveredPriority = p
			s.hovered = id
			s.hasHovered = true
		}
		// 标签本身不可点击，点击落到所在的产品卡片上
		if target.Clickable() && s.clickURL == "" {
			s.clickURL = target.URL
		}
	}

	if pointer.JustReleased {
		if s.clickURL != "" && s.gestureDrag <= clickDragThreshold {
			s.open(s.clickURL)
		}
		s.pressed = false
		s.gestureDrag = 0
	}
}

// trackGesture 累计按下以来的拖动距离，用于区分轻触和拖动滚动
func (s *HoverInputSystem) trackGesture(pointer utils.PointerState) {
	if pointer.JustPressed {
		s.pressed = true
		s.gestureDrag = 0
		return
	}
	if !s.pressed {
		s.gestureDrag += math.Abs(pointer.ScrollY)
		return
	}
	if s.pointerPresent && pointer.Present {
		s.gestureDrag += math.Hypot(float64(pointer.X)-s.pointerX, float64(pointer.Y)-s.pointerY)
	}
}

// animate 按实体类型推进动画并写回组件
func (s *HoverInputSystem) animate(target *components.HoverTargetComponent, glow *components.HoverGlowComponent, dt float64) {
	switch target.Kind {
	case components.HoverTargetProduct:
		glow.Intensity = s.animator.UpdateIntensity(target.Key, glow.Hovered, dt)
		glow.Scanline = s.animator.UpdateScanline(target.Key, glow.Hovered, dt)
	case components.HoverTargetMetric:
		glow.Intensity = s.animator.UpdateMetric(target.Index, glow.Hovered, dt)
	case components.HoverTargetFooter:
		glow.Intensity = s.animator.UpdateFooter(target.Index, glow.Hovered, dt)
	case components.HoverTargetTag:
		// 标签不做平滑，悬停时立即显示
		if glow.Hovered {
			glow.Intensity = 1.0
		} else {
			glow.Intensity = 0.0
		}
	}
}

// open 打开链接，失败只记录日志
func (s *HoverInputSystem) open(url string) {
	if s.opener == nil {
		return
	}
	log.Printf("[HoverInputSystem] Opening %s", url)
	if err := s.opener(url); err != nil {
		log.Printf("[HoverInputSystem] Failed to open %s: %v", url, err)
	}
}

// hoverPriority 重叠实体的优先级，数值大的在上层
func hoverPriority(kind components.HoverTargetKind) int {
	switch kind {
	case components.HoverTargetTag, components.HoverTargetFooter:
		return 2
	default:
		return 1
	}
}
