package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/alexandria/pkg/components"
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/ecs"
	"github.com/decker502/alexandria/pkg/game"
	"github.com/decker502/alexandria/pkg/systems"
	"github.com/decker502/alexandria/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// LandingSceneOptions 着陆页的依赖
type LandingSceneOptions struct {
	Content     *config.ContentConfig
	Animation   *config.AnimationConfig
	Fonts       *game.FontManager
	Preferences *game.PreferencesManager

	// StartTime 页面启动时间（与 Update 使用同一时钟）
	StartTime float64

	// Pointer 指针输入来源，nil 时读取 Ebitengine 输入
	Pointer utils.PointerSource

	// Opener 打开链接，nil 时使用 utils.OpenURL
	Opener systems.URLOpener

	// SetCursor 设置光标形状，nil 时使用 ebiten.SetCursorShape
	SetCursor func(ebiten.CursorShapeType)
}

// LandingScene 着陆页
//
// 持有整个页面的动画状态：打字机、悬停动画、帧驱动，以及布局、输入、渲染系统。
// 每帧 Update 按固定顺序执行：
//  1. FrameDriver.Tick（推进打字机，计算 dt）
//  2. LayoutSystem.Update（视口变化时重新布局）
//  3. HoverInputSystem.Update（悬停判定 + 悬停动画 + 点击）
//
// Draw 只读取本帧 Update 的结果。
type LandingScene struct {
	content     *config.ContentConfig
	preferences *game.PreferencesManager

	entityManager *ecs.EntityManager
	typewriter    *systems.TypewriterSystem
	animator      *systems.HoverAnimator
	driver        *systems.FrameDriver
	layoutSystem  *systems.LayoutSystem
	inputSystem   *systems.HoverInputSystem
	renderSystem  *systems.PageRenderSystem

	pointer   utils.PointerSource
	setCursor func(ebiten.CursorShapeType)

	width, height   float64
	frame           systems.FrameState
	lastCursorShape ebiten.CursorShapeType
}

// NewLandingScene 创建着陆页
//
// 返回：
//   - error: 内容或动画配置缺失、词组列表为空时返回错误
func NewLandingScene(opts LandingSceneOptions) (*LandingScene, error) {
	if opts.Content == nil || opts.Animation == nil || opts.Fonts == nil {
		return nil, fmt.Errorf("landing scene needs content, animation config and fonts")
	}

	typewriter, err := systems.NewTypewriterSystem(opts.Content.Phrases, opts.Animation.Typewriter)
	if err != nil {
		return nil, fmt.Errorf("failed to create typewriter: %w", err)
	}

	prefs := opts.Preferences
	if prefs == nil {
		prefs = game.NewPreferencesManager(nil)
	}

	pointer := opts.Pointer
	if pointer == nil {
		pointer = utils.ReadPointerState
	}
	opener := opts.Opener
	if opener == nil {
		opener = utils.OpenURL
	}
	setCursor := opts.SetCursor
	if setCursor == nil {
		setCursor = ebiten.SetCursorShape
	}

	em := ecs.NewEntityManager()
	animator := systems.NewHoverAnimator(opts.Animation.Hover, len(opts.Content.FooterLinks))

	scene := &LandingScene{
		content:         opts.Content,
		preferences:     prefs,
		entityManager:   em,
		typewriter:      typewriter,
		animator:        animator,
		driver:          systems.NewFrameDriver(opts.Animation.Frame, typewriter, opts.StartTime),
		layoutSystem:    systems.NewLayoutSystem(em, opts.Content, opts.Fonts),
		inputSystem:     systems.NewHoverInputSystem(em, animator, opener),
		renderSystem:    systems.NewPageRenderSystem(em, opts.Fonts),
		pointer:         pointer,
		setCursor:       setCursor,
		width:           config.WindowWidth,
		height:          config.WindowHeight,
		lastCursorShape: ebiten.CursorShapeDefault,
	}
	scene.renderSystem.SetReducedMotion(prefs.Get().ReducedMotion)

	log.Printf("[LandingScene] Initialized: %d phrases, %d metrics, %d products, %d footer links",
		typewriter.PhraseCount(), len(opts.Content.Metrics), len(opts.Content.Products), len(opts.Content.FooterLinks))
	return scene, nil
}

// Update 执行一帧，返回值为 FrameDriver 的继续调度指令
func (s *LandingScene) Update(now float64) bool {
	s.frame = s.driver.Tick(now)

	layout := s.layoutSystem.Update(s.width, s.height)
	s.inputSystem.Update(s.pointer(), layout.MaxScroll(), s.frame.DT)
	s.updateCursor()

	return s.frame.Continue
}

// Draw 绘制页面
func (s *LandingScene) Draw(screen *ebiten.Image) {
	px, py := s.inputSystem.Pointer()
	s.renderSystem.Draw(screen, systems.RenderFrame{
		Layout:   s.layoutSystem.Layout(),
		Frame:    s.frame,
		Scroll:   s.inputSystem.Scroll(),
		Tooltip:  s.Tooltip(),
		PointerX: px,
		PointerY: py,
	})
}

// Resize 记录视口尺寸，下一帧 Update 时重新布局
func (s *LandingScene) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
}

// SaveOnExit 退出时保存偏好
func (s *LandingScene) SaveOnExit() bool {
	if err := s.preferences.Save(); err != nil {
		log.Printf("[LandingScene] Failed to save preferences: %v", err)
		return false
	}
	return true
}

// ToggleReducedMotion 切换减少动画模式并保存
func (s *LandingScene) ToggleReducedMotion() bool {
	enabled := s.preferences.ToggleReducedMotion()
	s.renderSystem.SetReducedMotion(enabled)
	log.Printf("[LandingScene] Reduced motion: %v", enabled)
	return enabled
}

// ReducedMotion 是否处于减少动画模式
func (s *LandingScene) ReducedMotion() bool {
	return s.renderSystem.ReducedMotion()
}

// Tooltip 返回本帧应显示的提示文本（仅页脚图标有提示）
func (s *LandingScene) Tooltip() string {
	target, ok := s.inputSystem.HoveredTarget()
	if !ok || target.Kind != components.HoverTargetFooter {
		return ""
	}
	return target.Title
}

// Frame 返回最近一帧的驱动结果
func (s *LandingScene) Frame() systems.FrameState {
	return s.frame
}

// Animator 返回悬停动画状态
func (s *LandingScene) Animator() *systems.HoverAnimator {
	return s.animator
}

// Layout 返回当前布局（第一次 Update 之前为 nil）
func (s *LandingScene) Layout() *systems.PageLayout {
	return s.layoutSystem.Layout()
}

// Scroll 返回当前滚动偏移
func (s *LandingScene) Scroll() float64 {
	return s.inputSystem.Scroll()
}

// updateCursor 悬停在可点击实体上时显示手型光标
func (s *LandingScene) updateCursor() {
	shape := ebiten.CursorShapeDefault
	if s.inputSystem.HoveringClickable() {
		shape = ebiten.CursorShapePointer
	}
	if shape != s.lastCursorShape {
		s.setCursor(shape)
		s.lastCursorShape = shape
	}
}
