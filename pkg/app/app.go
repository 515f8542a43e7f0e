// Package app 提供页面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端和浏览器通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/game"
	"github.com/decker502/alexandria/pkg/scenes"
	"github.com/decker502/alexandria/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StorageAppName gdata 存储使用的应用名
const StorageAppName = "alexandria"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	// ContentPath 磁盘上的页面内容配置，为空使用嵌入的 data/content.yaml
	ContentPath string

	// AnimationPath 磁盘上的动画参数配置，为空使用嵌入的 data/animation.yaml
	AnimationPath string

	// ReducedMotion 为 true 时强制进入减少动画模式（覆盖已保存的偏好）
	ReducedMotion bool

	// DisableStorage 不打开本地存储，偏好只保存在内存中
	DisableStorage bool

	// Clock 时间源，为 nil 时使用单调时钟
	Clock utils.Clock
}

// App 是页面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	landing      *scenes.LandingScene
	preferences  *game.PreferencesManager
	clock        utils.Clock
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化页面应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	content, contentSource, err := loadContent(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("内容配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载内容配置: %s", contentSource)

	animation, animationSource, err := loadAnimation(cfg.AnimationPath)
	if err != nil {
		return nil, fmt.Errorf("动画配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载动画配置: %s", animationSource)

	fonts, err := game.NewFontManager()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	// 存储不可用时降级为内存偏好
	var preferences *game.PreferencesManager
	if cfg.DisableStorage {
		preferences = game.NewPreferencesManager(nil)
	} else {
		storage, err := game.OpenStorage(StorageAppName)
		if err != nil {
			log.Printf("[App] Warning: %v (preferences will not persist)", err)
		}
		preferences = game.NewPreferencesManager(storage)
	}
	if cfg.ReducedMotion {
		preferences.SetReducedMotion(true)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = utils.NewMonotonicClock()
	}

	landing, err := scenes.NewLandingScene(scenes.LandingSceneOptions{
		Content:     content,
		Animation:   animation,
		Fonts:       fonts,
		Preferences: preferences,
		StartTime:   clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("页面初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(landing)
	log.Printf("[App] Landing page ready")

	return &App{
		sceneManager: sceneManager,
		landing:      landing,
		preferences:  preferences,
		clock:        clock,
		verbose:      cfg.Verbose,
	}, nil
}

// loadContent 未指定路径时使用嵌入的内容配置，指定时从磁盘读取
func loadContent(path string) (*config.ContentConfig, string, error) {
	if path == "" {
		c, err := config.LoadContentConfig(config.ContentConfigPath)
		return c, "embedded " + config.ContentConfigPath, err
	}
	c, err := config.LoadContentConfigFile(path)
	return c, path, err
}

// loadAnimation 未指定路径时使用嵌入的动画参数，指定时从磁盘读取
func loadAnimation(path string) (*config.AnimationConfig, string, error) {
	if path == "" {
		c, err := config.LoadAnimationConfig(config.AnimationConfigPath)
		return c, "embedded " + config.AnimationConfigPath, err
	}
	c, err := config.LoadAnimationConfigFile(path)
	return c, path, err
}

// Update 更新页面逻辑
// 每个 tick 调用一次；场景返回 false 时结束循环
func (a *App) Update() error {
	a.handleWindowSize()

	// M 切换减少动画
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.landing.ToggleReducedMotion()
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if !a.sceneManager.Update(a.clock.Now()) {
		return ebiten.Termination
	}
	return nil
}

// handleWindowSize 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
func (a *App) handleWindowSize() {
	if !a.pendingWindowSizeReset {
		return
	}
	a.windowSizeResetCountdown--
	if a.windowSizeResetCountdown <= 0 {
		ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
		log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
		a.pendingWindowSizeReset = false
	}
}

// toggleFullscreen 切换全屏并记录到偏好
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.preferences.SetFullscreen(ebiten.IsFullscreen())
	if err := a.preferences.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制页面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 高 DPI 屏幕上使用线性滤波缩放，空白区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回页面的逻辑屏幕尺寸
// 页面是响应式的：逻辑尺寸等于窗口（或画布）尺寸，布局按宽度重新计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = config.WindowWidth, config.WindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时保存偏好
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Preferences 返回偏好管理器
func (a *App) Preferences() *game.PreferencesManager {
	return a.preferences
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
