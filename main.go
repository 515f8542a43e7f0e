// Package main 是 Alexandria 着陆页的桌面端与浏览器入口
package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/alexandria/pkg/app"
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/embedded"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入
var version = ""

// NewRootCmd 创建根命令
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alexandria",
		Short: "Alexandria 着陆页",
		Long: `Alexandria 着陆页：打字机标题、指标卡片、产品卡片与页脚链接。

默认使用嵌入的 data/content.yaml 与 data/animation.yaml，
可以通过 --content / --animation 指定磁盘上的配置文件。

快捷键：M 切换减少动画，F11 切换全屏。`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runLandingPage,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "输出详细日志")
	cmd.Flags().String("content", "", "页面内容配置文件（默认使用嵌入资源）")
	cmd.Flags().String("animation", "", "动画参数配置文件（默认使用嵌入资源）")
	cmd.Flags().Bool("reduced-motion", false, "启用减少动画模式")
	cmd.Flags().Bool("no-storage", false, "不读写本地偏好")

	return cmd
}

// runLandingPage 启动 Ebitengine 主循环
func runLandingPage(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	contentPath, _ := cmd.Flags().GetString("content")
	animationPath, _ := cmd.Flags().GetString("animation")
	reducedMotion, _ := cmd.Flags().GetBool("reduced-motion")
	noStorage, _ := cmd.Flags().GetBool("no-storage")

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	landingApp, err := app.NewApp(app.Config{
		Verbose:        verbose,
		ContentPath:    contentPath,
		AnimationPath:  animationPath,
		ReducedMotion:  reducedMotion,
		DisableStorage: noStorage,
	})
	if err != nil {
		return fmt.Errorf("页面初始化失败: %w", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if landingApp.Preferences().Get().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	runErr := ebiten.RunGame(landingApp)

	// 窗口关闭时保存偏好
	if landingApp.GetSceneManager().SaveOnExit() {
		log.Printf("[main] Preferences saved")
	}

	return runErr
}

// getVersion 返回版本号
// 优先级：ldflags > debug.ReadBuildInfo > "(devel)"
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
