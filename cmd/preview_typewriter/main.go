// Package main 在终端中预览标题打字机效果
//
// 用于调整 data/animation.yaml 中的打字机参数，不需要打开图形窗口。
//
// Usage:
//
//	go run ./cmd/preview_typewriter [flags]
//
// Flags:
//
//	--content <path>     页面内容配置（默认 data/content.yaml）
//	--animation <path>   动画参数配置（默认 data/animation.yaml）
//	--fps <n>            刷新频率（默认 60）
//
// Controls:
//
//	ESC / Ctrl+C / q  - 退出
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/systems"
	"github.com/decker502/alexandria/pkg/utils"
)

// cursorRune 光标字符
const cursorRune = '▍'

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "preview_typewriter",
		Short:         "在终端中预览标题打字机效果",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPreview,
	}

	cmd.Flags().String("content", "data/content.yaml", "页面内容配置文件")
	cmd.Flags().String("animation", "data/animation.yaml", "动画参数配置文件")
	cmd.Flags().Int("fps", 60, "刷新频率")
	return cmd
}

func runPreview(cmd *cobra.Command, _ []string) error {
	contentPath, _ := cmd.Flags().GetString("content")
	animationPath, _ := cmd.Flags().GetString("animation")
	fps, _ := cmd.Flags().GetInt("fps")
	if fps <= 0 {
		return fmt.Errorf("fps must be positive: %d", fps)
	}

	content, err := config.LoadContentConfigFile(contentPath)
	if err != nil {
		return err
	}
	animation, err := config.LoadAnimationConfigFile(animationPath)
	if err != nil {
		return err
	}

	typewriter, err := systems.NewTypewriterSystem(content.Phrases, animation.Typewriter)
	if err != nil {
		return err
	}

	clock := utils.NewMonotonicClock()
	driver := systems.NewFrameDriver(animation.Frame, typewriter, clock.Now())

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			frame := driver.Tick(clock.Now())
			draw(screen, frame, driver.Frames(), typewriter.State().PhraseIndex, typewriter.PhraseCount())
			if !frame.Continue {
				return nil
			}
		}
	}
}

// isQuitKey ESC、Ctrl+C 或 q 退出
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// draw 标题居中显示，底部一行显示状态
func draw(screen tcell.Screen, frame systems.FrameState, frames uint64, phraseIndex, phraseCount int) {
	screen.Clear()
	width, height := screen.Size()

	line := composeLine(frame.Text, frame.CursorVisible)
	x := (width - runewidth.StringWidth(line)) / 2
	if x < 0 {
		x = 0
	}
	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(240, 240, 245)).Bold(true)
	drawString(screen, x, height/2, line, titleStyle)

	status := fmt.Sprintf("phrase %d/%d  t=%.2fs  dt=%.3fs  frames=%d  [q] quit",
		phraseIndex+1, phraseCount, frame.Elapsed, frame.DT, frames)
	drawString(screen, 0, height-1, status, tcell.StyleDefault.Foreground(tcell.ColorGray))

	screen.Show()
}

// composeLine 拼接可见文本与光标；光标隐藏时用空格占位，避免文本左右跳动
func composeLine(text string, cursorVisible bool) string {
	if cursorVisible {
		return text + string(cursorRune)
	}
	return text + " "
}

// drawString 逐字符写入，宽字符占两列
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
