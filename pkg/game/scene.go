package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page (e.g., the landing page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene to the given time.
	// now is the host's monotonic clock in seconds.
	// It returns false when the scene no longer wants to be scheduled.
	Update(now float64) bool

	// Draw renders the scene to the provided screen.
	// Draw only reads state produced by the last Update.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于接收视口尺寸变化
//
// 实现此接口的场景会在 Layout 报告的尺寸变化时被调用 Resize()，
// 尺寸为逻辑像素。
type Resizable interface {
	Resize(width, height int)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
