// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// Present 指针是否在画布上（触摸设备没有触摸时为 false）
	Present bool
	// JustPressed 是否刚刚按下（鼠标左键按下或手指触碰）
	JustPressed bool
	// JustReleased 是否刚刚释放（点击/轻触完成，是否算点击由拖动距离决定）
	JustReleased bool
	// ScrollY 本帧的垂直滚动量（像素，正值表示内容向上移动）
	ScrollY float64
}

// PointerSource 指针状态来源
// 场景通过它读取输入，测试时可替换为固定输入
type PointerSource func() PointerState

// 鼠标滚轮每格滚动的像素数
const wheelScrollStep = 48.0

// 保存最后一次触摸位置（用于触摸释放时获取位置和计算拖动量）
var (
	lastTouchX, lastTouchY int
	touchActive            bool
)

// ReadPointerState 读取当前帧的指针状态
// 优先检测触摸，其次鼠标
func ReadPointerState() PointerState {
	state := PointerState{}

	// 触摸释放时使用保存的最后触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		state.X, state.Y = lastTouchX, lastTouchY
		state.Present = true
		state.JustReleased = true
		touchActive = false
		return state
	}

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		if touchActive {
			// 拖动滚动：手指向上移动时内容向上
			state.ScrollY = float64(lastTouchY - y)
		}
		lastTouchX, lastTouchY = x, y
		touchActive = true
		state.X, state.Y = x, y
		state.Present = true
		state.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	w, h := ebiten.WindowSize()
	state.Present = state.X >= 0 && state.Y >= 0 && (w == 0 || state.X <= w) && (h == 0 || state.Y <= h)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	_, wheelY := ebiten.Wheel()
	state.ScrollY = -wheelY * wheelScrollStep
	return state
}

// PointInRect 检查点是否在矩形内（含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
