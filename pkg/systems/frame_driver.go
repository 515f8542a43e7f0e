package systems

import (
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/utils"
)

// FrameState 一帧的驱动结果
// 由 FrameDriver.Tick 产生，悬停系统和渲染系统在同一帧内读取
type FrameState struct {
	// Now 宿主提供的单调时间（秒）
	Now float64

	// Elapsed 自页面启动以来的时间（秒），用于打字机和颜色相位
	Elapsed float64

	// DT 限制在 [MinDeltaTime, MaxDeltaTime] 内的帧间隔
	DT float64

	// Text 打字机当前可见文本
	Text string

	// CursorVisible 光标是否可见
	CursorVisible bool

	// Continue 是否继续请求下一帧
	// 页面持续动画，没有空闲状态，始终为 true
	Continue bool
}

// FrameDriver 帧驱动
//
// 每帧调用一次 Tick：
//  1. 计算 dt = clamp(now - lastFrameTime, MinDeltaTime, MaxDeltaTime)
//  2. 更新 lastFrameTime
//  3. 推进打字机并计算光标闪烁
//  4. 返回继续调度的指令
//
// 上限避免后台标签页恢复时动画跳变，下限避免零间隔的退化帧。
// 悬停动画由调用方在 Tick 之后使用 FrameState.DT 更新。
type FrameDriver struct {
	cfg           config.FrameConfig
	typewriter    *TypewriterSystem
	startTime     float64
	lastFrameTime float64
	frames        uint64
}

// NewFrameDriver 创建帧驱动
//
// 参数：
//   - cfg: dt 限制范围
//   - typewriter: 打字机系统
//   - startTime: 页面启动时间（同一时钟下的秒数），第一帧的 dt 从这里算起
func NewFrameDriver(cfg config.FrameConfig, typewriter *TypewriterSystem, startTime float64) *FrameDriver {
	return &FrameDriver{
		cfg:           cfg,
		typewriter:    typewriter,
		startTime:     startTime,
		lastFrameTime: startTime,
	}
}

// Tick 执行一帧
func (d *FrameDriver) Tick(now float64) FrameState {
	dt := utils.Clamp(now-d.lastFrameTime, d.cfg.MinDeltaTime, d.cfg.MaxDeltaTime)
	d.lastFrameTime = now
	d.frames++

	elapsed := now - d.startTime
	text := d.typewriter.Update(elapsed)

	return FrameState{
		Now:           now,
		Elapsed:       elapsed,
		DT:            dt,
		Text:          text,
		CursorVisible: d.typewriter.CursorVisible(elapsed),
		Continue:      true,
	}
}

// Frames 返回已执行的帧数
func (d *FrameDriver) Frames() uint64 {
	return d.frames
}
