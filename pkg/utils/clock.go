package utils

import "time"

// Clock 单调时钟
// Now 返回以秒为单位的当前时间，只要求单调不减，起点没有意义
type Clock interface {
	Now() float64
}

// MonotonicClock 基于 time.Since 的单调时钟
//
// time.Time 携带单调读数，time.Since 不受系统时间调整影响。
// 在浏览器（GOOS=js）中同样由 performance.now 驱动。
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock 创建从当前时刻开始计时的时钟
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now 返回自创建以来经过的秒数
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// FixedClock 固定时间时钟
//
// 宿主无法提供时间源时的降级方案：时间恒定，页面退化为静态显示。
// 测试中也用它来手动推进时间。
type FixedClock struct {
	T float64
}

// Now 返回当前固定时间
func (c *FixedClock) Now() float64 {
	return c.T
}

// Advance 将时间向前推进 dt 秒
func (c *FixedClock) Advance(dt float64) {
	c.T += dt
}
