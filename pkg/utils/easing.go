package utils

// 平滑过渡函数
//
// 悬停发光等效果都使用"指数逼近"：每帧向目标值靠近 (target-current)*speed*dt，
// 不需要保存速度状态，一个标量即可表示动画进度。
// dt 由 FrameDriver 预先限制在 [0.001, 0.1]，speed*dt 不会超过 1，因此不会越过目标值。

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 区间内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1] 区间内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Approach 指数逼近
// 公式：current + (target - current) * speed * dt
//
// 参数：
//   - current: 当前值
//   - target: 目标值
//   - speed: 逼近速度（每秒），由调用方决定（产品发光 8.0，指标发光 10.0）
//   - dt: 帧间隔（秒）
func Approach(current, target, speed, dt float64) float64 {
	return current + (target-current)*speed*dt
}

// ApproachClamped 指数逼近并将结果限制在 [0, 1]
// 用于所有强度（intensity）类数值
func ApproachClamped(current, target, speed, dt float64) float64 {
	return Clamp01(Approach(current, target, speed, dt))
}
