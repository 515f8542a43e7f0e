package components

// TypewriterComponent 打字机标题状态
//
// 零值即初始状态：第 0 个词组、0 个可见字符、处于输入阶段。
// 整个页面生命周期内只有一个实例，由 TypewriterSystem 每帧修改。
//
// 状态机：
//   - 输入中（IsDeleting=false）：每 TypeInterval 秒增加一个字符
//   - 整词停顿：输入完成后设置 IsDeleting=true 和 PauseUntil，停顿期间不修改状态
//   - 删除中（IsDeleting=true）：每 DeleteInterval 秒删除一个字符，删完后切换到下一个词组
type TypewriterComponent struct {
	// PhraseIndex 当前词组索引，范围 [0, len(phrases))
	PhraseIndex int

	// VisibleChars 当前可见字符数（按 Unicode 码点计），范围 [0, 词组字符数]
	VisibleChars int

	// IsDeleting 是否处于删除阶段
	IsDeleting bool

	// LastEditTime 上次增删字符的时间（秒）
	LastEditTime float64

	// PauseUntil 停顿结束时间（秒），在此之前保持当前显示
	PauseUntil float64
}
