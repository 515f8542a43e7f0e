package systems

import (
	"fmt"
	"math"

	"github.com/decker502/alexandria/pkg/components"
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/utils"
)

// TypewriterSystem 打字机标题系统
//
// 职责：
//   - 按时间推进 TypewriterComponent 状态机（输入 -> 停顿 -> 删除 -> 下一个词组）
//   - 返回当前可见的子串（按码点切分）
//   - 计算光标闪烁
//
// 调用方必须提供单调不减的时间；时间回退时的行为未定义。
type TypewriterSystem struct {
	phrases     []string
	phraseRunes []int // 每个词组的字符数（码点）
	cfg         config.TypewriterConfig
	state       *components.TypewriterComponent
}

// NewTypewriterSystem 创建打字机系统
//
// 参数：
//   - phrases: 循环显示的词组，不能为空
//   - cfg: 打字机时间参数
//
// 返回：
//   - error: 词组列表为空时返回错误
func NewTypewriterSystem(phrases []string, cfg config.TypewriterConfig) (*TypewriterSystem, error) {
	if len(phrases) == 0 {
		return nil, fmt.Errorf("typewriter needs at least one phrase")
	}

	owned := make([]string, len(phrases))
	copy(owned, phrases)

	counts := make([]int, len(owned))
	for i, p := range owned {
		counts[i] = utils.RuneCount(p)
	}

	return &TypewriterSystem{
		phrases:     owned,
		phraseRunes: counts,
		cfg:         cfg,
		state:       &components.TypewriterComponent{},
	}, nil
}

// State 返回打字机状态（只读使用）
func (s *TypewriterSystem) State() *components.TypewriterComponent {
	return s.state
}

// PhraseCount 返回词组数量
func (s *TypewriterSystem) PhraseCount() int {
	return len(s.phrases)
}

// CurrentPhrase 返回当前词组的完整文本
func (s *TypewriterSystem) CurrentPhrase() string {
	return s.phrases[s.state.PhraseIndex]
}

// Update 推进状态机并返回当前可见文本
//
// 规则：
//   - now < PauseUntil：停顿中，不修改状态
//   - 距上次编辑不足一个间隔（输入 0.1s / 删除 0.05s）：不修改状态
//   - 输入阶段：未输满则增加一个字符；已输满则进入删除阶段并停顿 PauseAfterWord 秒
//   - 删除阶段：未删完则删除一个字符；已删完则切换到下一个词组（循环）
func (s *TypewriterSystem) Update(now float64) string {
	st := s.state

	if now < st.PauseUntil {
		return s.visibleText()
	}

	interval := s.cfg.TypeInterval
	if st.IsDeleting {
		interval = s.cfg.DeleteInterval
	}

	if now-st.LastEditTime >= interval {
		st.LastEditTime = now
		length := s.phraseRunes[st.PhraseIndex]

		if !st.IsDeleting {
			if st.VisibleChars < length {
				st.VisibleChars++
			} else {
				// 整词输入完成，停顿后开始删除
				st.IsDeleting = true
				st.PauseUntil = now + s.cfg.PauseAfterWord
			}
		} else {
			if st.VisibleChars > 0 {
				st.VisibleChars--
			} else {
				st.IsDeleting = false
				st.PhraseIndex = (st.PhraseIndex + 1) % len(s.phrases)
			}
		}
	}

	return s.visibleText()
}

// visibleText 返回当前词组的前 VisibleChars 个字符
func (s *TypewriterSystem) visibleText() string {
	return utils.RunePrefix(s.phrases[s.state.PhraseIndex], s.state.VisibleChars)
}

// CursorVisible 光标是否可见
// floor(now * CursorBlinkRate) 为偶数时可见，与打字状态无关
func (s *TypewriterSystem) CursorVisible(now float64) bool {
	n := int64(math.Floor(now * s.cfg.CursorBlinkRate))
	return n%2 == 0
}
