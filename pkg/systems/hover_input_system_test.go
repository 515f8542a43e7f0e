package systems

import (
	"errors"
	"testing"

	"github.com/decker502/alexandria/pkg/components"
	"github.com/decker502/alexandria/pkg/ecs"
	"github.com/decker502/alexandria/pkg/utils"
)

// hoverInputFixture 手工摆放的实体：
//
//	产品卡片 (0,100) 400x100，内含标签 (60,170) 40x16
//	指标 1 (0,0) 100x60
//	页脚图标 0 (0,300) 36x36
type hoverInputFixture struct {
	em      *ecs.EntityManager
	system  *HoverInputSystem
	opened  []string
	product ecs.EntityID
	tag     ecs.EntityID
	metric  ecs.EntityID
	footer  ecs.EntityID
}

func newHoverInputFixture(t *testing.T) *hoverInputFixture {
	t.Helper()
	f := &hoverInputFixture{em: ecs.NewEntityManager()}

	add := func(x, y float64, target components.HoverTargetComponent) ecs.EntityID {
		id := f.em.CreateEntity()
		f.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		f.em.AddComponent(id, &target)
		f.em.AddComponent(id, &components.HoverGlowComponent{})
		return id
	}

	f.product = add(0, 100, components.HoverTargetComponent{Kind: components.HoverTargetProduct, Key: "lbry", Width: 400, Height: 100, URL: "https://lbry.fun"})
	f.tag = add(60, 170, components.HoverTargetComponent{Kind: components.HoverTargetTag, Key: "lbry", Width: 40, Height: 16})
	f.metric = add(0, 0, components.HoverTargetComponent{Kind: components.HoverTargetMetric, Index: 1, Width: 100, Height: 60})
	f.footer = add(0, 300, components.HoverTargetComponent{Kind: components.HoverTargetFooter, Index: 0, Width: 36, Height: 36, URL: "https://x.com/alexandria", Title: "X"})

	animator := newTestHoverAnimator(1)
	f.system = NewHoverInputSystem(f.em, animator, func(url string) error {
		f.opened = append(f.opened, url)
		return nil
	})
	return f
}

func (f *hoverInputFixture) glow(id ecs.EntityID) *components.HoverGlowComponent {
	g, _ := ecs.GetComponent[*components.HoverGlowComponent](f.em, id)
	return g
}

// TestHoverInputHitTest 测试悬停判定和优先级
func TestHoverInputHitTest(t *testing.T) {
	tests := []struct {
		name         string
		pointer      utils.PointerState
		expected     string
		clickable    bool
		hoveredGlows []string
	}{
		{"指针不在画布上", utils.PointerState{X: 10, Y: 10, Present: false}, "", false, nil},
		{"指标卡片", utils.PointerState{X: 10, Y: 10, Present: true}, "metric", false, []string{"metric"}},
		{"产品卡片", utils.PointerState{X: 300, Y: 150, Present: true}, "product", true, []string{"product"}},
		{"标签优先于产品卡片", utils.PointerState{X: 70, Y: 175, Present: true}, "tag", true, []string{"product", "tag"}},
		{"页脚图标", utils.PointerState{X: 20, Y: 320, Present: true}, "footer", true, []string{"footer"}},
		{"空白区域", utils.PointerState{X: 600, Y: 600, Present: true}, "", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHoverInputFixture(t)
			f.system.Update(tt.pointer, 0, 0.016)

			target, ok := f.system.HoveredTarget()
			got := ""
			if ok {
				got = target.Kind.String()
			}
			if got != tt.expected {
				t.Errorf("悬停实体 = %q, 期望 %q", got, tt.expected)
			}
			if f.system.HoveringClickable() != tt.clickable {
				t.Errorf("HoveringClickable = %v, 期望 %v", f.system.HoveringClickable(), tt.clickable)
			}

			ids := map[string]ecs.EntityID{"product": f.product, "tag": f.tag, "metric": f.metric, "footer": f.footer}
			want := map[string]bool{}
			for _, name := range tt.hoveredGlows {
				want[name] = true
			}
			for name, id := range ids {
				if f.glow(id).Hovered != want[name] {
					t.Errorf("%s.Hovered = %v, 期望 %v", name, f.glow(id).Hovered, want[name])
				}
			}
		})
	}
}

// TestHoverInputAnimates 测试悬停结果驱动动画并写回组件
func TestHoverInputAnimates(t *testing.T) {
	f := newHoverInputFixture(t)
	onProduct := utils.PointerState{X: 300, Y: 150, Present: true}

	for i := 0; i < 30; i++ {
		f.system.Update(onProduct, 0, 0.05)
	}

	g := f.glow(f.product)
	if g.Intensity < 0.9 {
		t.Errorf("持续悬停后产品强度应接近 1, got %f", g.Intensity)
	}
	if g.Scanline <= -0.3 {
		t.Errorf("悬停时扫描线应前进, got %f", g.Scanline)
	}
	if f.system.animator.ProductIntensity("lbry") != g.Intensity {
		t.Error("组件中的强度应与 HoverAnimator 一致")
	}
	if f.glow(f.metric).Intensity != 0 {
		t.Error("未悬停的指标强度应为 0")
	}

	// 离开后扫描线立即复位，强度逐渐下降
	away := utils.PointerState{X: 600, Y: 600, Present: true}
	f.system.Update(away, 0, 0.05)
	if g.Scanline != -0.3 {
		t.Errorf("离开后扫描线应复位到 -0.3, got %f", g.Scanline)
	}
	if g.Intensity <= 0 || g.Intensity >= 0.9 {
		t.Errorf("离开一帧后强度应平滑下降, got %f", g.Intensity)
	}
}

// TestHoverInputTagInstant 测试标签发光不做平滑
func TestHoverInputTagInstant(t *testing.T) {
	f := newHoverInputFixture(t)

	f.system.Update(utils.PointerState{X: 70, Y: 175, Present: true}, 0, 0.016)
	if f.glow(f.tag).Intensity != 1 {
		t.Errorf("悬停标签强度应立即为 1, got %f", f.glow(f.tag).Intensity)
	}

	f.system.Update(utils.PointerState{X: 300, Y: 150, Present: true}, 0, 0.016)
	if f.glow(f.tag).Intensity != 0 {
		t.Errorf("离开标签强度应立即为 0, got %f", f.glow(f.tag).Intensity)
	}
}

// TestHoverInputScroll 测试滚动限制和页面坐标转换
func TestHoverInputScroll(t *testing.T) {
	f := newHoverInputFixture(t)

	// 向下滚动 250 后，屏幕 y=70 对应页面 y=320（页脚图标）
	f.system.Update(utils.PointerState{X: 20, Y: 70, Present: true, ScrollY: 250}, 1000, 0.016)
	if f.system.Scroll() != 250 {
		t.Errorf("Scroll = %f, 期望 250", f.system.Scroll())
	}
	if !f.glow(f.footer).Hovered {
		t.Error("滚动后应命中页脚图标")
	}

	tests := []struct {
		name      string
		delta     float64
		maxScroll float64
		expected  float64
	}{
		{"超过最大值", 5000, 1000, 1000},
		{"向上超过顶部", -5000, 1000, 0},
		{"内容不足一屏", 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.system.Update(utils.PointerState{ScrollY: tt.delta}, tt.maxScroll, 0.016)
			if f.system.Scroll() != tt.expected {
				t.Errorf("Scroll = %f, 期望 %f", f.system.Scroll(), tt.expected)
			}
		})
	}
}

// TestHoverInputClick 测试点击打开链接
func TestHoverInputClick(t *testing.T) {
	tests := []struct {
		name     string
		pointer  utils.PointerState
		expected []string
	}{
		{"点击产品卡片", utils.PointerState{X: 300, Y: 150, Present: true, JustReleased: true}, []string{"https://lbry.fun"}},
		{"点击标签打开所属产品", utils.PointerState{X: 70, Y: 175, Present: true, JustReleased: true}, []string{"https://lbry.fun"}},
		{"点击页脚图标", utils.PointerState{X: 20, Y: 320, Present: true, JustReleased: true}, []string{"https://x.com/alexandria"}},
		{"点击指标不打开", utils.PointerState{X: 10, Y: 10, Present: true, JustReleased: true}, nil},
		{"悬停但未点击", utils.PointerState{X: 300, Y: 150, Present: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHoverInputFixture(t)
			f.system.Update(tt.pointer, 0, 0.016)

			if len(f.opened) != len(tt.expected) {
				t.Fatalf("打开了 %v, 期望 %v", f.opened, tt.expected)
			}
			for i := range tt.expected {
				if f.opened[i] != tt.expected[i] {
					t.Errorf("opened[%d] = %q, 期望 %q", i, f.opened[i], tt.expected[i])
				}
			}
		})
	}
}

// TestHoverInputOpenerError 测试打开链接失败不影响后续帧
func TestHoverInputOpenerError(t *testing.T) {
	f := newHoverInputFixture(t)
	calls := 0
	f.system.opener = func(string) error {
		calls++
		return errors.New("no browser")
	}

	click := utils.PointerState{X: 20, Y: 320, Present: true, JustReleased: true}
	f.system.Update(click, 0, 0.016)
	f.system.Update(click, 0, 0.016)
	if calls != 2 {
		t.Errorf("opener 调用次数 = %d, 期望 2", calls)
	}

	nilOpener := NewHoverInputSystem(f.em, newTestHoverAnimator(1), nil)
	nilOpener.Update(click, 0, 0.016)
}

// TestHoverInputDragIsNotClick 测试拖动滚动后松开不会打开链接
func TestHoverInputDragIsNotClick(t *testing.T) {
	at := func(x, y int) utils.PointerState {
		return utils.PointerState{X: x, Y: y, Present: true}
	}
	pressed := func(p utils.PointerState) utils.PointerState {
		p.JustPressed = true
		return p
	}
	scrolled := func(p utils.PointerState, dy float64) utils.PointerState {
		p.ScrollY = dy
		return p
	}
	released := func(p utils.PointerState) utils.PointerState {
		p.JustReleased = true
		return p
	}

	tests := []struct {
		name     string
		frames   []utils.PointerState
		expected int
	}{
		{
			name:     "触摸拖动滚动后松开",
			frames:   []utils.PointerState{pressed(at(300, 190)), scrolled(at(300, 170), 20), scrolled(at(300, 150), 20), scrolled(at(300, 130), 20), released(at(300, 130))},
			expected: 0,
		},
		{
			name: "不知道按下时刻的连续滚动",
			frames: []utils.PointerState{
				scrolled(at(300, 150), 20), scrolled(at(300, 150), 20), scrolled(at(300, 150), 20), scrolled(at(300, 150), 20), scrolled(at(300, 150), 20),
				scrolled(at(300, 150), 20), scrolled(at(300, 150), 20), scrolled(at(300, 150), 20), scrolled(at(300, 150), 20), scrolled(at(300, 150), 20),
				released(at(300, 150)),
			},
			expected: 0,
		},
		{
			name:     "按下后轻微抖动仍算点击",
			frames:   []utils.PointerState{pressed(at(300, 150)), at(303, 152), released(at(304, 153))},
			expected: 1,
		},
		{
			name:     "按住鼠标拖出阈值",
			frames:   []utils.PointerState{pressed(at(100, 150)), at(150, 150), released(at(200, 150))},
			expected: 0,
		},
		{
			name:     "滚轮滚动后再点击",
			frames:   []utils.PointerState{scrolled(at(300, 150), 48), scrolled(at(300, 150), -48), pressed(at(300, 150)), released(at(300, 150))},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHoverInputFixture(t)
			for _, p := range tt.frames {
				// maxScroll 为 0：滚动量不改变页面位置，只影响手势判定
				f.system.Update(p, 0, 0.016)
			}
			if len(f.opened) != tt.expected {
				t.Errorf("打开了 %v, 期望 %d 次", f.opened, tt.expected)
			}
		})
	}

	// 拖动结束后下一次轻触不受影响
	f := newHoverInputFixture(t)
	f.system.Update(scrolled(at(300, 150), 200), 0, 0.016)
	f.system.Update(released(at(300, 150)), 0, 0.016)
	f.system.Update(pressed(at(300, 150)), 0, 0.016)
	f.system.Update(released(at(300, 150)), 0, 0.016)
	if len(f.opened) != 1 {
		t.Errorf("拖动后的轻触应打开链接, opened = %v", f.opened)
	}
}
