package systems

import (
	"math"
	"testing"

	"github.com/decker502/alexandria/pkg/components"
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/ecs"
	"github.com/decker502/alexandria/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestGlowColorCycle 测试边框颜色在 copper / rust / ember 之间循环
func TestGlowColorCycle(t *testing.T) {
	tests := []struct {
		name     string
		phase    float64
		expected [3]uint8
	}{
		{"最低点为 copper", -math.Pi / 2, [3]uint8{183, 65, 14}},
		{"中点为 rust", 0, [3]uint8{247, 76, 0}},
		{"最高点为 ember", math.Pi / 2, [3]uint8{255, 140, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := glowColor(tt.phase)
			got := [3]uint8{c.R, c.G, c.B}
			for i := range got {
				if d := int(got[i]) - int(tt.expected[i]); d > 1 || d < -1 {
					t.Errorf("glowColor(%f) = %v, 期望 %v", tt.phase, got, tt.expected)
					break
				}
			}
		})
	}
}

// TestFooterGlowColor 测试页脚发光圈颜色随时间在 copper 与 ember 之间往返
func TestFooterGlowColor(t *testing.T) {
	s := NewPageRenderSystem(ecs.NewEntityManager(), nil)

	tests := []struct {
		name          string
		elapsed       float64
		reducedMotion bool
		expected      [3]uint8
	}{
		{"起点为两色中点", 0, false, [3]uint8{219, 103, 32}},
		{"四分之一周期为 ember", math.Pi / 8, false, [3]uint8{255, 140, 50}},
		{"四分之三周期为 copper", 3 * math.Pi / 8, false, [3]uint8{183, 65, 14}},
		{"减少动画时固定在中点", 3 * math.Pi / 8, true, [3]uint8{219, 103, 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetReducedMotion(tt.reducedMotion)
			c := footerGlowColor(s.phase(tt.elapsed, footerPhaseSpeed))
			got := [3]uint8{c.R, c.G, c.B}
			for i := range got {
				if d := int(got[i]) - int(tt.expected[i]); d > 1 || d < -1 {
					t.Errorf("footerGlowColor at %.3fs = %v, 期望 %v", tt.elapsed, got, tt.expected)
					break
				}
			}
		})
	}
}

// TestMetricValueColor 测试指标数值颜色
func TestMetricValueColor(t *testing.T) {
	if metricValueColor(0.3) != config.ColorTextPrimary {
		t.Error("强度 <= 0.5 时保持主文字颜色")
	}
	if metricValueColor(0.5) != config.ColorTextPrimary {
		t.Error("强度 = 0.5 时保持主文字颜色")
	}
	c := metricValueColor(1.0)
	if c.R != config.ColorAccentEmber.R || c.G != config.ColorAccentEmber.G || c.B != config.ColorAccentEmber.B {
		t.Errorf("强度 1 时应为 ember, got %v", c)
	}
}

// TestFooterIconSize 测试页脚图标放大
func TestFooterIconSize(t *testing.T) {
	tests := []struct {
		intensity float64
		expected  float64
	}{
		{0, config.FooterIconSize},
		{1, config.FooterIconSize * config.FooterHoverScale},
		{0.5, config.FooterIconSize * (1 + (config.FooterHoverScale-1)/2)},
		{2, config.FooterIconSize * config.FooterHoverScale},
	}

	for _, tt := range tests {
		if got := footerIconSize(tt.intensity); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("footerIconSize(%f) = %f, 期望 %f", tt.intensity, got, tt.expected)
		}
	}
}

// TestVisible 测试视口裁剪判定
func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		top, h   float64
		expected bool
	}{
		{"完全在视口内", 100, 50, true},
		{"跨越顶部", -30, 50, true},
		{"完全在上方", -100, 50, false},
		{"完全在下方", 900, 50, false},
		{"贴着底部", 800, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visible(tt.top, tt.h, 800); got != tt.expected {
				t.Errorf("visible(%f, %f) = %v, 期望 %v", tt.top, tt.h, got, tt.expected)
			}
		})
	}
}

// TestFooterIconShapes 测试所有已知图标都有矢量定义且坐标在单位范围内
func TestFooterIconShapes(t *testing.T) {
	icons := []config.FooterIcon{
		config.FooterIconTwitter, config.FooterIconGithub, config.FooterIconWhitepaper, config.FooterIconAudit,
		config.FooterIconKongSwap, config.FooterIconIcpSwap, config.FooterIconDexScreener, config.FooterIconIcpTokens,
	}

	for _, icon := range icons {
		shape, ok := footerIconShapes[icon]
		if !ok {
			t.Errorf("图标 %q 缺少矢量定义", icon)
			continue
		}
		if len(shape.Strokes) == 0 && len(shape.Circles) == 0 {
			t.Errorf("图标 %q 为空", icon)
		}
		for _, st := range shape.Strokes {
			if len(st.Points) < 2 {
				t.Errorf("图标 %q 的折线至少需要两个点", icon)
			}
			for _, p := range st.Points {
				if math.Abs(p.X) > 1 || math.Abs(p.Y) > 1 {
					t.Errorf("图标 %q 的点 %v 超出范围", icon, p)
				}
			}
		}
		for _, c := range shape.Circles {
			if math.Abs(c.Center.X)+c.Radius > 1 || math.Abs(c.Center.Y)+c.Radius > 1 {
				t.Errorf("图标 %q 的圆超出范围", icon)
			}
		}
	}

	if len(footerIconShape("unknown").Circles) != 1 {
		t.Error("未知图标应使用默认图形")
	}
}

// TestPageRenderSystemDraw 测试完整绘制流程不会 panic（含悬停、提示框、减少动画模式）
func TestPageRenderSystemDraw(t *testing.T) {
	fonts, err := game.NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager failed: %v", err)
	}
	em := ecs.NewEntityManager()
	layoutSystem := NewLayoutSystem(em, newTestContent(), fonts)
	l := layoutSystem.Update(800, 600)

	// 让所有实体处于悬停状态
	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.HoverTargetComponent, *components.HoverGlowComponent](em) {
		g, _ := ecs.GetComponent[*components.HoverGlowComponent](em, id)
		g.Hovered = true
		g.Intensity = 1
		g.Scanline = 0.5
	}

	s := NewPageRenderSystem(em, fonts)
	screen := ebiten.NewImage(800, 600)

	frames := []RenderFrame{
		{Layout: nil},
		{Layout: l, Frame: FrameState{Text: "", CursorVisible: true, Elapsed: 0.3}},
		{Layout: l, Frame: FrameState{Text: "Alexandria", CursorVisible: false, Elapsed: 1.7}, Scroll: 120},
		{Layout: l, Frame: FrameState{Text: "1.0% → 0.2%", CursorVisible: true, Elapsed: 3.1}, Tooltip: "GitHub", PointerX: 790, PointerY: 590},
	}

	for _, reduced := range []bool{false, true} {
		s.SetReducedMotion(reduced)
		if s.ReducedMotion() != reduced {
			t.Errorf("ReducedMotion = %v, 期望 %v", s.ReducedMotion(), reduced)
		}
		for _, rf := range frames {
			s.Draw(screen, rf)
		}
	}
}
