package systems

import (
	"testing"

	"github.com/decker502/alexandria/pkg/config"
)

func newTestHoverAnimator(footerCount int) *HoverAnimator {
	return NewHoverAnimator(config.DefaultAnimationConfig().Hover, footerCount)
}

// TestHoverAnimatorLazyCreation 测试产品状态延迟创建
func TestHoverAnimatorLazyCreation(t *testing.T) {
	a := newTestHoverAnimator(0)

	if got := a.ProductIntensity("lbry"); got != 0 {
		t.Errorf("未创建的产品强度应为 0, got %f", got)
	}
	if got := a.Scanline("lbry"); got != -0.3 {
		t.Errorf("未创建的产品扫描线应为 -0.3, got %f", got)
	}
	if a.TrackedProducts() != 0 {
		t.Errorf("只读查询不应创建条目, got %d", a.TrackedProducts())
	}

	a.UpdateIntensity("lbry", false, 0.016)
	if a.TrackedProducts() != 1 {
		t.Errorf("更新后应创建 1 个条目, got %d", a.TrackedProducts())
	}
	if got := a.Scanline("lbry"); got != -0.3 {
		t.Errorf("新条目扫描线应为 -0.3, got %f", got)
	}
}

// TestHoverAnimatorProductIntensity 测试产品发光强度单调逼近
func TestHoverAnimatorProductIntensity(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"60fps", 1.0 / 60.0},
		{"30fps", 1.0 / 30.0},
		{"最大 dt", 0.1},
		{"最小 dt", 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestHoverAnimator(0)

			prev := 0.0
			for i := 0; i < 200; i++ {
				got := a.UpdateIntensity("ipg", true, tt.dt)
				if got < prev || got > 1 {
					t.Fatalf("第 %d 帧悬停强度 %f 应单调不减且 <= 1 (prev %f)", i, got, prev)
				}
				prev = got
			}
			if tt.dt >= 1.0/60.0 && prev < 0.9 {
				t.Errorf("持续悬停后强度应接近 1, got %f", prev)
			}

			for i := 0; i < 200; i++ {
				got := a.UpdateIntensity("ipg", false, tt.dt)
				if got > prev || got < 0 {
					t.Fatalf("第 %d 帧离开后强度 %f 应单调不增且 >= 0 (prev %f)", i, got, prev)
				}
				prev = got
			}
		})
	}
}

// TestHoverAnimatorFirstStep 测试单步逼近数值
func TestHoverAnimatorFirstStep(t *testing.T) {
	a := newTestHoverAnimator(0)

	// 0 + (1-0)*8*0.05 = 0.4
	got := a.UpdateIntensity("daopad", true, 0.05)
	if diff := got - 0.4; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("UpdateIntensity = %f, 期望 0.4", got)
	}

	// 0.4 + (0-0.4)*8*0.05 = 0.24
	got = a.UpdateIntensity("daopad", false, 0.05)
	if diff := got - 0.24; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("UpdateIntensity = %f, 期望 0.24", got)
	}
}

// TestHoverAnimatorScanline 测试扫描线移动、回绕和复位
func TestHoverAnimatorScanline(t *testing.T) {
	a := newTestHoverAnimator(0)

	got := a.UpdateScanline("cyclescan", true, 0.1)
	if diff := got - (-0.22); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("扫描线 = %f, 期望 -0.22", got)
	}

	// 接近终点后越界回到起点
	a.products["cyclescan"].Scanline = 1.29
	if got := a.UpdateScanline("cyclescan", true, 0.1); got != -0.3 {
		t.Errorf("越过 1.3 后应回到 -0.3, got %f", got)
	}

	// 长时间悬停扫描线始终在范围内
	wrapped := false
	prev := a.Scanline("cyclescan")
	for i := 0; i < 100; i++ {
		got := a.UpdateScanline("cyclescan", true, 0.1)
		if got < -0.3 || got > 1.3 {
			t.Fatalf("扫描线越界: %f", got)
		}
		if got < prev {
			wrapped = true
		}
		prev = got
	}
	if !wrapped {
		t.Error("持续悬停 10 秒应至少回绕一次")
	}

	// 未悬停立即复位
	a.products["cyclescan"].Scanline = 0.7
	if got := a.UpdateScanline("cyclescan", false, 0.016); got != -0.3 {
		t.Errorf("未悬停应立即复位到 -0.3, got %f", got)
	}
}

// TestHoverAnimatorIndependentEntities 测试不同实体互不影响
func TestHoverAnimatorIndependentEntities(t *testing.T) {
	a := newTestHoverAnimator(2)

	for i := 0; i < 10; i++ {
		a.UpdateIntensity("lbry", true, 0.05)
		a.UpdateIntensity("ipg", false, 0.05)
		a.UpdateMetric(1, true, 0.05)
		a.UpdateFooter(0, true, 0.05)
	}

	if a.ProductIntensity("ipg") != 0 {
		t.Errorf("未悬停产品强度应保持 0, got %f", a.ProductIntensity("ipg"))
	}
	if a.ProductIntensity("lbry") <= 0.9 {
		t.Errorf("悬停产品强度应接近 1, got %f", a.ProductIntensity("lbry"))
	}
	if a.MetricIntensity(0) != 0 || a.MetricIntensity(2) != 0 {
		t.Error("未悬停指标强度应保持 0")
	}
	if a.FooterIntensity(1) != 0 {
		t.Error("未悬停页脚强度应保持 0")
	}
}

// TestHoverAnimatorMetricBounds 测试指标槽位越界
func TestHoverAnimatorMetricBounds(t *testing.T) {
	a := newTestHoverAnimator(0)

	tests := []struct {
		name     string
		idx      int
		expected float64
	}{
		{"第一个槽位", 0, 1.0},
		{"最后一个槽位", 3, 1.0},
		{"负索引", -1, 0.0},
		{"越界索引", 4, 0.0},
		{"远超范围", 99, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 速度 10 * dt 0.1 = 1，一步到位
			got := a.UpdateMetric(tt.idx, true, 0.1)
			if got != tt.expected {
				t.Errorf("UpdateMetric(%d) = %f, 期望 %f", tt.idx, got, tt.expected)
			}
			if a.MetricIntensity(tt.idx) != tt.expected {
				t.Errorf("MetricIntensity(%d) = %f, 期望 %f", tt.idx, a.MetricIntensity(tt.idx), tt.expected)
			}
		})
	}
}

// TestHoverAnimatorFooterBounds 测试页脚索引越界
func TestHoverAnimatorFooterBounds(t *testing.T) {
	a := newTestHoverAnimator(8)

	if got := a.UpdateFooter(7, true, 0.05); got <= 0 {
		t.Errorf("有效索引应有强度, got %f", got)
	}
	if got := a.UpdateFooter(8, true, 0.05); got != 0 {
		t.Errorf("越界索引应返回 0, got %f", got)
	}
	if got := a.UpdateFooter(-1, true, 0.05); got != 0 {
		t.Errorf("负索引应返回 0, got %f", got)
	}

	empty := NewHoverAnimator(config.DefaultAnimationConfig().Hover, -3)
	if got := empty.FooterIntensity(0); got != 0 {
		t.Errorf("负数数量视为 0 个图标, got %f", got)
	}
}
