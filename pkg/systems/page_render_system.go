package systems

import (
	"image/color"
	"math"

	"github.com/decker502/alexandria/pkg/components"
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/ecs"
	"github.com/decker502/alexandria/pkg/game"
	"github.com/decker502/alexandria/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 效果参数
const (
	// glowThreshold 低于该强度时不绘制发光和扫描线
	glowThreshold = 0.01

	// borderPhaseSpeed 产品卡片边框颜色循环速度（相位/秒）
	borderPhaseSpeed = 2.0

	// tagPulseSpeed 标签脉冲速度（相位/秒）
	tagPulseSpeed = 3.0

	// footerPhaseSpeed 页脚发光圈颜色循环速度（相位/秒）
	footerPhaseSpeed = 4.0

	// glowLayers 产品卡片发光边框层数
	glowLayers = 3

	// scanlineTrail 扫描线拖尾像素
	scanlineTrail = 4

	// cursorWidth 打字机光标宽度
	cursorWidth = 3.0

	// tooltipFontSize 提示框字号
	tooltipFontSize = 12.0

	// tooltipPadding 提示框内边距
	tooltipPadding = 6.0

	// monogramFontSize 产品图标首字母字号
	monogramFontSize = 20.0
)

// RenderFrame 一帧绘制所需的全部输入
type RenderFrame struct {
	Layout *PageLayout
	Frame  FrameState
	Scroll float64

	// Tooltip 为空表示不显示提示框
	Tooltip            string
	PointerX, PointerY float64
}

// PageRenderSystem 页面渲染系统
//
// 只读取布局、帧状态和实体的 HoverGlowComponent，不修改任何动画状态。
// 绘制顺序：背景 -> 标题 -> 副标题 -> 指标区 -> 产品卡片 -> 页脚 -> 提示框
//
// 减少动画模式下不绘制扫描线，边框颜色和标签脉冲固定在初始相位；
// 悬停强度本身照常显示。
type PageRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *game.FontManager
	reducedMotion bool
}

// NewPageRenderSystem 创建页面渲染系统
func NewPageRenderSystem(em *ecs.EntityManager, fonts *game.FontManager) *PageRenderSystem {
	return &PageRenderSystem{
		entityManager: em,
		fonts:         fonts,
	}
}

// SetReducedMotion 设置减少动画模式
func (s *PageRenderSystem) SetReducedMotion(enabled bool) {
	s.reducedMotion = enabled
}

// ReducedMotion 是否处于减少动画模式
func (s *PageRenderSystem) ReducedMotion() bool {
	return s.reducedMotion
}

// Draw 绘制整个页面
func (s *PageRenderSystem) Draw(screen *ebiten.Image, rf RenderFrame) {
	screen.Fill(config.ColorBackground)

	l := rf.Layout
	if l == nil {
		return
	}

	s.drawHero(screen, l, rf)
	s.drawBlock(screen, l.Subtitle, rf.Scroll, l.ViewportHeight, config.ColorTextSecondary)
	s.drawMetrics(screen, l, rf.Scroll)

	elapsed := rf.Frame.Elapsed
	for i := range l.Products {
		s.drawProduct(screen, &l.Products[i], l.ViewportHeight, rf.Scroll, elapsed)
	}

	s.drawFooter(screen, l, rf.Scroll, elapsed)

	if rf.Tooltip != "" {
		s.drawTooltip(screen, rf.Tooltip, rf.PointerX, rf.PointerY, l.ViewportWidth, l.ViewportHeight)
	}
}

// glow 读取实体的发光组件，不存在时返回零值
func (s *PageRenderSystem) glow(id ecs.EntityID) components.HoverGlowComponent {
	if g, ok := ecs.GetComponent[*components.HoverGlowComponent](s.entityManager, id); ok {
		return *g
	}
	return components.HoverGlowComponent{}
}

// phase 动画相位，减少动画模式下固定为 0
func (s *PageRenderSystem) phase(elapsed, speed float64) float64 {
	if s.reducedMotion {
		return 0
	}
	return elapsed * speed
}

// drawHero 打字机标题和光标
func (s *PageRenderSystem) drawHero(screen *ebiten.Image, l *PageLayout, rf RenderFrame) {
	top := l.HeroY - rf.Scroll
	if !visible(top, l.HeroHeight, l.ViewportHeight) {
		return
	}

	lines := []string{""}
	if rf.Frame.Text != "" {
		lines = utils.WrapText(rf.Frame.Text, l.TitleFace, l.ContentWidth)
	}

	for i, line := range lines {
		drawText(screen, line, l.TitleFace, l.ContentX, top+float64(i)*l.HeroLineHeight, config.ColorTextPrimary)
	}

	if rf.Frame.CursorVisible {
		last := len(lines) - 1
		w, _ := utils.MeasureText(lines[last], l.TitleFace)
		cy := top + float64(last)*l.HeroLineHeight
		h := l.TitleFace.Size * 1.1
		vector.DrawFilledRect(screen,
			float32(l.ContentX+w+4), float32(cy+(l.HeroLineHeight-h)/2),
			cursorWidth, float32(h),
			utils.WithAlpha(config.ColorAccentRust, 255), true)
	}
}

// drawBlock 绘制多行文本块
func (s *PageRenderSystem) drawBlock(screen *ebiten.Image, b TextBlock, scroll, viewportHeight float64, clr color.RGBA) {
	top := b.Y - scroll
	if !visible(top, b.Height(), viewportHeight) {
		return
	}
	for i, line := range b.Lines {
		drawText(screen, line, b.Face, b.X, top+float64(i)*b.LineHeight, clr)
	}
}

// drawMetrics 指标区：上下分隔线 + 指标卡片
func (s *PageRenderSystem) drawMetrics(screen *ebiten.Image, l *PageLayout, scroll float64) {
	if len(l.Metrics) == 0 {
		return
	}
	top := l.MetricBandY - scroll
	if !visible(top, l.MetricBandHeight, l.ViewportHeight) {
		return
	}

	border := paint(config.ColorBorder)
	x0, x1 := float32(l.ContentX), float32(l.ContentX+l.ContentWidth)
	vector.StrokeLine(screen, x0, float32(top), x1, float32(top), 1, border, true)
	vector.StrokeLine(screen, x0, float32(top+l.MetricBandHeight), x1, float32(top+l.MetricBandHeight), 1, border, true)

	for _, m := range l.Metrics {
		intensity := s.glow(m.Entity).Intensity
		x, y := float32(m.X), float32(m.Y-scroll)
		w, h := float32(m.W), float32(m.H)

		if intensity >= glowThreshold {
			vector.DrawFilledRect(screen, x, y, w, h,
				utils.WithAlpha(config.ColorAccentRust, utils.AlphaFromIntensity(40, intensity)), true)
			vector.StrokeRect(screen, x, y, w, h, 1,
				utils.WithAlpha(config.ColorAccentEmber, utils.AlphaFromIntensity(160, intensity)), true)
		}

		valueColor := metricValueColor(intensity)
		vw, _ := utils.MeasureText(m.Value, m.ValueFace)
		drawText(screen, m.Value, m.ValueFace, m.X+(m.W-vw)/2, m.Y-scroll+6, valueColor)

		lw, _ := utils.MeasureText(m.Label, m.LabelFace)
		labelY := m.Y - scroll + m.H - lineHeight(m.LabelFace) - 4
		drawText(screen, m.Label, m.LabelFace, m.X+(m.W-lw)/2, labelY, config.ColorTextMuted)
	}
}

// drawProduct 产品卡片：背景、发光边框、扫描线、图标、文字、标签
func (s *PageRenderSystem) drawProduct(screen *ebiten.Image, p *ProductLayout, viewportHeight, scroll, elapsed float64) {
	top := p.Y - scroll
	if !visible(top, p.H, viewportHeight) {
		return
	}

	g := s.glow(p.Entity)
	x, y, w, h := float32(p.X), float32(top), float32(p.W), float32(p.H)

	if g.Intensity >= glowThreshold {
		vector.DrawFilledRect(screen, x, y, w, h,
			utils.WithAlpha(config.ColorAccentRust, utils.AlphaFromIntensity(18, g.Intensity)), true)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, paint(config.ColorBorder), true)

	if g.Intensity >= glowThreshold {
		c := glowColor(s.phase(elapsed, borderPhaseSpeed))
		for i := 0; i < glowLayers; i++ {
			inset := float32(i) * 2
			alpha := utils.AlphaFromIntensity(200/float64(i+1), g.Intensity)
			vector.StrokeRect(screen, x-inset, y-inset, w+2*inset, h+2*inset, 1.5, utils.WithAlpha(c, alpha), true)
		}
	}

	if !s.reducedMotion && g.Intensity >= glowThreshold && g.Scanline >= 0 && g.Scanline <= 1 {
		sy := y + float32(g.Scanline)*h
		for k := 0; k < scanlineTrail; k++ {
			ly := sy - float32(k)
			if ly < y {
				break
			}
			alpha := utils.AlphaFromIntensity(120/float64(k+1), g.Intensity)
			vector.StrokeLine(screen, x, ly, x+w, ly, 1, utils.WithAlpha(config.ColorAccentEmber, alpha), true)
		}
	}

	// 图标位置显示首字母
	logoY := p.LogoY - scroll
	vector.StrokeRect(screen, float32(p.LogoX), float32(logoY), config.ProductLogoSize, config.ProductLogoSize, 1,
		paint(utils.LerpColor(config.ColorBorder, config.ColorAccentRust, g.Intensity)), true)
	monoFace := s.fonts.Face(game.FontBold, monogramFontSize)
	mw, mh := utils.MeasureText(p.Monogram, monoFace)
	drawText(screen, p.Monogram, monoFace, p.LogoX+(config.ProductLogoSize-mw)/2, logoY+(config.ProductLogoSize-mh)/2, config.ColorTextPrimary)

	nameColor := config.ColorTextPrimary
	if g.Intensity > 0.5 {
		nameColor = utils.LerpColor(config.ColorTextPrimary, config.ColorAccentEmber, (g.Intensity-0.5)*2)
	}
	s.drawBlock(screen, p.Name, scroll, viewportHeight, nameColor)
	s.drawBlock(screen, p.Tagline, scroll, viewportHeight, config.ColorTextSecondary)
	s.drawBlock(screen, p.Description, scroll, viewportHeight, config.ColorTextMuted)

	for _, tag := range p.Tags {
		s.drawTag(screen, tag, p.TagFace, scroll, elapsed)
	}
}

// drawTag 标签：悬停时立即显示脉冲发光
func (s *PageRenderSystem) drawTag(screen *ebiten.Image, tag TagLayout, face *text.GoTextFace, scroll, elapsed float64) {
	x, y := float32(tag.X), float32(tag.Y-scroll)
	w, h := float32(tag.W), float32(tag.H)

	vector.DrawFilledRect(screen, x, y, w, h, paint(config.ColorTagBackground), true)

	intensity := s.glow(tag.Entity).Intensity
	if intensity >= glowThreshold {
		pulse := 0.6 + 0.4*math.Sin(s.phase(elapsed, tagPulseSpeed))
		if s.reducedMotion {
			pulse = 1.0
		}
		vector.DrawFilledRect(screen, x, y, w, h,
			utils.WithAlpha(config.ColorAccentRust, utils.AlphaFromIntensity(90*pulse, intensity)), true)
		vector.StrokeRect(screen, x, y, w, h, 1,
			utils.WithAlpha(config.ColorAccentEmber, utils.AlphaFromIntensity(200*pulse, intensity)), true)
	}

	drawText(screen, tag.Text, face, tag.X+config.ProductTagPaddingX, tag.Y-scroll+config.ProductTagPaddingY, config.ColorTagText)
}

// footerRings 页脚发光圈：透明度、相对图标半径的外扩
var footerRings = [...]struct {
	alpha  float64
	expand float64
}{
	{30, 12},
	{50, 8},
	{80, 4},
}

// drawFooter 页脚图标：发光圈 + 放大 + 矢量图标
func (s *PageRenderSystem) drawFooter(screen *ebiten.Image, l *PageLayout, scroll, elapsed float64) {
	ringColor := footerGlowColor(s.phase(elapsed, footerPhaseSpeed))

	for _, fi := range l.FooterIcons {
		top := fi.Y - scroll
		if !visible(top, fi.Size, l.ViewportHeight) {
			continue
		}

		intensity := s.glow(fi.Entity).Intensity
		cx, cy := fi.X+fi.Size/2, top+fi.Size/2
		size := footerIconSize(intensity)

		if intensity >= glowThreshold {
			fcx, fcy := float32(cx), float32(cy)
			for _, ring := range footerRings {
				vector.StrokeCircle(screen, fcx, fcy, float32(fi.Size/2+ring.expand), 2,
					utils.WithAlpha(ringColor, utils.AlphaFromIntensity(ring.alpha, intensity)), true)
			}
		}

		clr := utils.LerpColor(config.ColorTextSecondary, config.ColorAccentEmber, intensity)
		drawFooterIcon(screen, fi.Icon, cx, cy, size, clr)
	}
}

// drawTooltip 在指针右下方绘制提示框，超出视口时向内收
func (s *PageRenderSystem) drawTooltip(screen *ebiten.Image, str string, px, py, vw, vh float64) {
	face := s.fonts.Face(game.FontRegular, tooltipFontSize)
	tw, th := utils.MeasureText(str, face)
	w, h := tw+2*tooltipPadding, th+2*tooltipPadding

	x := math.Min(px+12, vw-w-4)
	y := py + 16
	if y+h > vh {
		y = py - h - 8
	}
	x, y = math.Max(x, 4), math.Max(y, 4)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), utils.WithAlpha(config.ColorTooltipBg, 235), true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, utils.WithAlpha(config.ColorAccentRust, 200), true)
	drawText(screen, str, face, x+tooltipPadding, y+tooltipPadding, config.ColorTextPrimary)
}

// glowColor 边框颜色循环 copper -> rust -> ember -> rust -> copper
func glowColor(phase float64) color.RGBA {
	t := (math.Sin(phase) + 1) / 2
	if t < 0.5 {
		return utils.LerpColor(config.ColorAccentCopper, config.ColorAccentRust, t*2)
	}
	return utils.LerpColor(config.ColorAccentRust, config.ColorAccentEmber, (t-0.5)*2)
}

// footerGlowColor 页脚发光圈颜色在 copper 与 ember 之间往返
func footerGlowColor(phase float64) color.RGBA {
	return utils.LerpColor(config.ColorAccentCopper, config.ColorAccentEmber, (math.Sin(phase)+1)/2)
}

// metricValueColor 强度超过 0.5 后数值颜色逐渐变为 ember
func metricValueColor(intensity float64) color.RGBA {
	if intensity <= 0.5 {
		return config.ColorTextPrimary
	}
	return utils.LerpColor(config.ColorTextPrimary, config.ColorAccentEmber, (intensity-0.5)*2)
}

// footerIconSize 悬停时图标按强度放大到 FooterHoverScale 倍
func footerIconSize(intensity float64) float64 {
	return config.FooterIconSize * (1 + (config.FooterHoverScale-1)*utils.Clamp01(intensity))
}

// visible 屏幕坐标下的纵向区间是否与视口相交
func visible(top, height, viewportHeight float64) bool {
	return top+height >= 0 && top <= viewportHeight
}

// paint 将调色板颜色（非预乘透明度）转为可绘制的颜色
func paint(c color.RGBA) color.NRGBA {
	return utils.WithAlpha(c, c.A)
}

// drawText 在左上角 (x, y) 绘制单行文本
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.RGBA) {
	if str == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(paint(clr))
	text.Draw(screen, str, face, op)
}
