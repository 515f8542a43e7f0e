package systems

import (
	"log"
	"math"
	"strings"
	"unicode"

	"github.com/decker502/alexandria/pkg/components"
	"github.com/decker502/alexandria/pkg/config"
	"github.com/decker502/alexandria/pkg/ecs"
	"github.com/decker502/alexandria/pkg/game"
	"github.com/decker502/alexandria/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextBlock 已换行的文本块（页面坐标，Y 为第一行顶部）
type TextBlock struct {
	Lines      []string
	Face       *text.GoTextFace
	X, Y       float64
	LineHeight float64
}

// Height 文本块总高度
func (b TextBlock) Height() float64 {
	return float64(len(b.Lines)) * b.LineHeight
}

// MetricLayout 指标卡片布局
type MetricLayout struct {
	Entity     ecs.EntityID
	Index      int
	X, Y, W, H float64
	Value      string
	Label      string // 已转为大写
	ValueFace  *text.GoTextFace
	LabelFace  *text.GoTextFace
}

// TagLayout 产品标签布局
type TagLayout struct {
	Entity     ecs.EntityID
	Text       string // 已转为大写
	X, Y, W, H float64
}

// ProductLayout 产品卡片布局
type ProductLayout struct {
	Entity      ecs.EntityID
	ID          string
	URL         string
	X, Y, W, H  float64
	Monogram    string
	LogoX       float64
	LogoY       float64
	Name        TextBlock
	Tagline     TextBlock
	Description TextBlock
	Tags        []TagLayout
	TagFace     *text.GoTextFace
}

// FooterIconLayout 页脚图标布局（X, Y 为可点击区域左上角）
type FooterIconLayout struct {
	Entity ecs.EntityID
	Index  int
	Icon   config.FooterIcon
	Title  string
	URL    string
	X, Y   float64
	Size   float64
}

// PageLayout 整个页面的布局结果
// 所有坐标都是页面坐标（相对于内容顶部），绘制时减去滚动偏移
type PageLayout struct {
	ViewportWidth  float64
	ViewportHeight float64
	ContentX       float64
	ContentWidth   float64
	Typography     config.Typography

	// HeroY 打字机标题顶部，HeroHeight 为所有词组中最多行数所需高度
	HeroY          float64
	HeroHeight     float64
	HeroLineHeight float64
	TitleFace      *text.GoTextFace

	Subtitle TextBlock

	MetricBandY      float64
	MetricBandHeight float64
	Metrics          []MetricLayout

	Products []ProductLayout

	FooterY     float64
	FooterIcons []FooterIconLayout

	// TotalHeight 内容总高度，用于限制滚动范围
	TotalHeight float64
}

// MaxScroll 返回允许的最大滚动偏移
func (l *PageLayout) MaxScroll() float64 {
	return math.Max(0, l.TotalHeight-l.ViewportHeight)
}

// LayoutSystem 页面布局系统
//
// 职责：
//   - 构造时为每个可交互元素创建一个实体（指标、产品卡片、标签、页脚图标）
//   - 视口尺寸变化时重新计算布局，并写回实体的 PositionComponent 和命中区域尺寸
//
// 视口不变时 Update 直接返回缓存的布局。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	content       *config.ContentConfig
	fonts         *game.FontManager

	metricEntities  []ecs.EntityID
	productEntities []ecs.EntityID
	tagEntities     [][]ecs.EntityID
	footerEntities  []ecs.EntityID

	layout *PageLayout
}

// NewLayoutSystem 创建布局系统并创建所有可交互实体
func NewLayoutSystem(em *ecs.EntityManager, content *config.ContentConfig, fonts *game.FontManager) *LayoutSystem {
	s := &LayoutSystem{
		entityManager: em,
		content:       content,
		fonts:         fonts,
	}

	for i := range content.Metrics {
		if i >= config.MetricSlots {
			break
		}
		s.metricEntities = append(s.metricEntities, s.createTarget(components.HoverTargetComponent{
			Kind:  components.HoverTargetMetric,
			Index: i,
		}))
	}

	s.tagEntities = make([][]ecs.EntityID, len(content.Products))
	for i, p := range content.Products {
		s.productEntities = append(s.productEntities, s.createTarget(components.HoverTargetComponent{
			Kind:  components.HoverTargetProduct,
			Key:   p.ID,
			Index: i,
			URL:   p.URL,
			Title: p.Name,
		}))
		for j, tag := range p.Tags {
			s.tagEntities[i] = append(s.tagEntities[i], s.createTarget(components.HoverTargetComponent{
				Kind:  components.HoverTargetTag,
				Key:   p.ID,
				Index: j,
				Title: tag,
			}))
		}
	}

	for i, link := range content.FooterLinks {
		s.footerEntities = append(s.footerEntities, s.createTarget(components.HoverTargetComponent{
			Kind:  components.HoverTargetFooter,
			Index: i,
			URL:   link.URL,
			Title: link.Title,
		}))
	}

	log.Printf("[LayoutSystem] Created %d interactive entities", em.EntityCount())
	return s
}

// createTarget 创建一个可悬停实体
func (s *LayoutSystem) createTarget(target components.HoverTargetComponent) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.PositionComponent{})
	t := target
	s.entityManager.AddComponent(id, &t)
	s.entityManager.AddComponent(id, &components.HoverGlowComponent{})
	return id
}

// Layout 返回最近一次计算的布局（Update 之前为 nil）
func (s *LayoutSystem) Layout() *PageLayout {
	return s.layout
}

// Update 按视口尺寸计算布局
func (s *LayoutSystem) Update(viewportWidth, viewportHeight float64) *PageLayout {
	if s.layout != nil && s.layout.ViewportWidth == viewportWidth {
		s.layout.ViewportHeight = viewportHeight
		return s.layout
	}

	s.layout = s.compute(viewportWidth, viewportHeight)
	s.syncEntities()
	log.Printf("[LayoutSystem] Relayout: viewport=%.0fx%.0f content=%.0f total=%.0f",
		viewportWidth, viewportHeight, s.layout.ContentWidth, s.layout.TotalHeight)
	return s.layout
}

// compute 计算完整布局（不修改实体）
func (s *LayoutSystem) compute(vw, vh float64) *PageLayout {
	typo := config.TypographyForWidth(vw)
	contentW := config.ContentWidth(vw)

	l := &PageLayout{
		ViewportWidth:  vw,
		ViewportHeight: vh,
		ContentX:       (vw - contentW) / 2,
		ContentWidth:   contentW,
		Typography:     typo,
	}

	y := config.HeroTopSpacing

	// 标题区域按最长词组预留高度，避免打字过程中下方内容跳动
	l.TitleFace = s.fonts.Face(game.FontBold, typo.TitleSize)
	l.HeroLineHeight = lineHeight(l.TitleFace)
	l.HeroY = y
	heroLines := 1
	for _, phrase := range s.content.Phrases {
		if n := len(utils.WrapText(phrase, l.TitleFace, contentW)); n > heroLines {
			heroLines = n
		}
	}
	l.HeroHeight = float64(heroLines) * l.HeroLineHeight
	y += l.HeroHeight + config.SubtitleSpacing

	l.Subtitle = wrapBlock(s.content.Subtitle, s.fonts.Face(game.FontRegular, typo.SubtitleSize), l.ContentX, y, contentW)
	y += l.Subtitle.Height() + config.SectionSpacing

	y = s.layoutMetrics(l, y)
	y = s.layoutProducts(l, y)
	y = s.layoutFooter(l, y)

	l.TotalHeight = y
	return l
}

// layoutMetrics 指标卡片在内容列中均匀分布
func (s *LayoutSystem) layoutMetrics(l *PageLayout, y float64) float64 {
	n := len(s.metricEntities)
	if n == 0 {
		return y
	}

	mw := config.MetricWidth(l.ViewportWidth)
	gap := (l.ContentWidth - float64(n)*mw) / float64(n+1)
	if gap < config.MetricMinGap {
		gap = config.MetricMinGap
		mw = math.Max(0, (l.ContentWidth-float64(n+1)*gap)/float64(n))
	}

	l.MetricBandY = y
	l.MetricBandHeight = config.MetricHeight + 2*config.MetricBandPadding
	valueFace := s.fonts.Face(game.FontBold, l.Typography.MetricValueSize)
	labelFace := s.fonts.Face(game.FontMono, l.Typography.MetricLabelSize)

	for i, id := range s.metricEntities {
		m := s.content.Metrics[i]
		l.Metrics = append(l.Metrics, MetricLayout{
			Entity:    id,
			Index:     i,
			X:         l.ContentX + gap + float64(i)*(mw+gap),
			Y:         y + config.MetricBandPadding,
			W:         mw,
			H:         config.MetricHeight,
			Value:     m.Value,
			Label:     utils.UpperCase(m.Label),
			ValueFace: valueFace,
			LabelFace: labelFace,
		})
	}

	return y + l.MetricBandHeight + config.SectionSpacing
}

// layoutProducts 产品卡片纵向排列，卡片内部为"图标 + 文字列"
func (s *LayoutSystem) layoutProducts(l *PageLayout, y float64) float64 {
	typo := l.Typography
	nameFace := s.fonts.Face(game.FontBold, typo.ProductNameSize)
	taglineFace := s.fonts.Face(game.FontRegular, typo.TaglineSize)
	descFace := s.fonts.Face(game.FontRegular, typo.DescriptionSize)
	tagFace := s.fonts.Face(game.FontMono, typo.TagSize)

	textX := l.ContentX + config.ProductPadding + config.ProductLogoSize + config.ProductLogoGap
	textW := math.Max(0, l.ContentWidth-2*config.ProductPadding-config.ProductLogoSize-config.ProductLogoGap)

	for i, p := range s.content.Products {
		top := y
		cy := top + config.ProductPadding

		pl := ProductLayout{
			Entity:   s.productEntities[i],
			ID:       p.ID,
			URL:      p.URL,
			X:        l.ContentX,
			Y:        top,
			W:        l.ContentWidth,
			Monogram: monogram(p.Name),
			LogoX:    l.ContentX + config.ProductPadding,
			LogoY:    cy,
			TagFace:  tagFace,
		}

		pl.Name = TextBlock{Lines: []string{p.Name}, Face: nameFace, X: textX, Y: cy, LineHeight: lineHeight(nameFace)}
		cy += pl.Name.Height() + config.ProductLineGap

		if p.Tagline != "" {
			pl.Tagline = wrapBlock(p.Tagline, taglineFace, textX, cy, textW)
			cy += pl.Tagline.Height() + config.ProductLineGap
		}
		if p.Description != "" {
			pl.Description = wrapBlock(p.Description, descFace, textX, cy, textW)
			cy += pl.Description.Height() + config.ProductLineGap
		}

		// 标签按行排列，超出文字列宽度时换行
		tagH := lineHeight(tagFace) + 2*config.ProductTagPaddingY
		tx := textX
		for j, tag := range p.Tags {
			label := utils.UpperCase(tag)
			w, _ := utils.MeasureText(label, tagFace)
			w += 2 * config.ProductTagPaddingX
			if tx > textX && tx+w > textX+textW {
				tx = textX
				cy += tagH + config.ProductTagGap
			}
			pl.Tags = append(pl.Tags, TagLayout{
				Entity: s.tagEntities[i][j],
				Text:   label,
				X:      tx,
				Y:      cy,
				W:      w,
				H:      tagH,
			})
			tx += w + config.ProductTagGap
		}
		if len(p.Tags) > 0 {
			cy += tagH
		} else {
			cy -= config.ProductLineGap
		}

		bottom := math.Max(cy, pl.LogoY+config.ProductLogoSize) + config.ProductPadding
		pl.H = bottom - top
		l.Products = append(l.Products, pl)

		y = bottom + config.ProductCardGap
	}

	if len(s.content.Products) > 0 {
		y += config.SectionSpacing - config.ProductCardGap
	}
	return y
}

// layoutFooter 页脚图标居中排列，放不下时换行
func (s *LayoutSystem) layoutFooter(l *PageLayout, y float64) float64 {
	n := len(s.footerEntities)
	l.FooterY = y
	if n == 0 {
		return y + config.FooterBottomSpacing
	}

	slot := config.FooterIconSlot
	gap := config.FooterIconGap
	perRow := int((l.ContentWidth + gap) / (slot + gap))
	if perRow < 1 {
		perRow = 1
	}
	if perRow > n {
		perRow = n
	}

	rows := (n + perRow - 1) / perRow
	for i, id := range s.footerEntities {
		row, col := i/perRow, i%perRow
		inRow := perRow
		if row == rows-1 && n%perRow != 0 {
			inRow = n % perRow
		}
		rowW := float64(inRow)*slot + float64(inRow-1)*gap
		link := s.content.FooterLinks[i]
		l.FooterIcons = append(l.FooterIcons, FooterIconLayout{
			Entity: id,
			Index:  i,
			Icon:   link.Icon,
			Title:  link.Title,
			URL:    link.URL,
			X:      l.ContentX + (l.ContentWidth-rowW)/2 + float64(col)*(slot+gap),
			Y:      y + float64(row)*(slot+gap),
			Size:   slot,
		})
	}

	return y + float64(rows)*slot + float64(rows-1)*gap + config.FooterBottomSpacing
}

// syncEntities 将布局结果写回实体
func (s *LayoutSystem) syncEntities() {
	l := s.layout
	for _, m := range l.Metrics {
		s.place(m.Entity, m.X, m.Y, m.W, m.H)
	}
	for _, p := range l.Products {
		s.place(p.Entity, p.X, p.Y, p.W, p.H)
		for _, tag := range p.Tags {
			s.place(tag.Entity, tag.X, tag.Y, tag.W, tag.H)
		}
	}
	for _, f := range l.FooterIcons {
		s.place(f.Entity, f.X, f.Y, f.Size, f.Size)
	}
}

// place 设置实体位置和命中区域
func (s *LayoutSystem) place(id ecs.EntityID, x, y, w, h float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X, pos.Y = x, y
	}
	if target, ok := ecs.GetComponent[*components.HoverTargetComponent](s.entityManager, id); ok {
		target.Width, target.Height = w, h
	}
}

// wrapBlock 换行并生成文本块
func wrapBlock(str string, face *text.GoTextFace, x, y, maxWidth float64) TextBlock {
	if str == "" {
		return TextBlock{Face: face, X: x, Y: y, LineHeight: lineHeight(face)}
	}
	return TextBlock{
		Lines:      utils.WrapText(str, face, maxWidth),
		Face:       face,
		X:          x,
		Y:          y,
		LineHeight: lineHeight(face),
	}
}

// lineHeight 根据字号计算行高
func lineHeight(face *text.GoTextFace) float64 {
	return face.Size * config.LineHeightRatio
}

// monogram 产品图标位置显示的首字母
func monogram(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return "?"
}
