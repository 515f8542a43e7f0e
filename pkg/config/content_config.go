package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ContentConfigPath 默认页面内容配置（嵌入资源）
const ContentConfigPath = "data/content.yaml"

// MetricSlots 指标卡片的固定数量
// 悬停动画使用定长数组保存指标强度，超出的索引直接忽略
const MetricSlots = 4

// FooterIcon 页脚图标类型
type FooterIcon string

// 页脚图标
const (
	FooterIconTwitter     FooterIcon = "twitter"
	FooterIconGithub      FooterIcon = "github"
	FooterIconWhitepaper  FooterIcon = "whitepaper"
	FooterIconAudit       FooterIcon = "audit"
	FooterIconKongSwap    FooterIcon = "kongswap"
	FooterIconIcpSwap     FooterIcon = "icpswap"
	FooterIconDexScreener FooterIcon = "dexscreener"
	FooterIconIcpTokens   FooterIcon = "icptokens"
)

var knownFooterIcons = map[FooterIcon]bool{
	FooterIconTwitter:     true,
	FooterIconGithub:      true,
	FooterIconWhitepaper:  true,
	FooterIconAudit:       true,
	FooterIconKongSwap:    true,
	FooterIconIcpSwap:     true,
	FooterIconDexScreener: true,
	FooterIconIcpTokens:   true,
}

// ContentConfig 页面内容配置
//
// 包含打字机标题的词组列表、副标题、指标、产品列表和页脚链接。
// 这些都是只读的静态数据，在启动时加载一次。
//
// 配置文件位置: data/content.yaml
type ContentConfig struct {
	// Subtitle 标题下方的副标题
	Subtitle string `yaml:"subtitle"`

	// Phrases 打字机循环显示的词组（不能为空）
	Phrases []string `yaml:"phrases"`

	// Metrics 指标卡片（最多 MetricSlots 个）
	Metrics []MetricConfig `yaml:"metrics"`

	// Products 产品卡片，按顺序显示
	Products []ProductConfig `yaml:"products"`

	// FooterLinks 页脚图标链接
	FooterLinks []FooterLinkConfig `yaml:"footerLinks"`
}

// MetricConfig 指标卡片
type MetricConfig struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// ProductConfig 产品卡片
type ProductConfig struct {
	// ID 稳定标识符，悬停状态以此为键；为空时由名称生成
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Tagline     string   `yaml:"tagline"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Tags        []string `yaml:"tags"`
}

// FooterLinkConfig 页脚链接
type FooterLinkConfig struct {
	Title string     `yaml:"title"`
	URL   string     `yaml:"url"`
	Icon  FooterIcon `yaml:"icon"`
}

// LoadContentConfig 加载页面内容配置
//
// 参数:
//   - path: 配置文件路径（如 "data/content.yaml"），已嵌入时读取嵌入的副本
//
// 返回:
//   - *ContentConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadContentConfig(path string) (*ContentConfig, error) {
	data, err := readConfigData(path)
	if err != nil {
		return nil, err
	}
	return ParseContentConfig(data)
}

// LoadContentConfigFile 从磁盘加载页面内容配置，不查找嵌入资源
// 即使路径与嵌入文件同名（如 data/content.yaml）也读取磁盘上的文件
func LoadContentConfigFile(path string) (*ContentConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContentConfig(data)
}

// ParseContentConfig 从 YAML 数据解析页面内容配置
func ParseContentConfig(data []byte) (*ContentConfig, error) {
	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse content config: %w", err)
	}

	cfg.fillProductIDs()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content config: %w", err)
	}
	return &cfg, nil
}

// fillProductIDs 为未指定 ID 的产品生成 ID（小写名称，空格替换为连字符）
func (c *ContentConfig) fillProductIDs() {
	for i := range c.Products {
		if c.Products[i].ID == "" {
			c.Products[i].ID = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c.Products[i].Name)), " ", "-")
		}
	}
}

// Validate 验证配置有效性
//
// 检查：
//   - 词组列表不能为空
//   - 指标数量不超过 MetricSlots
//   - 产品 ID 非空且唯一
//   - 页脚图标类型已知
func (c *ContentConfig) Validate() error {
	if len(c.Phrases) == 0 {
		return fmt.Errorf("phrases must not be empty")
	}

	if len(c.Metrics) > MetricSlots {
		return fmt.Errorf("too many metrics: %d (max %d)", len(c.Metrics), MetricSlots)
	}

	seen := make(map[string]bool, len(c.Products))
	for i, p := range c.Products {
		if p.ID == "" {
			return fmt.Errorf("product %d has no id or name", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id: %s", p.ID)
		}
		seen[p.ID] = true
	}

	for i, l := range c.FooterLinks {
		if !knownFooterIcons[l.Icon] {
			return fmt.Errorf("footer link %d (%s): unknown icon %q", i, l.Title, l.Icon)
		}
	}

	return nil
}
