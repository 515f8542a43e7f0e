package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AnimationConfigPath 默认动画参数配置（嵌入资源）
const AnimationConfigPath = "data/animation.yaml"

// AnimationConfig 动画参数配置
//
// 所有时间单位为秒，速度单位为"每秒"。
//
// 配置文件位置: data/animation.yaml
type AnimationConfig struct {
	Typewriter TypewriterConfig `yaml:"typewriter"`
	Hover      HoverConfig      `yaml:"hover"`
	Frame      FrameConfig      `yaml:"frame"`
}

// TypewriterConfig 打字机效果参数
type TypewriterConfig struct {
	// TypeInterval 输入一个字符的间隔（默认 0.1）
	TypeInterval float64 `yaml:"typeInterval"`

	// DeleteInterval 删除一个字符的间隔（默认 0.05）
	DeleteInterval float64 `yaml:"deleteInterval"`

	// PauseAfterWord 整个词输入完成后、开始删除前的停顿（默认 2.0）
	PauseAfterWord float64 `yaml:"pauseAfterWord"`

	// CursorBlinkRate 光标每秒切换次数（默认 2.0，即 0.5 秒切换一次）
	CursorBlinkRate float64 `yaml:"cursorBlinkRate"`
}

// HoverConfig 悬停效果参数
type HoverConfig struct {
	// ProductSpeed 产品卡片发光逼近速度（默认 8.0）
	ProductSpeed float64 `yaml:"productSpeed"`

	// MetricSpeed 指标卡片发光逼近速度（默认 10.0）
	MetricSpeed float64 `yaml:"metricSpeed"`

	// FooterSpeed 页脚图标发光逼近速度（默认 10.0）
	FooterSpeed float64 `yaml:"footerSpeed"`

	// ScanlineSpeed 扫描线每秒移动的比例（默认 0.8）
	ScanlineSpeed float64 `yaml:"scanlineSpeed"`

	// ScanlineStart 扫描线起点/复位位置（默认 -0.3，在卡片上方留出缓冲）
	ScanlineStart float64 `yaml:"scanlineStart"`

	// ScanlineEnd 超过该位置后回到起点（默认 1.3）
	ScanlineEnd float64 `yaml:"scanlineEnd"`
}

// FrameConfig 帧驱动参数
type FrameConfig struct {
	// MinDeltaTime dt 下限（默认 0.001）
	MinDeltaTime float64 `yaml:"minDeltaTime"`

	// MaxDeltaTime dt 上限（默认 0.1），避免后台标签页恢复时动画跳变
	MaxDeltaTime float64 `yaml:"maxDeltaTime"`
}

// DefaultAnimationConfig 返回默认动画参数
func DefaultAnimationConfig() *AnimationConfig {
	return &AnimationConfig{
		Typewriter: TypewriterConfig{
			TypeInterval:    0.1,
			DeleteInterval:  0.05,
			PauseAfterWord:  2.0,
			CursorBlinkRate: 2.0,
		},
		Hover: HoverConfig{
			ProductSpeed:  8.0,
			MetricSpeed:   10.0,
			FooterSpeed:   10.0,
			ScanlineSpeed: 0.8,
			ScanlineStart: -0.3,
			ScanlineEnd:   1.3,
		},
		Frame: FrameConfig{
			MinDeltaTime: 0.001,
			MaxDeltaTime: 0.1,
		},
	}
}

// LoadAnimationConfig 加载动画参数配置
// 文件中缺省的字段保留默认值
func LoadAnimationConfig(path string) (*AnimationConfig, error) {
	data, err := readConfigData(path)
	if err != nil {
		return nil, err
	}
	return ParseAnimationConfig(data)
}

// LoadAnimationConfigFile 从磁盘加载动画参数配置，不查找嵌入资源
func LoadAnimationConfigFile(path string) (*AnimationConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseAnimationConfig(data)
}

// ParseAnimationConfig 从 YAML 数据解析动画参数，缺省字段使用默认值
func ParseAnimationConfig(data []byte) (*AnimationConfig, error) {
	cfg := DefaultAnimationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse animation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid animation config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 除了正值检查外，还要求 speed * MaxDeltaTime <= 1：
// 指数逼近在单帧内不会越过目标值。
func (c *AnimationConfig) Validate() error {
	tw := c.Typewriter
	if tw.TypeInterval <= 0 || tw.DeleteInterval <= 0 {
		return fmt.Errorf("typewriter intervals must be positive: type=%.3f delete=%.3f", tw.TypeInterval, tw.DeleteInterval)
	}
	if tw.PauseAfterWord < 0 {
		return fmt.Errorf("pauseAfterWord must not be negative: %.3f", tw.PauseAfterWord)
	}
	if tw.CursorBlinkRate <= 0 {
		return fmt.Errorf("cursorBlinkRate must be positive: %.3f", tw.CursorBlinkRate)
	}

	f := c.Frame
	if f.MinDeltaTime <= 0 || f.MinDeltaTime > f.MaxDeltaTime {
		return fmt.Errorf("frame delta range invalid: min(%.4f) max(%.4f)", f.MinDeltaTime, f.MaxDeltaTime)
	}

	h := c.Hover
	if h.ScanlineStart >= h.ScanlineEnd {
		return fmt.Errorf("scanline range invalid: start(%.2f) >= end(%.2f)", h.ScanlineStart, h.ScanlineEnd)
	}
	if h.ScanlineSpeed <= 0 {
		return fmt.Errorf("scanlineSpeed must be positive: %.3f", h.ScanlineSpeed)
	}
	for name, speed := range map[string]float64{
		"productSpeed": h.ProductSpeed,
		"metricSpeed":  h.MetricSpeed,
		"footerSpeed":  h.FooterSpeed,
	} {
		if speed <= 0 {
			return fmt.Errorf("%s must be positive: %.3f", name, speed)
		}
		if speed*f.MaxDeltaTime > 1 {
			return fmt.Errorf("%s too high for maxDeltaTime: %.2f * %.3f > 1", name, speed, f.MaxDeltaTime)
		}
	}

	return nil
}
