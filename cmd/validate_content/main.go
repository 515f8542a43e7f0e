// Package main 校验页面内容与动画参数配置
//
// Usage:
//
//	go run ./cmd/validate_content [--content data/content.yaml] [--animation data/animation.yaml]
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/alexandria/pkg/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "validate_content",
		Short:         "校验 content.yaml 与 animation.yaml",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			contentPath, _ := cmd.Flags().GetString("content")
			animationPath, _ := cmd.Flags().GetString("animation")
			return validate(cmd.OutOrStdout(), contentPath, animationPath)
		},
	}
	cmd.Flags().String("content", "data/content.yaml", "页面内容配置文件")
	cmd.Flags().String("animation", "data/animation.yaml", "动画参数配置文件")
	return cmd
}

// validate 加载两份配置并输出摘要，链接缺失只警告
func validate(w io.Writer, contentPath, animationPath string) error {
	content, err := config.LoadContentConfigFile(contentPath)
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return err
	}
	fmt.Fprintf(w, "✅ 内容配置格式正确: %s\n", contentPath)
	fmt.Fprintf(w, "✅ 词组 %d 个, 指标 %d 个, 产品 %d 个, 页脚链接 %d 个\n",
		len(content.Phrases), len(content.Metrics), len(content.Products), len(content.FooterLinks))

	for _, warning := range contentWarnings(content) {
		fmt.Fprintf(w, "⚠️  %s\n", warning)
	}

	animation, err := config.LoadAnimationConfigFile(animationPath)
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return err
	}
	fmt.Fprintf(w, "✅ 动画配置格式正确: %s\n", animationPath)
	fmt.Fprintf(w, "   打字机: 输入 %.3fs / 删除 %.3fs / 停顿 %.2fs\n",
		animation.Typewriter.TypeInterval, animation.Typewriter.DeleteInterval, animation.Typewriter.PauseAfterWord)
	fmt.Fprintf(w, "   dt 范围: [%.3f, %.3f]\n", animation.Frame.MinDeltaTime, animation.Frame.MaxDeltaTime)
	return nil
}

// contentWarnings 不影响运行但通常是笔误的内容
func contentWarnings(content *config.ContentConfig) []string {
	var warnings []string
	for i, phrase := range content.Phrases {
		if strings.TrimSpace(phrase) == "" {
			warnings = append(warnings, fmt.Sprintf("第 %d 个词组为空白", i+1))
		}
	}
	for _, p := range content.Products {
		if p.URL == "" {
			warnings = append(warnings, fmt.Sprintf("产品 %s 没有链接，卡片不可点击", p.ID))
		}
	}
	for _, l := range content.FooterLinks {
		if l.URL == "" {
			warnings = append(warnings, fmt.Sprintf("页脚链接 %s 没有 URL", l.Title))
		}
	}
	return warnings
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
