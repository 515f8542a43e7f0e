package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/alexandria/pkg/embedded"
)

// TestLoadConfigFilePrefersDisk 测试同名覆盖文件读取磁盘而不是嵌入副本
func TestLoadConfigFilePrefersDisk(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/content.yaml":   &fstest.MapFile{Data: []byte("subtitle: embedded\nphrases: [\"Embedded\"]\n")},
		"data/animation.yaml": &fstest.MapFile{Data: []byte("typewriter:\n  pauseAfterWord: 2.0\n")},
	})
	defer embedded.Init(nil)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "content.yaml"), []byte("subtitle: disk\nphrases: [\"Edited\"]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "animation.yaml"), []byte("typewriter:\n  pauseAfterWord: 3.5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Chdir(dir)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"相对路径", "data/content.yaml", "disk"},
		{"带 ./ 前缀", "./data/content.yaml", "disk"},
		{"绝对路径", filepath.Join(dir, "data", "content.yaml"), "disk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadContentConfigFile(tt.path)
			if err != nil {
				t.Fatalf("LoadContentConfigFile failed: %v", err)
			}
			if cfg.Subtitle != tt.expected {
				t.Errorf("subtitle = %q, 期望 %q", cfg.Subtitle, tt.expected)
			}
		})
	}

	// 默认加载仍然使用嵌入副本
	cfg, err := LoadContentConfig(ContentConfigPath)
	if err != nil {
		t.Fatalf("LoadContentConfig failed: %v", err)
	}
	if cfg.Subtitle != "embedded" {
		t.Errorf("嵌入配置 subtitle = %q, 期望 embedded", cfg.Subtitle)
	}

	anim, err := LoadAnimationConfigFile("data/animation.yaml")
	if err != nil {
		t.Fatalf("LoadAnimationConfigFile failed: %v", err)
	}
	if anim.Typewriter.PauseAfterWord != 3.5 {
		t.Errorf("pauseAfterWord = %v, 期望 3.5", anim.Typewriter.PauseAfterWord)
	}
	if _, err := LoadAnimationConfigFile("data/missing.yaml"); err == nil {
		t.Error("磁盘上不存在的文件应返回错误")
	}
}
