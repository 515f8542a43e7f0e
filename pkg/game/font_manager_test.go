package game

import "testing"

// TestFontManagerFaceCache 测试字体缓存
func TestFontManagerFaceCache(t *testing.T) {
	fm, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager failed: %v", err)
	}

	tests := []struct {
		name  string
		style FontStyle
		size  float64
	}{
		{"常规字体", FontRegular, 14},
		{"粗体标题", FontBold, 52},
		{"等宽标签", FontMono, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face := fm.Face(tt.style, tt.size)
			if face == nil {
				t.Fatal("Face 不应返回 nil")
			}
			if face.Size != tt.size {
				t.Errorf("Size = %f, 期望 %f", face.Size, tt.size)
			}
			if again := fm.Face(tt.style, tt.size); again != face {
				t.Error("相同样式和字号应返回缓存的字体")
			}
		})
	}

	if fm.CachedFaces() != len(tests) {
		t.Errorf("CachedFaces = %d, 期望 %d", fm.CachedFaces(), len(tests))
	}
}

// TestFontManagerUnknownStyle 测试未知样式回退为常规字体
func TestFontManagerUnknownStyle(t *testing.T) {
	fm, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager failed: %v", err)
	}

	fallback := fm.Face(FontStyle(42), 12)
	regular := fm.Face(FontRegular, 12)
	if fallback != regular {
		t.Error("未知样式应回退到常规字体并共享缓存")
	}
}
