package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// RuneCount 返回字符串的字符数（按 Unicode 码点计）
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// RunePrefix 返回 s 的前 n 个字符（按码点切分，不会截断多字节字符）
// n <= 0 返回空串，n 超过字符数返回整个字符串
func RunePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// UpperCase 将标签文本转为大写（指标标签、产品标签）
func UpperCase(s string) string {
	return upperCaser.String(s)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符强制断行
		if measureTextWidth(word, font) > maxWidth {
			pieces := breakWord(word, font, maxWidth)
			lines = append(lines, pieces[:len(pieces)-1]...)
			currentLine = pieces[len(pieces)-1]
			continue
		}

		currentLine = word
	}

	// 添加最后一行
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// breakWord 将超宽单词按字符切分，至少返回一段
func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for _, r := range word {
		char := string(r)
		if current != "" && measureTextWidth(current+char, font) > maxWidth {
			pieces = append(pieces, current)
			current = char
			continue
		}
		current += char
	}
	return append(pieces, current)
}

// MeasureText 测量单行文本的宽度和高度
func MeasureText(textStr string, font *text.GoTextFace) (float64, float64) {
	if textStr == "" || font == nil {
		return 0, 0
	}
	return text.Measure(textStr, font, 0)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	width, _ := MeasureText(textStr, font)
	return width
}
