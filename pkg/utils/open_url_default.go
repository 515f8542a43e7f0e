//go:build !js

package utils

import "github.com/pkg/browser"

// OpenURL 使用系统默认浏览器打开链接
func OpenURL(url string) error {
	return browser.OpenURL(url)
}
