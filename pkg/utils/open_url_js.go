//go:build js

package utils

import "syscall/js"

// OpenURL 在新标签页中打开链接
func OpenURL(url string) error {
	window := js.Global().Get("window")
	if !window.Truthy() {
		return errNoWindow
	}
	window.Call("open", url, "_blank")
	return nil
}
