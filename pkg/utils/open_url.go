package utils

import "errors"

// errNoWindow 浏览器环境中找不到 window 对象
var errNoWindow = errors.New("window object not available")
