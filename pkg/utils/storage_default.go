//go:build !android

package utils

// PrepareStorage 在打开 gdata 之前准备存储目录
// 桌面端和浏览器由 gdata 自行处理（用户数据目录 / localStorage），这里无需操作
func PrepareStorage(dir string) error {
	return nil
}
