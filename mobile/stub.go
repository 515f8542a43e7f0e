//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建（go build ./...）时 mobile.go 与 embed.go 被排除，
// 这里提供同名的 Dummy，保证包在桌面端也能编译。
package mobile

// Dummy 是一个空导出函数
func Dummy() {}
