//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// PrepareStorage 确保 Android 应用私有目录下的存储子目录存在并可写
// gdata 在 Android 上使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录
func PrepareStorage(dir string) error {
	pkg, err := androidPackageName()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	target := filepath.Join("/data/data", pkg, dir)
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", target, err)
	}

	probe := filepath.Join(target, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", target, err)
	}
	return os.Remove(probe)
}

// androidPackageName 从 /proc/self/cmdline 读取应用包名
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := string(bytes.TrimRight(bytes.Split(data, []byte{0})[0], "\n"))
	if name == "" {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}
	return name, nil
}
