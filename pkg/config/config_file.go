package config

import (
	"fmt"
	"os"

	"github.com/decker502/alexandria/pkg/embedded"
)

// readConfigData 读取配置文件内容
// 优先从嵌入资源读取（路径以 "data/" 开头且已嵌入），否则从磁盘读取
func readConfigData(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config %s: %w", path, err)
		}
		return data, nil
	}

	return readConfigFile(path)
}

// readConfigFile 只从磁盘读取，用于命令行指定的覆盖文件
func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return data, nil
}
