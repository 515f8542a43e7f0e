package game

import (
	"fmt"
	"log"

	"github.com/decker502/alexandria/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences 访客偏好设置
// 存储在本机（浏览器为 localStorage，桌面为应用数据目录），不随页面内容变化
type Preferences struct {
	// ReducedMotion 减少动画：不绘制扫描线，边框颜色和标签脉冲不再循环
	ReducedMotion bool `yaml:"reducedMotion"`

	// Fullscreen 桌面端启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() *Preferences {
	return &Preferences{
		ReducedMotion: false,
		Fullscreen:    false,
	}
}

// PreferencesManager 偏好管理器
// 负责偏好的加载、保存和内存管理
type PreferencesManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	prefs        *Preferences   // 当前偏好
}

// 存储路径常量
const (
	preferencesObject   = "preferences"
	preferencesProperty = "visitor"
)

// OpenStorage 打开 gdata 存储
// 失败时返回 nil 和错误，调用方以 nil 进入降级模式
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.PrepareStorage(appName); err != nil {
		return nil, err
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage for %s: %w", appName, err)
	}
	return m, nil
}

// NewPreferencesManager 创建偏好管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 加载失败不是致命错误，记录日志后使用默认偏好。
func NewPreferencesManager(gdataManager *gdata.Manager) *PreferencesManager {
	pm := &PreferencesManager{
		gdataManager: gdataManager,
		prefs:        DefaultPreferences(),
	}

	if err := pm.Load(); err != nil {
		log.Printf("[PreferencesManager] Warning: Failed to load preferences: %v (using defaults)", err)
	}

	return pm
}

// Persistent 偏好是否会被持久化
func (pm *PreferencesManager) Persistent() bool {
	return pm.gdataManager != nil
}

// Load 从 gdata 加载偏好
//
// gdataManager 为 nil 或尚未保存过时使用默认偏好
//
// 返回：
//   - error: 读取或反序列化失败时返回错误（此时已回退为默认偏好）
func (pm *PreferencesManager) Load() error {
	if pm.gdataManager == nil {
		pm.prefs = DefaultPreferences()
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(preferencesObject, preferencesProperty) {
		pm.prefs = DefaultPreferences()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		pm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	pm.prefs = loaded
	log.Printf("[PreferencesManager] Preferences loaded: reducedMotion=%v", loaded.ReducedMotion)
	return nil
}

// Save 保存偏好到 gdata
//
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (pm *PreferencesManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[PreferencesManager] Preferences saved")
	return nil
}

// Get 获取当前偏好
func (pm *PreferencesManager) Get() *Preferences {
	return pm.prefs
}

// SetReducedMotion 设置减少动画
// 注意：仅修改内存中的偏好，需调用 Save() 持久化
func (pm *PreferencesManager) SetReducedMotion(enabled bool) {
	pm.prefs.ReducedMotion = enabled
}

// ToggleReducedMotion 切换减少动画并保存，返回切换后的值
// 保存失败只记录日志，内存中的值仍然生效
func (pm *PreferencesManager) ToggleReducedMotion() bool {
	pm.prefs.ReducedMotion = !pm.prefs.ReducedMotion
	if err := pm.Save(); err != nil {
		log.Printf("[PreferencesManager] Warning: %v", err)
	}
	return pm.prefs.ReducedMotion
}

// SetFullscreen 设置全屏
// 注意：仅修改内存中的偏好，需调用 Save() 持久化
func (pm *PreferencesManager) SetFullscreen(enabled bool) {
	pm.prefs.Fullscreen = enabled
}
