package ecs

import "reflect"

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 页面实体存储
//
// 页面中每个可交互元素（产品卡片、指标卡片、页脚图标、标签）是一个实体，
// 全部在布局系统构造时一次性创建，之后只修改组件数据，不会删除。
// 因此这里不提供删除实体和移除组件的操作，查询结果始终按创建顺序返回。
//
// 只在渲染循环中单线程访问，不需要加锁。
type EntityManager struct {
	// order 实体创建顺序，决定查询结果的顺序（也是绘制和命中检测的顺序）
	order []EntityID
	// components EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
}

// NewEntityManager 创建空的实体存储
func NewEntityManager() *EntityManager {
	return &EntityManager{
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体，ID 从 1 开始连续递增
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(len(em.order) + 1)
	em.order = append(em.order, id)
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// AddComponent 为实体设置组件，同类型组件会被替换
// 实体不存在时返回 false
func (em *EntityManager) AddComponent(id EntityID, component any) bool {
	compMap, ok := em.components[id]
	if !ok {
		return false
	}
	compMap[reflect.TypeOf(component)] = component
	return true
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.components[id][componentType]
	return comp, ok
}

// EntityCount 返回实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// GetEntitiesWith 返回同时拥有所有指定组件类型的实体，按创建顺序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0, len(em.order))
	for _, id := range em.order {
		if em.hasAll(id, componentTypes) {
			result = append(result, id)
		}
	}
	return result
}

func (em *EntityManager) hasAll(id EntityID, componentTypes []reflect.Type) bool {
	compMap := em.components[id]
	for _, ct := range componentTypes {
		if _, found := compMap[ct]; !found {
			return false
		}
	}
	return true
}
