package ecs

import "reflect"

// 泛型辅助函数
//
// EntityManager 内部以 reflect.Type 为键存储组件，直接使用需要调用方
// 手写 reflect.TypeOf 和类型断言。这组泛型包装把样板代码收敛到一处，
// 系统代码只写 ecs.GetComponent[*components.XxxComponent](em, id)。

// AddComponent 为实体添加组件
func AddComponent(em *EntityManager, id EntityID, component interface{}) {
	em.AddComponentRaw(id, component)
}

// GetComponent 获取实体的 T 类型组件
// T 必须是指针类型（组件约定以指针存储，系统直接修改组件字段）
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentRaw(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	em.RemoveComponentRaw(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有 T 组件的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	var zero T
	return em.GetEntitiesWith(reflect.TypeOf(zero))
}

// GetEntitiesWith2 查询同时拥有 T1 和 T2 组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var zero1 T1
	var zero2 T2
	return em.GetEntitiesWith(reflect.TypeOf(zero1), reflect.TypeOf(zero2))
}
