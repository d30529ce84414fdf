package ecs

import "reflect"

// 本文件提供基于泛型的组件查询辅助函数，
// 避免系统代码中到处出现 reflect.TypeOf + 类型断言的样板。

// GetComponent 获取实体的 T 类型组件
// T 必须是组件指针类型，如 *components.PositionComponent
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentByType(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponentOf 检查实体是否拥有 T 类型组件
func HasComponentOf[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有 T1 组件的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var z1 T1
	return em.GetEntitiesWith(reflect.TypeOf(z1))
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2))
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	var z3 T3
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2), reflect.TypeOf(z3))
}
