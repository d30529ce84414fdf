package ecs

import "testing"

type testHealthComponent struct {
	Current, Max int
}

// TestGetComponentGeneric 测试泛型组件获取
func TestGetComponentGeneric(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testHealthComponent{Current: 3, Max: 5})

	health, ok := GetComponent[*testHealthComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find the component")
	}
	if health.Current != 3 || health.Max != 5 {
		t.Errorf("Component data mismatch: got (%d, %d), want (3, 5)", health.Current, health.Max)
	}

	// 未添加的组件类型返回 false
	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("GetComponent should not find an absent component")
	}
}

// TestHasComponentOf 测试泛型组件存在性检查
func TestHasComponentOf(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testHealthComponent{})

	if !HasComponentOf[*testHealthComponent](em, id) {
		t.Error("HasComponentOf should return true for present component")
	}
	if HasComponentOf[*testVelocityComponent](em, id) {
		t.Error("HasComponentOf should return false for absent component")
	}
}

// TestGetEntitiesWithGenerics 测试泛型多组件查询
func TestGetEntitiesWithGenerics(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})
	em.AddComponent(id1, &testHealthComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id2, &testVelocityComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testPositionComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 3 {
		t.Errorf("GetEntitiesWith1: got %d entities, want 3", len(got))
	}
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 2 {
		t.Errorf("GetEntitiesWith2: got %d entities, want 2", len(got))
	}

	got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testHealthComponent](em)
	if len(got) != 1 {
		t.Fatalf("GetEntitiesWith3: got %d entities, want 1", len(got))
	}
	if got[0] != id1 {
		t.Errorf("GetEntitiesWith3: got entity %d, want %d", got[0], id1)
	}
}
