package ecs

import "testing"

type posComponent struct {
	X, Y float64
}

type tagComponent struct {
	Name string
}

// TestCreateEntity 测试实体创建返回递增的唯一ID
func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	b := em.CreateEntity()

	if a == 0 {
		t.Error("entity ID should not be 0 (reserved as invalid)")
	}
	if a == b {
		t.Errorf("entity IDs should be unique, got %d twice", a)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

// TestAddGetComponent 测试组件的添加和泛型查询
func TestAddGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &posComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*posComponent](em, id)
	if !ok {
		t.Fatal("GetComponent returned false for existing component")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("got (%v, %v), want (3, 4)", pos.X, pos.Y)
	}

	// 未添加的组件类型查询失败
	if _, ok := GetComponent[*tagComponent](em, id); ok {
		t.Error("GetComponent returned true for missing component")
	}
}

// TestGetComponent_Mutation 测试查询返回的组件指针可直接修改
func TestGetComponent_Mutation(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &posComponent{X: 1})

	pos, _ := GetComponent[*posComponent](em, id)
	pos.X = 42

	again, _ := GetComponent[*posComponent](em, id)
	if again.X != 42 {
		t.Errorf("mutation not visible: got %v, want 42", again.X)
	}
}

// TestRemoveComponent 测试组件移除
func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &posComponent{})
	AddComponent(em, id, &tagComponent{Name: "player"})

	RemoveComponent[*posComponent](em, id)

	if _, ok := GetComponent[*posComponent](em, id); ok {
		t.Error("component still present after removal")
	}
	// 其他组件不受影响
	if _, ok := GetComponent[*tagComponent](em, id); !ok {
		t.Error("unrelated component was removed")
	}
}

// TestDestroyEntity_Deferred 测试实体删除延迟到 RemoveMarkedEntities
func TestDestroyEntity_Deferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &posComponent{})

	em.DestroyEntity(id)

	// 标记后、清理前仍可见
	if _, ok := GetComponent[*posComponent](em, id); !ok {
		t.Error("entity should remain visible until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()

	if _, ok := GetComponent[*posComponent](em, id); ok {
		t.Error("entity still present after RemoveMarkedEntities")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, want 0", em.EntityCount())
	}
}

// TestGetEntitiesWith 测试组件组合查询
func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	AddComponent(em, both, &posComponent{})
	AddComponent(em, both, &tagComponent{})

	posOnly := em.CreateEntity()
	AddComponent(em, posOnly, &posComponent{})

	em.CreateEntity() // 空实体

	if got := len(GetEntitiesWith1[*posComponent](em)); got != 2 {
		t.Errorf("GetEntitiesWith1[pos] = %d entities, want 2", got)
	}

	withBoth := GetEntitiesWith2[*posComponent, *tagComponent](em)
	if len(withBoth) != 1 || withBoth[0] != both {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", withBoth, both)
	}
}
