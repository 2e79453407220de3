package ecs

// ParentComponent 记录实体的父实体
type ParentComponent struct {
	Parent EntityID
}

// ChildrenComponent 记录实体拥有的子实体（按添加顺序）
type ChildrenComponent struct {
	Children []EntityID
}

// SetParent 将 child 挂到 parent 下
// 如果 child 已有父实体，会先从原父实体的子列表中移除
func (em *EntityManager) SetParent(child, parent EntityID) {
	if !em.EntityExists(child) || !em.EntityExists(parent) || child == parent {
		return
	}

	em.detachFromParent(child)

	AddComponent(em, child, &ParentComponent{Parent: parent})

	children, ok := GetComponent[*ChildrenComponent](em, parent)
	if !ok {
		children = &ChildrenComponent{}
		AddComponent(em, parent, children)
	}
	children.Children = append(children.Children, child)
}

// GetParent 返回实体的父实体，没有父实体时返回 InvalidEntity
func (em *EntityManager) GetParent(child EntityID) EntityID {
	if parent, ok := GetComponent[*ParentComponent](em, child); ok {
		return parent.Parent
	}
	return InvalidEntity
}

// GetChildren 返回实体的直接子实体列表（副本）
func (em *EntityManager) GetChildren(parent EntityID) []EntityID {
	children, ok := GetComponent[*ChildrenComponent](em, parent)
	if !ok {
		return nil
	}
	result := make([]EntityID, len(children.Children))
	copy(result, children.Children)
	return result
}

// DestroyEntityRecursive 标记实体及其全部后代待删除
// 删除仍然是延迟的，在 RemoveMarkedEntities 时统一生效
func (em *EntityManager) DestroyEntityRecursive(id EntityID) {
	if !em.EntityExists(id) {
		return
	}
	for _, child := range em.GetChildren(id) {
		em.DestroyEntityRecursive(child)
	}
	em.DestroyEntity(id)
}

// detachFromParent 从父实体的子列表中移除 child
func (em *EntityManager) detachFromParent(child EntityID) {
	parentComp, ok := GetComponent[*ParentComponent](em, child)
	if !ok {
		return
	}

	if children, ok := GetComponent[*ChildrenComponent](em, parentComp.Parent); ok {
		for i, id := range children.Children {
			if id == child {
				children.Children = append(children.Children[:i], children.Children[i+1:]...)
				break
			}
		}
	}
	RemoveComponent[*ParentComponent](em, child)
}
