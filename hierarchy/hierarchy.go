// Package hierarchy maintains TransformHierarchy links between entities and
// walks the resulting trees.
package hierarchy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
)

// MaxDepth bounds how deep Walk descends and how far ancestor checks climb.
const MaxDepth = 1024

var (
	// ErrCycle is returned by Attach when the link would make an entity its own ancestor.
	ErrCycle = errors.New("hierarchy: link would create a cycle")
	// ErrMalformed is returned by Walk when an entity is reached twice.
	ErrMalformed = errors.New("hierarchy: entity reached more than once")
	// ErrTooDeep is returned when a tree is deeper than MaxDepth.
	ErrTooDeep = errors.New("hierarchy: maximum depth exceeded")
)

// VisitFunc is called for every visited entity with its depth below the root.
// Returning false stops the walk. It must not change hierarchy links.
type VisitFunc func(entity ecs.EntityId, depth int) bool

func ensure(w *ecs.World, entity ecs.EntityId) error {
	if ecs.HasComponentOf[components.TransformHierarchy](w, entity) {
		return nil
	}
	return ecs.AddComponent(w, entity, components.NewTransformHierarchy())
}

func get(w *ecs.World, entity ecs.EntityId) (*components.TransformHierarchy, error) {
	return ecs.GetComponentOf[components.TransformHierarchy](w, entity)
}

// IsAncestor reports whether ancestor appears on the parent chain of entity.
func IsAncestor(w *ecs.World, ancestor, entity ecs.EntityId) (bool, error) {
	current := entity
	for depth := 0; depth <= MaxDepth; depth++ {
		node, err := get(w, current)
		if errors.Is(err, ecs.ErrMissingComponent) || errors.Is(err, ecs.ErrMissingEntity) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if !node.HasParent() {
			return false, nil
		}
		if node.Parent == ancestor {
			return true, nil
		}
		current = node.Parent
	}
	return false, fmt.Errorf("ancestors of %s: %w", entity, ErrTooDeep)
}

// Attach makes child a child of parent, detaching it from any previous parent.
// Both entities get a TransformHierarchy if they lack one. Attaching a child
// to its current parent changes nothing.
func Attach(w *ecs.World, parent, child ecs.EntityId) error {
	if !w.Alive(parent) {
		return fmt.Errorf("attach to parent %s: %w", parent, ecs.ErrMissingEntity)
	}
	if !w.Alive(child) {
		return fmt.Errorf("attach child %s: %w", child, ecs.ErrMissingEntity)
	}
	if parent == child {
		return fmt.Errorf("attach %s to itself: %w", child, ErrCycle)
	}

	cyclic, err := IsAncestor(w, child, parent)
	if err != nil {
		return err
	}
	if cyclic {
		return fmt.Errorf("attach %s under its descendant %s: %w", child, parent, ErrCycle)
	}

	// add both components before taking pointers; inserts may move the store
	if err := ensure(w, parent); err != nil {
		return err
	}
	if err := ensure(w, child); err != nil {
		return err
	}

	childNode, err := get(w, child)
	if err != nil {
		return err
	}
	parentNode, err := get(w, parent)
	if err != nil {
		return err
	}
	// already linked; keep the child's position among its siblings
	if childNode.HasParent() && childNode.Parent == parent && slices.Contains(parentNode.Children, child) {
		return nil
	}

	if err := Detach(w, child); err != nil {
		return err
	}

	childNode.SetParent(parent)
	if !slices.Contains(parentNode.Children, child) {
		parentNode.AddChild(child)
	}
	return nil
}

// Detach removes child from its parent's children and clears its parent link.
// Detaching an entity without a parent is a no-op.
func Detach(w *ecs.World, child ecs.EntityId) error {
	childNode, err := get(w, child)
	if err != nil {
		return err
	}
	if !childNode.HasParent() {
		return nil
	}

	parent := childNode.Parent
	childNode.ClearParent()

	if parentNode, err := get(w, parent); err == nil {
		parentNode.RemoveChild(child)
	}
	return nil
}

// Roots returns the live entities that carry a TransformHierarchy without a
// parent, in active order.
func Roots(w *ecs.World) ([]ecs.EntityId, error) {
	ct, err := ecs.ComponentTypeOf[components.TransformHierarchy](w.Registry())
	if err != nil {
		return nil, err
	}
	var required ecs.Signature
	required.Set(ct)

	var roots []ecs.EntityId
	for _, id := range w.Query(required) {
		node, err := get(w, id)
		if err != nil {
			return nil, err
		}
		if !node.HasParent() {
			roots = append(roots, id)
		}
	}
	return roots, nil
}

// Walk visits every tree depth-first, pre-order, starting at each root in
// active order and following children in slice order. Children that are no
// longer alive are skipped. An entity reached twice yields ErrMalformed.
func Walk(w *ecs.World, fn VisitFunc) error {
	roots, err := Roots(w)
	if err != nil {
		return err
	}

	visited := make(map[ecs.EntityId]bool)
	for _, root := range roots {
		more, err := walk(w, root, 0, visited, fn)
		if err != nil || !more {
			return err
		}
	}
	return nil
}

// WalkFrom visits the tree below root, root included.
func WalkFrom(w *ecs.World, root ecs.EntityId, fn VisitFunc) error {
	if !w.Alive(root) {
		return fmt.Errorf("walk from %s: %w", root, ecs.ErrMissingEntity)
	}
	_, err := walk(w, root, 0, make(map[ecs.EntityId]bool), fn)
	return err
}

func walk(w *ecs.World, entity ecs.EntityId, depth int, visited map[ecs.EntityId]bool, fn VisitFunc) (bool, error) {
	if depth > MaxDepth {
		return false, fmt.Errorf("walk at %s: %w", entity, ErrTooDeep)
	}
	if visited[entity] {
		return false, fmt.Errorf("walk at %s: %w", entity, ErrMalformed)
	}
	visited[entity] = true

	if !fn(entity, depth) {
		return false, nil
	}

	node, err := get(w, entity)
	if err != nil {
		if errors.Is(err, ecs.ErrMissingComponent) {
			return true, nil
		}
		return false, err
	}

	children := slices.Clone(node.Children)
	for _, child := range children {
		if !w.Alive(child) {
			continue
		}
		more, err := walk(w, child, depth+1, visited, fn)
		if err != nil || !more {
			return more, err
		}
	}
	return true, nil
}

// Install registers a destroy hook on w that unlinks a destroyed entity from
// its parent and clears the parent link of its children.
func Install(w *ecs.World) {
	w.OnDestroy(func(w *ecs.World, entity ecs.EntityId) error {
		node, err := get(w, entity)
		if err != nil {
			if errors.Is(err, ecs.ErrMissingComponent) {
				return nil
			}
			return err
		}
		children := slices.Clone(node.Children)

		if err := Detach(w, entity); err != nil {
			return err
		}
		for _, child := range children {
			childNode, err := get(w, child)
			if err != nil {
				continue
			}
			if childNode.Parent == entity {
				childNode.ClearParent()
			}
		}
		return nil
	})
}
