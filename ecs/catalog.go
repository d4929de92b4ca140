package ecs

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
)

// ComponentCatalog holds one ComponentStore per registered component type,
// created on first access. Systems read and write component values through it;
// attaching and detaching components goes through World so that signatures
// follow the stores.
type ComponentCatalog struct {
	registry *ComponentRegistry
	stores   []iComponentStorage
}

// NewComponentCatalog creates a catalog for the types in registry.
func NewComponentCatalog(registry *ComponentRegistry) *ComponentCatalog {
	return &ComponentCatalog{
		registry: registry,
	}
}

// Registry returns the component registry backing the catalog.
func (c *ComponentCatalog) Registry() *ComponentRegistry {
	return c.registry
}

func (c *ComponentCatalog) storeFor(ct ComponentType) (iComponentStorage, error) {
	if int(ct) < len(c.stores) && c.stores[ct] != nil {
		return c.stores[ct], nil
	}

	factory := c.registry.factory(ct)
	if factory == nil {
		return nil, fmt.Errorf("component type %d: %w", ct, ErrUnregisteredComponent)
	}
	for len(c.stores) <= int(ct) {
		c.stores = append(c.stores, nil)
	}
	c.stores[ct] = factory()
	return c.stores[ct], nil
}

// existing returns the store for ct without creating it.
func (c *ComponentCatalog) existing(ct ComponentType) iComponentStorage {
	if int(ct) >= len(c.stores) {
		return nil
	}
	return c.stores[ct]
}

// StoreView is the read side of a ComponentStore owned by a catalog. Component
// values can be modified through the returned pointers, but attaching and
// detaching components is only possible through World.
type StoreView[T any] struct {
	store *ComponentStore[T]
}

// Get returns a pointer to the component of entity.
func (v StoreView[T]) Get(entity EntityId) (*T, error) { return v.store.Get(entity) }

func (v StoreView[T]) Has(entity EntityId) bool { return v.store.Has(entity) }

func (v StoreView[T]) Len() int { return v.store.Len() }

// Entities returns the owners of each slot, in slot order.
func (v StoreView[T]) Entities() []EntityId { return v.store.Entities() }

// All yields every entity with a pointer to its component, in slot order.
func (v StoreView[T]) All() iter.Seq2[EntityId, *T] { return v.store.All() }

// StoreOf returns a view of the store for T, creating the store on first use.
func StoreOf[T any](c *ComponentCatalog) (StoreView[T], ComponentType, error) {
	store, ct, err := typedStore[T](c)
	if err != nil {
		return StoreView[T]{}, 0, err
	}
	return StoreView[T]{store: store}, ct, nil
}

func typedStore[T any](c *ComponentCatalog) (*ComponentStore[T], ComponentType, error) {
	ct, err := ComponentTypeOf[T](c.registry)
	if err != nil {
		return nil, 0, err
	}
	storage, err := c.storeFor(ct)
	if err != nil {
		return nil, 0, err
	}
	store, ok := storage.(*ComponentStore[T])
	if !ok {
		return nil, 0, fmt.Errorf("store for %s holds %s", reflect.TypeFor[T](), storage.Type())
	}
	return store, ct, nil
}

// GetComponent returns a pointer to the T attached to entity.
func GetComponent[T any](c *ComponentCatalog, entity EntityId) (*T, error) {
	store, _, err := StoreOf[T](c)
	if err != nil {
		return nil, err
	}
	return store.Get(entity)
}

// HasComponent reports whether entity has a T. Unregistered types report false.
func HasComponent[T any](c *ComponentCatalog, entity EntityId) bool {
	store, _, err := StoreOf[T](c)
	if err != nil {
		return false
	}
	return store.Has(entity)
}

// GetAny returns the component of type ct attached to entity as a pointer in an any.
func (c *ComponentCatalog) GetAny(ct ComponentType, entity EntityId) (any, error) {
	storage, err := c.storeFor(ct)
	if err != nil {
		return nil, err
	}
	return storage.GetAny(entity)
}

// Count returns how many entities hold a component of type ct.
func (c *ComponentCatalog) Count(ct ComponentType) int {
	if storage := c.existing(ct); storage != nil {
		return storage.Len()
	}
	return 0
}

func insertComponent[T any](c *ComponentCatalog, entity EntityId, value T) (ComponentType, error) {
	store, ct, err := typedStore[T](c)
	if err != nil {
		return 0, err
	}
	return ct, store.Insert(entity, value)
}

func (c *ComponentCatalog) remove(ct ComponentType, entity EntityId) error {
	storage := c.existing(ct)
	if storage == nil {
		return fmt.Errorf("remove %s from entity %s: %w", c.registry.Name(ct), entity, ErrMissingComponent)
	}
	return storage.Remove(entity)
}

// release removes entity from every store that holds it.
func (c *ComponentCatalog) release(entity EntityId) error {
	var errs []error
	for _, storage := range c.stores {
		if storage == nil || !storage.Has(entity) {
			continue
		}
		if err := storage.Remove(entity); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
