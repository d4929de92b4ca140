package ecs

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// DestroyHook runs when an entity is destroyed, while it is still alive and
// before its components are removed. A hook must not destroy that entity itself.
type DestroyHook func(w *World, entity EntityId) error

// World is a single ECS instance: the entity registry, the component catalog
// and the system registry. Adding and removing components goes through World
// so that an entity's signature always matches the stores it appears in.
//
// A World is not safe for concurrent use.
type World struct {
	registry     *ComponentRegistry
	entities     *EntityRegistry
	components   *ComponentCatalog
	systems      *SystemRegistry
	resources    map[reflect.Type]any
	destroyHooks []DestroyHook
}

type worldOptions struct {
	maxEntities int
}

// Option configures a World.
type Option func(*worldOptions)

// WithMaxEntities caps the number of simultaneously live entities. Zero means no cap.
func WithMaxEntities(n int) Option {
	return func(o *worldOptions) {
		o.maxEntities = n
	}
}

// NewWorld creates a world for the component types in registry.
func NewWorld(registry *ComponentRegistry, opts ...Option) *World {
	var o worldOptions
	for _, opt := range opts {
		opt(&o)
	}

	w := &World{
		registry:   registry,
		entities:   NewEntityRegistry(o.maxEntities),
		components: NewComponentCatalog(registry),
		resources:  make(map[reflect.Type]any),
	}
	w.systems = newSystemRegistry(w)
	w.entities.release = w.release
	return w
}

func (w *World) Registry() *ComponentRegistry { return w.registry }

func (w *World) Entities() *EntityRegistry { return w.entities }

func (w *World) Components() *ComponentCatalog { return w.components }

func (w *World) Systems() *SystemRegistry { return w.systems }

// CreateEntity allocates a new entity with an empty signature.
func (w *World) CreateEntity() (EntityId, error) {
	return w.entities.Create()
}

// Alive reports whether entity is live.
func (w *World) Alive(entity EntityId) bool {
	return w.entities.Alive(entity)
}

// ActiveEntities returns the live entities in creation order.
func (w *World) ActiveEntities() []EntityId {
	return w.entities.Active()
}

// OnDestroy registers a hook run whenever an entity of w is destroyed.
func (w *World) OnDestroy(hook DestroyHook) {
	w.destroyHooks = append(w.destroyHooks, hook)
}

// DestroyEntity runs the destroy hooks, then removes every component attached
// to entity and releases its id. A later entity reusing the id starts with no
// components. Destroying through Entities().Destroy does the same.
func (w *World) DestroyEntity(entity EntityId) error {
	return w.entities.Destroy(entity)
}

func (w *World) release(entity EntityId) error {
	var errs []error
	for _, hook := range w.destroyHooks {
		if err := hook(w, entity); err != nil {
			errs = append(errs, err)
		}
	}
	if err := w.components.release(entity); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Signature returns the component signature of entity.
func (w *World) Signature(entity EntityId) (Signature, error) {
	return w.entities.Signature(entity)
}

// Query returns the live entities whose signature contains required, in creation order.
func (w *World) Query(required Signature) []EntityId {
	return slices.Collect(w.entities.Matching(required))
}

// AddComponent attaches value to entity and sets the matching signature bit.
func AddComponent[T any](w *World, entity EntityId, value T) error {
	sig, err := w.entities.Signature(entity)
	if err != nil {
		return fmt.Errorf("add %s: %w", reflect.TypeFor[T](), err)
	}

	ct, err := insertComponent(w.components, entity, value)
	if err != nil {
		return err
	}

	sig.Set(ct)
	return w.entities.setSignature(entity, sig)
}

// AddComponentValue attaches value, a T or *T of a registered type, to entity.
func (w *World) AddComponentValue(entity EntityId, value any) error {
	t := reflect.TypeOf(value)
	if t == nil {
		return fmt.Errorf("add component to entity %s: nil value", entity)
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	ct, err := w.registry.Lookup(t)
	if err != nil {
		return err
	}

	sig, err := w.entities.Signature(entity)
	if err != nil {
		return fmt.Errorf("add %s: %w", t, err)
	}
	storage, err := w.components.storeFor(ct)
	if err != nil {
		return err
	}
	if err := storage.InsertAny(entity, value); err != nil {
		return err
	}

	sig.Set(ct)
	return w.entities.setSignature(entity, sig)
}

// RemoveComponent detaches the T of entity and clears its signature bit.
func RemoveComponent[T any](w *World, entity EntityId) error {
	ct, err := ComponentTypeOf[T](w.registry)
	if err != nil {
		return err
	}
	return w.RemoveComponentType(entity, ct)
}

// RemoveComponentType is RemoveComponent for callers that only hold the ComponentType.
func (w *World) RemoveComponentType(entity EntityId, ct ComponentType) error {
	sig, err := w.entities.Signature(entity)
	if err != nil {
		return fmt.Errorf("remove %s: %w", w.registry.Name(ct), err)
	}
	if !sig.Has(ct) {
		return fmt.Errorf("remove %s from entity %s: %w", w.registry.Name(ct), entity, ErrMissingComponent)
	}

	if err := w.components.remove(ct, entity); err != nil {
		return err
	}

	sig.Unset(ct)
	return w.entities.setSignature(entity, sig)
}

// GetComponentOf returns a pointer to the T attached to the live entity.
func GetComponentOf[T any](w *World, entity EntityId) (*T, error) {
	if !w.entities.Alive(entity) {
		return nil, fmt.Errorf("get %s of entity %s: %w", reflect.TypeFor[T](), entity, ErrMissingEntity)
	}
	return GetComponent[T](w.components, entity)
}

// HasComponentOf reports whether the live entity has a T.
func HasComponentOf[T any](w *World, entity EntityId) bool {
	return w.entities.Alive(entity) && HasComponent[T](w.components, entity)
}

// Update runs every registered system once with the given delta time.
func (w *World) Update(dt float64) error {
	return w.systems.UpdateAll(dt)
}
