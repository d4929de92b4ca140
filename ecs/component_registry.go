package ecs

import (
	"fmt"
	"reflect"
)

// ComponentRegistry assigns each component type a stable ComponentType used
// for signature bits. Types are registered explicitly, before use, and receive
// ids in registration order. Each World owns the registry it was built from.
type ComponentRegistry struct {
	ids       map[reflect.Type]ComponentType
	types     []reflect.Type
	factories []func() iComponentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids: make(map[reflect.Type]ComponentType),
	}
}

// RegisterComponent registers T with the registry and returns its id.
// Registering the same type again returns the id it already has.
func RegisterComponent[T any](r *ComponentRegistry) (ComponentType, error) {
	t := reflect.TypeFor[T]()
	if ct, ok := r.ids[t]; ok {
		return ct, nil
	}
	if len(r.types) >= MaxComponentTypes {
		return 0, fmt.Errorf("register %s: %w: %d component types", t, ErrCapacityExceeded, MaxComponentTypes)
	}

	ct := ComponentType(len(r.types))
	r.ids[t] = ct
	r.types = append(r.types, t)
	r.factories = append(r.factories, func() iComponentStorage {
		return NewComponentStore[T]()
	})
	return ct, nil
}

// MustRegisterComponent is RegisterComponent for setup code, panicking on error.
func MustRegisterComponent[T any](r *ComponentRegistry) ComponentType {
	ct, err := RegisterComponent[T](r)
	if err != nil {
		panic(err)
	}
	return ct
}

// ComponentTypeOf returns the id registered for T.
func ComponentTypeOf[T any](r *ComponentRegistry) (ComponentType, error) {
	return r.Lookup(reflect.TypeFor[T]())
}

// Lookup returns the id registered for t.
func (r *ComponentRegistry) Lookup(t reflect.Type) (ComponentType, error) {
	ct, ok := r.ids[t]
	if !ok {
		return 0, fmt.Errorf("%s: %w", t, ErrUnregisteredComponent)
	}
	return ct, nil
}

// SignatureOf builds the signature containing every given type.
func (r *ComponentRegistry) SignatureOf(types ...reflect.Type) (Signature, error) {
	var sig Signature
	for _, t := range types {
		ct, err := r.Lookup(t)
		if err != nil {
			return Signature{}, err
		}
		sig.Set(ct)
	}
	return sig, nil
}

// Type returns the Go type registered under ct, or nil.
func (r *ComponentRegistry) Type(ct ComponentType) reflect.Type {
	if int(ct) >= len(r.types) {
		return nil
	}
	return r.types[ct]
}

// Name returns a display name for ct.
func (r *ComponentRegistry) Name(ct ComponentType) string {
	if t := r.Type(ct); t != nil {
		return t.String()
	}
	return fmt.Sprintf("component#%d", ct)
}

// Types returns the registered types indexed by ComponentType.
func (r *ComponentRegistry) Types() []reflect.Type {
	out := make([]reflect.Type, len(r.types))
	copy(out, r.types)
	return out
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.types)
}

func (r *ComponentRegistry) factory(ct ComponentType) func() iComponentStorage {
	if int(ct) >= len(r.factories) {
		return nil
	}
	return r.factories[ct]
}
