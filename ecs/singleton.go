package ecs

import "reflect"

// Singleton provides access to a single value of type T that belongs to the
// World rather than to an entity. Use this for editor state, input capture
// flags or host configuration that systems need to read.
type Singleton[T any] struct {
	world *World
	ptr   *T
}

// NewSingleton returns an accessor for the T resource of w. If the resource does
// not exist yet it is created from initializer, or the zero value.
func NewSingleton[T any](w *World, initializer ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()
	if _, ok := w.resources[t]; !ok {
		value := new(T)
		if len(initializer) > 0 {
			*value = initializer[0]
		}
		w.resources[t] = value
	}

	s := &Singleton[T]{}
	s.Init(w)
	return s
}

// Init binds the Singleton to a world. Called by the SystemRegistry for
// Singleton fields of registered systems.
func (s *Singleton[T]) Init(w *World) {
	s.world = w
	s.ptr = nil
	s.updateCache()
}

// Get returns a pointer to the resource, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.updateCache()
	}
	return s.ptr
}

// Exists reports whether the resource has been added to the world.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.world == nil {
		return
	}
	if v, ok := s.world.resources[reflect.TypeFor[T]()]; ok {
		s.ptr = v.(*T)
	}
}

// ReadSingleton stores a pointer to the T resource of w in out and reports whether it exists.
func ReadSingleton[T any](w *World, out **T) bool {
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return false
	}
	*out = v.(*T)
	return true
}

// SingletonTypes returns the names of the resources held by w.
func (w *World) SingletonTypes() []string {
	names := make([]string, 0, len(w.resources))
	for t := range w.resources {
		names = append(names, t.String())
	}
	return names
}
