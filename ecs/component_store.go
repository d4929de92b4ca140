package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// ComponentStore keeps every T of one component type packed in a dense slice.
// entityToIndex and indexToEntity are kept as mutual inverses so insert, remove
// and lookup are all O(1).
//
// Pointers returned by Get and All stay valid until the next Insert or Remove
// on the same store. Stores owned by a World are only reachable through
// StoreOf, which hands out a StoreView without Insert or Remove.
type ComponentStore[T any] struct {
	dense         []T
	indexToEntity []EntityId
	entityToIndex *intmap.Map[EntityId, int]
}

// NewComponentStore creates an empty store.
func NewComponentStore[T any]() *ComponentStore[T] {
	return &ComponentStore[T]{
		entityToIndex: intmap.New[EntityId, int](64),
	}
}

// Insert appends value for entity. An entity holds at most one T; inserting a
// second one fails with ErrAlreadyPresent and leaves the store untouched.
func (s *ComponentStore[T]) Insert(entity EntityId, value T) error {
	if _, ok := s.entityToIndex.Get(entity); ok {
		return fmt.Errorf("insert %s on entity %s: %w", s.Type(), entity, ErrAlreadyPresent)
	}

	s.entityToIndex.Put(entity, len(s.dense))
	s.indexToEntity = append(s.indexToEntity, entity)
	s.dense = append(s.dense, value)
	return nil
}

// InsertAny is Insert for callers holding the value as a T or *T in an any.
func (s *ComponentStore[T]) InsertAny(entity EntityId, value any) error {
	switch v := value.(type) {
	case T:
		return s.Insert(entity, v)
	case *T:
		if v == nil {
			return fmt.Errorf("insert %s on entity %s: nil value", s.Type(), entity)
		}
		return s.Insert(entity, *v)
	default:
		return fmt.Errorf("insert %s on entity %s: value has type %T", s.Type(), entity, value)
	}
}

// Remove deletes the component of entity by moving the last slot into its
// place. Order of the remaining components is not preserved.
func (s *ComponentStore[T]) Remove(entity EntityId) error {
	index, ok := s.entityToIndex.Get(entity)
	if !ok {
		return fmt.Errorf("remove %s from entity %s: %w", s.Type(), entity, ErrMissingComponent)
	}

	last := len(s.dense) - 1
	if index != last {
		moved := s.indexToEntity[last]
		s.dense[index] = s.dense[last]
		s.indexToEntity[index] = moved
		s.entityToIndex.Put(moved, index)
	}

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.indexToEntity = s.indexToEntity[:last]
	s.entityToIndex.Del(entity)
	return nil
}

// Get returns a pointer to the component of entity.
func (s *ComponentStore[T]) Get(entity EntityId) (*T, error) {
	index, ok := s.entityToIndex.Get(entity)
	if !ok {
		return nil, fmt.Errorf("get %s of entity %s: %w", s.Type(), entity, ErrMissingComponent)
	}
	return &s.dense[index], nil
}

// GetAny is Get returning the pointer as any.
func (s *ComponentStore[T]) GetAny(entity EntityId) (any, error) {
	ptr, err := s.Get(entity)
	if err != nil {
		return nil, err
	}
	return ptr, nil
}

func (s *ComponentStore[T]) Has(entity EntityId) bool {
	_, ok := s.entityToIndex.Get(entity)
	return ok
}

func (s *ComponentStore[T]) Len() int {
	return len(s.dense)
}

// Entities returns the owners of each slot, in slot order.
func (s *ComponentStore[T]) Entities() []EntityId {
	return slices.Clone(s.indexToEntity)
}

// All yields every entity with a pointer to its component, in slot order.
func (s *ComponentStore[T]) All() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := range s.dense {
			if !yield(s.indexToEntity[i], &s.dense[i]) {
				return
			}
		}
	}
}

func (s *ComponentStore[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}
