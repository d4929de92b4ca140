package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// eface is the runtime layout of an any: type word, then data word.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// View represents a query for entities with a specific combination of components.
// The type T should be a struct with pointer fields for each component type,
// and optionally an EntityId field that receives the entity's id.
// Named fields can be marked as optional using the `ecs:"optional"` struct tag.
type View[T any] struct {
	world       *World
	types       []ComponentType
	optional    []bool
	fieldOffset []uintptr
	idOffset    uintptr
	hasId       bool
	required    Signature
}

// NewView creates a new view for the given struct type. It panics if T is not
// a struct of component pointers or references an unregistered component type.
func NewView[T any](w *World) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		world:       w,
		types:       make([]ComponentType, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		ct, err := w.registry.Lookup(field.Type.Elem())
		if err != nil {
			panic(err.Error())
		}

		// Embedded fields are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag != "optional" {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}

		if !isOptional {
			v.required.Set(ct)
		}
		v.types = append(v.types, ct)
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Signature returns the component types every matching entity must have.
func (v *View[T]) Signature() Signature {
	return v.required
}

// Fill populates ptr with the components of id. It returns false if id is not
// live or lacks a required component. Missing optional components are set to nil.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	sig, err := v.world.entities.Signature(id)
	if err != nil || !sig.Contains(v.required) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), id, sig)
}

func (v *View[T]) populate(structPtr unsafe.Pointer, id EntityId, sig Signature) bool {
	if v.hasId {
		*(*EntityId)(unsafe.Add(structPtr, v.idOffset)) = id
	}

	for i, ct := range v.types {
		fieldPtr := unsafe.Add(structPtr, v.fieldOffset[i])

		if !sig.Has(ct) {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		component, err := v.world.components.GetAny(ct, id)
		if err != nil {
			return false
		}

		// the any holds a *C; copy its data word into the field
		*(*unsafe.Pointer)(fieldPtr) = (*eface)(unsafe.Pointer(&component)).data
	}
	return true
}

// Get returns a populated view struct for id, or nil if it does not match.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter yields every matching entity with its populated view struct, in the
// order entities were created.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)

		for id := range v.world.entities.Matching(v.required) {
			sig, _ := v.world.entities.Signature(id)
			if !v.populate(resultPtr, id, sig) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Create makes a new entity holding a copy of every non-nil component in data.
func (v *View[T]) Create(data T) (EntityId, error) {
	structPtr := unsafe.Pointer(&data)

	id, err := v.world.CreateEntity()
	if err != nil {
		return InvalidEntity, err
	}

	for i, ct := range v.types {
		componentPtr := *(*unsafe.Pointer)(unsafe.Add(structPtr, v.fieldOffset[i]))
		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Create")
			}
			continue
		}

		component := reflect.NewAt(v.world.registry.Type(ct), componentPtr).Interface()
		if err := v.world.AddComponentValue(id, component); err != nil {
			return id, err
		}
	}

	return id, nil
}
