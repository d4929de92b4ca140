package ecs

import "reflect"

// iComponentStorage is the type-erased view of a ComponentStore used by the
// catalog and World for operations that do not know T.
type iComponentStorage interface {
	Type() reflect.Type
	Has(entity EntityId) bool
	GetAny(entity EntityId) (any, error)
	Remove(entity EntityId) error
	InsertAny(entity EntityId, value any) error
	Entities() []EntityId
	Len() int
}
