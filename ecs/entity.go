package ecs

import (
	"math"
	"strconv"
)

// EntityId is an opaque handle for a live entity. Ids are reused after the
// entity they named has been destroyed.
type EntityId uint32

// InvalidEntity is never returned by allocation and denotes "no entity".
const InvalidEntity EntityId = math.MaxUint32

// Valid reports whether the id is something other than InvalidEntity.
func (e EntityId) Valid() bool {
	return e != InvalidEntity
}

func (e EntityId) String() string {
	if e == InvalidEntity {
		return "invalid"
	}
	return strconv.FormatUint(uint64(e), 10)
}
