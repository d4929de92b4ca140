package ecs

import (
	"fmt"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// EntityRegistry allocates and recycles entity ids and keeps the signature of
// every live entity. It owns no component data.
type EntityRegistry struct {
	active      []EntityId
	free        []EntityId
	next        EntityId
	maxEntities int
	signatures  *intmap.Map[EntityId, Signature]

	// release is called by Destroy while id is still live, so the owning
	// World can run its destroy hooks and drop the entity's components.
	release func(id EntityId) error
}

// NewEntityRegistry creates a registry. A maxEntities of zero means the number
// of live entities is only bounded by the id space.
func NewEntityRegistry(maxEntities int) *EntityRegistry {
	return &EntityRegistry{
		active:      make([]EntityId, 0, 64),
		maxEntities: maxEntities,
		signatures:  intmap.New[EntityId, Signature](64),
	}
}

// Create returns a new live entity id. Destroyed ids are reused in the order
// they were destroyed before any fresh id is allocated.
func (r *EntityRegistry) Create() (EntityId, error) {
	if r.maxEntities > 0 && len(r.active) >= r.maxEntities {
		return InvalidEntity, fmt.Errorf("%w: %d live entities", ErrCapacityExceeded, r.maxEntities)
	}

	var id EntityId
	if len(r.free) > 0 {
		id = r.free[0]
		r.free[0] = InvalidEntity
		r.free = r.free[1:]
	} else {
		if r.next == InvalidEntity {
			return InvalidEntity, fmt.Errorf("%w: entity id space exhausted", ErrCapacityExceeded)
		}
		id = r.next
		r.next++
	}

	r.active = append(r.active, id)
	r.signatures.Put(id, Signature{})
	return id, nil
}

// Destroy releases id for reuse and discards its signature. For a registry
// owned by a World the destroy hooks run and the entity's components are
// removed first, so a recycled id never sees its predecessor's data or links.
func (r *EntityRegistry) Destroy(id EntityId) error {
	if !r.Alive(id) {
		return fmt.Errorf("destroy entity %s: %w", id, ErrMissingEntity)
	}

	var err error
	if r.release != nil {
		err = r.release(id)
	}

	if i := slices.Index(r.active, id); i >= 0 {
		r.active = slices.Delete(r.active, i, i+1)
	}
	r.signatures.Del(id)
	r.free = append(r.free, id)
	return err
}

// Alive reports whether id names a live entity.
func (r *EntityRegistry) Alive(id EntityId) bool {
	_, ok := r.signatures.Get(id)
	return ok
}

// Active returns a copy of the live entities in the order they were created or recycled.
func (r *EntityRegistry) Active() []EntityId {
	return slices.Clone(r.active)
}

// Len returns the number of live entities.
func (r *EntityRegistry) Len() int {
	return len(r.active)
}

// Recyclable returns the number of destroyed ids waiting to be reused.
func (r *EntityRegistry) Recyclable() int {
	return len(r.free)
}

// setSignature overwrites the signature of a live entity. Only World calls it,
// right after changing the matching store.
func (r *EntityRegistry) setSignature(id EntityId, sig Signature) error {
	if !r.Alive(id) {
		return fmt.Errorf("set signature of %s: %w", id, ErrMissingEntity)
	}
	r.signatures.Put(id, sig)
	return nil
}

// Signature returns the component signature of a live entity.
func (r *EntityRegistry) Signature(id EntityId) (Signature, error) {
	sig, ok := r.signatures.Get(id)
	if !ok {
		return Signature{}, fmt.Errorf("signature of %s: %w", id, ErrMissingEntity)
	}
	return sig, nil
}

// Matching yields the live entities whose signature contains required, in active order.
func (r *EntityRegistry) Matching(required Signature) iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range r.active {
			sig, _ := r.signatures.Get(id)
			if !sig.Contains(required) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}
