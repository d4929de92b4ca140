package ecs

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxComponentTypes is the number of distinct component types a registry can hold,
// and the width of a Signature.
const MaxComponentTypes = 256

// ComponentType is the stable index assigned to a component type at registration.
type ComponentType uint8

// Signature is a bitset recording which component types an entity has attached.
// Bit k is set iff the store for ComponentType k holds the entity.
type Signature [MaxComponentTypes / 64]uint64

// Set enables the bit for ct.
func (s *Signature) Set(ct ComponentType) {
	s[ct>>6] |= uint64(1) << (ct & 63)
}

// Unset clears the bit for ct.
func (s *Signature) Unset(ct ComponentType) {
	s[ct>>6] &^= uint64(1) << (ct & 63)
}

// Has reports whether the bit for ct is set.
func (s Signature) Has(ct ComponentType) bool {
	return s[ct>>6]&(uint64(1)<<(ct&63)) != 0
}

// Contains reports whether every bit of sub is also set in s.
func (s Signature) Contains(sub Signature) bool {
	for i := range s {
		if s[i]&sub[i] != sub[i] {
			return false
		}
	}
	return true
}

func (s Signature) IsEmpty() bool {
	return s == Signature{}
}

// Count returns the number of set bits.
func (s Signature) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Types returns the set component types in ascending order.
func (s Signature) Types() []ComponentType {
	types := make([]ComponentType, 0, s.Count())
	for i, w := range s {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			types = append(types, ComponentType(i*64+bit))
			w &= w - 1
		}
	}
	return types
}

func (s Signature) String() string {
	types := s.Types()
	parts := make([]string, len(types))
	for i, ct := range types {
		parts[i] = strconv.Itoa(int(ct))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
