package ecs_test

import (
	"testing"

	"github.com/plus3/hades/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSignatureBits(t *testing.T) {
	var s ecs.Signature
	assert.True(t, s.IsEmpty())

	for _, ct := range []ecs.ComponentType{0, 63, 64, 255} {
		s.Set(ct)
		assert.True(t, s.Has(ct))
	}
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, []ecs.ComponentType{0, 63, 64, 255}, s.Types())
	assert.Equal(t, "{0,63,64,255}", s.String())

	s.Unset(63)
	assert.False(t, s.Has(63))
	assert.Equal(t, 3, s.Count())
}

func TestSignatureContains(t *testing.T) {
	var full, sub, other ecs.Signature
	full.Set(1)
	full.Set(130)
	sub.Set(130)
	other.Set(2)

	assert.True(t, full.Contains(sub))
	assert.True(t, full.Contains(ecs.Signature{}))
	assert.False(t, sub.Contains(full))
	assert.False(t, full.Contains(other))
}
