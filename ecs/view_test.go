package ecs_test

import (
	"testing"

	"github.com/plus3/hades/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movingView struct {
	ecs.EntityId
	*Position
	*Velocity
}

type namedView struct {
	*Position
	Name *Name `ecs:"optional"`
}

func TestViewIter(t *testing.T) {
	w := newTestWorld()
	a := mustCreate(t, w)
	b := mustCreate(t, w)
	c := mustCreate(t, w)
	require.NoError(t, ecs.AddComponent(w, a, Position{X: 1}))
	require.NoError(t, ecs.AddComponent(w, a, Velocity{DX: 1}))
	require.NoError(t, ecs.AddComponent(w, b, Position{X: 2}))
	require.NoError(t, ecs.AddComponent(w, c, Position{X: 3}))
	require.NoError(t, ecs.AddComponent(w, c, Velocity{DX: 3}))

	view := ecs.NewView[movingView](w)

	var ids []ecs.EntityId
	for id, item := range view.Iter() {
		ids = append(ids, id)
		assert.Equal(t, id, item.EntityId)
		assert.Equal(t, item.Position.X, item.Velocity.DX)
		item.Position.Y = 9
	}
	assert.Equal(t, []ecs.EntityId{a, c}, ids)

	pos, err := ecs.GetComponentOf[Position](w, c)
	require.NoError(t, err)
	assert.Equal(t, float32(9), pos.Y, "view fields point into the stores")
}

func TestViewOptional(t *testing.T) {
	w := newTestWorld()
	a := mustCreate(t, w)
	b := mustCreate(t, w)
	require.NoError(t, ecs.AddComponent(w, a, Position{}))
	require.NoError(t, ecs.AddComponent(w, a, Name{Value: "a"}))
	require.NoError(t, ecs.AddComponent(w, b, Position{}))

	view := ecs.NewView[namedView](w)

	item := view.Get(a)
	require.NotNil(t, item)
	require.NotNil(t, item.Name)
	assert.Equal(t, "a", item.Name.Value)

	item = view.Get(b)
	require.NotNil(t, item)
	assert.Nil(t, item.Name)

	assert.Nil(t, view.Get(99))
}

func TestViewCreate(t *testing.T) {
	w := newTestWorld()
	view := ecs.NewView[namedView](w)

	id, err := view.Create(namedView{Position: &Position{X: 4}})
	require.NoError(t, err)

	assert.True(t, ecs.HasComponentOf[Position](w, id))
	assert.False(t, ecs.HasComponentOf[Name](w, id))
	pos, err := ecs.GetComponentOf[Position](w, id)
	require.NoError(t, err)
	assert.Equal(t, float32(4), pos.X)
}

func TestViewPanicsOnBadShape(t *testing.T) {
	w := newTestWorld()

	assert.Panics(t, func() { ecs.NewView[int](w) })
	assert.Panics(t, func() { ecs.NewView[struct{ P Position }](w) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"sometimes"`
		}](w)
	})
	type unregistered struct{}
	assert.Panics(t, func() { ecs.NewView[struct{ *unregistered }](w) })
}

func TestQueryIterBeforeExecutePanics(t *testing.T) {
	w := newTestWorld()
	q := ecs.NewQuery[struct{ *Position }](w)

	assert.Panics(t, func() { q.Iter() })

	q.Execute()
	assert.NotPanics(t, func() { q.Iter() })
	assert.Equal(t, 0, q.Len())
}

func TestSingleton(t *testing.T) {
	w := newTestWorld()

	s := ecs.NewSingleton(w, Score(10))
	require.True(t, s.Exists())
	*s.Get() += 5

	again := ecs.NewSingleton[Score](w, Score(0))
	assert.Equal(t, Score(15), *again.Get(), "existing resources are not overwritten")

	var out *Score
	require.True(t, ecs.ReadSingleton(w, &out))
	assert.Equal(t, Score(15), *out)

	var missing *Tag
	assert.False(t, ecs.ReadSingleton(w, &missing))

	empty := &ecs.Singleton[Tag]{}
	assert.Nil(t, empty.Get())
}

type singletonSystem struct {
	Score ecs.Singleton[Score]
}

func (s *singletonSystem) Update(*ecs.UpdateFrame) error {
	*s.Score.Get() += 1
	return nil
}

func TestSingletonFieldInitialised(t *testing.T) {
	w := newTestWorld()
	ecs.NewSingleton(w, Score(1))
	ecs.RegisterSystem[singletonSystem](w.Systems())

	require.NoError(t, w.Update(0))
	require.NoError(t, w.Update(0))

	var score *Score
	require.True(t, ecs.ReadSingleton(w, &score))
	assert.Equal(t, Score(3), *score)
}
