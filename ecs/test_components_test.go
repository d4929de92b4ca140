package ecs_test

import (
	"reflect"

	"github.com/plus3/hades/ecs"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Score int32

type Tag string

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.MustRegisterComponent[Position](registry)
	ecs.MustRegisterComponent[Velocity](registry)
	ecs.MustRegisterComponent[Name](registry)
	ecs.MustRegisterComponent[Health](registry)
	ecs.MustRegisterComponent[Score](registry)
	ecs.MustRegisterComponent[Tag](registry)
	return registry
}

func newTestWorld() *ecs.World {
	return ecs.NewWorld(newTestRegistry())
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
