package ecs

import "errors"

var (
	// ErrMissingEntity is returned when operating on an id that is not live.
	ErrMissingEntity = errors.New("ecs: missing entity")
	// ErrMissingComponent is returned by get/remove on an entity lacking the component type.
	ErrMissingComponent = errors.New("ecs: missing component")
	// ErrAlreadyPresent is returned when inserting a component the entity already has.
	ErrAlreadyPresent = errors.New("ecs: component already present")
	// ErrCapacityExceeded is returned when an entity or component type limit is reached.
	ErrCapacityExceeded = errors.New("ecs: capacity exceeded")
	// ErrUnregisteredComponent is returned for component types missing from the registry.
	ErrUnregisteredComponent = errors.New("ecs: component type not registered")
	// ErrNegativeDelta is returned by UpdateAll when the frame delta is below zero.
	ErrNegativeDelta = errors.New("ecs: negative delta time")
	// ErrNilSystem is returned by Register for a nil system.
	ErrNilSystem = errors.New("ecs: nil system")
)
