package ecs

import (
	"errors"
	"fmt"
)

// Commands buffers structural changes requested by systems during a frame.
// They are applied by Flush after every system has run, so systems never see
// the active list or a store change underneath them while iterating.
type Commands struct {
	creates  []createCommand
	destroys []EntityId
	adds     []entityCommand
	removes  []entityCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type createCommand struct {
	init func(w *World, entity EntityId) error
}

type entityCommand struct {
	entity EntityId
	apply  func(w *World) error
}

// Defer queues a function to run after all other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Create queues creation of an entity. init, if not nil, runs right after the
// entity is created and typically attaches its components.
func (c *Commands) Create(init func(w *World, entity EntityId) error) {
	c.creates = append(c.creates, createCommand{init: init})
}

// Destroy queues destruction of entity.
func (c *Commands) Destroy(entity EntityId) {
	c.destroys = append(c.destroys, entity)
}

// QueueAdd queues attaching value to entity.
func QueueAdd[T any](c *Commands, entity EntityId, value T) {
	c.adds = append(c.adds, entityCommand{
		entity: entity,
		apply: func(w *World) error {
			return AddComponent(w, entity, value)
		},
	})
}

// QueueRemove queues detaching the T of entity.
func QueueRemove[T any](c *Commands, entity EntityId) {
	c.removes = append(c.removes, entityCommand{
		entity: entity,
		apply: func(w *World) error {
			return RemoveComponent[T](w, entity)
		},
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.creates) + len(c.destroys) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the queued commands to w in a fixed order: destroys, removes,
// adds, creates, then deferred functions. Removes and adds that target an
// entity destroyed by this flush are dropped. The buffer is reset afterwards.
func (c *Commands) Flush(w *World) error {
	var errs []error
	deletedEntities := make(map[EntityId]bool)

	for _, entity := range c.destroys {
		if deletedEntities[entity] {
			continue
		}
		if err := w.DestroyEntity(entity); err != nil {
			errs = append(errs, err)
		}
		deletedEntities[entity] = true
	}

	for _, cmd := range c.removes {
		if !deletedEntities[cmd.entity] {
			if err := cmd.apply(w); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, cmd := range c.adds {
		if !deletedEntities[cmd.entity] {
			if err := cmd.apply(w); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, cmd := range c.creates {
		entity, err := w.CreateEntity()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if cmd.init == nil {
			continue
		}
		if err := cmd.init(w, entity); err != nil {
			errs = append(errs, fmt.Errorf("init entity %s: %w", entity, err))
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.creates = c.creates[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]

	return errors.Join(errs...)
}

// QueueRemoveType queues detaching the component of type ct from entity.
func (c *Commands) QueueRemoveType(entity EntityId, ct ComponentType) {
	c.removes = append(c.removes, entityCommand{
		entity: entity,
		apply: func(w *World) error {
			return w.RemoveComponentType(entity, ct)
		},
	})
}
