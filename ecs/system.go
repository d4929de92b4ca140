package ecs

// System is a unit of per-frame logic. Update is called once per UpdateAll
// with the frame's delta time, catalog and entity registry.
//
// Systems iterate entities and mutate component values in place. They must not
// create or destroy entities, or attach and detach components, while iterating;
// structural changes are queued on frame.Commands and applied after every
// system has run. User systems may hold Query and Singleton fields, which are
// initialised at registration, and any state that should persist between frames.
type System interface {
	Update(frame *UpdateFrame) error
}
