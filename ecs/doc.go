// Package ecs provides ECS adapters for scrollverse's phase events.
//
// The primary adapter is [NewDonburiSink], which publishes engine phase
// events (phase entered, narrative complete) into a [Donburi] world as typed
// events and keeps a [NarrativeState] singleton up to date. Subscribe to
// [PhaseEventType] in your ECS systems to drive overlays, routing or audio
// cues off the same scroll value the canvas uses.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
