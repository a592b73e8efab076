// Package ecs provides ECS adapters for modesto's routed mouse events.
//
// The adapter is [NewDonburiSink], which forwards every event a desktop
// routes (button edges and wheel notches, with absolute and relative
// positions and the receiving widget's ID) into a [Donburi] world as typed
// events. Subscribe to [RoutedEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	desktop.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
