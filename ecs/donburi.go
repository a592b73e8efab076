// Package ecs provides ECS adapters for modesto.
package ecs

import (
	"github.com/phanxgames/modesto"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RoutedEventType is the Donburi event type for events routed by a desktop.
// Subscribe to this in your ECS systems to receive clicks, releases and
// scrolls together with the widget that received them.
var RoutedEventType = events.NewEventType[modesto.RoutedEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Routed events are published to RoutedEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) modesto.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event modesto.RoutedEvent) {
	RoutedEventType.Publish(s.world, event)
}
