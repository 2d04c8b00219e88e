package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventClassify  EventType = "classify"
	EventTurn      EventType = "turn"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NodeEvent is emitted when a node is resolved for presentation.
type NodeEvent struct {
	EventBase
	NodeID string `json:"node_id"`
}

// ClassifyEvent describes one classifier call.
type ClassifyEvent struct {
	EventBase
	NodeID   string        `json:"node_id"`
	Choice   string        `json:"choice,omitempty"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// TurnEvent describes the outcome of a completed turn.
type TurnEvent struct {
	EventBase
	FromNodeID string `json:"from_node_id"`
	ToNodeID   string `json:"to_node_id"`
	Outcome    string `json:"outcome"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnClassify  func(context.Context, *ClassifyEvent)
	OnTurn      func(context.Context, *TurnEvent)
}
