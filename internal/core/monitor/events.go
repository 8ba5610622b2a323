package monitor

import "time"

// State represents the current Monitor mode.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// EventType defines the type of Monitor event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventIdle        EventType = "idle"
	EventNudge       EventType = "nudge"
)

// Event represents a Monitor update for observers.
type Event struct {
	Type        EventType
	State       State
	IdleSeconds uint32
	Interval    time.Duration
	DX          int
	DY          int
	At          time.Time
}
