// Package input tracks keyboard state fed by an external event source.
package input

import (
	"fmt"
	"strings"
	"sync"
)

// Key identifies a keyboard key by its upper-case name ("J", "UP", "SPACE").
type Key string

// Movement keys used by the default light binding.
const (
	KeyJ Key = "J"
	KeyL Key = "L"
	KeyM Key = "M"
	KeyN Key = "N"
	KeyU Key = "U"
	KeyI Key = "I"
)

// ParseKey normalizes a key name. Empty names are rejected.
func ParseKey(name string) (Key, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("empty key name")
	}
	return Key(name), nil
}

// EventType is the kind of an input event.
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
)

// Event is a processed key event from the frame driver.
type Event struct {
	Type EventType
	Key  Key
}

// State holds the set of currently pressed keys. It is safe for concurrent use
// so an event thread can feed it while systems read it during a tick.
type State struct {
	mu      sync.RWMutex
	pressed map[Key]bool
}

// NewState creates an empty key state.
func NewState() *State {
	return &State{pressed: make(map[Key]bool)}
}

// Apply updates the state from a single event.
func (s *State) Apply(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch e.Type {
	case EventKeyDown:
		s.pressed[e.Key] = true
	case EventKeyUp:
		delete(s.pressed, e.Key)
	}
}

// Press marks keys as held.
func (s *State) Press(keys ...Key) {
	for _, k := range keys {
		s.Apply(Event{Type: EventKeyDown, Key: k})
	}
}

// Release marks keys as no longer held.
func (s *State) Release(keys ...Key) {
	for _, k := range keys {
		s.Apply(Event{Type: EventKeyUp, Key: k})
	}
}

// IsDown reports whether key is currently held.
func (s *State) IsDown(key Key) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pressed[key]
}

// Reader is the read side of State, used by systems.
type Reader interface {
	IsDown(key Key) bool
}
