package game

import "time"

// EventType represents a game event type with type safety
type EventType string

// EventType constants for engine domain events
const (
	EventTypeGameStart    EventType = "game_start"
	EventTypeTurnStart    EventType = "turn_start"
	EventTypeMoveChosen   EventType = "move_chosen"
	EventTypeConflict     EventType = "conflict"
	EventTypeMoveExecuted EventType = "move_executed"
	EventTypeGameOver     EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event published by the engine during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a new game begins
type GameStartEvent struct {
	Players   int
	Seed      int64
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(players int, seed int64) GameStartEvent {
	return GameStartEvent{Players: players, Seed: seed, timestamp: time.Now()}
}

// TurnStartEvent is published at the top of every turn
type TurnStartEvent struct {
	Turn      int
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnStartEvent creates a new turn start event
func NewTurnStartEvent(turn int) TurnStartEvent {
	return TurnStartEvent{Turn: turn, timestamp: time.Now()}
}

// MoveChosenEvent is published when a player's candidate move is picked
type MoveChosenEvent struct {
	Turn      int
	Move      *Move
	LegalMoves int
	timestamp time.Time
}

func (e MoveChosenEvent) EventType() EventType { return EventTypeMoveChosen }
func (e MoveChosenEvent) Timestamp() time.Time { return e.timestamp }

// NewMoveChosenEvent creates a new move chosen event
func NewMoveChosenEvent(turn int, move *Move, legalMoves int) MoveChosenEvent {
	return MoveChosenEvent{Turn: turn, Move: move, LegalMoves: legalMoves, timestamp: time.Now()}
}

// ConflictEvent is published when competing foundation moves collide
type ConflictEvent struct {
	FoundationID string
	Winner       int
	Discarded    int
	timestamp    time.Time
}

func (e ConflictEvent) EventType() EventType { return EventTypeConflict }
func (e ConflictEvent) Timestamp() time.Time { return e.timestamp }

// NewConflictEvent creates a new conflict event
func NewConflictEvent(foundationID string, winner, discarded int) ConflictEvent {
	return ConflictEvent{FoundationID: foundationID, Winner: winner, Discarded: discarded, timestamp: time.Now()}
}

// MoveExecutedEvent is published after a surviving move is applied
type MoveExecutedEvent struct {
	Turn      int
	Move      *Move
	timestamp time.Time
}

func (e MoveExecutedEvent) EventType() EventType { return EventTypeMoveExecuted }
func (e MoveExecutedEvent) Timestamp() time.Time { return e.timestamp }

// NewMoveExecutedEvent creates a new move executed event
func NewMoveExecutedEvent(turn int, move *Move) MoveExecutedEvent {
	return MoveExecutedEvent{Turn: turn, Move: move, timestamp: time.Now()}
}

// GameOverEvent is published once when the terminal condition is
// detected, carrying the final result
type GameOverEvent struct {
	Result    *GameResult
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(result *GameResult) GameOverEvent {
	return GameOverEvent{Result: result, timestamp: time.Now()}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
