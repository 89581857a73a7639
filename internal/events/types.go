package events

// EventType represents the type of equipment event
type EventType string

const (
	// Inbound requests from clients
	EventRequestData        EventType = "equipment.request.data"
	EventRequestEquip       EventType = "equipment.request.equip"
	EventRequestUnequip     EventType = "equipment.request.unequip"
	EventRequestDiscard     EventType = "equipment.request.discard"
	EventRequestUseCurrency EventType = "equipment.request.use_currency"

	// Outbound pushes to clients
	EventUpdated EventType = "equipment.updated"
	EventError   EventType = "equipment.error"
	EventStats   EventType = "equipment.stats"
)

// Event carries one equipment message through the bus. Context holds the
// payload; keys depend on the event type (item_id, slot, currency, snapshot,
// stats, message).
type Event struct {
	Type     EventType
	PlayerID string
	Context  map[string]any
}

// NewEvent creates an event with an initialized context
func NewEvent(eventType EventType, playerID string) *Event {
	return &Event{
		Type:     eventType,
		PlayerID: playerID,
		Context:  make(map[string]any),
	}
}

// WithContext adds a context value (builder pattern)
func (e *Event) WithContext(key string, value any) *Event {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// GetString retrieves a string context value
func (e *Event) GetString(key string) (string, bool) {
	v, ok := e.Context[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt retrieves an int context value
func (e *Event) GetInt(key string) (int, bool) {
	v, ok := e.Context[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Listener processes events
type Listener interface {
	HandleEvent(event *Event) error
	Priority() int
	ID() string
}
