package gateway

import (
	"context"
	"log"

	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
	"github.com/KirkDiggler/loot-forge/internal/events"
	"github.com/KirkDiggler/loot-forge/internal/services/ledger"
)

// Handler translates client request events into ledger calls. Expected
// failures (bad arguments, unmet preconditions, missing items) go back to
// the requesting player as error events; only listener plumbing failures
// surface as bus errors.
type Handler struct {
	ledger ledger.Service
	bus    *events.Bus
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	Ledger ledger.Service
	Bus    *events.Bus
}

// NewHandler creates a new gateway handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.Ledger == nil || cfg.Bus == nil {
		panic("HandlerConfig, Ledger, and Bus are required")
	}

	return &Handler{
		ledger: cfg.Ledger,
		bus:    cfg.Bus,
	}
}

// Register subscribes the handler to all client request events
func (h *Handler) Register() {
	for _, eventType := range []events.EventType{
		events.EventRequestData,
		events.EventRequestEquip,
		events.EventRequestUnequip,
		events.EventRequestDiscard,
		events.EventRequestUseCurrency,
	} {
		h.bus.Subscribe(eventType, h)
	}
}

// ID returns the listener identifier
func (h *Handler) ID() string {
	return "equipment-gateway"
}

// Priority returns the listener priority
func (h *Handler) Priority() int {
	return 100
}

// HandleEvent dispatches a request event to the ledger
func (h *Handler) HandleEvent(event *events.Event) error {
	ctx := context.Background()

	var err error
	switch event.Type {
	case events.EventRequestData:
		err = h.ledger.PublishState(ctx, event.PlayerID)
	case events.EventRequestEquip:
		err = h.handleEquip(ctx, event)
	case events.EventRequestUnequip:
		err = h.handleUnequip(ctx, event)
	case events.EventRequestDiscard:
		err = h.handleDiscard(ctx, event)
	case events.EventRequestUseCurrency:
		err = h.handleUseCurrency(ctx, event)
	default:
		return nil
	}

	if err != nil {
		h.emitError(event.PlayerID, err)
	}
	return nil
}

func (h *Handler) handleEquip(ctx context.Context, event *events.Event) error {
	itemID, ok := event.GetString("item_id")
	if !ok {
		return lferr.InvalidArgument("equip request is missing item_id")
	}
	slot, ok := event.GetString("slot")
	if !ok {
		return lferr.InvalidArgument("equip request is missing slot")
	}
	return h.ledger.Equip(ctx, event.PlayerID, itemID, shared.Slot(slot))
}

func (h *Handler) handleUnequip(ctx context.Context, event *events.Event) error {
	slot, ok := event.GetString("slot")
	if !ok {
		return lferr.InvalidArgument("unequip request is missing slot")
	}
	return h.ledger.Unequip(ctx, event.PlayerID, shared.Slot(slot))
}

func (h *Handler) handleDiscard(ctx context.Context, event *events.Event) error {
	itemID, ok := event.GetString("item_id")
	if !ok {
		return lferr.InvalidArgument("discard request is missing item_id")
	}
	return h.ledger.Discard(ctx, event.PlayerID, itemID)
}

func (h *Handler) handleUseCurrency(ctx context.Context, event *events.Event) error {
	itemID, ok := event.GetString("item_id")
	if !ok {
		return lferr.InvalidArgument("use_currency request is missing item_id")
	}
	cur, ok := event.GetString("currency")
	if !ok {
		return lferr.InvalidArgument("use_currency request is missing currency")
	}
	return h.ledger.UseCurrency(ctx, event.PlayerID, shared.Currency(cur), itemID)
}

func (h *Handler) emitError(playerID string, cause error) {
	log.Printf("Equipment request for %s rejected: %v", playerID, cause)

	errEvent := events.NewEvent(events.EventError, playerID).
		WithContext("message", cause.Error()).
		WithContext("code", string(lferr.GetCode(cause)))
	if err := h.bus.Emit(errEvent); err != nil {
		log.Printf("Failed to emit error event for %s: %v", playerID, err)
	}
}
