//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"relay-desk/domain/relay"
)

// Transport is the delivery side of the chat channel. The core decides what to
// persist and whom to notify; the transport owns retries, rate limits and the
// wire format.
type Transport interface {
	Deliver(ctx context.Context, recipientID int64, text string) error
	PresentSelection(ctx context.Context, recipientID int64, prompt string, candidates []relay.Candidate) error
}

// InboundEvent is one transport event. Selection is set when the operator
// picked a reply target through an interactive affordance; Media marks events
// whose payload is not text.
type InboundEvent struct {
	SenderID    int64
	DisplayName string
	Handle      string
	Text        string
	Media       bool
	Selection   *int64
}

// EventHandler consumes inbound events. Implemented by the dispatcher,
// consumed by the webhook server.
type EventHandler interface {
	HandleEvent(ctx context.Context, event InboundEvent) error
}
