package services

import (
	"context"
	"log/slog"

	"relay-desk/commands"
	"relay-desk/contract"
	"relay-desk/repositories"
)

// Report aggregates a fan-out: the caller renders it, the dispatcher never
// retries.
type Report struct {
	Delivered int
	Failed    int
}

type BroadcastService struct {
	registry  repositories.IRegistry
	transport contract.Transport
	log       *slog.Logger
}

func NewBroadcastService(registry repositories.IRegistry, transport contract.Transport, log *slog.Logger) *BroadcastService {
	return &BroadcastService{registry: registry, transport: transport, log: log}
}

// Broadcast delivers one operator message to every active user in registry
// order. Each attempt is independent; a failed recipient never aborts, skips
// or retries the rest.
//
// Broadcast content is deliberately not appended to per-user ledgers: the
// ledger records direct exchanges only. Revisit if announcements should
// become part of user history.
func (s *BroadcastService) Broadcast(ctx context.Context, text string) Report {
	formatted := commands.BroadcastText(text)

	var report Report
	for _, user := range s.registry.ListActiveUsers() {
		if err := s.transport.Deliver(ctx, user.ID, formatted); err != nil {
			report.Failed++
			s.log.Error("Broadcast delivery failed", "user_id", user.ID, "error", err)
			continue
		}
		report.Delivered++
	}
	s.log.Info("Broadcast completed", "delivered", report.Delivered, "failed", report.Failed)
	return report
}
