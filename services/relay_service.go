//go:generate go run go.uber.org/mock/mockgen -source=relay_service.go -destination=../mocks/mock_relay_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"relay-desk/commands"
	"relay-desk/contract"
	"relay-desk/domain/relay"
	"relay-desk/errors"
	"relay-desk/repositories"

	"github.com/samber/lo"
)

type IRelayService interface {
	HandleClientMessage(ctx context.Context, userID int64, displayName, handle, text string) (relay.Outcome, error)
	HandleOperatorReply(ctx context.Context, targetID int64, text string) (relay.Outcome, error)
	HandleBareOperatorMessage(ctx context.Context, text string, session *ReplySession) (relay.Outcome, error)
}

// RelayService is the engine: it gates on the block state, records messages
// and decides routing. Delivery itself belongs to the transport.
type RelayService struct {
	registry       repositories.IRegistry
	transport      contract.Transport
	operatorID     int64
	selectionLimit int
	log            *slog.Logger
}

func NewRelayService(
	registry repositories.IRegistry,
	transport contract.Transport,
	operatorID int64,
	selectionLimit int,
	log *slog.Logger,
) *RelayService {
	return &RelayService{
		registry:       registry,
		transport:      transport,
		operatorID:     operatorID,
		selectionLimit: selectionLimit,
		log:            log,
	}
}

// HandleClientMessage records a client message and prepares the operator
// envelope. The message is persisted before any forwarding happens: the
// user's intent is not lost merely because delivery fails later.
func (s *RelayService) HandleClientMessage(ctx context.Context, userID int64, displayName, handle, text string) (relay.Outcome, error) {
	user, created, err := s.registry.UpsertUser(userID, displayName, handle)
	if err != nil {
		return relay.Outcome{}, fmt.Errorf("upsert user %d: %w", userID, err)
	}
	if created {
		s.log.Info("New user registered", "user_id", userID, "name", displayName)
	}

	if !user.Active {
		s.log.Debug("Message rejected, user is blocked", "user_id", userID)
		return relay.Outcome{Kind: relay.OutcomeRejected, TargetID: userID}, nil
	}

	if _, err := s.registry.AppendMessage(userID, text, false); err != nil {
		return relay.Outcome{}, fmt.Errorf("record message from user %d: %w", userID, err)
	}

	return relay.Outcome{
		Kind:     relay.OutcomeForwarded,
		TargetID: s.operatorID,
		Envelope: commands.ForwardEnvelope(user, text),
	}, nil
}

// HandleOperatorReply delivers first and records only on success: the ledger
// must reflect messages that actually reached the user.
func (s *RelayService) HandleOperatorReply(ctx context.Context, targetID int64, text string) (relay.Outcome, error) {
	if _, err := s.registry.GetUser(targetID); err != nil {
		return relay.Outcome{}, errors.ErrInvalidTarget
	}

	if err := s.transport.Deliver(ctx, targetID, commands.ReplyText(text)); err != nil {
		s.log.Warn("Reply delivery failed", "user_id", targetID, "error", err)
		return relay.Outcome{
			Kind:     relay.OutcomeDeliveryFailed,
			TargetID: targetID,
			Reason:   err.Error(),
		}, nil
	}

	if _, err := s.registry.AppendMessage(targetID, text, true); err != nil {
		return relay.Outcome{}, fmt.Errorf("record reply to user %d: %w", targetID, err)
	}
	return relay.Outcome{Kind: relay.OutcomeDelivered, TargetID: targetID}, nil
}

// HandleBareOperatorMessage routes an untargeted operator message through the
// current reply target, or asks the caller to present the most recent active
// users when none is set.
func (s *RelayService) HandleBareOperatorMessage(ctx context.Context, text string, session *ReplySession) (relay.Outcome, error) {
	if targetID, ok := session.Target(); ok {
		return s.HandleOperatorReply(ctx, targetID, text)
	}

	users := s.registry.ListActiveUsers()
	if len(users) == 0 {
		return relay.Outcome{}, errors.ErrNoActiveUsers
	}
	if len(users) > s.selectionLimit {
		users = users[len(users)-s.selectionLimit:]
	}

	candidates := lo.Map(users, func(user relay.User, _ int) relay.Candidate {
		return relay.Candidate{ID: user.ID, DisplayName: user.DisplayName}
	})
	return relay.Outcome{Kind: relay.OutcomeAwaitingTarget, Candidates: candidates}, nil
}
