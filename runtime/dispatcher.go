package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"relay-desk/commands"
	"relay-desk/contract"
	"relay-desk/domain/relay"
	relayerrors "relay-desk/errors"
	"relay-desk/observability"
	"relay-desk/repositories"
	"relay-desk/services"
)

// Dispatcher classifies inbound events by identity: the single configured
// operator id separates operator traffic from client traffic. Each event is
// an independent unit of work; shared state lives in the registry and the
// reply session.
type Dispatcher struct {
	log        *slog.Logger
	transport  contract.Transport
	relay      services.IRelayService
	broadcast  *services.BroadcastService
	admin      *services.AdminService
	session    *services.ReplySession
	registry   repositories.IRegistry
	monitor    *observability.Monitor
	operatorID int64
	chunkLimit int
}

func NewDispatcher(
	log *slog.Logger,
	transport contract.Transport,
	relaySvc services.IRelayService,
	broadcast *services.BroadcastService,
	admin *services.AdminService,
	session *services.ReplySession,
	registry repositories.IRegistry,
	monitor *observability.Monitor,
	operatorID int64,
	chunkLimit int,
) *Dispatcher {
	return &Dispatcher{
		log:        log,
		transport:  transport,
		relay:      relaySvc,
		broadcast:  broadcast,
		admin:      admin,
		session:    session,
		registry:   registry,
		monitor:    monitor,
		operatorID: operatorID,
		chunkLimit: chunkLimit,
	}
}

func (d *Dispatcher) HandleEvent(ctx context.Context, event contract.InboundEvent) error {
	if event.SenderID == d.operatorID {
		return d.handleOperatorEvent(ctx, event)
	}
	return d.handleClientEvent(ctx, event)
}

func (d *Dispatcher) handleOperatorEvent(ctx context.Context, event contract.InboundEvent) error {
	if event.Selection != nil {
		return d.handleSelection(ctx, *event.Selection)
	}

	text := eventText(event)
	if commands.IsCommand(text) {
		return d.handleOperatorCommand(ctx, text)
	}

	outcome, err := d.relay.HandleBareOperatorMessage(ctx, text, d.session)
	if errors.Is(err, relayerrors.ErrNoActiveUsers) {
		return d.transport.Deliver(ctx, d.operatorID, commands.NoActiveUsersNotice)
	}
	if err != nil {
		return fmt.Errorf("bare operator message: %w", err)
	}
	return d.reportReplyOutcome(ctx, outcome)
}

// handleSelection binds the operator's next bare message to the picked user.
func (d *Dispatcher) handleSelection(ctx context.Context, targetID int64) error {
	user, err := d.registry.GetUser(targetID)
	if err != nil {
		return d.transport.Deliver(ctx, d.operatorID, commands.UnknownUser(targetID))
	}
	d.session.SetTarget(targetID)
	d.log.Info("Reply target selected", "user_id", targetID)
	return d.transport.Deliver(ctx, d.operatorID, commands.ReplyTargetSet(user))
}

func (d *Dispatcher) handleOperatorCommand(ctx context.Context, text string) error {
	cmd, err := commands.Parse(text)
	if err != nil {
		var usage *commands.UsageError
		if errors.As(err, &usage) {
			return d.transport.Deliver(ctx, d.operatorID, usage.Guidance)
		}
		return d.transport.Deliver(ctx, d.operatorID, commands.UnknownCommand)
	}

	switch cmd.Kind {
	case commands.Start:
		return d.transport.Deliver(ctx, d.operatorID, commands.OperatorMenu)

	case commands.Help:
		return d.transport.Deliver(ctx, d.operatorID, commands.OperatorHelp)

	case commands.Users:
		users := d.admin.ListActiveUsers()
		if len(users) == 0 {
			return d.transport.Deliver(ctx, d.operatorID, commands.NoUsersNotice)
		}
		return d.deliverChunked(ctx, commands.UserListing(users))

	case commands.Stats:
		return d.transport.Deliver(ctx, d.operatorID, commands.StatsText(d.admin.Stats()))

	case commands.Reply:
		outcome, err := d.relay.HandleOperatorReply(ctx, cmd.TargetID, cmd.Text)
		if errors.Is(err, relayerrors.ErrInvalidTarget) {
			return d.transport.Deliver(ctx, d.operatorID, commands.UnknownUser(cmd.TargetID))
		}
		if err != nil {
			return fmt.Errorf("reply command: %w", err)
		}
		return d.reportReplyOutcome(ctx, outcome)

	case commands.Broadcast:
		report := d.broadcast.Broadcast(ctx, cmd.Text)
		d.monitor.BroadcastSent()
		return d.transport.Deliver(ctx, d.operatorID, commands.BroadcastReport(report.Delivered, report.Failed))

	case commands.Block:
		if err := d.admin.Block(cmd.TargetID); err != nil {
			if errors.Is(err, relayerrors.ErrUserNotFound) {
				return d.transport.Deliver(ctx, d.operatorID, commands.UnknownUser(cmd.TargetID))
			}
			return fmt.Errorf("block command: %w", err)
		}
		return d.transport.Deliver(ctx, d.operatorID, commands.UserBlocked(cmd.TargetID))

	case commands.Unblock:
		if err := d.admin.Unblock(cmd.TargetID); err != nil {
			if errors.Is(err, relayerrors.ErrUserNotFound) {
				return d.transport.Deliver(ctx, d.operatorID, commands.UnknownUser(cmd.TargetID))
			}
			return fmt.Errorf("unblock command: %w", err)
		}
		return d.transport.Deliver(ctx, d.operatorID, commands.UserUnblocked(cmd.TargetID))
	}
	return nil
}

// reportReplyOutcome renders a reply verdict back to the operator, or
// presents the target selection affordance.
func (d *Dispatcher) reportReplyOutcome(ctx context.Context, outcome relay.Outcome) error {
	switch outcome.Kind {
	case relay.OutcomeDelivered:
		d.monitor.ReplyDelivered()
		return d.transport.Deliver(ctx, d.operatorID, commands.ReplySent(outcome.TargetID))
	case relay.OutcomeDeliveryFailed:
		d.monitor.DeliveryFailed()
		return d.transport.Deliver(ctx, d.operatorID, commands.ReplyFailed(outcome.TargetID, outcome.Reason))
	case relay.OutcomeAwaitingTarget:
		return d.transport.PresentSelection(ctx, d.operatorID, commands.SelectionPrompt, outcome.Candidates)
	}
	return nil
}

func (d *Dispatcher) handleClientEvent(ctx context.Context, event contract.InboundEvent) error {
	text := eventText(event)

	if commands.IsCommand(text) {
		cmd, err := commands.Parse(text)
		if err != nil {
			// Clients only know /start and /help; anything else is noise.
			d.log.Debug("Ignoring unknown client command", "user_id", event.SenderID)
			return nil
		}
		switch cmd.Kind {
		case commands.Start:
			if _, _, err := d.registry.UpsertUser(event.SenderID, event.DisplayName, event.Handle); err != nil {
				return fmt.Errorf("register user %d: %w", event.SenderID, err)
			}
			return d.transport.Deliver(ctx, event.SenderID, commands.Welcome(event.DisplayName))
		case commands.Help:
			return d.transport.Deliver(ctx, event.SenderID, commands.ClientHelp)
		default:
			d.log.Debug("Ignoring operator command from client", "user_id", event.SenderID)
			return nil
		}
	}

	outcome, err := d.relay.HandleClientMessage(ctx, event.SenderID, event.DisplayName, event.Handle, text)
	if err != nil {
		return fmt.Errorf("client message: %w", err)
	}

	switch outcome.Kind {
	case relay.OutcomeRejected:
		d.monitor.MessageRejected()
		return d.transport.Deliver(ctx, event.SenderID, commands.BlockedNotice)

	case relay.OutcomeForwarded:
		if err := d.transport.Deliver(ctx, outcome.TargetID, outcome.Envelope); err != nil {
			d.monitor.DeliveryFailed()
			d.log.Error("Forward to operator failed", "user_id", event.SenderID, "error", err)
			return d.transport.Deliver(ctx, event.SenderID, commands.ForwardFailedNotice)
		}
		d.monitor.MessageForwarded()
		return d.transport.Deliver(ctx, event.SenderID, commands.ForwardConfirmation)
	}
	return nil
}

func (d *Dispatcher) deliverChunked(ctx context.Context, text string) error {
	for _, part := range commands.Chunk(text, d.chunkLimit) {
		if err := d.transport.Deliver(ctx, d.operatorID, part); err != nil {
			return err
		}
	}
	return nil
}

func eventText(event contract.InboundEvent) string {
	if event.Text != "" {
		return event.Text
	}
	return relay.MediaPlaceholder
}
