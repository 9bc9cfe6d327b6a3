package relay

type OutcomeKind int

const (
	// OutcomeForwarded: a client message was recorded and an envelope is ready
	// for delivery to the operator.
	OutcomeForwarded OutcomeKind = iota
	// OutcomeRejected: the sender is blocked; nothing was recorded.
	OutcomeRejected
	// OutcomeDelivered: an operator reply reached its target and was recorded.
	OutcomeDelivered
	// OutcomeDeliveryFailed: the transport could not deliver an operator reply;
	// nothing was recorded.
	OutcomeDeliveryFailed
	// OutcomeAwaitingTarget: a bare operator message with no reply target set;
	// the caller should present Candidates.
	OutcomeAwaitingTarget
)

// Outcome is the engine's verdict for one inbound event. Only the fields
// relevant to Kind are populated.
type Outcome struct {
	Kind       OutcomeKind
	TargetID   int64
	Envelope   string
	Reason     string
	Candidates []Candidate
}
