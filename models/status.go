package models

// CampaignStatus is the finite set of campaign lifecycle states.
//
// Legal transitions:
//
//	draft                → pending_verification (submit)
//	pending_verification → active               (approve)
//	pending_verification → rejected             (reject)
//	active               → closed               (close)
//
// rejected and closed are terminal. Everything else is illegal and must be
// refused, never clamped.
type CampaignStatus string

const (
	StatusDraft               CampaignStatus = "draft"
	StatusPendingVerification CampaignStatus = "pending_verification"
	StatusActive              CampaignStatus = "active"
	StatusRejected            CampaignStatus = "rejected"
	StatusClosed              CampaignStatus = "closed"
)

// TransitionEvent names a state-machine event applied to a campaign.
type TransitionEvent string

const (
	EventSubmit  TransitionEvent = "submit"
	EventApprove TransitionEvent = "approve"
	EventReject  TransitionEvent = "reject"
	EventClose   TransitionEvent = "close"
)

// transitionTable is the single source of truth for state legality.
// Key: event; value: required current status and resulting status.
var transitionTable = map[TransitionEvent]struct {
	from CampaignStatus
	to   CampaignStatus
}{
	EventSubmit:  {from: StatusDraft, to: StatusPendingVerification},
	EventApprove: {from: StatusPendingVerification, to: StatusActive},
	EventReject:  {from: StatusPendingVerification, to: StatusRejected},
	EventClose:   {from: StatusActive, to: StatusClosed},
}

// Transition resolves an event against the transition table. It returns the
// required source status and the target status, and ok == false when the
// event is unknown.
//
// Callers apply the source status as the compare-and-swap precondition of
// the store update; legality is therefore re-checked against the freshly
// read row, not a caller-supplied copy.
func Transition(event TransitionEvent) (from, to CampaignStatus, ok bool) {
	t, ok := transitionTable[event]
	return t.from, t.to, ok
}

// IsTerminal reports whether no event can ever leave the given status.
func (s CampaignStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusClosed
}

// Valid reports whether s is one of the known lifecycle states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingVerification, StatusActive, StatusRejected, StatusClosed:
		return true
	}
	return false
}
