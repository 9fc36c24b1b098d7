package domain

// CaseEvent holds the configured lifecycle event identifiers this service
// can fire against the store. The ids are deployment configuration, not
// constants, so they are injected at start.
type CaseEvent struct {
	CaseCreatedEventID           string
	ValidAppealCreatedEventID    string
	IncompleteApplicationEventID string
	NonCompliantEventID          string
}

// DefaultCaseEvent carries the event ids used by the production workflow.
func DefaultCaseEvent() CaseEvent {
	return CaseEvent{
		CaseCreatedEventID:           "appealCreated",
		ValidAppealCreatedEventID:    "validAppealCreated",
		IncompleteApplicationEventID: "incompleteApplicationReceived",
		NonCompliantEventID:          "nonCompliant",
	}
}

// EventSendToDwp is the follow-up transition fired right after a case is
// created through a case-created event.
const EventSendToDwp = "sendToDwp"

// Live-case events that may bypass MRN validation when re-validating.
const (
	EventDirectionIssued      = "directionIssued"
	EventDirectionIssuedWelsh = "directionIssuedWelsh"
)

// Workflow stages a case can be created into.
const (
	StateReadyToList = "readyToList"
	StateValidAppeal = "validAppeal"
)

// Interlocutory referral reasons stamped on non-compliant cases.
const (
	InterlocOver13Months                  = "over13months"
	InterlocOver13MonthsAndGroundsMissing = "over13MonthsAndGroundsMissing"
)

// DirectionAppealToProceed is the direction type that lets an out-of-time
// appeal proceed, bypassing MRN validation on re-validation.
const DirectionAppealToProceed = "appealToProceed"

// InterlocReviewNone resets the interlocutory review sub-state.
const InterlocReviewNone = "none"
