package requestid

// Outcome labels how a request ID was obtained or why it was rejected.
type Outcome string

const (
	OutcomeGenerated   Outcome = "generated"
	OutcomeAccepted    Outcome = "accepted"
	OutcomeNotAUUID    Outcome = "not_a_uuid"
	OutcomeNotVersion7 Outcome = "not_uuid_v7"
)

// Observer is notified once per extraction. It runs synchronously on the
// request goroutine and must not block.
type Observer func(Outcome)
