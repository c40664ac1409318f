package remote

// OutcomeKind classifies every boundary result so callers never have to
// assume that a resolved call means success.
type OutcomeKind string

const (
	OutcomeOK               OutcomeKind = "ok"
	OutcomeTransientFailure OutcomeKind = "transient_failure"
	OutcomePermanentFailure OutcomeKind = "permanent_failure"
)

type Outcome struct {
	Kind OutcomeKind
	Err  error
}

func OK() Outcome {
	return Outcome{Kind: OutcomeOK}
}

func Transient(err error) Outcome {
	return Outcome{Kind: OutcomeTransientFailure, Err: err}
}

func Permanent(err error) Outcome {
	return Outcome{Kind: OutcomePermanentFailure, Err: err}
}

func (o Outcome) Failed() bool {
	return o.Kind != OutcomeOK
}
