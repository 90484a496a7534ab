package reconcile

// Kind labels the category of a reconciled item.
type Kind string

const (
	KindLibrary Kind = "library"
	KindGlobal  Kind = "global"
	KindTask    Kind = "task"
)

// Action describes what the reconciler did (or would do, in dry-run) for an item.
type Action string

const (
	// ActionCreate: the item did not exist and a create was issued.
	ActionCreate Action = "create"
	// ActionUpdate: a write converging the existing item was issued.
	ActionUpdate Action = "update"
	// ActionSkip: current state already matched, nothing was written.
	ActionSkip Action = "skip"
	// ActionClear: an empty trigger list was written, wiping the schedule.
	ActionClear Action = "clear"
	// ActionNone: the item failed before any write could be decided.
	ActionNone Action = "-"
)

// Outcome records the result for one reconciled item.
type Outcome struct {
	Kind   Kind
	Name   string
	Action Action
	OK     bool
	Detail string
}

// Report aggregates the outcomes of one run.
type Report struct {
	RunID    string
	Outcomes []Outcome
}

// OK reports overall success: the logical AND of every outcome.
func (r *Report) OK() bool {
	for _, outcome := range r.Outcomes {
		if !outcome.OK {
			return false
		}
	}
	return true
}

// Failed returns how many outcomes failed.
func (r *Report) Failed() int {
	failed := 0
	for _, outcome := range r.Outcomes {
		if !outcome.OK {
			failed++
		}
	}
	return failed
}

func (r *Report) add(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}
