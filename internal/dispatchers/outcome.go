package dispatchers

// Outcome is the result category of a dispatch.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeExecuted
	OutcomeHelpDisplayed
	OutcomePermissionDenied
	OutcomeBlocked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExecuted:
		return "executed"
	case OutcomeHelpDisplayed:
		return "help displayed"
	case OutcomePermissionDenied:
		return "permission denied"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "not found"
	}
}

// report collects the nodes that matched but did not execute.
type report struct {
	help    []*Node
	denied  []*Node
	blocked []*Node
}

func (r *report) merge(other report) {
	r.help = append(r.help, other.help...)
	r.denied = append(r.denied, other.denied...)
	r.blocked = append(r.blocked, other.blocked...)
}

// outcome picks the category to report. Help wins over permission
// failures, which win over restrictions.
func (r *report) outcome() Outcome {
	switch {
	case len(r.help) > 0:
		return OutcomeHelpDisplayed
	case len(r.denied) > 0:
		return OutcomePermissionDenied
	case len(r.blocked) > 0:
		return OutcomeBlocked
	default:
		return OutcomeNotFound
	}
}
