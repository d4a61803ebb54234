package health

// Verdict is the three-state presentation classification of a health check
type Verdict int

// Presentation states, ordered by severity
const (
	VerdictOK Verdict = iota
	VerdictWarning
	VerdictError
)

func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictWarning:
		return "warning"
	case VerdictError:
		return "error"
	default:
		return "unknown"
	}
}

// HasCriticalIssues reports hard failures: a primary tool or runtime missing
// entirely, or a required plugin/package set incomplete
func HasCriticalIssues(r *Result) bool {
	return !r.CLI.Installed ||
		!r.Node.Installed ||
		!r.Plugins.AllInstalled ||
		!r.Packages.AllInstalled
}

// HasWarnings reports soft issues: a runtime present but below its floor, or
// the secondary runtime missing or invalid
func HasWarnings(r *Result) bool {
	return (r.Node.Installed && !r.Node.Valid) ||
		!r.Java.Installed ||
		!r.Java.Valid
}

// Classify maps a result to exactly one presentation state. It is a pure
// function of the result.
func Classify(r *Result) Verdict {
	switch {
	case HasCriticalIssues(r):
		return VerdictError
	case HasWarnings(r):
		return VerdictWarning
	default:
		return VerdictOK
	}
}
