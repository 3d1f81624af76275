package models

// Application review statuses. The set is closed: no other value is ever
// stored. Transitions are deliberately unrestricted so staff can correct
// mistakes (an ACCEPTED application can go back to IN_PROGRESS); if a
// stricter pipeline is wanted later, gate it here.
const (
	StatusReceived   = "RECEIVED"
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusQualified  = "QUALIFIED"
	StatusInterview  = "INTERVIEW"
	StatusAccepted   = "ACCEPTED"
	StatusRejected   = "REJECTED"
)

var statuses = map[string]struct{}{
	StatusReceived:   {},
	StatusPending:    {},
	StatusInProgress: {},
	StatusQualified:  {},
	StatusInterview:  {},
	StatusAccepted:   {},
	StatusRejected:   {},
}

// ValidStatus reports whether s belongs to the known status set.
func ValidStatus(s string) bool {
	_, ok := statuses[s]
	return ok
}

// Statuses returns the full status set, for API consumers that render
// pickers.
func Statuses() []string {
	return []string{
		StatusReceived,
		StatusPending,
		StatusInProgress,
		StatusQualified,
		StatusInterview,
		StatusAccepted,
		StatusRejected,
	}
}
