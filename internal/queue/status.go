package queue

// Status is the outcome of a blocklist check. The integer values are part of
// the command-line contract.
type Status int

const (
	// StatusInvalid means the controller could not be constructed.
	StatusInvalid Status = -1
	// StatusBlocklisted means at least one matching queue entry was removed.
	StatusBlocklisted Status = 1
	// StatusNotFound means no queue entry matched, or the queue was unavailable.
	StatusNotFound Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusBlocklisted:
		return "blocklisted"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}
