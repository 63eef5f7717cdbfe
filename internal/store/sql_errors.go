package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories whether a failed database operation hit a uniqueness
// constraint, may succeed if retried, or should be abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations other than uniqueness, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss, a deadlock rollback or a
	// busy SQLite database). Nothing in this service retries on its own; the
	// verdict is logged for operators.
	Retryable

	// UniqueViolation indicates that a UNIQUE or PRIMARY KEY constraint
	// rejected the write.
	UniqueViolation
)

func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case UniqueViolation:
		return "unique_violation"
	default:
		return "non_retryable"
	}
}
