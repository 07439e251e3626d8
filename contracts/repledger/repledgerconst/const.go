package repledgerconst

const (
	// ContextIDSize is the length of a context identifier in bytes.
	ContextIDSize = 16
	// TransactionIDSize is the length of a transaction identifier in bytes.
	TransactionIDSize = 32
	// EntityIDSize is the length of an entity identifier in bytes.
	EntityIDSize = 32

	// MaxRating is the upper bound of a single rating value, lower bound is 0.
	MaxRating = 100

	// NoRating is returned by getScore for entities without a cached score.
	NoRating = -1

	// ErrContextExists is thrown on attempt to register an occupied context ID.
	ErrContextExists = "context already registered"
	// ErrContextNotFound is thrown when the addressed context is not registered.
	ErrContextNotFound = "context not found"
	// ErrNotOwner is thrown when a mutating method is called on a context not
	// owned by the caller.
	ErrNotOwner = "not a context owner"
	// ErrAlreadyRated is thrown on repeated submission for the same
	// (transaction, entity type) pair in a reject-mode context.
	ErrAlreadyRated = "transaction already rated"
	// ErrRatingNotFound is thrown by removeRating for an unknown rating key.
	ErrRatingNotFound = "rating not found"
	// ErrResubmissionDisabled is thrown by removeRating in a reject-mode context.
	ErrResubmissionDisabled = "context does not allow resubmission"
	// ErrNoValues signals a caller-sequencing bug: updateScore invoked for an
	// entity that has never been rated.
	ErrNoValues = "no accumulated values for entity"
)
