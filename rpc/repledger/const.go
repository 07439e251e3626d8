package repledger

import (
	"github.com/nspcc-dev/repledger-contract/contracts/repledger/repledgerconst"
)

const (
	// ContextIDSize is the exact length of a context identifier in bytes.
	ContextIDSize = repledgerconst.ContextIDSize
	// TransactionIDSize is the exact length of a transaction identifier in bytes.
	TransactionIDSize = repledgerconst.TransactionIDSize
	// EntityIDSize is the exact length of an entity identifier in bytes.
	EntityIDSize = repledgerconst.EntityIDSize

	// MaxRating is the upper bound of accepted rating values.
	MaxRating = repledgerconst.MaxRating
	// NoRating is returned by getScore when no score has been cached yet.
	NoRating = repledgerconst.NoRating

	// ContextExistsError is returned on an attempt to register a taken context ID.
	ContextExistsError = repledgerconst.ErrContextExists
	// ContextNotFoundError is returned if referenced context is missing.
	ContextNotFoundError = repledgerconst.ErrContextNotFound
	// NotOwnerError is returned on writes signed by anyone but the context owner.
	NotOwnerError = repledgerconst.ErrNotOwner
	// AlreadyRatedError is returned on duplicate submissions in reject mode.
	AlreadyRatedError = repledgerconst.ErrAlreadyRated
	// RatingNotFoundError is returned on removal of a missing rating.
	RatingNotFoundError = repledgerconst.ErrRatingNotFound
	// ResubmissionDisabledError is returned on updates in reject mode.
	ResubmissionDisabledError = repledgerconst.ErrResubmissionDisabled
	// NoValuesError is returned by updateScore when an entity has no ratings.
	NoValuesError = repledgerconst.ErrNoValues
)
