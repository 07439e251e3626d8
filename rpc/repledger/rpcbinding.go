// Package repledger contains RPC wrappers for Reputation Ledger contract.
package repledger

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// RepledgerRating is a contract-specific repledger.Rating type used by its methods.
type RepledgerRating struct {
	TransactionID []byte
	Rater util.Uint160
	EntityID []byte
	EntityType *big.Int
	Timestamp *big.Int
	Value *big.Int
	Remark string
}

// RepledgerTransactionRatings is a contract-specific repledger.TransactionRatings type used by its methods.
type RepledgerTransactionRatings struct {
	TransactionID []byte
	Ratings []*RepledgerRating
}

// ContextCreatedEvent represents "ContextCreated" event emitted by the contract.
type ContextCreatedEvent struct {
	ContextID []byte
	Owner util.Uint160
	Time *big.Int
}

// RatingSubmittedEvent represents "RatingSubmitted" event emitted by the contract.
type RatingSubmittedEvent struct {
	ContextID []byte
	EntityType *big.Int
	Rater util.Uint160
	Timestamp *big.Int
	EntityID []byte
	Value *big.Int
	Remark string
}

// RatingRemovedEvent represents "RatingRemoved" event emitted by the contract.
type RatingRemovedEvent struct {
	ContextID []byte
	EntityType *big.Int
	EntityID []byte
	TransactionID []byte
}

// ScoreUpdatedEvent represents "ScoreUpdated" event emitted by the contract.
type ScoreUpdatedEvent struct {
	ContextID []byte
	EntityID []byte
	Timestamp *big.Int
	EntityType *big.Int
	Score *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Calculator invokes `calculator` method of contract.
func (c *ContractReader) Calculator(contextID []byte) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "calculator", contextID))
}

// GetRatings invokes `getRatings` method of contract.
func (c *ContractReader) GetRatings(contextID []byte, entityTypes []*big.Int) ([]*RepledgerTransactionRatings, error) {
	return func (item stackitem.Item, err error) ([]*RepledgerTransactionRatings, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*RepledgerTransactionRatings, len(arr))
		for i := range res {
			res[i], err = itemToRepledgerTransactionRatings(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "getRatings", contextID, entityTypes)))
}

// GetRatingsForEntity invokes `getRatingsForEntity` method of contract.
func (c *ContractReader) GetRatingsForEntity(contextID []byte, entityID []byte, entityTypes []*big.Int) ([]*RepledgerTransactionRatings, error) {
	return func (item stackitem.Item, err error) ([]*RepledgerTransactionRatings, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*RepledgerTransactionRatings, len(arr))
		for i := range res {
			res[i], err = itemToRepledgerTransactionRatings(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "getRatingsForEntity", contextID, entityID, entityTypes)))
}

// GetRatingsForTransaction invokes `getRatingsForTransaction` method of contract.
func (c *ContractReader) GetRatingsForTransaction(contextID []byte, transactionID []byte, entityTypes []*big.Int) ([]*RepledgerRating, error) {
	return func (item stackitem.Item, err error) ([]*RepledgerRating, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*RepledgerRating, len(arr))
		for i := range res {
			res[i], err = itemToRepledgerRating(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "getRatingsForTransaction", contextID, transactionID, entityTypes)))
}

// GetScore invokes `getScore` method of contract.
func (c *ContractReader) GetScore(contextID []byte, entityID []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getScore", contextID, entityID))
}

// GetTransactionsForEntity invokes `getTransactionsForEntity` method of contract.
func (c *ContractReader) GetTransactionsForEntity(contextID []byte, entityID []byte) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "getTransactionsForEntity", contextID, entityID))
}

// ListRelations invokes `listRelations` method of contract.
func (c *ContractReader) ListRelations(contextID []byte, parentType *big.Int) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "listRelations", contextID, parentType))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// InsertRelation creates a transaction invoking `insertRelation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InsertRelation(contextID []byte, childType *big.Int, parentType *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "insertRelation", contextID, childType, parentType)
}

// InsertRelationTransaction creates a transaction invoking `insertRelation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InsertRelationTransaction(contextID []byte, childType *big.Int, parentType *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "insertRelation", contextID, childType, parentType)
}

// InsertRelationUnsigned creates a transaction invoking `insertRelation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InsertRelationUnsigned(contextID []byte, childType *big.Int, parentType *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "insertRelation", nil, contextID, childType, parentType)
}

// RegisterContext creates a transaction invoking `registerContext` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterContext(id []byte, owner util.Uint160, allowResubmission bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerContext", id, owner, allowResubmission)
}

// RegisterContextTransaction creates a transaction invoking `registerContext` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterContextTransaction(id []byte, owner util.Uint160, allowResubmission bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerContext", id, owner, allowResubmission)
}

// RegisterContextUnsigned creates a transaction invoking `registerContext` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterContextUnsigned(id []byte, owner util.Uint160, allowResubmission bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerContext", nil, id, owner, allowResubmission)
}

// RemoveRating creates a transaction invoking `removeRating` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveRating(contextID []byte, transactionID []byte, entityType *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeRating", contextID, transactionID, entityType)
}

// RemoveRatingTransaction creates a transaction invoking `removeRating` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveRatingTransaction(contextID []byte, transactionID []byte, entityType *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeRating", contextID, transactionID, entityType)
}

// RemoveRatingUnsigned creates a transaction invoking `removeRating` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveRatingUnsigned(contextID []byte, transactionID []byte, entityType *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeRating", nil, contextID, transactionID, entityType)
}

// SetCalculator creates a transaction invoking `setCalculator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCalculator(contextID []byte, calculator util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCalculator", contextID, calculator)
}

// SetCalculatorTransaction creates a transaction invoking `setCalculator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCalculatorTransaction(contextID []byte, calculator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCalculator", contextID, calculator)
}

// SetCalculatorUnsigned creates a transaction invoking `setCalculator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCalculatorUnsigned(contextID []byte, calculator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCalculator", nil, contextID, calculator)
}

// SubmitRating creates a transaction invoking `submitRating` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitRating(contextID []byte, transactionID []byte, entityType *big.Int, entityID []byte, rater util.Uint160, value *big.Int, remark string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitRating", contextID, transactionID, entityType, entityID, rater, value, remark)
}

// SubmitRatingTransaction creates a transaction invoking `submitRating` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitRatingTransaction(contextID []byte, transactionID []byte, entityType *big.Int, entityID []byte, rater util.Uint160, value *big.Int, remark string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitRating", contextID, transactionID, entityType, entityID, rater, value, remark)
}

// SubmitRatingUnsigned creates a transaction invoking `submitRating` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitRatingUnsigned(contextID []byte, transactionID []byte, entityType *big.Int, entityID []byte, rater util.Uint160, value *big.Int, remark string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitRating", nil, contextID, transactionID, entityType, entityID, rater, value, remark)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateScore creates a transaction invoking `updateScore` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateScore(contextID []byte, entityID []byte, entityType *big.Int, hint *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateScore", contextID, entityID, entityType, hint)
}

// UpdateScoreTransaction creates a transaction invoking `updateScore` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateScoreTransaction(contextID []byte, entityID []byte, entityType *big.Int, hint *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateScore", contextID, entityID, entityType, hint)
}

// UpdateScoreUnsigned creates a transaction invoking `updateScore` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateScoreUnsigned(contextID []byte, entityID []byte, entityType *big.Int, hint *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateScore", nil, contextID, entityID, entityType, hint)
}

// itemToRepledgerRating converts stack item into *RepledgerRating.
func itemToRepledgerRating(item stackitem.Item, err error) (*RepledgerRating, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RepledgerRating)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RepledgerRating from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RepledgerRating) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.TransactionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TransactionID: %w", err)
	}

	index++
	res.Rater, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Rater: %w", err)
	}

	index++
	res.EntityID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field EntityID: %w", err)
	}

	index++
	res.EntityType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EntityType: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	res.Remark, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Remark: %w", err)
	}

	return nil
}

// itemToRepledgerTransactionRatings converts stack item into *RepledgerTransactionRatings.
func itemToRepledgerTransactionRatings(item stackitem.Item, err error) (*RepledgerTransactionRatings, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RepledgerTransactionRatings)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RepledgerTransactionRatings from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RepledgerTransactionRatings) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.TransactionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TransactionID: %w", err)
	}

	index++
	res.Ratings, err = func (item stackitem.Item) ([]*RepledgerRating, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*RepledgerRating, len(arr))
		for i := range res {
			res[i], err = itemToRepledgerRating(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Ratings: %w", err)
	}

	return nil
}

// ContextCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContextCreated" name from the provided [result.ApplicationLog].
func ContextCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContextCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContextCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContextCreated" {
				continue
			}
			event := new(ContextCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContextCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContextCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ContextCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ContextID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContextID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	return nil
}

// RatingSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "RatingSubmitted" name from the provided [result.ApplicationLog].
func RatingSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RatingSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RatingSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RatingSubmitted" {
				continue
			}
			event := new(RatingSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RatingSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RatingSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *RatingSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ContextID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContextID: %w", err)
	}

	index++
	e.EntityType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EntityType: %w", err)
	}

	index++
	e.Rater, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Rater: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	e.EntityID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field EntityID: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	e.Remark, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Remark: %w", err)
	}

	return nil
}

// RatingRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "RatingRemoved" name from the provided [result.ApplicationLog].
func RatingRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RatingRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RatingRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RatingRemoved" {
				continue
			}
			event := new(RatingRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RatingRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RatingRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *RatingRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ContextID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContextID: %w", err)
	}

	index++
	e.EntityType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EntityType: %w", err)
	}

	index++
	e.EntityID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field EntityID: %w", err)
	}

	index++
	e.TransactionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TransactionID: %w", err)
	}

	return nil
}

// ScoreUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ScoreUpdated" name from the provided [result.ApplicationLog].
func ScoreUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ScoreUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ScoreUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ScoreUpdated" {
				continue
			}
			event := new(ScoreUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ScoreUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ScoreUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ScoreUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ContextID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContextID: %w", err)
	}

	index++
	e.EntityID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field EntityID: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	e.EntityType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EntityType: %w", err)
	}

	index++
	e.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	return nil
}
