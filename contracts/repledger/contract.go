package repledger

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/repledger-contract/common"
	"github.com/nspcc-dev/repledger-contract/contracts/repledger/repledgerconst"
)

type (
	// Context holds the registration record of a reputation namespace. The
	// record is immutable: the owner never changes and the resubmission policy
	// is fixed at registration time.
	Context struct {
		Owner             interop.Hash160
		AllowResubmission bool
	}

	// Rating is a single submitted judgement about one entity within one
	// transaction.
	Rating struct {
		TransactionID []byte
		Rater         interop.Hash160
		EntityID      []byte
		EntityType    int
		Timestamp     int
		Value         int
		Remark        string
	}

	// TransactionRatings groups ratings of a single transaction as returned
	// by query methods.
	TransactionRatings struct {
		TransactionID []byte
		Ratings       []Rating
	}
)

const (
	contextPrefix    = 'o'
	txListPrefix     = 't'
	ratingPrefix     = 'r'
	entityTxPrefix   = 'e'
	avgPrefix        = 'a'
	scorePrefix      = 's'
	updatedPrefix    = 'u'
	relationPrefix   = 'h'
	calculatorPrefix = 'k'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("repledger contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("repledger contract updated")
}

// RegisterContext binds a fresh context ID to its owner. Owner witness is
// required. The binding is permanent: the context can be neither re-owned nor
// removed. allowResubmission fixes the context's resubmission policy: when
// false, a second rating for the same (transaction, entity type) pair is
// rejected; when true, it replaces the first one and removeRating becomes
// available.
//
// It produces ContextCreated notification.
func RegisterContext(id []byte, owner interop.Hash160, allowResubmission bool) {
	checkContextID(id)
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}

	ctx := storage.GetContext()
	key := contextKey(id)
	if storage.Get(ctx, key) != nil {
		panic(repledgerconst.ErrContextExists)
	}

	common.CheckOwnerWitness(owner)

	common.SetSerialized(ctx, key, Context{
		Owner:             owner,
		AllowResubmission: allowResubmission,
	})

	runtime.Notify("ContextCreated", id, owner, runtime.GetTime())
}

// SubmitRating stores a single rating record and maintains every index derived
// from it. It can be invoked only by the context owner (witness or direct
// contract call). Value must be in [0, MaxRating]. The passed timestamp is
// ignored in favor of the block one.
//
// In reject-mode contexts a repeated submission for the same (transaction,
// entity type) pair panics with ErrAlreadyRated and leaves the first record
// untouched. In update-mode contexts it replaces the record and the
// contribution of the old value to the entity's accumulator. A resubmission
// naming a different entity withdraws the old value from that entity's
// accumulator and inserts the new one into the named entity's accumulator.
//
// It produces RatingSubmitted notification.
func SubmitRating(contextID, transactionID []byte, entityType int, entityID []byte, rater interop.Hash160, value int, remark string) {
	checkContextID(contextID)
	checkTransactionID(transactionID)
	checkEntityID(entityID)
	checkEntityType(entityType)
	if value < 0 || value > repledgerconst.MaxRating {
		panic("rating value out of range")
	}

	ctx := storage.GetContext()
	c := mustGetContext(ctx, contextID)
	checkContextOwner(c)

	key := ratingKey(contextID, transactionID, entityType)
	old := storage.Get(ctx, key)
	if old != nil && !c.AllowResubmission {
		panic(repledgerconst.ErrAlreadyRated)
	}

	now := runtime.GetTime()
	rating := Rating{
		TransactionID: transactionID,
		Rater:         rater,
		EntityID:      entityID,
		EntityType:    entityType,
		Timestamp:     now,
		Value:         value,
		Remark:        remark,
	}
	common.SetSerialized(ctx, key, rating)

	common.AppendUnique(ctx, entityKey(txListPrefix, contextID, []byte{}), transactionID)
	common.AppendUnique(ctx, entityKey(entityTxPrefix, contextID, entityID), transactionID)

	avgKey := entityKey(avgPrefix, contextID, entityID)
	avg := getAverage(ctx, avgKey)
	if old == nil {
		avg = avg.Update(common.NoValue, value)
	} else {
		prev := std.Deserialize(old.([]byte)).(Rating)
		if common.BytesEqual(prev.EntityID, entityID) {
			avg = avg.Update(prev.Value, value)
		} else {
			prevKey := entityKey(avgPrefix, contextID, prev.EntityID)
			common.SetSerialized(ctx, prevKey, getAverage(ctx, prevKey).Update(prev.Value, common.NoValue))
			avg = avg.Update(common.NoValue, value)
		}
	}
	common.SetSerialized(ctx, avgKey, avg)

	runtime.Notify("RatingSubmitted", contextID, entityType, rater, now, entityID, value, remark)
}

// RemoveRating deletes a previously submitted rating together with its
// contribution to the entity's accumulated values. It can be invoked only by
// the context owner and only in update-mode contexts; reject-mode ones treat
// every stored rating as final. The entity keeps its transaction index entry,
// queries report the removed slot as an absent one.
//
// It produces RatingRemoved notification.
func RemoveRating(contextID, transactionID []byte, entityType int) {
	checkContextID(contextID)
	checkTransactionID(transactionID)
	checkEntityType(entityType)

	ctx := storage.GetContext()
	c := mustGetContext(ctx, contextID)
	checkContextOwner(c)

	if !c.AllowResubmission {
		panic(repledgerconst.ErrResubmissionDisabled)
	}

	key := ratingKey(contextID, transactionID, entityType)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(repledgerconst.ErrRatingNotFound)
	}
	rating := std.Deserialize(data.([]byte)).(Rating)

	storage.Delete(ctx, key)

	avgKey := entityKey(avgPrefix, contextID, rating.EntityID)
	common.SetSerialized(ctx, avgKey, getAverage(ctx, avgKey).Update(rating.Value, common.NoValue))

	runtime.Notify("RatingRemoved", contextID, entityType, rating.EntityID, transactionID)
}

// UpdateScore recomputes the aggregate score of the entity from its
// accumulated (sum, count) pair and caches the result for getScore. It can be
// invoked only by the context owner. The accumulator is maintained
// incrementally on every submission and removal, so the call never rescans
// rating history. If a calculator is registered for the context, the computed
// average is additionally passed through its applyDecay method with hint as
// the half-life; the default strategy is the plain rounded-down average.
//
// Calling UpdateScore for a never-rated entity is a sequencing bug on the
// caller's side and aborts the invocation.
//
// It produces ScoreUpdated notification.
func UpdateScore(contextID, entityID []byte, entityType int, hint int) {
	checkContextID(contextID)
	checkEntityID(entityID)
	checkEntityType(entityType)

	ctx := storage.GetContext()
	c := mustGetContext(ctx, contextID)
	checkContextOwner(c)

	avg := getAverage(ctx, entityKey(avgPrefix, contextID, entityID))
	if avg.Count == 0 {
		panic(repledgerconst.ErrNoValues)
	}
	score := avg.Value()

	now := runtime.GetTime()
	updatedKey := entityKey(updatedPrefix, contextID, entityID)

	calc := getCalculator(ctx, contextID)
	if len(calc) == interop.Hash160Len {
		elapsed := 0
		if rawUpdated := storage.Get(ctx, updatedKey); rawUpdated != nil {
			elapsed = now - rawUpdated.(int)
		}
		score = contract.Call(calc, "applyDecay", contract.ReadOnly, score, elapsed, hint).(int)
	}

	storage.Put(ctx, entityKey(scorePrefix, contextID, entityID), score)
	storage.Put(ctx, updatedKey, now)

	runtime.Notify("ScoreUpdated", contextID, entityID, now, entityType, score)
}

// GetScore returns the cached aggregate score of the entity, NoRating (-1) if
// the entity has never been scored. The cache is refreshed only by explicit
// UpdateScore calls, so the value may lag behind submitted ratings.
func GetScore(contextID, entityID []byte) int {
	checkContextID(contextID)
	checkEntityID(entityID)

	ctx := storage.GetReadOnlyContext()
	score := storage.Get(ctx, entityKey(scorePrefix, contextID, entityID))
	if score == nil {
		return repledgerconst.NoRating
	}

	return score.(int)
}

// GetRatingsForTransaction returns one Rating per requested entity type, in
// the requested order. Types without a stored rating yield a zero-value slot,
// recognizable by its zero Timestamp; the call never fails because of the
// missing ones.
func GetRatingsForTransaction(contextID, transactionID []byte, entityTypes []int) []Rating {
	checkContextID(contextID)
	checkTransactionID(transactionID)

	ctx := storage.GetReadOnlyContext()
	return ratingsForTransaction(ctx, contextID, transactionID, entityTypes)
}

// GetRatingsForEntity returns per-transaction rating groups for every
// transaction the entity has been rated in, joining the entity index with
// per-transaction records. Slot semantics inside each group are the same as
// in GetRatingsForTransaction.
func GetRatingsForEntity(contextID, entityID []byte, entityTypes []int) []TransactionRatings {
	checkContextID(contextID)
	checkEntityID(entityID)

	ctx := storage.GetReadOnlyContext()
	txs := common.GetList(ctx, entityKey(entityTxPrefix, contextID, entityID))
	return groupRatings(ctx, contextID, txs, entityTypes)
}

// GetRatings returns per-transaction rating groups over all transactions ever
// submitted to the context, in submission order.
func GetRatings(contextID []byte, entityTypes []int) []TransactionRatings {
	checkContextID(contextID)

	ctx := storage.GetReadOnlyContext()
	txs := common.GetList(ctx, entityKey(txListPrefix, contextID, []byte{}))
	return groupRatings(ctx, contextID, txs, entityTypes)
}

// GetTransactionsForEntity returns IDs of all transactions the entity has
// been rated in, in submission order. Unknown entities yield an empty list.
func GetTransactionsForEntity(contextID, entityID []byte) [][]byte {
	checkContextID(contextID)
	checkEntityID(entityID)

	ctx := storage.GetReadOnlyContext()
	return common.GetList(ctx, entityKey(entityTxPrefix, contextID, entityID))
}

// InsertRelation declares that scores of child entity type roll up into the
// given parent entity type within the context. Insertion is idempotent. It
// can be invoked only by the context owner. The adjacency is purely
// declarative, aggregation policy built on top of it lives outside of this
// contract.
func InsertRelation(contextID []byte, childType, parentType int) {
	checkContextID(contextID)
	checkEntityType(childType)
	checkEntityType(parentType)

	ctx := storage.GetContext()
	checkContextOwner(mustGetContext(ctx, contextID))

	common.AppendUniqueInt(ctx, relationKey(contextID, parentType), childType)
}

// ListRelations returns entity types declared to roll up into the given
// parent type, in declaration order.
func ListRelations(contextID []byte, parentType int) []int {
	checkContextID(contextID)
	checkEntityType(parentType)

	ctx := storage.GetReadOnlyContext()
	return common.GetIntList(ctx, relationKey(contextID, parentType))
}

// SetCalculator injects a score calculator contract into the context. It can
// be invoked only by the context owner. The calculator must expose an
// applyDecay(score, elapsed, halfLife int) int method, see the calculator
// contract for the reference implementation. Passing a zero-length hash
// removes the registration and restores the built-in average.
func SetCalculator(contextID []byte, calculator interop.Hash160) {
	checkContextID(contextID)

	ctx := storage.GetContext()
	checkContextOwner(mustGetContext(ctx, contextID))

	key := entityKey(calculatorPrefix, contextID, []byte{})
	if len(calculator) == 0 {
		storage.Delete(ctx, key)
		return
	}
	if len(calculator) != interop.Hash160Len {
		panic("invalid calculator hash")
	}

	storage.Put(ctx, key, calculator)
}

// Calculator returns the calculator contract hash registered for the context,
// null if there is none.
func Calculator(contextID []byte) interop.Hash160 {
	checkContextID(contextID)

	ctx := storage.GetReadOnlyContext()
	return getCalculator(ctx, contextID)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func ratingsForTransaction(ctx storage.Context, contextID, transactionID []byte, entityTypes []int) []Rating {
	ratings := []Rating{}
	for i := range entityTypes {
		checkEntityType(entityTypes[i])

		data := storage.Get(ctx, ratingKey(contextID, transactionID, entityTypes[i]))
		if data == nil {
			ratings = append(ratings, emptyRating())
			continue
		}
		ratings = append(ratings, std.Deserialize(data.([]byte)).(Rating))
	}

	return ratings
}

func groupRatings(ctx storage.Context, contextID []byte, txs [][]byte, entityTypes []int) []TransactionRatings {
	result := []TransactionRatings{}
	for i := range txs {
		result = append(result, TransactionRatings{
			TransactionID: txs[i],
			Ratings:       ratingsForTransaction(ctx, contextID, txs[i], entityTypes),
		})
	}

	return result
}

func mustGetContext(ctx storage.Context, id []byte) Context {
	data := storage.Get(ctx, contextKey(id))
	if data == nil {
		panic(repledgerconst.ErrContextNotFound)
	}

	return std.Deserialize(data.([]byte)).(Context)
}

func checkContextOwner(c Context) {
	if !common.ContractOrWitness(c.Owner) {
		panic(repledgerconst.ErrNotOwner)
	}
}

func getCalculator(ctx storage.Context, contextID []byte) interop.Hash160 {
	calc := storage.Get(ctx, entityKey(calculatorPrefix, contextID, []byte{}))
	if calc == nil {
		return nil
	}

	return calc.(interop.Hash160)
}

func getAverage(ctx storage.Context, key []byte) common.RunningAverage {
	data := storage.Get(ctx, key)
	if data == nil {
		return common.RunningAverage{}
	}

	return std.Deserialize(data.([]byte)).(common.RunningAverage)
}

func contextKey(id []byte) []byte {
	return append([]byte{contextPrefix}, id...)
}

func ratingKey(contextID, transactionID []byte, entityType int) []byte {
	key := append([]byte{ratingPrefix}, contextID...)
	key = append(key, transactionID...)
	return append(key, convert.ToBytes(entityType)...)
}

func entityKey(prefix byte, contextID, entityID []byte) []byte {
	key := append([]byte{prefix}, contextID...)
	return append(key, entityID...)
}

func relationKey(contextID []byte, parentType int) []byte {
	key := append([]byte{relationPrefix}, contextID...)
	return append(key, convert.ToBytes(parentType)...)
}

func emptyRating() Rating {
	return Rating{
		TransactionID: []byte{},
		Rater:         make([]byte, interop.Hash160Len),
		EntityID:      []byte{},
		EntityType:    0,
		Timestamp:     0,
		Value:         0,
		Remark:        "",
	}
}

func checkContextID(id []byte) {
	if len(id) != repledgerconst.ContextIDSize {
		panic("invalid context id")
	}
}

func checkTransactionID(id []byte) {
	if len(id) != repledgerconst.TransactionIDSize {
		panic("invalid transaction id")
	}
}

func checkEntityID(id []byte) {
	if len(id) != repledgerconst.EntityIDSize {
		panic("invalid entity id")
	}
}

func checkEntityType(entityType int) {
	if entityType <= 0 || entityType > 255 {
		panic("invalid entity type")
	}
}
