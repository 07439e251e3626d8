package tests

import (
	"path"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/repledger-contract/common"
	"github.com/nspcc-dev/repledger-contract/contracts/repledger/repledgerconst"
	ledgerrpc "github.com/nspcc-dev/repledger-contract/rpc/repledger"
	"github.com/stretchr/testify/require"
)

const repledgerPath = "../contracts/repledger"

func deployRepledgerContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, repledgerPath,
		path.Join(repledgerPath, "config.yml"))

	e.DeployContract(t, c, nil)
	return c.Hash
}

func newRepledgerInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployRepledgerContract(t, e)
	return e.CommitteeInvoker(h)
}

func newContextID() []byte {
	id := uuid.New()
	return id[:]
}

// registerContext registers a committee-owned context, so the default
// committee invoker passes owner checks.
func registerContext(t *testing.T, c *neotest.ContractInvoker, allowResubmission bool) []byte {
	id := newContextID()
	c.Invoke(t, stackitem.Null{}, "registerContext", id, c.CommitteeHash, allowResubmission)
	return id
}

func submitRating(t *testing.T, c *neotest.ContractInvoker, contextID, transactionID []byte, entityType int, entityID []byte, value int) {
	c.Invoke(t, stackitem.Null{}, "submitRating",
		contextID, transactionID, int64(entityType), entityID, c.CommitteeHash, int64(value), "")
}

func getRatingsForTransaction(t *testing.T, c *neotest.ContractInvoker, contextID, transactionID []byte, entityTypes []int) []*ledgerrpc.RepledgerRating {
	types := make([]any, len(entityTypes))
	for i := range entityTypes {
		types[i] = entityTypes[i]
	}

	s, err := c.TestInvoke(t, "getRatingsForTransaction", contextID, transactionID, types)
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)

	res := make([]*ledgerrpc.RepledgerRating, len(arr))
	for i := range arr {
		res[i] = new(ledgerrpc.RepledgerRating)
		require.NoError(t, res[i].FromStackItem(arr[i]))
	}
	return res
}

func TestRepledgerRegisterContext(t *testing.T) {
	c := newRepledgerInvoker(t)

	id := newContextID()
	c.InvokeFail(t, "invalid context id", "registerContext", id[:10], c.CommitteeHash, false)
	c.Invoke(t, stackitem.Null{}, "registerContext", id, c.CommitteeHash, false)
	c.InvokeFail(t, repledgerconst.ErrContextExists, "registerContext", id, c.CommitteeHash, true)

	t.Run("missing owner witness", func(t *testing.T) {
		acc := c.NewAccount(t)
		c.InvokeFail(t, common.ErrOwnerWitnessFailed, "registerContext",
			newContextID(), acc.ScriptHash(), false)
	})
}

func TestRepledgerSubmitRating(t *testing.T) {
	c := newRepledgerInvoker(t)
	contextID := registerContext(t, c, false)

	txID := randomBytes(repledgerconst.TransactionIDSize)
	entityID := randomBytes(repledgerconst.EntityIDSize)

	c.InvokeFail(t, repledgerconst.ErrContextNotFound, "submitRating",
		newContextID(), txID, int64(2), entityID, c.CommitteeHash, int64(80), "")
	c.InvokeFail(t, "rating value out of range", "submitRating",
		contextID, txID, int64(2), entityID, c.CommitteeHash, int64(repledgerconst.MaxRating+1), "")
	c.InvokeFail(t, "invalid entity type", "submitRating",
		contextID, txID, int64(0), entityID, c.CommitteeHash, int64(80), "")

	t.Run("not an owner", func(t *testing.T) {
		cAcc := c.WithSigners(c.NewAccount(t))
		cAcc.InvokeFail(t, repledgerconst.ErrNotOwner, "submitRating",
			contextID, txID, int64(2), entityID, c.CommitteeHash, int64(80), "")
	})

	submitRating(t, c, contextID, txID, 2, entityID, 80)

	c.InvokeFail(t, repledgerconst.ErrAlreadyRated, "submitRating",
		contextID, txID, int64(2), entityID, c.CommitteeHash, int64(90), "")

	// Same transaction, another entity type is a different rating slot.
	submitRating(t, c, contextID, txID, 3, entityID, 90)
}

func TestRepledgerScore(t *testing.T) {
	c := newRepledgerInvoker(t)
	contextID := registerContext(t, c, false)

	entityID := randomBytes(repledgerconst.EntityIDSize)
	c.Invoke(t, int64(repledgerconst.NoRating), "getScore", contextID, entityID)
	c.InvokeFail(t, repledgerconst.ErrNoValues, "updateScore", contextID, entityID, int64(2), int64(0))

	submitRating(t, c, contextID, randomBytes(repledgerconst.TransactionIDSize), 2, entityID, 90)
	submitRating(t, c, contextID, randomBytes(repledgerconst.TransactionIDSize), 2, entityID, 30)

	// Score is cached, not live.
	c.Invoke(t, int64(repledgerconst.NoRating), "getScore", contextID, entityID)

	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, entityID, int64(2), int64(0))
	c.Invoke(t, int64(60), "getScore", contextID, entityID)

	// New submissions do not move the cached value until the next update.
	submitRating(t, c, contextID, randomBytes(repledgerconst.TransactionIDSize), 2, entityID, 0)
	c.Invoke(t, int64(60), "getScore", contextID, entityID)

	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, entityID, int64(2), int64(0))
	c.Invoke(t, int64(40), "getScore", contextID, entityID)
}

func TestRepledgerResubmission(t *testing.T) {
	c := newRepledgerInvoker(t)
	contextID := registerContext(t, c, true)

	txID := randomBytes(repledgerconst.TransactionIDSize)
	entityID := randomBytes(repledgerconst.EntityIDSize)

	submitRating(t, c, contextID, txID, 2, entityID, 80)
	submitRating(t, c, contextID, txID, 2, entityID, 40)

	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, entityID, int64(2), int64(0))
	c.Invoke(t, int64(40), "getScore", contextID, entityID)

	t.Run("remove", func(t *testing.T) {
		c.InvokeFail(t, repledgerconst.ErrRatingNotFound, "removeRating",
			contextID, randomBytes(repledgerconst.TransactionIDSize), int64(2))

		c.Invoke(t, stackitem.Null{}, "removeRating", contextID, txID, int64(2))
		c.InvokeFail(t, repledgerconst.ErrNoValues, "updateScore",
			contextID, entityID, int64(2), int64(0))

		ratings := getRatingsForTransaction(t, c, contextID, txID, []int{2})
		require.Len(t, ratings, 1)
		require.EqualValues(t, 0, ratings[0].Timestamp.Int64())
	})
}

func TestRepledgerResubmissionNewEntity(t *testing.T) {
	c := newRepledgerInvoker(t)
	contextID := registerContext(t, c, true)

	txID := randomBytes(repledgerconst.TransactionIDSize)
	oldEntity := randomBytes(repledgerconst.EntityIDSize)
	newEntity := randomBytes(repledgerconst.EntityIDSize)

	submitRating(t, c, contextID, randomBytes(repledgerconst.TransactionIDSize), 2, newEntity, 50)
	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, newEntity, int64(2), int64(0))
	c.Invoke(t, int64(50), "getScore", contextID, newEntity)

	submitRating(t, c, contextID, txID, 2, oldEntity, 80)
	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, oldEntity, int64(2), int64(0))
	c.Invoke(t, int64(80), "getScore", contextID, oldEntity)

	// Resubmission naming another entity moves the value between the
	// accumulators of the two entities.
	submitRating(t, c, contextID, txID, 2, newEntity, 10)

	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, newEntity, int64(2), int64(0))
	c.Invoke(t, int64(30), "getScore", contextID, newEntity)

	c.InvokeFail(t, repledgerconst.ErrNoValues, "updateScore",
		contextID, oldEntity, int64(2), int64(0))
	c.Invoke(t, int64(80), "getScore", contextID, oldEntity)
}

func TestRepledgerRemoveRatingRejectMode(t *testing.T) {
	c := newRepledgerInvoker(t)
	contextID := registerContext(t, c, false)

	txID := randomBytes(repledgerconst.TransactionIDSize)
	submitRating(t, c, contextID, txID, 2, randomBytes(repledgerconst.EntityIDSize), 80)

	c.InvokeFail(t, repledgerconst.ErrResubmissionDisabled, "removeRating", contextID, txID, int64(2))
}

func TestRepledgerQueries(t *testing.T) {
	c := newRepledgerInvoker(t)
	contextID := registerContext(t, c, false)

	tx1 := randomBytes(repledgerconst.TransactionIDSize)
	tx2 := randomBytes(repledgerconst.TransactionIDSize)
	entityID := randomBytes(repledgerconst.EntityIDSize)

	submitRating(t, c, contextID, tx1, 2, entityID, 80)
	submitRating(t, c, contextID, tx2, 2, entityID, 60)
	submitRating(t, c, contextID, tx2, 3, entityID, 40)

	t.Run("per-transaction slots", func(t *testing.T) {
		ratings := getRatingsForTransaction(t, c, contextID, tx1, []int{2, 3})
		require.Len(t, ratings, 2)
		require.EqualValues(t, 80, ratings[0].Value.Int64())
		require.Equal(t, entityID, ratings[0].EntityID)
		require.NotZero(t, ratings[0].Timestamp.Int64())
		require.Zero(t, ratings[1].Timestamp.Int64())
		require.Equal(t, util.Uint160{}, ratings[1].Rater)
	})

	t.Run("transactions for entity", func(t *testing.T) {
		c.Invoke(t, stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(tx1),
			stackitem.NewByteArray(tx2),
		}), "getTransactionsForEntity", contextID, entityID)
	})

	t.Run("grouped by transaction", func(t *testing.T) {
		s, err := c.TestInvoke(t, "getRatingsForEntity", contextID, entityID, []any{2, 3})
		require.NoError(t, err)

		arr, ok := s.Pop().Item().Value().([]stackitem.Item)
		require.True(t, ok)
		require.Len(t, arr, 2)

		group := new(ledgerrpc.RepledgerTransactionRatings)
		require.NoError(t, group.FromStackItem(arr[1]))
		require.Equal(t, tx2, group.TransactionID)
		require.Len(t, group.Ratings, 2)
		require.EqualValues(t, 60, group.Ratings[0].Value.Int64())
		require.EqualValues(t, 40, group.Ratings[1].Value.Int64())
	})

	t.Run("context isolation", func(t *testing.T) {
		other := registerContext(t, c, false)
		c.Invoke(t, stackitem.NewArray([]stackitem.Item{}),
			"getTransactionsForEntity", other, entityID)
		c.Invoke(t, stackitem.NewArray([]stackitem.Item{}), "getRatings", other, []any{2})
		c.Invoke(t, int64(repledgerconst.NoRating), "getScore", other, entityID)
	})
}

func TestRepledgerRelations(t *testing.T) {
	c := newRepledgerInvoker(t)
	contextID := registerContext(t, c, false)

	c.Invoke(t, stackitem.Null{}, "insertRelation", contextID, int64(3), int64(2))
	c.Invoke(t, stackitem.Null{}, "insertRelation", contextID, int64(4), int64(2))
	c.Invoke(t, stackitem.Null{}, "insertRelation", contextID, int64(3), int64(2))

	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(3),
		stackitem.Make(4),
	}), "listRelations", contextID, int64(2))
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{}), "listRelations", contextID, int64(5))

	t.Run("not an owner", func(t *testing.T) {
		cAcc := c.WithSigners(c.NewAccount(t))
		cAcc.InvokeFail(t, repledgerconst.ErrNotOwner, "insertRelation",
			contextID, int64(5), int64(2))
	})
}

func TestRepledgerCalculator(t *testing.T) {
	e := newExecutor(t)
	c := e.CommitteeInvoker(deployRepledgerContract(t, e))
	calcHash := deployCalculatorContract(t, e)

	contextID := registerContext(t, c, false)
	c.Invoke(t, stackitem.Null{}, "calculator", contextID)

	c.Invoke(t, stackitem.Null{}, "setCalculator", contextID, calcHash)
	c.Invoke(t, stackitem.NewBuffer(calcHash.BytesBE()), "calculator", contextID)

	entityID := randomBytes(repledgerconst.EntityIDSize)
	submitRating(t, c, contextID, randomBytes(repledgerconst.TransactionIDSize), 2, entityID, 80)

	// First update has no previous timestamp, decay does not apply.
	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, entityID, int64(2), int64(1000))
	c.Invoke(t, int64(80), "getScore", contextID, entityID)

	// A huge half-life makes subsequent decay negligible.
	c.Invoke(t, stackitem.Null{}, "updateScore", contextID, entityID, int64(2), int64(1_000_000_000_000))
	c.Invoke(t, int64(80), "getScore", contextID, entityID)

	t.Run("reset", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setCalculator", contextID, []byte{})
		c.Invoke(t, stackitem.Null{}, "calculator", contextID)
	})

	t.Run("not an owner", func(t *testing.T) {
		cAcc := c.WithSigners(c.NewAccount(t))
		cAcc.InvokeFail(t, repledgerconst.ErrNotOwner, "setCalculator", contextID, calcHash)
	})
}
