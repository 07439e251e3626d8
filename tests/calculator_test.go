package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const calculatorPath = "../contracts/calculator"

func deployCalculatorContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, calculatorPath,
		path.Join(calculatorPath, "config.yml"))

	e.DeployContract(t, c, nil)
	return c.Hash
}

func newCalculatorInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	return e.CommitteeInvoker(deployCalculatorContract(t, e))
}

func TestCalculatorValidateProof(t *testing.T) {
	c := newCalculatorInvoker(t)

	rater := randomBytes(20)
	ratee := randomBytes(20)

	c.Invoke(t, true, "validateProof", rater, ratee, randomBytes(32))
	c.Invoke(t, false, "validateProof", rater, ratee, []byte{})
	c.Invoke(t, false, "validateProof", rater, rater, randomBytes(32))
}

func TestCalculatorWeightedAggregate(t *testing.T) {
	c := newCalculatorInvoker(t)

	c.Invoke(t, int64(70), "weightedAggregate", []any{80, 40}, []any{3, 1})
	c.Invoke(t, int64(60), "weightedAggregate", []any{60}, []any{7})

	t.Run("neutral fallbacks", func(t *testing.T) {
		c.Invoke(t, int64(50), "weightedAggregate", []any{}, []any{})
		c.Invoke(t, int64(50), "weightedAggregate", []any{80, 40}, []any{1})
		c.Invoke(t, int64(50), "weightedAggregate", []any{80, 40}, []any{0, 0})
	})
}

func TestCalculatorApplyDecay(t *testing.T) {
	c := newCalculatorInvoker(t)

	c.Invoke(t, int64(80), "applyDecay", int64(80), int64(0), int64(100))
	c.Invoke(t, int64(60), "applyDecay", int64(80), int64(50), int64(100))
	c.Invoke(t, int64(40), "applyDecay", int64(80), int64(100), int64(100))

	t.Run("decay is capped at half", func(t *testing.T) {
		c.Invoke(t, int64(40), "applyDecay", int64(80), int64(100000), int64(100))
	})

	t.Run("zero half-life disables decay", func(t *testing.T) {
		c.Invoke(t, int64(80), "applyDecay", int64(80), int64(100000), int64(0))
	})
}
