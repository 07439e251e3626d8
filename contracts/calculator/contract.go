package calculator

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/repledger-contract/common"
)

// neutralScore is returned by weightedAggregate when there is nothing to
// weigh: mid-scale, so consumers cannot tell an unknown entity from a
// mediocre one.
const neutralScore = 50

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("calculator contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("calculator contract updated")
}

// ValidateProof checks that a rating submission is backed by some transaction
// proof and is not a self-rating.
func ValidateProof(rater, ratee interop.Hash160, proof []byte) bool {
	return len(proof) != 0 && !common.BytesEqual(rater, ratee)
}

// WeightedAggregate rolls child scores up into a parent one as a weighted
// average. Empty input, mismatched lengths and zero weight sum all yield the
// neutral mid-scale score.
func WeightedAggregate(childScores []int, weights []int) int {
	if len(childScores) == 0 || len(childScores) != len(weights) {
		return neutralScore
	}

	num := 0
	den := 0
	for i := range childScores {
		num += childScores[i] * weights[i]
		den += weights[i]
	}

	if den == 0 {
		return neutralScore
	}

	return num / den
}

// ApplyDecay linearly lowers a score with the time elapsed since it was
// computed. Decay is capped at half the score once elapsed reaches halfLife.
// Zero halfLife disables decay.
func ApplyDecay(score, elapsed, halfLife int) int {
	if halfLife == 0 {
		return score
	}

	if elapsed > halfLife {
		elapsed = halfLife
	}

	return score - score*elapsed/(halfLife*2)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
