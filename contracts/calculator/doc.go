/*
Package calculator contains the reference score calculator for the Reputation
Ledger contract.

Score calculation is a swappable strategy: a context owner registers a
calculator contract hash in the ledger with setCalculator and the ledger calls
it during updateScore. This contract implements the default strategy set:
plain proof validation, weighted hierarchical aggregation and linear
time-based decay. Marketplaces with custom policies deploy their own contract
with the same method surface instead.

# Contract notifications

Calculator contract does not produce notifications to process.
*/
package calculator

/*
Contract storage model.

Calculator contract is stateless and does not use storage.
*/
