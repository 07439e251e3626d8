/*
Package market contains implementation of Market contract, the marketplace
wrapper around the Reputation Ledger contract.

The wrapper owns one ledger context registered at deployment time and maps
user-facing purchase reviews onto generic ledger submissions: a single
1-5 star review of a finished purchase becomes three ratings (article,
shipping, seller) under one transaction, scaled to the ledger's 0..100 range.
After submission the wrapper refreshes the article's and the seller's cached
scores and additionally maintains a per-seller product average fed by article
score changes, so every article weighs equally in it no matter how many
ratings it has.

The wrapper is the only writer of its context; buyers are authenticated by
witness on submission. All read methods are open.

# Contract notifications

Market contract does not produce notifications of its own, see the ledger
contract for ContextCreated, RatingSubmitted and ScoreUpdated.
*/
package market

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'ledgerScriptHash' -> interop.Hash160
   address of the Reputation Ledger contract
 - 'contextID' -> []byte
   16-byte ledger context owned by this contract
 - 'p<sellerID>' -> std.Serialize(common.RunningAverage)
   per-seller rolling average over article scores

# Reviews
All reviews and per-entity scores live in the Reputation Ledger contract
under the stored context ID, the market keeps only the rollup accumulators.
*/
