/*
Package repledger contains implementation of Reputation Ledger contract, the
generic rating storage and aggregation core shared by marketplace deployments.

The contract keeps isolated reputation namespaces called contexts. A context
is registered once, together with the only identity allowed to write into it,
usually a wrapper contract such as the market one. Within a context, ratings
are grouped by the transaction (purchase, interaction) that produced them and
attributed to entities: sellers, articles, shipping legs, buyers. A rating is
stored at most once per (transaction, entity type) pair; whether a repeated
submission is rejected or replaces the stored record is a per-context policy
fixed at registration.

Each submission also feeds the rated entity's running (sum, count)
accumulator, replacement and removal included, so no aggregation path ever
rescans rating history. Aggregate scores are not recomputed on every write:
the owner pulls them explicitly with updateScore, which turns the accumulator
into a rounded-down average, optionally passes it through a calculator
contract registered for the context, and caches the result for the
world-readable getScore.

# Contract notifications

ContextCreated notification. It is produced when a fresh context is bound to
its owner.

	ContextCreated:
	  - name: contextID
	    type: ByteArray
	  - name: owner
	    type: Hash160
	  - name: time
	    type: Integer

RatingSubmitted notification. It is produced on every stored rating.

	RatingSubmitted:
	  - name: contextID
	    type: ByteArray
	  - name: entityType
	    type: Integer
	  - name: rater
	    type: Hash160
	  - name: timestamp
	    type: Integer
	  - name: entityID
	    type: ByteArray
	  - name: value
	    type: Integer
	  - name: remark
	    type: String

RatingRemoved notification. It is produced when an update-mode context drops
a stored rating.

	RatingRemoved:
	  - name: contextID
	    type: ByteArray
	  - name: entityType
	    type: Integer
	  - name: entityID
	    type: ByteArray
	  - name: transactionID
	    type: ByteArray

ScoreUpdated notification. It is produced when an entity's cached aggregate
score is recomputed.

	ScoreUpdated:
	  - name: contextID
	    type: ByteArray
	  - name: entityID
	    type: ByteArray
	  - name: timestamp
	    type: Integer
	  - name: entityType
	    type: Integer
	  - name: score
	    type: Integer
*/
package repledger

/*
Contract storage model.

Current conventions:
 <ctx>: 16-byte context identifier
 <tx>: 32-byte transaction identifier
 <entity>: 32-byte entity identifier
 <type>: entity type tag, positive integer in minimal little-endian encoding

# Summary
Key-value storage format:
 - 'o<ctx>' -> std.Serialize(Context)
   context registration record: owner script hash and resubmission policy
 - 't<ctx>' -> std.Serialize([][]byte)
   transaction IDs ever rated in the context, in submission order
 - 'r<ctx><tx><type>' -> std.Serialize(Rating)
   individual rating records
 - 'e<ctx><entity>' -> std.Serialize([][]byte)
   transaction IDs the entity has been rated in, in submission order
 - 'a<ctx><entity>' -> std.Serialize(common.RunningAverage)
   incrementally maintained (sum, count) accumulator of the entity
 - 's<ctx><entity>' -> int
   cached aggregate score, refreshed by updateScore only
 - 'u<ctx><entity>' -> int
   block time of the last updateScore call for the entity
 - 'h<ctx><type>' -> std.Serialize([]int)
   child entity types rolling up into the keyed parent type
 - 'k<ctx>' -> interop.Hash160
   optional calculator contract registered for the context

# Ownership
Every mutating method requires the context owner: either a witness of the
owner's script hash or a direct call from the owner contract. Query methods
are open to the world.
*/
