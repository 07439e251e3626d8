package market

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/repledger-contract/common"
	"github.com/nspcc-dev/repledger-contract/contracts/market/marketconst"
	"github.com/nspcc-dev/repledger-contract/contracts/repledger/repledgerconst"
)

type (
	// SellerRating is one purchase review as buyers see it: 1-5 stars for the
	// seller, the bought article and the shipping, with an optional remark.
	// On the ledger side it is stored as three generic ratings under one
	// transaction.
	SellerRating struct {
		PurchaseID    []byte
		Timestamp     int
		Buyer         interop.Hash160
		SellerID      []byte
		ArticleID     []byte
		SellerStars   int
		ArticleStars  int
		ShippingStars int
		Remark        string
	}

	// Rating mirrors the ledger contract's rating record for cross-contract
	// call results.
	Rating struct {
		TransactionID []byte
		Rater         interop.Hash160
		EntityID      []byte
		EntityType    int
		Timestamp     int
		Value         int
		Remark        string
	}

	// TransactionRatings mirrors the ledger contract's per-transaction rating
	// group for cross-contract call results.
	TransactionRatings struct {
		TransactionID []byte
		Ratings       []Rating
	}
)

const (
	ledgerContractKey = "ledgerScriptHash"
	contextIDKey      = "contextID"

	productAvgPrefix = 'p'
)

// sellTypes returns entity types of one purchase in submission order:
// article, shipping, seller.
func sellTypes() []int {
	return []int{marketconst.TypeArticle, marketconst.TypeShipping, marketconst.TypeSeller}
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	ledgerContract := args[0].(interop.Hash160)
	if len(ledgerContract) != interop.Hash160Len {
		panic("invalid ledger contract hash")
	}
	contextID := args[1].([]byte)
	if len(contextID) != repledgerconst.ContextIDSize {
		panic("invalid context id")
	}

	storage.Put(ctx, ledgerContractKey, ledgerContract)
	storage.Put(ctx, contextIDKey, contextID)

	// The market contract itself owns the ledger context, end users go
	// through submitSellerRating.
	contract.Call(ledgerContract, "registerContext", contract.All,
		contextID, runtime.GetExecutingScriptHash(), false)
	contract.Call(ledgerContract, "insertRelation", contract.All,
		contextID, marketconst.TypeArticle, marketconst.TypeSeller)
	contract.Call(ledgerContract, "insertRelation", contract.All,
		contextID, marketconst.TypeShipping, marketconst.TypeSeller)

	runtime.Log("market contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("market contract updated")
}

// SubmitSellerRating stores a buyer's review of a finished purchase. It can
// be invoked only by the reviewed buyer (witness check). Star values must be
// in [1, MaxStars]; timestamp of the passed structure is ignored in favor of
// the block one.
//
// The review becomes three ledger submissions under the purchase transaction
// (article, shipping, seller), after which both the article's and the
// seller's cached scores are refreshed and the article's average is rolled up
// into the seller's product average. A purchase can be reviewed once,
// repeated submission fails with the ledger's rating uniqueness error.
func SubmitSellerRating(r SellerRating) {
	checkStars(r.SellerStars)
	checkStars(r.ArticleStars)
	checkStars(r.ShippingStars)

	common.CheckOwnerWitness(r.Buyer)

	ctx := storage.GetContext()
	ledgerContract := ledgerHash(ctx)
	contextID := storage.Get(ctx, contextIDKey).([]byte)

	prevArticleScore := contract.Call(ledgerContract, "getScore", contract.ReadOnly,
		contextID, r.ArticleID).(int)

	contract.Call(ledgerContract, "submitRating", contract.All,
		contextID, r.PurchaseID, marketconst.TypeArticle, r.ArticleID,
		r.Buyer, r.ArticleStars*marketconst.StarScale, "")
	contract.Call(ledgerContract, "submitRating", contract.All,
		contextID, r.PurchaseID, marketconst.TypeShipping, noEntity(),
		r.Buyer, r.ShippingStars*marketconst.StarScale, "")
	contract.Call(ledgerContract, "submitRating", contract.All,
		contextID, r.PurchaseID, marketconst.TypeSeller, r.SellerID,
		r.Buyer, r.SellerStars*marketconst.StarScale, r.Remark)

	contract.Call(ledgerContract, "updateScore", contract.All,
		contextID, r.ArticleID, marketconst.TypeArticle, 0)
	newArticleScore := contract.Call(ledgerContract, "getScore", contract.ReadOnly,
		contextID, r.ArticleID).(int)

	rollUpProductAverage(ctx, r.SellerID, prevArticleScore, newArticleScore)

	contract.Call(ledgerContract, "updateScore", contract.All,
		contextID, r.SellerID, marketconst.TypeSeller, 0)

	runtime.Log("seller rating submitted")
}

// SellerScore returns the seller's cached aggregate score on the ledger's
// 0..100 scale, NoRating (-1) for sellers no one has rated yet.
func SellerScore(sellerID []byte) int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(ledgerHash(ctx), "getScore", contract.ReadOnly,
		storage.Get(ctx, contextIDKey).([]byte), sellerID).(int)
}

// SellerProductAverage returns the rolling average of the seller's article
// scores, NoRating (-1) for sellers without rated articles. Unlike
// SellerScore it weighs every article equally regardless of how many ratings
// each one has accumulated.
func SellerProductAverage(sellerID []byte) int {
	ctx := storage.GetReadOnlyContext()
	avg := getProductAverage(ctx, sellerID)
	if avg.Count == 0 {
		return repledgerconst.NoRating
	}

	return avg.Value()
}

// SellerRatingByPurchase returns the review stored for the given purchase.
//
// If the purchase is not rated, it panics with NotRatedError.
func SellerRatingByPurchase(purchaseID []byte) SellerRating {
	ctx := storage.GetReadOnlyContext()
	ratings := contract.Call(ledgerHash(ctx), "getRatingsForTransaction", contract.ReadOnly,
		storage.Get(ctx, contextIDKey).([]byte), purchaseID, sellTypes()).([]Rating)

	if ratings[2].Timestamp == 0 {
		panic(marketconst.NotRatedError)
	}

	return toSellerRating(purchaseID, ratings)
}

// ListSellerRatings returns all reviews ever submitted to the market, in
// submission order. Purchases with a removed or missing seller rating are
// skipped.
func ListSellerRatings() []SellerRating {
	ctx := storage.GetReadOnlyContext()
	groups := contract.Call(ledgerHash(ctx), "getRatings", contract.ReadOnly,
		storage.Get(ctx, contextIDKey).([]byte), sellTypes()).([]TransactionRatings)

	result := []SellerRating{}
	for i := range groups {
		if groups[i].Ratings[2].Timestamp == 0 {
			continue
		}
		result = append(result, toSellerRating(groups[i].TransactionID, groups[i].Ratings))
	}

	return result
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// rollUpProductAverage feeds the (previous, new) pair of an article's average
// into the seller's per-product accumulator: first-ever article score counts
// as an insertion, a changed one as a replacement. This is a two-level
// rolling aggregation, the seller side never rescans article history.
func rollUpProductAverage(ctx storage.Context, sellerID []byte, prevScore, newScore int) {
	avg := getProductAverage(ctx, sellerID)
	if prevScore == repledgerconst.NoRating {
		avg = avg.Update(common.NoValue, newScore)
	} else {
		avg = avg.Update(prevScore, newScore)
	}

	common.SetSerialized(ctx, append([]byte{productAvgPrefix}, sellerID...), avg)
}

func getProductAverage(ctx storage.Context, sellerID []byte) common.RunningAverage {
	data := storage.Get(ctx, append([]byte{productAvgPrefix}, sellerID...))
	if data == nil {
		return common.RunningAverage{}
	}

	return std.Deserialize(data.([]byte)).(common.RunningAverage)
}

func toSellerRating(purchaseID []byte, ratings []Rating) SellerRating {
	articleRating := ratings[0]
	shippingRating := ratings[1]
	sellerRating := ratings[2]

	return SellerRating{
		PurchaseID:    purchaseID,
		Timestamp:     sellerRating.Timestamp,
		Buyer:         sellerRating.Rater,
		SellerID:      sellerRating.EntityID,
		ArticleID:     articleRating.EntityID,
		SellerStars:   sellerRating.Value / marketconst.StarScale,
		ArticleStars:  articleRating.Value / marketconst.StarScale,
		ShippingStars: shippingRating.Value / marketconst.StarScale,
		Remark:        sellerRating.Remark,
	}
}

func ledgerHash(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ledgerContractKey).(interop.Hash160)
}

// noEntity is the placeholder entity of shipping ratings: shipping legs are
// rated per purchase, not tracked as standalone entities.
func noEntity() []byte {
	return make([]byte, repledgerconst.EntityIDSize)
}

func checkStars(stars int) {
	if stars < 1 || stars > marketconst.MaxStars {
		panic("star rating out of range")
	}
}
