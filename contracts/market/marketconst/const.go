package marketconst

const (
	// TypeSeller is the entity type tag of sellers.
	TypeSeller = 2
	// TypeArticle is the entity type tag of sold articles.
	TypeArticle = 3
	// TypeShipping is the entity type tag of shipping legs.
	TypeShipping = 4
	// TypeBuyer is the entity type tag of buyers.
	TypeBuyer = 5

	// MaxStars is the upper bound of user-facing star reviews, lower bound is 1.
	MaxStars = 5
	// StarScale converts stars to the ledger's 0..100 rating scale.
	StarScale = 20

	// NotRatedError is returned when the requested purchase carries no seller
	// rating.
	NotRatedError = "purchase is not rated"
)
