package domain

// Money is a price in whole units plus nanos in [0, 999_999_999].
type Money struct {
	CurrencyCode string
	Units        int64
	Nanos        int32
}

// Product is read-only here; the products table is owned by an external
// catalog-management process.
type Product struct {
	ID          string
	Name        string
	Description string
	Picture     string
	PriceUSD    Money
	Categories  []string
}
