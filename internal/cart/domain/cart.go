package domain

// CartItem is one row of a user's cart. The set of items for a user forms
// the cart; there is no separate cart entity.
type CartItem struct {
	UserID    string
	ProductID string
	Quantity  int32
}
