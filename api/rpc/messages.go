package rpc

// Empty is the zero-field message used by methods with no payload.
type Empty struct{}

// Money mirrors the storefront price representation: whole units plus
// nanos in [0, 999_999_999], with the currency carried alongside.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type AddItemRequest struct {
	UserID string    `json:"user_id"`
	Item   *CartItem `json:"item"`
}

type GetCartRequest struct {
	UserID string `json:"user_id"`
}

type EmptyCartRequest struct {
	UserID string `json:"user_id"`
}

type Cart struct {
	UserID string      `json:"user_id"`
	Items  []*CartItem `json:"items"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	PriceUSD    *Money `json:"price_usd"`
	// Categories preserves the stored order.
	Categories []string `json:"categories"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type SearchProductsRequest struct {
	Query string `json:"query"`
}

type SearchProductsResponse struct {
	Results []*Product `json:"results"`
}

type Address struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	ZipCode       int32  `json:"zip_code"`
}

type GetQuoteRequest struct {
	Address *Address    `json:"address"`
	Items   []*CartItem `json:"items"`
}

type GetQuoteResponse struct {
	CostUSD *Money `json:"cost_usd"`
}

type ShipOrderRequest struct {
	Address *Address    `json:"address"`
	Items   []*CartItem `json:"items"`
}

type ShipOrderResponse struct {
	TrackingID string `json:"tracking_id"`
}

type GetSupportedCurrenciesResponse struct {
	CurrencyCodes []string `json:"currency_codes"`
}

type CurrencyConversionRequest struct {
	From   *Money `json:"from"`
	ToCode string `json:"to_code"`
}

type CreditCardInfo struct {
	Number          string `json:"credit_card_number"`
	CVV             int32  `json:"credit_card_cvv"`
	ExpirationYear  int32  `json:"credit_card_expiration_year"`
	ExpirationMonth int32  `json:"credit_card_expiration_month"`
}

type ChargeRequest struct {
	Amount     *Money          `json:"amount"`
	CreditCard *CreditCardInfo `json:"credit_card"`
}

type ChargeResponse struct {
	TransactionID string `json:"transaction_id"`
}

type OrderItem struct {
	Item *CartItem `json:"item"`
	Cost *Money    `json:"cost"`
}

type OrderResult struct {
	OrderID            string       `json:"order_id"`
	ShippingTrackingID string       `json:"shipping_tracking_id"`
	ShippingCost       *Money       `json:"shipping_cost"`
	ShippingAddress    *Address     `json:"shipping_address"`
	Items              []*OrderItem `json:"items"`
}

type SendOrderConfirmationRequest struct {
	Email string       `json:"email"`
	Order *OrderResult `json:"order"`
}

type PlaceOrderRequest struct {
	UserID       string          `json:"user_id"`
	UserCurrency string          `json:"user_currency"`
	Address      *Address        `json:"address"`
	Email        string          `json:"email"`
	CreditCard   *CreditCardInfo `json:"credit_card"`
}

type PlaceOrderResponse struct {
	Order *OrderResult `json:"order"`
}

type Ad struct {
	RedirectURL string `json:"redirect_url"`
	Text        string `json:"text"`
}

type AdRequest struct {
	ContextKeys []string `json:"context_keys"`
}

type AdResponse struct {
	Ads []*Ad `json:"ads"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse signals business failure through Success rather than a
// transport error; callers must inspect the field even on an OK status.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
