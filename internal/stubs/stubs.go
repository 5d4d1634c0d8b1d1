// Package stubs holds the placeholder capability servers. Each handler
// conforms to the uniform contract but performs no datastore work and
// returns a zero-valued response; the business logic lives elsewhere in the
// shop and is pluggable behind the same descriptors.
package stubs

import (
	"context"

	"github.com/hipstershop/storefront/api/rpc"
)

type ShippingServer struct {
	rpc.UnimplementedShippingServiceServer
}

func (ShippingServer) GetQuote(ctx context.Context, req *rpc.GetQuoteRequest) (*rpc.GetQuoteResponse, error) {
	return &rpc.GetQuoteResponse{CostUSD: &rpc.Money{CurrencyCode: "USD"}}, nil
}

func (ShippingServer) ShipOrder(ctx context.Context, req *rpc.ShipOrderRequest) (*rpc.ShipOrderResponse, error) {
	return &rpc.ShipOrderResponse{}, nil
}

type CurrencyServer struct {
	rpc.UnimplementedCurrencyServiceServer
}

func (CurrencyServer) GetSupportedCurrencies(ctx context.Context, _ *rpc.Empty) (*rpc.GetSupportedCurrenciesResponse, error) {
	return &rpc.GetSupportedCurrenciesResponse{CurrencyCodes: []string{}}, nil
}

func (CurrencyServer) Convert(ctx context.Context, req *rpc.CurrencyConversionRequest) (*rpc.Money, error) {
	return &rpc.Money{CurrencyCode: req.ToCode}, nil
}

type PaymentServer struct {
	rpc.UnimplementedPaymentServiceServer
}

func (PaymentServer) Charge(ctx context.Context, req *rpc.ChargeRequest) (*rpc.ChargeResponse, error) {
	return &rpc.ChargeResponse{}, nil
}

type EmailServer struct {
	rpc.UnimplementedEmailServiceServer
}

func (EmailServer) SendOrderConfirmation(ctx context.Context, req *rpc.SendOrderConfirmationRequest) (*rpc.Empty, error) {
	return &rpc.Empty{}, nil
}

type CheckoutServer struct {
	rpc.UnimplementedCheckoutServiceServer
}

func (CheckoutServer) PlaceOrder(ctx context.Context, req *rpc.PlaceOrderRequest) (*rpc.PlaceOrderResponse, error) {
	return &rpc.PlaceOrderResponse{Order: &rpc.OrderResult{}}, nil
}

type AdServer struct {
	rpc.UnimplementedAdServiceServer
}

func (AdServer) GetAds(ctx context.Context, req *rpc.AdRequest) (*rpc.AdResponse, error) {
	return &rpc.AdResponse{Ads: []*rpc.Ad{}}, nil
}
