package stubs

import (
	"context"
	"testing"

	"github.com/hipstershop/storefront/api/rpc"
)

func TestPlaceholdersReturnZeroValuedResponses(t *testing.T) {
	ctx := context.Background()

	t.Run("shipping quote", func(t *testing.T) {
		resp, err := ShippingServer{}.GetQuote(ctx, &rpc.GetQuoteRequest{})
		if err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}
		if resp.CostUSD == nil || resp.CostUSD.Units != 0 {
			t.Fatalf("expected zero cost, got %+v", resp.CostUSD)
		}
	})

	t.Run("currency convert echoes target code", func(t *testing.T) {
		m, err := CurrencyServer{}.Convert(ctx, &rpc.CurrencyConversionRequest{ToCode: "EUR"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if m.CurrencyCode != "EUR" || m.Units != 0 {
			t.Fatalf("unexpected money: %+v", m)
		}
	})

	t.Run("ads", func(t *testing.T) {
		resp, err := AdServer{}.GetAds(ctx, &rpc.AdRequest{ContextKeys: []string{"camera"}})
		if err != nil {
			t.Fatalf("GetAds failed: %v", err)
		}
		if len(resp.Ads) != 0 {
			t.Fatalf("expected no ads, got %d", len(resp.Ads))
		}
	})

	t.Run("checkout", func(t *testing.T) {
		resp, err := CheckoutServer{}.PlaceOrder(ctx, &rpc.PlaceOrderRequest{UserID: "u1"})
		if err != nil {
			t.Fatalf("PlaceOrder failed: %v", err)
		}
		if resp.Order == nil {
			t.Fatal("expected empty order result")
		}
	})
}
