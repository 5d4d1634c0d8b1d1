package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hipstershop/storefront/internal/catalog/app"
	"github.com/hipstershop/storefront/pkg/postgres"
)

func newMockRepo(t *testing.T) (*ProductRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewProductRepo(postgres.NewStore(db)), mock
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "picture",
		"price_usd_units", "price_usd_nanos", "categories",
	})
}

func TestGetProduct(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
		WithArgs("OLJCESPC7Z").
		WillReturnRows(productRows().AddRow(
			"OLJCESPC7Z", "Sunglasses", "Classic aviators", "/img/sunglasses.jpg",
			int64(19), int64(990000000), []byte(`{accessories,summer}`),
		))

	p, err := repo.Get(context.Background(), "OLJCESPC7Z")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.PriceUSD.Units != 19 || p.PriceUSD.Nanos != 990000000 {
		t.Fatalf("unexpected price: %+v", p.PriceUSD)
	}
	if p.PriceUSD.CurrencyCode != "USD" {
		t.Fatalf("expected USD, got %q", p.PriceUSD.CurrencyCode)
	}
	// Category order is the stored order.
	if len(p.Categories) != 2 || p.Categories[0] != "accessories" || p.Categories[1] != "summer" {
		t.Fatalf("unexpected categories: %v", p.Categories)
	}
}

func TestGetProductNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
		WithArgs("missing").
		WillReturnRows(productRows())

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListProducts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY id").
		WillReturnRows(productRows().
			AddRow("a", "A", "", "", int64(1), int64(0), []byte(`{}`)).
			AddRow("b", "B", "", "", int64(2), int64(500000000), []byte(`{tops}`)),
		)

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[1].PriceUSD.Nanos != 500000000 {
		t.Fatalf("unexpected nanos: %d", products[1].PriceUSD.Nanos)
	}
}

func TestSearchProducts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products").
		WithArgs("shirt").
		WillReturnRows(productRows().
			AddRow("s1", "Shirt", "A shirt", "", int64(10), int64(0), []byte(`{tops}`)),
		)

	products, err := repo.Search(context.Background(), "shirt")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != "s1" {
		t.Fatalf("unexpected results: %+v", products)
	}
}
