package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/hipstershop/storefront/internal/catalog/app"
	"github.com/hipstershop/storefront/internal/catalog/domain"
	"github.com/hipstershop/storefront/pkg/postgres"
)

const productColumns = `id, name, description, picture, price_usd_units, price_usd_nanos, categories`

type ProductRepo struct {
	store *postgres.Store
}

func NewProductRepo(store *postgres.Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	row := r.store.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	)

	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, postgres.MapRowError(err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.store.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.store.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		 ORDER BY id`,
		query,
	)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	defer rows.Close()

	out := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProduct(scan func(...any) error) (domain.Product, error) {
	var p domain.Product
	p.PriceUSD.CurrencyCode = "USD"

	err := scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Picture,
		&p.PriceUSD.Units,
		&p.PriceUSD.Nanos,
		pq.Array(&p.Categories),
	)
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
