package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("company not found")

type Repository interface {
	Get(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context, req ListCompaniesRequest) ([]Company, int, error)
	Create(ctx context.Context, company Company) (*Company, error)
	Update(ctx context.Context, id int64, company Company) (*Company, error)
	Delete(ctx context.Context, id int64) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const companyColumns = `id, name, email, phone, address, city, state, postal_code, country, tax_id,
	default_tax_rate, default_currency, default_terms, quote_prefix, created_at, updated_at`

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.State,
		&c.PostalCode, &c.Country, &c.TaxID, &c.DefaultTaxRate,
		&c.DefaultCurrency, &c.DefaultTerms, &c.QuotePrefix,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Company, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM companies WHERE id = $1", companyColumns), id)
	return scanCompany(row)
}

func (r *repository) List(ctx context.Context, req ListCompaniesRequest) ([]Company, int, error) {
	whereClause := ""
	var args []interface{}
	argPos := 1

	if req.Search != "" {
		whereClause = fmt.Sprintf("WHERE (name ILIKE $%d OR email ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+req.Search+"%")
		argPos++
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM companies %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(
		"SELECT %s FROM companies %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		companyColumns, whereClause, argPos, argPos+1)
	args = append(args, limit, req.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *c)
	}
	return result, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, c Company) (*Company, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO companies (name, email, phone, address, city, state, postal_code, country, tax_id,
			default_tax_rate, default_currency, default_terms, quote_prefix)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s`, companyColumns),
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode,
		c.Country, c.TaxID, c.DefaultTaxRate, c.DefaultCurrency,
		c.DefaultTerms, c.QuotePrefix,
	)
	return scanCompany(row)
}

func (r *repository) Update(ctx context.Context, id int64, c Company) (*Company, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE companies
		SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6,
			postal_code = $7, country = $8, tax_id = $9, default_tax_rate = $10,
			default_currency = $11, default_terms = $12, quote_prefix = $13,
			updated_at = NOW()
		WHERE id = $14
		RETURNING %s`, companyColumns),
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode,
		c.Country, c.TaxID, c.DefaultTaxRate, c.DefaultCurrency,
		c.DefaultTerms, c.QuotePrefix, id,
	)
	return scanCompany(row)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM companies WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
