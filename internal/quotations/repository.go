package quotations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quotedesk/quotedesk/internal/platform/db"
)

var ErrNotFound = errors.New("quotation not found")

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	Get(ctx context.Context, id int64) (*Quotation, error)
	List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, int, error)
	Create(ctx context.Context, q Quotation) (int64, error)
	Update(ctx context.Context, id int64, q Quotation) error
	Delete(ctx context.Context, id int64) error
	InsertItem(ctx context.Context, item Item) (int64, error)
	DeleteItems(ctx context.Context, quotationID int64) error
	NextQuoteNumber(ctx context.Context, companyID int64, prefix string) (string, error)
	ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

const quotationColumns = `id, quote_number, company_id, client_id, status, issue_date, valid_until,
	currency, tax_rate, discount_type, discount_value, subtotal, tax_amount, discount_amount, total,
	terms, notes, created_at, updated_at`

func scanQuotation(row pgx.Row) (*Quotation, error) {
	var q Quotation
	err := row.Scan(
		&q.ID, &q.QuoteNumber, &q.CompanyID, &q.ClientID, &q.Status,
		&q.IssueDate, &q.ValidUntil, &q.Currency, &q.TaxRate,
		&q.DiscountType, &q.DiscountValue, &q.Subtotal, &q.TaxAmount,
		&q.DiscountAmount, &q.Total, &q.Terms, &q.Notes,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Quotation, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM quotations WHERE id = $1", quotationColumns), id)
	q, err := scanQuotation(row)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	q.Items = items
	return q, nil
}

func (r *repository) listItems(ctx context.Context, quotationID int64) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, quotation_id, description, quantity, unit_price, total, sort_order, created_at
		FROM quotation_items
		WHERE quotation_id = $1
		ORDER BY sort_order ASC`, quotationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.QuotationID, &item.Description, &item.Quantity,
			&item.UnitPrice, &item.Total, &item.SortOrder, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, int, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if req.CompanyID != nil {
		conditions = append(conditions, fmt.Sprintf("company_id = $%d", argPos))
		args = append(args, *req.CompanyID)
		argPos++
	}
	if req.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", argPos))
		args = append(args, *req.ClientID)
		argPos++
	}
	if req.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *req.Status)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + conditions[0]
		for i := 1; i < len(conditions); i++ {
			whereClause += " AND " + conditions[i]
		}
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM quotations %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`
		SELECT %s FROM quotations %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, quotationColumns, whereClause, argPos, argPos+1)
	args = append(args, limit, req.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var quotations []Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, 0, err
		}
		quotations = append(quotations, *q)
	}
	return quotations, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, q Quotation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO quotations (quote_number, company_id, client_id, status, issue_date, valid_until,
			currency, tax_rate, discount_type, discount_value, subtotal, tax_amount, discount_amount, total,
			terms, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`,
		q.QuoteNumber, q.CompanyID, q.ClientID, q.Status, q.IssueDate, q.ValidUntil,
		q.Currency, q.TaxRate, q.DiscountType, q.DiscountValue, q.Subtotal,
		q.TaxAmount, q.DiscountAmount, q.Total, q.Terms, q.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, q Quotation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE quotations
		SET company_id = $1, client_id = $2, status = $3, issue_date = $4, valid_until = $5,
			currency = $6, tax_rate = $7, discount_type = $8, discount_value = $9,
			subtotal = $10, tax_amount = $11, discount_amount = $12, total = $13,
			terms = $14, notes = $15, updated_at = NOW()
		WHERE id = $16`,
		q.CompanyID, q.ClientID, q.Status, q.IssueDate, q.ValidUntil,
		q.Currency, q.TaxRate, q.DiscountType, q.DiscountValue,
		q.Subtotal, q.TaxAmount, q.DiscountAmount, q.Total,
		q.Terms, q.Notes, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := r.DeleteItems(ctx, id); err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM quotations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) InsertItem(ctx context.Context, item Item) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO quotation_items (quotation_id, description, quantity, unit_price, total, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		item.QuotationID, item.Description, item.Quantity, item.UnitPrice,
		item.Total, item.SortOrder,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) DeleteItems(ctx context.Context, quotationID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM quotation_items WHERE quotation_id = $1", quotationID)
	return err
}

// NextQuoteNumber advances the per-(company, prefix) sequence atomically.
// The upsert makes concurrent allocations serialize on the sequence row,
// so two callers can never observe the same value.
func (r *repository) NextQuoteNumber(ctx context.Context, companyID int64, prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultQuotePrefix
	}
	var seq int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO quote_sequences (company_id, prefix, seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, prefix)
		DO UPDATE SET seq = quote_sequences.seq + 1
		RETURNING seq`, companyID, prefix).Scan(&seq)
	if err != nil {
		return "", err
	}
	return FormatQuoteNumber(prefix, seq), nil
}

// ExpireOverdue marks sent quotations whose validity window has passed.
func (r *repository) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE quotations
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND valid_until IS NOT NULL AND valid_until < $3`,
		StatusExpired, StatusSent, asOf)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
