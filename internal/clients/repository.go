package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	Get(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context, req ListClientsRequest) ([]Client, int, error)
	Create(ctx context.Context, client Client) (*Client, error)
	Update(ctx context.Context, id int64, client Client) (*Client, error)
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

const clientColumns = `id, name, email, phone, address, city, state, postal_code, country,
	contact_person, notes, created_at, updated_at`

func scanClient(row pgx.Row) (*Client, error) {
	var c Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.State,
		&c.PostalCode, &c.Country, &c.ContactPerson, &c.Notes,
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

func (r *repository) Get(ctx context.Context, id int64) (*Client, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM clients WHERE id = $1", clientColumns), id)
	return scanClient(row)
}

func (r *repository) List(ctx context.Context, req ListClientsRequest) ([]Client, int, error) {
	whereClause := ""
	var args []interface{}
	argPos := 1

	if req.Search != "" {
		whereClause = fmt.Sprintf("WHERE (name ILIKE $%d OR email ILIKE $%d OR contact_person ILIKE $%d)", argPos, argPos, argPos)
		args = append(args, "%"+req.Search+"%")
		argPos++
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM clients %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(
		"SELECT %s FROM clients %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		clientColumns, whereClause, argPos, argPos+1)
	args = append(args, limit, req.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *c)
	}
	return result, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, c Client) (*Client, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO clients (name, email, phone, address, city, state, postal_code, country, contact_person, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, clientColumns),
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode,
		c.Country, c.ContactPerson, c.Notes,
	)
	return scanClient(row)
}

func (r *repository) Update(ctx context.Context, id int64, c Client) (*Client, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6,
			postal_code = $7, country = $8, contact_person = $9, notes = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING %s`, clientColumns),
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode,
		c.Country, c.ContactPerson, c.Notes, id,
	)
	return scanClient(row)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
