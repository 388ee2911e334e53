package currency

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists currency reference records.
type Repository interface {
	Create(ctx context.Context, cur Currency) error
	GetByCode(ctx context.Context, code string) (Currency, error)
	List(ctx context.Context) ([]Currency, error)
}

// PostgresRepository stores currencies in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a currency record. The primary key on code surfaces
// duplicates as ErrCodeExists.
func (r *PostgresRepository) Create(ctx context.Context, cur Currency) error {
	_, err := r.db.Exec(ctx, `INSERT INTO currencies (code, name) VALUES ($1, $2)`, cur.Code, cur.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrCodeExists
		}
		return err
	}
	return nil
}

// GetByCode fetches a currency by its code.
func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (Currency, error) {
	row := r.db.QueryRow(ctx, `SELECT code, name FROM currencies WHERE code = $1`, code)
	var cur Currency
	if err := row.Scan(&cur.Code, &cur.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Currency{}, ErrNotFound
		}
		return Currency{}, err
	}
	return cur, nil
}

// List returns every registered currency ordered by code.
func (r *PostgresRepository) List(ctx context.Context) ([]Currency, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM currencies ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var currencies []Currency
	for rows.Next() {
		var cur Currency
		if err := rows.Scan(&cur.Code, &cur.Name); err != nil {
			return nil, err
		}
		currencies = append(currencies, cur)
	}
	return currencies, rows.Err()
}
