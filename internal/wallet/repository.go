package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists wallet records.
type Repository interface {
	Create(ctx context.Context, w Wallet) error
	Get(ctx context.Context, id string) (Wallet, error)
	// UpdateBalance applies a signed delta to the stored balance and returns
	// the updated wallet. Updates on one wallet are serialized; a delta that
	// would leave the balance negative fails with ErrInsufficientBalance and
	// mutates nothing.
	UpdateBalance(ctx context.Context, id string, delta int64) (Wallet, error)
}

// PostgresRepository stores wallets in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a wallet record.
func (r *PostgresRepository) Create(ctx context.Context, w Wallet) error {
	walletID, err := uuid.Parse(w.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO wallets (id, user_id, balance, currency_code, created_at)
        VALUES ($1, $2, $3, $4, $5)`, walletID, w.UserID, w.Balance, w.CurrencyCode, w.CreatedAt.UTC())
	return err
}

// Get fetches a wallet by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Wallet, error) {
	walletUUID, err := uuid.Parse(id)
	if err != nil {
		return Wallet{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, balance, currency_code, created_at
        FROM wallets WHERE id = $1`, walletUUID)
	return scanWallet(row)
}

// UpdateBalance locks the wallet row, applies the overdraft check and the
// delta inside one transaction. The row lock serializes concurrent updates on
// the same wallet.
func (r *PostgresRepository) UpdateBalance(ctx context.Context, id string, delta int64) (Wallet, error) {
	walletUUID, err := uuid.Parse(id)
	if err != nil {
		return Wallet{}, ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Wallet{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	row := tx.QueryRow(ctx, `SELECT id, user_id, balance, currency_code, created_at
        FROM wallets WHERE id = $1 FOR UPDATE`, walletUUID)
	w, err := scanWallet(row)
	if err != nil {
		return Wallet{}, err
	}

	newBalance := w.Balance + delta
	if newBalance < 0 {
		return Wallet{}, ErrInsufficientBalance
	}

	if _, err := tx.Exec(ctx, `UPDATE wallets SET balance = $1 WHERE id = $2`, newBalance, walletUUID); err != nil {
		return Wallet{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Wallet{}, err
	}

	w.Balance = newBalance
	return w, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWallet(row rowScanner) (Wallet, error) {
	var (
		w         Wallet
		idVal     uuid.UUID
		createdAt time.Time
	)
	if err := row.Scan(&idVal, &w.UserID, &w.Balance, &w.CurrencyCode, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Wallet{}, ErrNotFound
		}
		return Wallet{}, err
	}
	w.ID = idVal.String()
	w.CreatedAt = createdAt.UTC()
	return w, nil
}
