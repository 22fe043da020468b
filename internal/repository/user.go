package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/grab-simulator/backend/internal/db"
	"github.com/grab-simulator/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, email, coins, total_shipment_delivered, total_income, created_at, last_login_at`

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user
	(id, email, coins, total_shipment_delivered, total_income, created_at, last_login_at)
	VALUES(:id, :email, :coins, :total_shipment_delivered, :total_income, :created_at, :last_login_at);
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user WHERE email = ?;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by email failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user WHERE id = ?;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateLastLoginAt(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE user SET last_login_at = ? WHERE id = ?;`

	if _, err := r.db.ExecContext(ctx, query, at, id); err != nil {
		return fmt.Errorf("update user last login failed: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateCoins(ctx context.Context, id int64, coins int64) error {
	const query = `UPDATE user SET coins = ? WHERE id = ?;`

	if _, err := r.db.ExecContext(ctx, query, coins, id); err != nil {
		return fmt.Errorf("update user coins failed: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateStats(ctx context.Context, id int64, stats domain.UserStats) error {
	const query = `
	UPDATE user SET coins = ?, total_shipment_delivered = ?, total_income = ? WHERE id = ?;
	`

	_, err := r.db.ExecContext(ctx, query, stats.Coins, stats.TotalShipmentDelivered, stats.TotalIncome, id)
	if err != nil {
		return fmt.Errorf("update user stats failed: %w", err)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM user`

	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count users failed: %w", err)
	}
	return count, nil
}

// GetTop returns at most limit users ordered by metric, best first.
func (r *userRepository) GetTop(ctx context.Context, metric domain.LeaderboardMetric, limit int) ([]domain.User, error) {
	var orderBy string
	switch metric {
	case domain.MetricCoins:
		orderBy = `coins DESC, created_at ASC, id ASC`
	case domain.MetricShipmentsIncome:
		orderBy = `CAST(total_shipment_delivered AS SIGNED) * total_income DESC, created_at ASC, id ASC`
	default:
		return nil, fmt.Errorf("unsupported leaderboard metric %q", metric)
	}

	query := `SELECT ` + userColumns + ` FROM user ORDER BY ` + orderBy + ` LIMIT ?`

	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query, limit); err != nil {
		return nil, fmt.Errorf("select top users failed: %w", err)
	}

	return users, nil
}
