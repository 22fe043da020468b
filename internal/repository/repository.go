package repository

import (
	"context"
	"time"

	"github.com/grab-simulator/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users    Users
	OtpCodes OtpCodes
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:    newUserRepository(db),
		OtpCodes: newOtpCodeRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetOneByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateLastLoginAt(ctx context.Context, id int64, at time.Time) error
	UpdateCoins(ctx context.Context, id int64, coins int64) error
	UpdateStats(ctx context.Context, id int64, stats domain.UserStats) error
	Count(ctx context.Context) (int64, error)
	GetTop(ctx context.Context, metric domain.LeaderboardMetric, limit int) ([]domain.User, error)
}

type OtpCodes interface {
	// ReplaceActive marks every active code of code.Email used and stores code,
	// both in one transaction.
	ReplaceActive(ctx context.Context, code *domain.OtpCode) error
	// Consume marks the newest active code matching email and codeHash used.
	// It returns domain.ErrNotFound when no such code exists.
	Consume(ctx context.Context, email string, codeHash string, now time.Time) (*domain.OtpCode, error)
}
