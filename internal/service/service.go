package service

import (
	"context"
	"time"

	"github.com/grab-simulator/backend/internal/cache"
	"github.com/grab-simulator/backend/internal/config"
	"github.com/grab-simulator/backend/internal/domain"
	"github.com/grab-simulator/backend/internal/repository"
	"github.com/grab-simulator/backend/internal/worker"
	"github.com/grab-simulator/backend/pkg/auth"
	"github.com/grab-simulator/backend/pkg/hash"
	"github.com/grab-simulator/backend/pkg/otp"

	"github.com/bwmarrin/snowflake"
)

type Services struct {
	Otp         Otp
	Sessions    Sessions
	Auth        Auth
	Users       Users
	Leaderboard Leaderboard
	Emails      Notifier
}

type Deps struct {
	Config            *config.Config
	Hasher            hash.CodeHasher
	TokenManager      auth.TokenManager
	OtpGenerator      otp.Generator
	Locker            cache.Locker
	IDNode            *snowflake.Node
	LeaderboardMetric domain.LeaderboardMetric
	Workers           *worker.Workers
	Repos             *repository.Repositories
}

func NewServices(deps Deps) *Services {
	otpService := newOtpService(
		deps.Repos.OtpCodes,
		deps.OtpGenerator,
		deps.Hasher,
		deps.Locker,
		deps.Config.Auth.CodeTTL,
	)
	sessionService := newSessionService(deps.Repos.Users, deps.TokenManager, deps.IDNode)
	emailService := newEmailService(deps.Workers.EmailSender, deps.Config.Email, deps.Config.Auth.CodeTTL)

	return &Services{
		Otp:         otpService,
		Sessions:    sessionService,
		Auth:        newAuthService(otpService, sessionService, emailService),
		Users:       newUserService(deps.Repos.Users),
		Leaderboard: newLeaderboardService(deps.Repos.Users, deps.LeaderboardMetric),
		Emails:      emailService,
	}
}

// Otp issues and consumes one-time codes.
type Otp interface {
	// Issue stores a new code for email, superseding every active one, and
	// returns it for delivery.
	Issue(ctx context.Context, email string) (string, error)
	// Verify consumes the code. A wrong, expired, used or unknown code yields
	// false with a nil error.
	Verify(ctx context.Context, email string, code string) (bool, error)
}

type Sessions interface {
	Issue(ctx context.Context, email string) (*Session, error)
}

type Auth interface {
	RequestCode(ctx context.Context, email string) error
	SignIn(ctx context.Context, email string, code string) (*Session, error)
}

type Users interface {
	GetOneByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateCoins(ctx context.Context, id int64, coins int64) (*domain.User, error)
	UpdateStats(ctx context.Context, id int64, stats domain.UserStats) (*domain.User, error)
}

type Leaderboard interface {
	Rank(ctx context.Context, limit int) (*domain.Leaderboard, error)
}

// Notifier delivers a code to its owner.
type Notifier interface {
	SendOtpEmail(ctx context.Context, email string, code string) error
}

type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
