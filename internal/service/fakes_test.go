package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/grab-simulator/backend/internal/domain"
)

type memOtpCodes struct {
	mu      sync.Mutex
	records []domain.OtpCode
	failErr error
}

func (r *memOtpCodes) ReplaceActive(_ context.Context, code *domain.OtpCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failErr != nil {
		return r.failErr
	}

	for i := range r.records {
		rec := &r.records[i]
		if rec.Email == code.Email && rec.Active(code.CreatedAt) {
			rec.Used = true
		}
	}
	r.records = append(r.records, *code)

	return nil
}

func (r *memOtpCodes) Consume(_ context.Context, email string, codeHash string, now time.Time) (*domain.OtpCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.records) - 1; i >= 0; i-- {
		rec := &r.records[i]
		if rec.Email == email && rec.CodeHash == codeHash && rec.Active(now) {
			rec.Used = true
			usedAt := now
			rec.UsedAt = &usedAt
			found := *rec
			return &found, nil
		}
	}

	return nil, domain.ErrNotFound
}

func (r *memOtpCodes) byEmail(email string) []domain.OtpCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.OtpCode
	for _, rec := range r.records {
		if rec.Email == email {
			out = append(out, rec)
		}
	}
	return out
}

type memUsers struct {
	mu    sync.Mutex
	users map[int64]*domain.User
	// raceOnCreate inserts a concurrent registration right before Create.
	raceOnCreate *domain.User
}

func newMemUsers(users ...domain.User) *memUsers {
	r := &memUsers{users: make(map[int64]*domain.User)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *memUsers) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.raceOnCreate != nil {
		other := *r.raceOnCreate
		r.users[other.ID] = &other
		r.raceOnCreate = nil
	}

	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("repository.user.Create: %w", domain.ErrDuplicateEntry)
		}
	}

	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUsers) GetOneByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	found := *u
	return &found, nil
}

func (r *memUsers) UpdateLastLoginAt(_ context.Context, id int64, at time.Time) error {
	return r.update(id, func(u *domain.User) { u.LastLoginAt = at })
}

func (r *memUsers) UpdateCoins(_ context.Context, id int64, coins int64) error {
	return r.update(id, func(u *domain.User) { u.Coins = coins })
}

func (r *memUsers) UpdateStats(_ context.Context, id int64, stats domain.UserStats) error {
	return r.update(id, func(u *domain.User) {
		u.Coins = stats.Coins
		u.TotalShipmentDelivered = stats.TotalShipmentDelivered
		u.TotalIncome = stats.TotalIncome
	})
}

func (r *memUsers) update(id int64, fn func(u *domain.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return domain.ErrNoRowsAffected
	}
	fn(u)
	return nil
}

func (r *memUsers) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// GetTop returns users in map order sorted only by score, leaving tie-breaks
// to the caller.
func (r *memUsers) GetTop(_ context.Context, metric domain.LeaderboardMetric, limit int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return metric.Score(&out[i]) > metric.Score(&out[j])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type seqGenerator struct {
	mu    sync.Mutex
	codes []string
}

func (g *seqGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := g.codes[0]
	g.codes = g.codes[1:]
	return code, nil
}
