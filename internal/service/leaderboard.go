package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/grab-simulator/backend/internal/domain"
	"github.com/grab-simulator/backend/internal/repository"
)

const (
	DefaultLeaderboardLimit = 100
	MaxLeaderboardLimit     = 1000
)

// ClampLeaderboardLimit maps any limit outside (0, MaxLeaderboardLimit] to the default.
func ClampLeaderboardLimit(limit int) int {
	if limit <= 0 || limit > MaxLeaderboardLimit {
		return DefaultLeaderboardLimit
	}
	return limit
}

type leaderboardService struct {
	userRepository repository.Users
	metric         domain.LeaderboardMetric
}

func newLeaderboardService(userRepository repository.Users, metric domain.LeaderboardMetric) *leaderboardService {
	return &leaderboardService{
		userRepository: userRepository,
		metric:         metric,
	}
}

func (s *leaderboardService) Rank(ctx context.Context, limit int) (*domain.Leaderboard, error) {
	limit = ClampLeaderboardLimit(limit)

	users, err := s.userRepository.GetTop(ctx, s.metric, limit)
	if err != nil {
		return nil, fmt.Errorf("get top users failed: %w", err)
	}

	total, err := s.userRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users failed: %w", err)
	}

	sort.SliceStable(users, func(i, j int) bool {
		return s.metric.Ahead(&users[i], &users[j])
	})

	if len(users) > limit {
		users = users[:limit]
	}

	entries := make([]domain.LeaderboardEntry, len(users))
	for i := range users {
		u := &users[i]
		entries[i] = domain.LeaderboardEntry{
			Rank:                   i + 1,
			UserID:                 u.ID,
			Email:                  u.Email,
			Coins:                  u.Coins,
			TotalShipmentDelivered: u.TotalShipmentDelivered,
			TotalIncome:            u.TotalIncome,
			Value:                  s.metric.Score(u),
			CreatedAt:              u.CreatedAt,
		}
	}

	return &domain.Leaderboard{
		Metric:     s.metric,
		Entries:    entries,
		TotalCount: total,
	}, nil
}
