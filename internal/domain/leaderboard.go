package domain

import (
	"fmt"
	"time"
)

type LeaderboardMetric string

const (
	// MetricShipmentsIncome ranks by total shipments delivered times total income.
	MetricShipmentsIncome LeaderboardMetric = "shipments_income"
	// MetricCoins ranks by coin balance.
	MetricCoins LeaderboardMetric = "coins"
)

func ParseLeaderboardMetric(s string) (LeaderboardMetric, error) {
	switch m := LeaderboardMetric(s); m {
	case MetricShipmentsIncome, MetricCoins:
		return m, nil
	default:
		return "", fmt.Errorf("unknown leaderboard metric %q", s)
	}
}

// Score is the ranking value of u. The product is computed in int64 so two
// 32-bit counters cannot overflow.
func (m LeaderboardMetric) Score(u *User) int64 {
	if m == MetricCoins {
		return u.Coins
	}

	return int64(u.TotalShipmentDelivered) * u.TotalIncome
}

// Ahead reports whether a ranks before b: higher score first, then earlier
// registration, then lower id.
func (m LeaderboardMetric) Ahead(a, b *User) bool {
	sa, sb := m.Score(a), m.Score(b)
	if sa != sb {
		return sa > sb
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}

	return a.ID < b.ID
}

type LeaderboardEntry struct {
	Rank                   int
	UserID                 int64
	Email                  string
	Coins                  int64
	TotalShipmentDelivered int32
	TotalIncome            int64
	Value                  int64
	CreatedAt              time.Time
}

type Leaderboard struct {
	Metric     LeaderboardMetric
	Entries    []LeaderboardEntry
	TotalCount int64
}
