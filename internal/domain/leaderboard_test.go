package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardMetric_Score(t *testing.T) {
	u := &User{Coins: 7, TotalShipmentDelivered: math.MaxInt32, TotalIncome: math.MaxInt32}

	assert.Equal(t, int64(math.MaxInt32)*int64(math.MaxInt32), MetricShipmentsIncome.Score(u))
	assert.Equal(t, int64(7), MetricCoins.Score(u))
}

func TestLeaderboardMetric_Ahead(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	a := &User{ID: 2, TotalShipmentDelivered: 10, TotalIncome: 10, CreatedAt: early}
	b := &User{ID: 1, TotalShipmentDelivered: 5, TotalIncome: 20, CreatedAt: late}
	c := &User{ID: 3, TotalShipmentDelivered: 1, TotalIncome: 1, CreatedAt: early}

	assert.True(t, MetricShipmentsIncome.Ahead(a, b), "equal score, earlier registration wins")
	assert.False(t, MetricShipmentsIncome.Ahead(b, a))
	assert.True(t, MetricShipmentsIncome.Ahead(b, c), "higher score wins")

	twin := &User{ID: 1, TotalShipmentDelivered: 10, TotalIncome: 10, CreatedAt: early}
	assert.True(t, MetricShipmentsIncome.Ahead(twin, a), "id breaks a full tie")
}

func TestParseLeaderboardMetric(t *testing.T) {
	m, err := ParseLeaderboardMetric("coins")
	assert.NoError(t, err)
	assert.Equal(t, MetricCoins, m)

	_, err = ParseLeaderboardMetric("income")
	assert.Error(t, err)
}
