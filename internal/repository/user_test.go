package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/grab-simulator/backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetTop_UnsupportedMetric(t *testing.T) {
	r := newUserRepository(nil)

	users, err := r.GetTop(context.Background(), "income", 10)
	assert.Error(t, err)
	assert.Nil(t, users)
}

func TestUserRepository_GetTop(t *testing.T) {
	tests := []struct {
		metric  domain.LeaderboardMetric
		orderBy string
	}{
		{domain.MetricShipmentsIncome, "ORDER BY CAST(total_shipment_delivered AS SIGNED) * total_income DESC, created_at ASC, id ASC LIMIT ?"},
		{domain.MetricCoins, "ORDER BY coins DESC, created_at ASC, id ASC LIMIT ?"},
	}
	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			dbConn, mock := newMockDB(t)
			r := newUserRepository(dbConn)

			created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			mock.ExpectQuery(regexp.QuoteMeta(tt.orderBy)).
				WithArgs(100).
				WillReturnRows(sqlmock.NewRows([]string{"id", "email", "coins", "total_shipment_delivered", "total_income", "created_at", "last_login_at"}).
					AddRow(int64(1), "a@x.com", int64(5), int64(10), int64(10), created, created))

			users, err := r.GetTop(context.Background(), tt.metric, 100)
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, "a@x.com", users[0].Email)
			assert.Equal(t, int32(10), users[0].TotalShipmentDelivered)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	dbConn, mock := newMockDB(t)
	r := newUserRepository(dbConn)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'u@x.com' for key 'ux_user_email'"})

	err := r.Create(context.Background(), &domain.User{ID: 1, Email: "u@x.com", CreatedAt: now, LastLoginAt: now})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmailNotFound(t *testing.T) {
	dbConn, mock := newMockDB(t)
	r := newUserRepository(dbConn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user WHERE email = ?")).
		WithArgs("u@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.GetByEmail(context.Background(), "u@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
