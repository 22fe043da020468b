package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/grab-simulator/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type otpCodeRepository struct {
	db *sqlx.DB
}

func newOtpCodeRepository(db *sqlx.DB) *otpCodeRepository {
	return &otpCodeRepository{
		db: db,
	}
}

func (r *otpCodeRepository) ReplaceActive(ctx context.Context, code *domain.OtpCode) error {
	const op = "repository.otpCode.ReplaceActive"

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.supersedeActiveWithTx(ctx, tx, code.Email, code.CreatedAt); err != nil {
			return err
		}

		return r.createWithTx(ctx, tx, code)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *otpCodeRepository) supersedeActiveWithTx(ctx context.Context, tx *sqlx.Tx, email string, now time.Time) error {
	const op = "repository.otpCode.supersedeActive"

	const query = `
    UPDATE otp_code
    SET used = 1, used_at = ?
    WHERE email = ? AND used = 0 AND expires_at > ?
    `

	if _, err := tx.ExecContext(ctx, query, now, email, now); err != nil {
		return fmt.Errorf("%s: update otp_code failed: %w", op, err)
	}

	return nil
}

func (r *otpCodeRepository) createWithTx(ctx context.Context, tx *sqlx.Tx, code *domain.OtpCode) error {
	const op = "repository.otpCode.create"

	const query = `
    INSERT INTO otp_code (id, email, code_hash, expires_at, used, created_at)
    VALUES (uuid_to_bin(:id), :email, :code_hash, :expires_at, :used, :created_at)
    `

	res, err := tx.NamedExecContext(ctx, query, code)
	if err != nil {
		return fmt.Errorf("%s: insert otp_code failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

func (r *otpCodeRepository) Consume(ctx context.Context, email string, codeHash string, now time.Time) (*domain.OtpCode, error) {
	const op = "repository.otpCode.Consume"

	const selectQuery = `
    SELECT id, email, code_hash, expires_at, used, used_at, created_at
    FROM otp_code
    WHERE email = ? AND code_hash = ? AND used = 0 AND expires_at > ?
    ORDER BY created_at DESC
    LIMIT 1
    FOR UPDATE
    `

	const updateQuery = `
    UPDATE otp_code
    SET used = 1, used_at = ?
    WHERE id = uuid_to_bin(?) AND used = 0
    `

	var code domain.OtpCode
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &code, selectQuery, email, codeHash, now); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("select otp_code failed: %w", err)
		}

		res, err := tx.ExecContext(ctx, updateQuery, now, code.ID)
		if err != nil {
			return fmt.Errorf("update otp_code failed: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected failed: %w", err)
		}

		// consumed concurrently
		if rows != 1 {
			return domain.ErrNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	code.Used = true
	code.UsedAt = &now

	return &code, nil
}
