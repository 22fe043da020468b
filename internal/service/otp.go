package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grab-simulator/backend/internal/cache"
	"github.com/grab-simulator/backend/internal/domain"
	"github.com/grab-simulator/backend/internal/repository"
	"github.com/grab-simulator/backend/pkg/hash"
	"github.com/grab-simulator/backend/pkg/logger"
	"github.com/grab-simulator/backend/pkg/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type otpService struct {
	otpCodeRepository repository.OtpCodes
	generator         otp.Generator
	hasher            hash.CodeHasher
	locker            cache.Locker
	codeTTL           time.Duration
	now               func() time.Time
}

func newOtpService(
	otpCodeRepository repository.OtpCodes,
	generator otp.Generator,
	hasher hash.CodeHasher,
	locker cache.Locker,
	codeTTL time.Duration,
) *otpService {
	return &otpService{
		otpCodeRepository: otpCodeRepository,
		generator:         generator,
		hasher:            hasher,
		locker:            locker,
		codeTTL:           codeTTL,
		now:               time.Now,
	}
}

func otpLockKey(email string) string {
	return "otp:" + email
}

func (s *otpService) Issue(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrInvalidEmail
	}

	code, err := s.generator.Generate()
	if err != nil {
		return "", fmt.Errorf("generate code failed: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate otp code id failed: %w", err)
	}

	unlock, err := s.locker.Lock(ctx, otpLockKey(email))
	if err != nil {
		return "", fmt.Errorf("lock email failed: %w", err)
	}
	defer unlock()

	now := s.now().UTC()
	record := &domain.OtpCode{
		ID:        id,
		Email:     email,
		CodeHash:  s.hasher.Hash(code),
		ExpiresAt: now.Add(s.codeTTL),
		CreatedAt: now,
	}

	if err := s.otpCodeRepository.ReplaceActive(ctx, record); err != nil {
		return "", fmt.Errorf("store otp code failed: %w", err)
	}

	logger.Info("otp generated", zap.String("email", email))

	return code, nil
}

func (s *otpService) Verify(ctx context.Context, email string, code string) (bool, error) {
	if email == "" {
		return false, ErrInvalidEmail
	}

	if !otp.IsWellFormed(code) {
		return false, ErrInvalidCode
	}

	unlock, err := s.locker.Lock(ctx, otpLockKey(email))
	if err != nil {
		return false, fmt.Errorf("lock email failed: %w", err)
	}
	defer unlock()

	_, err = s.otpCodeRepository.Consume(ctx, email, s.hasher.Hash(code), s.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("invalid or expired otp attempt", zap.String("email", email))
			return false, nil
		}
		return false, fmt.Errorf("consume otp code failed: %w", err)
	}

	logger.Info("otp validated", zap.String("email", email))

	return true, nil
}
