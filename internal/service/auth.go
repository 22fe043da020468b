package service

import (
	"context"
	"fmt"

	emailProvider "github.com/grab-simulator/backend/pkg/email"
	"github.com/grab-simulator/backend/pkg/logger"

	"go.uber.org/zap"
)

type authService struct {
	otp      Otp
	sessions Sessions
	notifier Notifier
}

func newAuthService(otp Otp, sessions Sessions, notifier Notifier) *authService {
	return &authService{
		otp:      otp,
		sessions: sessions,
		notifier: notifier,
	}
}

// RequestCode issues a code for email and hands it to the notifier. When
// delivery fails the code stays stored but ErrDeliveryFailed is returned.
func (s *authService) RequestCode(ctx context.Context, email string) error {
	if !emailProvider.IsEmailValid(email) {
		return ErrInvalidEmail
	}

	code, err := s.otp.Issue(ctx, email)
	if err != nil {
		return fmt.Errorf("issue code failed: %w", err)
	}

	if err := s.notifier.SendOtpEmail(ctx, email, code); err != nil {
		logger.Error("send otp email failed", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return nil
}

// SignIn consumes the code and opens a session.
func (s *authService) SignIn(ctx context.Context, email string, code string) (*Session, error) {
	ok, err := s.otp.Verify(ctx, email, code)
	if err != nil {
		return nil, fmt.Errorf("verify code failed: %w", err)
	}

	if !ok {
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessions.Issue(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return session, nil
}
