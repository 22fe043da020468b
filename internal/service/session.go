package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grab-simulator/backend/internal/domain"
	"github.com/grab-simulator/backend/internal/repository"
	"github.com/grab-simulator/backend/pkg/auth"

	"github.com/bwmarrin/snowflake"
)

type sessionService struct {
	userRepository repository.Users
	tokenManager   auth.TokenManager
	idNode         *snowflake.Node
	now            func() time.Time
}

func newSessionService(userRepository repository.Users, tokenManager auth.TokenManager, idNode *snowflake.Node) *sessionService {
	return &sessionService{
		userRepository: userRepository,
		tokenManager:   tokenManager,
		idNode:         idNode,
		now:            time.Now,
	}
}

// Issue signs a session token for email, registering the user on first sign-in.
func (s *sessionService) Issue(ctx context.Context, email string) (*Session, error) {
	user, err := s.touchUser(ctx, email)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenManager.NewJWT(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	return &Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func (s *sessionService) touchUser(ctx context.Context, email string) (*domain.User, error) {
	now := s.now().UTC()

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if user == nil {
		user = &domain.User{
			ID:          s.idNode.Generate().Int64(),
			Email:       email,
			CreatedAt:   now,
			LastLoginAt: now,
		}

		err = s.userRepository.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, fmt.Errorf("create user failed: %w", err)
		}

		// registered by a concurrent sign-in
		user, err = s.userRepository.GetByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("get user by email failed: %w", err)
		}
	}

	if err := s.userRepository.UpdateLastLoginAt(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("update last login failed: %w", err)
	}
	user.LastLoginAt = now

	return user, nil
}
