package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/grab-simulator/backend/internal/domain"
	"github.com/grab-simulator/backend/internal/repository"
)

type userService struct {
	userRepository repository.Users
}

func newUserService(userRepository repository.Users) *userService {
	return &userService{
		userRepository: userRepository,
	}
}

func (s *userService) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateCoins(ctx context.Context, id int64, coins int64) (*domain.User, error) {
	if coins < 0 {
		return nil, ErrNegativeValue
	}

	user, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepository.UpdateCoins(ctx, id, coins); err != nil {
		return nil, fmt.Errorf("update coins failed: %w", err)
	}
	user.Coins = coins

	return user, nil
}

func (s *userService) UpdateStats(ctx context.Context, id int64, stats domain.UserStats) (*domain.User, error) {
	if stats.Coins < 0 || stats.TotalShipmentDelivered < 0 || stats.TotalIncome < 0 {
		return nil, ErrNegativeValue
	}

	// keeps shipments*income inside int64
	if stats.TotalIncome > math.MaxInt32 {
		return nil, ErrValueTooLarge
	}

	user, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepository.UpdateStats(ctx, id, stats); err != nil {
		return nil, fmt.Errorf("update stats failed: %w", err)
	}
	user.Coins = stats.Coins
	user.TotalShipmentDelivered = stats.TotalShipmentDelivered
	user.TotalIncome = stats.TotalIncome

	return user, nil
}
