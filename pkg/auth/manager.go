package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/grab-simulator/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager provides logic for session token generation and parsing.
type TokenManager interface {
	NewJWT(userID int64, email string) (string, time.Time, error)
	Parse(accessToken string) (*Claims, error)
}

// Claims are the identity facts carried by a session token.
type Claims struct {
	UserID    int64
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Manager struct {
	signingKey []byte
	issuer     string
	audience   string
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.TokenTTL <= 0 {
		return nil, errors.New("empty token ttl")
	}

	return &Manager{
		signingKey: []byte(cfg.SigningKey),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		tokenTTL:   cfg.TokenTTL,
		now:        time.Now,
	}, nil
}

func (m *Manager) NewJWT(userID int64, email string) (string, time.Time, error) {
	jti, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate token id failed: %w", err)
	}

	now := m.now()
	expiresAt := now.Add(m.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			Subject:   strconv.FormatInt(userID, 10),
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	accessToken, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", time.Time{}, errors.New("sign jwt failed")
	}

	return accessToken, expiresAt, nil
}

func (m *Manager) Parse(accessToken string) (*Claims, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	return &Claims{
		UserID:    userID,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
