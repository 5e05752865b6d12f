package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"cash-trader-be/internal/config"
	"cash-trader-be/internal/dto"
)

var ErrInvalidCredentials = errors.New("invalid operator or pin")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authService authenticates shop operators against the configured PIN hash.
// Operators share a till, so there is no user table; the operator name only
// tags the session for the audit trail.
type authService struct {
	cfg *config.AuthConfig
}

func NewAuthService(cfg *config.AuthConfig) IAuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.OperatorPinHash == "" {
		return nil, errors.New("operator pin not configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OperatorPinHash), []byte(req.Pin)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": req.Operator,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.TokenTTLMinutes) * time.Minute).Unix(),
	}
	if req.Station != "" {
		claims["station"] = req.Station
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signed}, nil
}
