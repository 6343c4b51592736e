package services

import (
	"fmt"

	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/platform/config"
	"github.com/zapfwerk/deckelkasse/internal/utils"
)

// tokenService issues JWT access tokens for authenticated staff.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates the token service.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) GenerateAccessToken(userID string) (string, int64, error) {
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, int64(s.cfg.JWTExpiryDuration.Seconds()), nil
}
