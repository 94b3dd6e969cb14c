// File: services/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	staffRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/staff"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

// ErrInvalidCredentials is returned for a bad email/password pair. Handlers
// must not leak which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 72 * time.Hour

// AuthService authenticates staff accounts for the management endpoints.
type AuthService interface {
	SignIn(ctx context.Context, req models.StaffSignInRequest) (*models.Staff, string, error)
	SignOut(ctx context.Context, staffID, tokenHash string) error
}

type DefaultAuthService struct {
	Repo staffRepo.StaffRepository
}

// SignIn verifies the password and issues a JWT. The token's hash is stored
// so one active session exists per account and revocation is immediate; the
// previous token's cached identity is evicted so it stops working right away.
func (s *DefaultAuthService) SignIn(ctx context.Context, req models.StaffSignInRequest) (*models.Staff, string, error) {
	staff, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up staff: %w", err)
	}
	if staff == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(staff.ID, staff.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, staff.ID, utils.HashToken(token)); err != nil {
		return nil, "", fmt.Errorf("failed to persist token hash: %w", err)
	}
	if staff.TokenHash != "" {
		evictCachedToken(ctx, staff.TokenHash)
	}
	return staff, token, nil
}

// SignOut revokes the active token and evicts its cached identity.
func (s *DefaultAuthService) SignOut(ctx context.Context, staffID, tokenHash string) error {
	if err := s.Repo.SetTokenHash(ctx, staffID, ""); err != nil {
		return err
	}
	if tokenHash != "" {
		evictCachedToken(ctx, tokenHash)
	}
	return nil
}

func evictCachedToken(ctx context.Context, tokenHash string) {
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthTokenKey(tokenHash)).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict cached token", zap.Error(err))
	}
}
