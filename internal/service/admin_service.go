package service

import (
	"context"
	"crypto/subtle"
	"time"

	"soulshub/internal/middleware"
	"soulshub/internal/models"
	"soulshub/internal/observability"
	"soulshub/internal/repository"
)

// loginMinDuration is the floor every login attempt takes, success or not.
// The page shows a deliberate pause before the gate opens.
const loginMinDuration = time.Second

// AdminService handles the admin gate and the full data reset. The gate is a
// shared secret for content editing, not an authentication system.
type AdminService interface {
	Login(ctx context.Context, password string) (string, error)
	ResetAll(ctx context.Context, confirm bool) error
}

type adminService struct {
	admin    repository.AdminRepository
	password string
	secret   string
}

// NewAdminService creates a new admin service.
func NewAdminService(admin repository.AdminRepository, password, secret string) AdminService {
	return &adminService{admin: admin, password: password, secret: secret}
}

// Login compares the shared secret and, on a match, issues a session token
// stamped with the current epoch. Every attempt takes at least the minimum
// duration so success and failure are indistinguishable by timing.
func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	start := time.Now()
	defer func() {
		if remaining := loginMinDuration - time.Since(start); remaining > 0 {
			select {
			case <-time.After(remaining):
			case <-ctx.Done():
			}
		}
	}()

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		observability.AdminLogins.WithLabelValues("denied").Inc()
		return "", models.NewUnauthorizedError("Incorrect password")
	}

	epoch, err := s.admin.Epoch(ctx)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	token, err := middleware.IssueSessionToken(s.secret, epoch)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	observability.AdminLogins.WithLabelValues("ok").Inc()
	middleware.Logger.InfoContext(ctx, "admin session opened")
	return token, nil
}

// ResetAll wipes every stored collection and invalidates all outstanding
// admin sessions by bumping the epoch.
func (s *adminService) ResetAll(ctx context.Context, confirm bool) error {
	if !confirm {
		return models.NewValidationError("Reset requires confirmation")
	}
	if err := s.admin.ResetAll(ctx); err != nil {
		return models.NewInternalError(err)
	}
	middleware.Logger.WarnContext(ctx, "all community data reset")
	return nil
}
