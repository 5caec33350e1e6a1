package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by an admin session token. Epoch is
// checked against the stored admin epoch so that a full data reset invalidates
// every token issued before the reset.
type SessionClaims struct {
	Epoch int64 `json:"epoch"`
	jwt.RegisteredClaims
}

// EpochSource reports the current admin epoch from the persistent store.
type EpochSource interface {
	Epoch(ctx context.Context) (int64, error)
}

// SessionTTL is how long an admin session token remains valid.
const SessionTTL = 12 * time.Hour

// IssueSessionToken mints a signed admin session token bound to the given epoch.
func IssueSessionToken(secret string, epoch int64) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Epoch: epoch,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token's signature and expiry and
// returns its claims.
func ParseSessionToken(secret, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AdminRequired guards admin-only routes. It requires a Bearer token whose
// signature, expiry, and epoch all check out. A token minted before the last
// full reset carries a stale epoch and is rejected.
func AdminRequired(secret string, epochs EpochSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Bearer token required",
			})
		}

		claims, err := ParseSessionToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		current, err := epochs.Epoch(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to verify session",
			})
		}
		if claims.Epoch != current {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Session is no longer valid",
			})
		}

		c.Locals("admin", true)
		return c.Next()
	}
}
