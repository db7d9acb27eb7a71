//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fleetrent/internal/pkg/config"
	"fleetrent/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken mints a staff token the way the external auth service would,
// signed with the secret the application validates against.
func IssueToken(t *testing.T, cfg config.Config, staffID, ownerID uuid.UUID, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(staffID, ownerID, role)
	require.NoError(t, err)

	return token
}
