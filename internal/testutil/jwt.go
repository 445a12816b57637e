//go:build unit || integration

package testutil

import (
	"testing"
	"time"

	"lane-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const TestJWTSecret = "test-secret-key-for-testing-only"

func StaffToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token, err := jwt.NewService(secret, time.Hour).GenerateToken(subject, jwt.RoleStaff, time.Now())
	require.NoError(t, err)
	return token
}

func ExpiredStaffToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token, err := jwt.NewService(secret, time.Minute).GenerateToken(subject, jwt.RoleStaff, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return token
}
