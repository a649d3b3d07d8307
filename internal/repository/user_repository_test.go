package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-service/internal/domain"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// fakeUserRow feeds scanUser a row with a configurable role column.
type fakeUserRow struct {
	role string
}

func (r fakeUserRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = 1
	*(dest[1].(*string)) = "alice"
	*(dest[2].(*string)) = "alice@example.com"
	*(dest[3].(*string)) = "Alice Souza"
	*(dest[4].(*string)) = "12345678900"
	*(dest[5].(**string)) = nil
	*(dest[6].(*string)) = "hashed"
	*(dest[7].(*string)) = "active"
	*(dest[8].(*string)) = r.role
	*(dest[9].(*time.Time)) = time.Now()
	*(dest[10].(**time.Time)) = nil
	*(dest[11].(**time.Time)) = nil
	return nil
}

func TestScanUserParsesKnownRoles(t *testing.T) {
	user, err := scanUser(fakeUserRow{role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.Equal(t, "alice", user.Username)
}

func TestScanUserRejectsUnknownRole(t *testing.T) {
	user, err := scanUser(fakeUserRow{role: "superuser"})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, "STORE_ERROR", apperrors.ToDomainError(err).Code)
}
