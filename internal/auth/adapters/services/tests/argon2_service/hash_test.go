package argon2_service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "notehub/internal/auth/adapters/services"
	"notehub/internal/auth/domain/services"
)

//nolint:gosec
const (
	msgEmptyPasswordError          = "should return error for empty password"
	msgNoErrorValidPassword        = "should not return error for valid password"
	msgHashNotEmpty                = "hash should not be empty"
	msgErrorInvalidPassword        = "error should be err invalid password"
	msgHashVerifiable              = "created hash should be verifiable"
	msgHashEmptyInvalidPassword    = "hash should be empty for invalid password"
	msgHashHasPHCFormat            = "hash should be in PHC string format"
	msgDifferentHashesSamePassword = "hashes of same password should differ due to salt"
	msgShortPasswordAccepted       = "short password should be accepted"
)

func TestHashSuccess(t *testing.T) {
	service := adapters.NewArgon2()
	validPassword := "validPassword123"
	ctx := context.Background()

	hash, err := service.Hash(ctx, validPassword)

	require.NoError(t, err, msgNoErrorValidPassword)
	assert.NotEmpty(t, hash, msgHashNotEmpty)

	valid, err := service.Verify(ctx, validPassword, hash)
	require.NoError(t, err, msgHashVerifiable)
	assert.True(t, valid, msgHashVerifiable)
}

func TestHashPHCFormat(t *testing.T) {
	service := adapters.NewArgon2()
	ctx := context.Background()

	hash, err := service.Hash(ctx, "password123")

	require.NoError(t, err, msgNoErrorValidPassword)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), msgHashHasPHCFormat)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6, msgHashHasPHCFormat)
	assert.Contains(t, parts[3], "m=", msgHashHasPHCFormat)
	assert.Contains(t, parts[3], "t=", msgHashHasPHCFormat)
	assert.Contains(t, parts[3], "p=", msgHashHasPHCFormat)
}

func TestHashEmptyPassword(t *testing.T) {
	service := adapters.NewArgon2()
	ctx := context.Background()

	hash, err := service.Hash(ctx, "")

	require.Error(t, err, msgEmptyPasswordError)
	assert.Empty(t, hash, msgHashEmptyInvalidPassword)
	assert.ErrorIs(t, err, services.ErrInvalidPassword, msgErrorInvalidPassword)
}

func TestHashShortPassword(t *testing.T) {
	service := adapters.NewArgon2()
	ctx := context.Background()

	hash, err := service.Hash(ctx, "123456")

	require.NoError(t, err, msgShortPasswordAccepted)
	assert.NotEmpty(t, hash, msgHashNotEmpty)
}

func TestHashSamePasswordDifferentHashes(t *testing.T) {
	service := adapters.NewArgon2()
	ctx := context.Background()
	password := "password123"

	hash1, err := service.Hash(ctx, password)
	require.NoError(t, err, msgNoErrorValidPassword)

	hash2, err := service.Hash(ctx, password)
	require.NoError(t, err, msgNoErrorValidPassword)

	assert.NotEqual(t, hash1, hash2, msgDifferentHashesSamePassword)
}
