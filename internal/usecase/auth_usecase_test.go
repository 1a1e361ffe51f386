package usecase

import (
	"testing"
	"time"

	"hr-payroll/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndVerify(t *testing.T) {
	auth, err := NewAuthUsecase("hr@company.name", "123", "test-secret", time.Hour)
	require.NoError(t, err)

	token, err := auth.Login("hr@company.name", "123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, auth.Verify(token))

	other, err := NewAuthUsecase("hr@company.name", "123", "another-secret", time.Hour)
	require.NoError(t, err)
	assert.Error(t, other.Verify(token))
	assert.Error(t, auth.Verify(""))
	assert.Error(t, auth.Verify("garbage"))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, err := NewAuthUsecase("hr@company.name", "123", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = auth.Login("hr@company.name", "1234")
	requireCode(t, err, apperror.ErrCodeUnauthorized)

	_, err = auth.Login("someone@company.name", "123")
	requireCode(t, err, apperror.ErrCodeUnauthorized)

	_, err = auth.Login("", "")
	requireCode(t, err, apperror.ErrCodeValidation)
}

func TestExpiredSessionRejected(t *testing.T) {
	auth, err := NewAuthUsecase("hr@company.name", "123", "test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := auth.Login("hr@company.name", "123")
	require.NoError(t, err)
	assert.Error(t, auth.Verify(token))
}
