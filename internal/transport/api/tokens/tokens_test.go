package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUserJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(7, domain.RoleAdmin, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	_, err = ValidateUserJWT(token, []byte("another secret"))
	require.Error(t, err)

	expired, err := GenerateUserJWT(7, domain.RoleUser, -time.Minute, key)
	require.NoError(t, err)
	_, err = ValidateUserJWT(expired, key)
	require.ErrorIs(t, err, ErrTokenExpired)

	noRole, err := GenerateUserJWT(8, "", time.Hour, key)
	require.NoError(t, err)
	claims, err = ValidateUserJWT(noRole, key)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, claims.Role)
}
