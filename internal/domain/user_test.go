package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_user", func(t *testing.T) {
		user, err := NewUser("a@x.com", map[string]any{"name": "Ada"})
		require.NoError(t, err)

		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "Ada", user.Profile["name"])
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("missing_email", func(t *testing.T) {
		user, err := NewUser("", nil)
		assert.ErrorIs(t, err, ErrEmptyUserEmail)
		assert.Nil(t, user)
	})
}
