package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "email").
		From("users").
		Where(squirrel.Eq{"email": "guest@example.com"}).
		Where(squirrel.Eq{"provider": "password"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, email FROM users WHERE email = $1 AND provider = $2", query)
	assert.Equal(t, []interface{}{"guest@example.com", "password"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("reservations").
		Set("hidden_by_user", true).
		Where(squirrel.Eq{"id": int64(7), "user_id": "u-1"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE reservations SET hidden_by_user = $1 WHERE id = $2 AND user_id = $3", query)
	assert.Equal(t, []interface{}{true, int64(7), "u-1"}, args)
}
