package user

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "guest@example.com", normalizeEmail("  Guest@Example.COM "))
}

func TestBuildProfileUpdate_OnlySetFields(t *testing.T) {
	query, args, err := buildProfileUpdate("u-1", domain.ProfileUpdate{DisplayName: ptr.Ptr("Ana")}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "display_name = $1")
	assert.NotContains(t, query, "photo_url =")
	assert.Contains(t, query, "WHERE id = $2 RETURNING id, email")
	assert.Equal(t, []interface{}{"Ana", "u-1"}, args)
}

func TestBuildProfileUpdate_BothFields(t *testing.T) {
	query, args, err := buildProfileUpdate("u-1", domain.ProfileUpdate{
		DisplayName: ptr.Ptr("Ana"),
		PhotoURL:    ptr.Ptr("https://res.cloudinary.com/demo/a.png"),
	}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "photo_url = $2")
	assert.Len(t, args, 3)
}
