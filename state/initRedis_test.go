package state

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis_Success(t *testing.T) {
	mockRedis := miniredis.RunT(t)
	defer mockRedis.Close()

	client, err := InitRedis(mockRedis.Addr(), "", 0)
	require.NoError(t, err, "InitRedis should not return an error")
	require.NotNil(t, client, "Redis client should not be nil")

	assert.NoError(t, client.Ping(context.Background()).Err(), "Should be able to ping Redis")

	client.Close()
}

func TestInitRedis_WithPassword(t *testing.T) {
	mockRedis := miniredis.RunT(t)
	defer mockRedis.Close()

	password := "testpassword"
	mockRedis.RequireAuth(password)

	client, err := InitRedis(mockRedis.Addr(), password, 0)
	require.NoError(t, err, "InitRedis should work with correct password")
	require.NotNil(t, client)

	client.Close()
}

func TestInitRedis_WithWrongPassword(t *testing.T) {
	mockRedis := miniredis.RunT(t)
	defer mockRedis.Close()

	mockRedis.RequireAuth("correctPassword")

	client, err := InitRedis(mockRedis.Addr(), "wrongpassword", 0)
	assert.Error(t, err, "InitRedis should return error with wrong password")
	assert.Nil(t, client, "Redis client should be nil on error")
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestInitRedis_InvalidAddress(t *testing.T) {
	client, err := InitRedis("invalid-address:6379", "", 0)

	assert.Error(t, err, "InitRedis should return error with invalid address")
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
