package services

import (
	"testing"

	"github.com/dig-it-all-from-digital/Plauntie/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeUpsertsByEndpoint(t *testing.T) {
	db := setupTestDB(t)
	svc := &PushService{db: db}

	_, err := svc.Subscribe("user-1", "https://push.example/ep-1", "key-a", "auth-a")
	require.NoError(t, err)

	// same endpoint, fresh keys and a different user: replaces, not stacks
	_, err = svc.Subscribe("user-2", "https://push.example/ep-1", "key-b", "auth-b")
	require.NoError(t, err)

	var subs []models.PushSubscription
	require.NoError(t, db.Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.Equal(t, "user-2", subs[0].UserID)
	assert.Equal(t, "key-b", subs[0].P256dh)
	assert.Equal(t, "auth-b", subs[0].Auth)
}

func TestSubscribeDistinctEndpoints(t *testing.T) {
	db := setupTestDB(t)
	svc := &PushService{db: db}

	_, err := svc.Subscribe("user-1", "https://push.example/ep-1", "key-a", "auth-a")
	require.NoError(t, err)
	_, err = svc.Subscribe("user-1", "https://push.example/ep-2", "key-b", "auth-b")
	require.NoError(t, err)

	var count int64
	db.Model(&models.PushSubscription{}).Count(&count)
	assert.EqualValues(t, 2, count)
}
