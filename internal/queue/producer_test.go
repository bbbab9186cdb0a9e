package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestProducer_EnqueueScoresByRunAt(t *testing.T) {
	mr, client := newTestRedis(t)
	producer := NewProducer(client)

	runAt := time.Now().Add(10 * time.Minute).Unix()
	job := Job{
		ID:       "job-1",
		Type:     "activity_reminder",
		Payload:  MustMarshal(map[string]any{"member_id": 7}),
		MaxRetry: 3,
		RunAt:    runAt,
	}

	require.NoError(t, producer.Enqueue(context.Background(), job))

	members, err := mr.ZMembers(ReminderQueueKey)
	require.NoError(t, err)
	require.Len(t, members, 1)

	score, err := mr.ZScore(ReminderQueueKey, members[0])
	require.NoError(t, err)
	assert.Equal(t, float64(runAt), score)

	var stored Job
	require.NoError(t, json.Unmarshal([]byte(members[0]), &stored))
	assert.Equal(t, "job-1", stored.ID)
	assert.Equal(t, "activity_reminder", stored.Type)
}

func TestProducer_EnqueueKeepsJobsSeparate(t *testing.T) {
	mr, client := newTestRedis(t)
	producer := NewProducer(client)
	ctx := context.Background()

	for i, id := range []string{"job-a", "job-b"} {
		require.NoError(t, producer.Enqueue(ctx, Job{
			ID:    id,
			Type:  "activity_reminder",
			RunAt: time.Now().Add(time.Duration(i) * time.Minute).Unix(),
		}))
	}

	members, err := mr.ZMembers(ReminderQueueKey)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}
