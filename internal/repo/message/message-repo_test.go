package message_repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zx0938013408/teamb-server/internal/entity"
	"github.com/zx0938013408/teamb-server/state"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAppState(t *testing.T) *state.AppState {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Message{}))
	return &state.AppState{DB: db}
}

func TestMessageRepo_AppendAndList(t *testing.T) {
	repo := NewMessageRepo(newTestAppState(t))
	ctx := context.Background()

	first, appErr := repo.Append(ctx, 7, "活動前提醒", "請準時參加")
	require.Nil(t, appErr)
	assert.Positive(t, first)

	second, appErr := repo.Append(ctx, 7, "活動新留言", "有人留言了")
	require.Nil(t, appErr)

	_, appErr = repo.Append(ctx, 8, "其他會員", "不該出現")
	require.Nil(t, appErr)

	messages, appErr := repo.ListForMember(ctx, 7)
	require.Nil(t, appErr)
	require.Len(t, messages, 2)
	for _, m := range messages {
		assert.Equal(t, 7, m.MemberID)
		assert.False(t, m.IsRead, "new messages start unread")
	}
	assert.ElementsMatch(t, []int64{first, second}, []int64{messages[0].ID, messages[1].ID})
}

func TestMessageRepo_ListForMemberEmpty(t *testing.T) {
	repo := NewMessageRepo(newTestAppState(t))

	messages, appErr := repo.ListForMember(context.Background(), 99)
	require.Nil(t, appErr)
	assert.Empty(t, messages)
}

func TestMessageRepo_MarkRead(t *testing.T) {
	repo := NewMessageRepo(newTestAppState(t))
	ctx := context.Background()

	id, appErr := repo.Append(ctx, 7, "t", "c")
	require.Nil(t, appErr)

	require.Nil(t, repo.MarkRead(ctx, id))

	messages, appErr := repo.ListForMember(ctx, 7)
	require.Nil(t, appErr)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsRead)

	// Marking again, or marking a missing id, stays a successful no-op.
	require.Nil(t, repo.MarkRead(ctx, id))
	require.Nil(t, repo.MarkRead(ctx, 424242))
}

func TestMessageRepo_Delete(t *testing.T) {
	repo := NewMessageRepo(newTestAppState(t))
	ctx := context.Background()

	id, appErr := repo.Append(ctx, 7, "t", "c")
	require.Nil(t, appErr)
	keep, appErr := repo.Append(ctx, 7, "t2", "c2")
	require.Nil(t, appErr)

	require.Nil(t, repo.Delete(ctx, id))

	messages, appErr := repo.ListForMember(ctx, 7)
	require.Nil(t, appErr)
	require.Len(t, messages, 1)
	assert.Equal(t, keep, messages[0].ID)

	// Deleting an already-deleted id succeeds.
	require.Nil(t, repo.Delete(ctx, id))
}
