package activity_repo

import (
	"context"
	"fmt"
	"testing"
	"time"

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

	require.NoError(t, db.AutoMigrate(&entity.Member{}, &entity.Activity{}, &entity.Registration{}))
	return &state.AppState{DB: db}
}

func seedRegistration(t *testing.T, db *gorm.DB, member entity.Member, activity entity.Activity) {
	t.Helper()
	require.NoError(t, db.Create(&member).Error)
	require.NoError(t, db.Create(&activity).Error)
	require.NoError(t, db.Create(&entity.Registration{MemberID: member.ID, ActivityID: activity.ID}).Error)
}

func TestListRegistrationsForDate(t *testing.T) {
	appState := newTestAppState(t)
	repo := NewActivityRepo(appState)

	tomorrow := time.Now().Add(24 * time.Hour)
	onTheDay := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 14, 30, 0, 0, tomorrow.Location())

	seedRegistration(t, appState.DB,
		entity.Member{ID: 7, Name: "王小明"},
		entity.Activity{ID: 1, ActivityName: "登山健行", ActivityTime: onTheDay})
	seedRegistration(t, appState.DB,
		entity.Member{ID: 8, Name: "李小華"},
		entity.Activity{ID: 2, ActivityName: "夜間觀星", ActivityTime: onTheDay.Add(4 * time.Hour)})
	// Two days out: outside the scan window.
	seedRegistration(t, appState.DB,
		entity.Member{ID: 9, Name: "陳大文"},
		entity.Activity{ID: 3, ActivityName: "淨灘活動", ActivityTime: onTheDay.Add(24 * time.Hour)})

	rows, appErr := repo.ListRegistrationsForDate(context.Background(), tomorrow)
	require.Nil(t, appErr)
	require.Len(t, rows, 2)

	byMember := make(map[int]entity.UpcomingRegistration, len(rows))
	for _, row := range rows {
		byMember[row.MemberID] = row
	}
	require.Contains(t, byMember, 7)
	assert.Equal(t, "王小明", byMember[7].MemberName)
	assert.Equal(t, "登山健行", byMember[7].ActivityName)
	assert.Equal(t, onTheDay.Unix(), byMember[7].ActivityTime.Unix())
	require.Contains(t, byMember, 8)
	assert.Equal(t, "夜間觀星", byMember[8].ActivityName)
}

func TestListRegistrationsForDate_Empty(t *testing.T) {
	repo := NewActivityRepo(newTestAppState(t))

	rows, appErr := repo.ListRegistrationsForDate(context.Background(), time.Now().Add(24*time.Hour))
	require.Nil(t, appErr)
	assert.Empty(t, rows)
}
