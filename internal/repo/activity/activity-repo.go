package activity_repo

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/internal/entity"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/state"
)

type ActivityRepo struct {
	AppState *state.AppState
}

func NewActivityRepo(appState *state.AppState) ActivityRepoContract {
	return &ActivityRepo{
		AppState: appState,
	}
}

func (r *ActivityRepo) ListRegistrationsForDate(ctx context.Context, day time.Time) ([]entity.UpcomingRegistration, *app_error.AppError) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var rows []entity.UpcomingRegistration
	err := r.AppState.DB.WithContext(ctx).
		Table("registered r").
		Select("r.member_id, m.name AS member_name, a.activity_name, a.activity_time").
		Joins("JOIN members m ON r.member_id = m.id").
		Joins("JOIN activity_list a ON r.activity_id = a.al_id").
		Where("a.activity_time >= ? AND a.activity_time < ?", dayStart, dayEnd).
		Scan(&rows).Error
	if err != nil {
		log.Error().Err(err).Time("day", dayStart).Msg("failed to fetch upcoming registrations")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch upcoming registrations", "db-error")
	}

	return rows, nil
}
