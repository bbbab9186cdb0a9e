package activity_repo

import (
	"context"
	"time"

	"github.com/zx0938013408/teamb-server/internal/entity"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
)

type ActivityRepoContract interface {
	// ListRegistrationsForDate returns one row per registered member of
	// every activity held on the given day.
	ListRegistrationsForDate(ctx context.Context, day time.Time) ([]entity.UpcomingRegistration, *app_error.AppError)
}
