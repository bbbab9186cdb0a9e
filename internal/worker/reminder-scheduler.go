package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/internal/queue"
	activity_repo "github.com/zx0938013408/teamb-server/internal/repo/activity"
)

// ReminderScheduler periodically scans for activities happening tomorrow
// and enqueues one reminder job per registered member. A Redis marker key
// keeps rescans within the same day from double-enqueueing.
type ReminderScheduler struct {
	Redis        *redis.Client
	ActivityRepo activity_repo.ActivityRepoContract
	Producer     queue.Producer
	Interval     time.Duration
}

func NewReminderScheduler(rdb *redis.Client, repo activity_repo.ActivityRepoContract, producer queue.Producer, interval time.Duration) *ReminderScheduler {
	return &ReminderScheduler{
		Redis:        rdb,
		ActivityRepo: repo,
		Producer:     producer,
		Interval:     interval,
	}
}

func (s *ReminderScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Reminder scheduler stopping")
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *ReminderScheduler) scan(ctx context.Context) {
	tomorrow := time.Now().Add(24 * time.Hour)

	rows, appErr := s.ActivityRepo.ListRegistrationsForDate(ctx, tomorrow)
	if appErr != nil {
		log.Error().Err(appErr).Msg("Reminder scan failed")
		return
	}

	enqueued := 0
	for _, row := range rows {
		marker := fmt.Sprintf("reminder:sent:%s:%d:%s", tomorrow.Format("2006-01-02"), row.MemberID, row.ActivityName)
		ok, err := s.Redis.SetNX(ctx, marker, 1, 48*time.Hour).Result()
		if err != nil {
			log.Error().Err(err).Msg("Reminder dedup check failed")
			continue
		}
		if !ok {
			continue
		}

		title := "活動前提醒"
		content := fmt.Sprintf("您好，您報名的活動「%s」將於 %s 舉行，請準時參加！",
			row.ActivityName, row.ActivityTime.Format("2006-01-02 15:04"))

		now := time.Now()
		job := queue.Job{
			ID:   uuid.New().String(),
			Type: JobTypeActivityReminder,
			Payload: queue.MustMarshal(ReminderPayload{
				MemberID: row.MemberID,
				Title:    title,
				Content:  content,
			}),
			Retry:     0,
			MaxRetry:  3,
			CreatedAt: now.Unix(),
			RunAt:     now.Unix(),
			ExpireAt:  now.Add(1 * time.Hour).Unix(),
		}

		if err := s.Producer.Enqueue(ctx, job); err != nil {
			log.Error().Err(err).Int("memberID", row.MemberID).Msg("Failed to enqueue reminder job")
			// Drop the marker so the next scan retries this member.
			s.Redis.Del(ctx, marker)
			continue
		}
		enqueued++
	}

	log.Info().Int("registrations", len(rows)).Int("enqueued", enqueued).Msg("Reminder scan completed")
}
