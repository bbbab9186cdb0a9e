package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zx0938013408/teamb-server/internal/queue"
)

const JobTypeActivityReminder = "activity_reminder"

type ReminderPayload struct {
	MemberID int    `json:"member_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// HandleJob performs the durable write and the best-effort push for one
// job. A persistence failure is returned so the pool can retry; a missed
// push is not a failure.
func (wp *WorkerPool) HandleJob(ctx context.Context, job queue.Job) error {
	switch job.Type {
	case JobTypeActivityReminder:
		return wp.handleActivityReminder(ctx, job.Payload)
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}

func (wp *WorkerPool) handleActivityReminder(ctx context.Context, raw json.RawMessage) error {
	var payload ReminderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("invalid reminder payload: %w", err)
	}

	if _, err := wp.Notify.NotifyMember(ctx, payload.MemberID, payload.Title, payload.Content); err != nil {
		return fmt.Errorf("failed to deliver reminder to member %d: %w", payload.MemberID, err)
	}

	return nil
}
