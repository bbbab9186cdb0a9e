package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/internal/queue"
	notify_service "github.com/zx0938013408/teamb-server/internal/use-case/notify-case"
)

type WorkerPool struct {
	Redis      *redis.Client
	WorkerNum  int
	JobChannel chan string
	Notify     notify_service.NotifyServiceContract

	wg sync.WaitGroup
}

func NewWorkerPool(redis *redis.Client, workerNum int, notify notify_service.NotifyServiceContract) *WorkerPool {
	return &WorkerPool{
		Redis:      redis,
		WorkerNum:  workerNum,
		JobChannel: make(chan string, 100),
		Notify:     notify,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	log.Info().Msgf("Starting worker pool with %d workers", wp.WorkerNum)

	for i := 0; i < wp.WorkerNum; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}

	go func() {
		defer close(wp.JobChannel)
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping worker pool")
				return
			default:
				now := float64(time.Now().Unix())
				result, err := wp.Redis.ZRangeByScore(ctx, queue.ReminderQueueKey, &redis.ZRangeBy{
					Min:    "-inf",
					Max:    fmt.Sprintf("%f", now),
					Offset: 0,
					Count:  1,
				}).Result()

				if err != nil {
					if err != redis.Nil {
						log.Error().Err(err).Msg("Worker: failed to pop job")
						// Don't hammer a broken Redis.
						time.Sleep(1 * time.Second)
					}
					continue
				}

				if len(result) == 0 {
					time.Sleep(1 * time.Second)
					continue
				}

				payload := result[0]
				wp.Redis.ZRem(ctx, queue.ReminderQueueKey, payload)
				wp.JobChannel <- payload
			}
		}
	}()
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	log.Info().Msgf("Worker %d started", id)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("Worker %d stopping", id)
			return
		case payload, ok := <-wp.JobChannel:
			if !ok {
				return
			}

			var job queue.Job
			if err := json.Unmarshal([]byte(payload), &job); err != nil {
				log.Warn().Err(err).Msgf("Worker %d: Failed to unmarshal job payload", id)
				continue
			}
			if err := wp.HandleJob(ctx, job); err != nil {
				wp.retryOrBury(ctx, job, err)
			}
		}
	}
}

// retryOrBury re-enqueues a failed job with exponential backoff until it
// exhausts its retries or expires, then moves it to the DLQ.
func (wp *WorkerPool) retryOrBury(ctx context.Context, job queue.Job, jobErr error) {
	job.Retry++
	job.ErrorMsg = jobErr.Error()

	now := time.Now().Unix()
	if job.Retry >= job.MaxRetry || now > job.ExpireAt {
		log.Error().Str("job_id", job.ID).Msg("Job moved to DLQ")
		dlqBytes, _ := json.Marshal(job)
		wp.Redis.RPush(ctx, queue.ReminderDLQKey, dlqBytes)

		// Dead Letter Alert
		sendDLA(job)
		return
	}

	delay := time.Duration(5*(1<<job.Retry)) * time.Second // exponential backoff
	job.RunAt = time.Now().Add(delay).Unix()

	jobBytes, _ := json.Marshal(job)
	wp.Redis.ZAdd(ctx, queue.ReminderQueueKey, redis.Z{
		Score:  float64(job.RunAt),
		Member: jobBytes,
	})
	log.Warn().Str("job_id", job.ID).Msgf("Retrying in %v seconds (%d/%d)", delay.Seconds(), job.Retry, job.MaxRetry)
}

var dlaCache = make(map[string]time.Time)
var dlaMu sync.Mutex

func sendDLA(job queue.Job) {
	dlaMu.Lock()
	defer dlaMu.Unlock()

	now := time.Now()
	lastAlert, ok := dlaCache[job.Type]
	if ok && now.Sub(lastAlert) < 10*time.Minute {
		return
	}

	log.Error().Str("job_id", job.ID).Str("type", job.Type).Str("error", job.ErrorMsg).Msg("Dead Letter Alert: Job failed permanently")

	dlaCache[job.Type] = now
}

func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
	log.Info().Msg("All workers have stopped")
}
