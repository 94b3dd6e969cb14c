// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	sessionRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/session"
)

// InitPurgeWorker runs the async purge worker in background.
func InitPurgeWorker(sessions sessionRepo.SessionRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionPurge, handlePurgeTask(sessions))

	go func() {
		log.Println("[PurgeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PurgeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PurgeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePurgeTask(sessions sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PurgePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PurgeWorker] invalid payload: %v", err)
			return err
		}

		removed, err := sessions.PurgeDeletedByClass(ctx, p.ClassID)
		if err != nil {
			log.Printf("[PurgeWorker] purge failed for class %s: %v", p.ClassID, err)
			return err
		}
		log.Printf("[PurgeWorker] purged %d sessions for class %s", removed, p.ClassID)
		return nil
	}
}
