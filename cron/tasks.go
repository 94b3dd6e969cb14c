// File: cron/tasks.go
package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/giavix1302/be-gym-management-system-sub000/config"
)

const TypeSessionPurge = "class:purge_sessions"

// PurgePayload identifies the class whose soft-deleted sessions should be
// hard-removed once the retention delay elapses.
type PurgePayload struct {
	ClassID string `json:"classId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPurgeDB,
	}
}

// NewPurgeClient returns an asynq client bound to the purge queue.
func NewPurgeClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// EnqueueSessionPurge schedules a purge task to run after delay.
func EnqueueSessionPurge(client *asynq.Client, classID string, delay time.Duration) error {
	payload, err := json.Marshal(PurgePayload{ClassID: classID})
	if err != nil {
		return fmt.Errorf("failed to marshal purge payload: %w", err)
	}
	task := asynq.NewTask(TypeSessionPurge, payload)
	if _, err := client.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("failed to enqueue purge task: %w", err)
	}
	return nil
}
