package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"skateshop-backend/internal/config"
	types "skateshop-backend/internal/shared"
	"skateshop-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerSweepOrphansJob()
}

// ================================================
// JOB: Sweep Orphaned Storage Objects
// ================================================
// Mặc định daily at 3 AM (low traffic), override qua JOB_ORPHAN_SWEEP_SPEC.
// Nhặt lại object mà delete job đã fail hết retry, hoặc upload xong
// nhưng insert row fail.
func (s *Scheduler) registerSweepOrphansJob() error {
	payload, err := json.Marshal(types.SweepOrphansPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(types.TypeSweepOrphans, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.OrphanSweepSpec,
		task,
		asynq.Queue(types.QueueStorage),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register SweepOrphans job", err)
		return err
	}

	logger.Info("✓ Registered SweepOrphans", map[string]interface{}{
		"spec": s.jobConfig.OrphanSweepSpec,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
