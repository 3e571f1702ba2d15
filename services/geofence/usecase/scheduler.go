package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/pratama/zonewatch/internal/pkg/logger"
	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
)

// Scheduler owns the catch-up timer and the run state machine
// (idle -> running -> success|error -> idle). It is single-flight: a timer
// tick or manual trigger while a run is active is rejected, never queued,
// so two runs can never race on the same watermark.
//
// All state lives on the instance so tests and multi-instance deployments
// can run independent schedulers.
type Scheduler struct {
	runner   geofence.CatchupRunner
	interval time.Duration

	mu            sync.Mutex
	isRunning     bool
	lastRunTime   time.Time
	lastRunStatus models.RunStatus
	lastError     string
	nextRunTime   time.Time

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewScheduler creates a catch-up scheduler
func NewScheduler(runner geofence.CatchupRunner, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:        runner,
		interval:      interval,
		ctx:           context.Background(),
		lastRunStatus: models.RunStatusIdle,
	}
}

// Start launches the timer loop. It returns immediately; runs execute on
// the scheduler's own goroutines.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.ctx = ctx
	s.cancel = cancel
	s.done = make(chan struct{})
	s.nextRunTime = time.Now().Add(s.interval)
	s.mu.Unlock()

	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.nextRunTime = time.Now().Add(s.interval)
			s.mu.Unlock()

			if !s.acquire() {
				logger.Warn("Catch-up tick skipped, previous run still active")
				continue
			}
			s.execute(ctx)

		case <-ctx.Done():
			return
		}
	}
}

// TriggerNow starts a catch-up run in the background if the scheduler is
// idle. Returns ErrRunInProgress when a run is already active.
func (s *Scheduler) TriggerNow() error {
	if !s.acquire() {
		return geofence.ErrRunInProgress
	}

	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.execute(ctx)
	}()
	return nil
}

// acquire transitions idle -> running; false when already running
func (s *Scheduler) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return false
	}
	s.isRunning = true
	return true
}

// execute performs one run and records its terminal state. Callers must
// hold the running flag via acquire.
func (s *Scheduler) execute(ctx context.Context) {
	start := time.Now()
	logger.Info("Catch-up run started")

	stats, err := s.runner.Run(ctx)

	s.mu.Lock()
	s.isRunning = false
	s.lastRunTime = start
	if err != nil {
		s.lastRunStatus = models.RunStatusError
		s.lastError = err.Error()
	} else {
		s.lastRunStatus = models.RunStatusSuccess
		s.lastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		logger.Error("Catch-up run failed",
			logger.Duration("elapsed", time.Since(start)),
			logger.Err(err))
		return
	}

	logger.Info("Catch-up run completed",
		logger.Int("samples_processed", stats.SamplesProcessed),
		logger.Int("hits_detected", stats.HitsDetected),
		logger.Int("batches", stats.Batches),
		logger.Duration("elapsed", time.Since(start)))
}

// Status returns a snapshot of the scheduler state
func (s *Scheduler) Status() models.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.SchedulerStatus{
		IsRunning:     s.isRunning,
		LastRunTime:   s.lastRunTime,
		LastRunStatus: s.lastRunStatus,
		LastError:     s.lastError,
		NextRunTime:   s.nextRunTime,
	}
}

// Stop cancels the timer loop and any in-flight run, then waits for both
// to finish. Samples of an interrupted batch keep a null watermark and are
// retried by the next run.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	s.wg.Wait()
}
