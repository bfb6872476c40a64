// Package scheduler runs the daily alert job at 09:00 server-local time.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/hrops/onboarding-admin/internal/logger"
	"github.com/hrops/onboarding-admin/internal/service"
)

const dailyAlertSpec = "0 9 * * *"

// Scheduler owns the cron runner for the alert workflow.
type Scheduler struct {
	cron   *cron.Cron
	alerts *service.AlertService
}

// New builds the scheduler around the alert service.
func New(alerts *service.AlertService) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		alerts: alerts,
	}
}

// Start registers the daily job and launches the cron runner. Job
// failures are logged and never crash the process.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(dailyAlertSpec, func() {
		logger.InfoLog(ctx, "Ejecutando tarea diaria de envío de alertas de onboarding técnico")
		if err := s.alerts.SendAll(ctx); err != nil {
			logger.ErrorLog(ctx, "Daily alert job failed", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.InfoLog(ctx, "Alert scheduler started (spec %s)", dailyAlertSpec)
	return nil
}

// Stop halts the cron runner; a running job finishes on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
