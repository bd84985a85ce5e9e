package jobs

import (
	"context"
	"log/slog"

	"lunchbox/internal/core/application/usecases/commands"
	"lunchbox/internal/core/domain/model/menu"

	"github.com/robfig/cron/v3"
)

// MenuResetter is the use case the job runs.
type MenuResetter interface {
	Handle(ctx context.Context, cmd commands.ResetDefaultMenuCommand) (menu.ResetResult, error)
}

// MenuResetJob puts the menu back to the standard defaults on a schedule,
// typically once a day before orders open.
type MenuResetJob struct {
	handler MenuResetter
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMenuResetJob creates the job. spec is a standard five-field cron
// expression or a descriptor such as "@daily".
func NewMenuResetJob(handler MenuResetter, spec string, logger *slog.Logger) *MenuResetJob {
	return &MenuResetJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger.With("component", "menu_reset_job"),
	}
}

// Start schedules the job. An invalid spec is returned as is.
func (j *MenuResetJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu reset job started", "schedule", j.spec)
	return nil
}

// Run resets the menu once. Failures are logged; the next tick retries.
func (j *MenuResetJob) Run(ctx context.Context) {
	res, err := j.handler.Handle(ctx, commands.NewResetDefaultMenuCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Menu reset job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Menu reset to defaults",
		"restored", res.Restored,
		"deactivated", res.Deactivated,
	)
}

// Stop waits for a running reset to finish.
func (j *MenuResetJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Menu reset job stopped")
}
