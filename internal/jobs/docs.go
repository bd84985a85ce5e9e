// Package jobs provides scheduled background tasks for the lunchbox backend.
//
// Jobs are cron-based and built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// MenuResetJob restores the standard menu (see commands.ResetDefaultMenuCommand)
// on the schedule given by MENU_RESET_CRON, e.g. "0 6 * * *" for 06:00 every
// day. Leaving MENU_RESET_CRON empty disables it.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(resetHandler, cfg.MenuResetCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
