package planner

import (
	"log"

	"github.com/robfig/cron/v3"

	"classroom_manager/config"
)

var autosave *cron.Cron

// StartAutoSaveScheduler flushes the in-memory state to the store on a fixed
// schedule, so a crash loses at most one interval of edits even if a write
// failed earlier in the session.
func (p *Planner) StartAutoSaveScheduler() {
	autosave = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	spec := config.Config("AUTOSAVE_CRON")
	if spec == "" {
		spec = "*/5 * * * *"
	}
	_, err := autosave.AddFunc(spec, p.Flush)
	if err != nil {
		log.Printf("autosave scheduler init failed: %v", err)
		return
	}

	autosave.Start()
	log.Printf("autosave scheduler started (%s)", spec)
}

func StopAutoSaveScheduler() {
	if autosave != nil {
		autosave.Stop()
	}
}
