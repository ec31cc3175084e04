package planner

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var backupScheduler gocron.Scheduler

// StartBackupScheduler writes a dated save-file snapshot shortly after
// midnight, one key per day, so yesterday's state survives a bad edit
// session.
func (p *Planner) StartBackupScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	backupScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(p.WriteBackup),
	)
	if err != nil {
		log.Printf("backup scheduler init failed: %v", err)
		return
	}

	s.Start()
	log.Println("daily backup scheduler started (00:05)")
}

func StopBackupScheduler() {
	if backupScheduler != nil {
		if err := backupScheduler.Shutdown(); err != nil {
			log.Printf("backup scheduler shutdown failed: %v", err)
		}
	}
}

// WriteBackup snapshots the current state under a dated key.
func (p *Planner) WriteBackup() {
	file := p.BuildSaveFile()
	payload, err := json.Marshal(file)
	if err != nil {
		log.Printf("backup marshal failed: %v", err)
		return
	}
	key := fmt.Sprintf("agmsc_backup_%s", time.Now().Format("2006-01-02"))
	if err := p.store.SaveSnapshot(key, payload); err != nil {
		log.Printf("backup write failed: %v", err)
		return
	}
	log.Printf("backup written: %s", key)
}
