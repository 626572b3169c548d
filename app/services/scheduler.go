package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler starts the background job runner. The nightly fee
// reconciliation repairs any StudentFee rows the creation-time triggers
// missed (e.g. after a manual semester reassignment).
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New()

	// 20:05 every day
	_, err := c.AddFunc("5 20 * * *", func() {
		log.Println("Running scheduled fee reconciliation...")
		created, err := ReconcileFees(db)
		if err != nil {
			log.Printf("Scheduled fee reconciliation failed: %v", err)
			return
		}
		log.Printf("Scheduled fee reconciliation done, %d records created", created)
	})
	if err != nil {
		log.Printf("Failed to register reconciliation job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
	return c
}
