package main

import (
	"log"

	"github.com/rosemaria96/SmartCampusSystem/app/config"
	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

// Backfill for student fee records: scans every student against every fee
// structure and materializes the missing rows. Safe to run repeatedly.
func main() {
	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	log.Println("=== CREATING STUDENT FEE RECORDS ===")

	created, err := services.ReconcileFees(db)
	if err != nil {
		log.Fatal("Reconciliation failed:", err)
	}

	log.Printf("Total student fee records created: %d", created)
}
