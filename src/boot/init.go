package boot

import (
	"log"
	"time"

	"boatsafari/src/db"
	"boatsafari/src/lib"
	"boatsafari/src/models"
	"boatsafari/src/utils"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Boat{},
		&models.Trip{},
		&models.Booking{},
		&models.Payment{},
		&models.Feedback{},
		&models.SupportTicket{},
		&models.PassengerCheckIn{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the background sweeper that flips lapsed
// provisional bookings to EXPIRED. Capacity checks already ignore
// lapsed holds, so the sweep cadence only affects row hygiene.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateCronJob(func() {
		if _, err := utils.ExpireLapsedBookings(); err != nil {
			log.Printf("Error expiring lapsed bookings: %s\n", err.Error())
		}
	}, 1*time.Minute)
	if err != nil {
		log.Printf("Error running job: %s\n", err.Error())
		return
	}
	log.Printf("Job ID: %s\n", *id)
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	lib.StopScheduler()
}
