package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/the-witty-one/doctors-appointment-api/booking"
	"github.com/the-witty-one/doctors-appointment-api/cache"
	"github.com/the-witty-one/doctors-appointment-api/config"
	"github.com/the-witty-one/doctors-appointment-api/controllers"
	"github.com/the-witty-one/doctors-appointment-api/cron"
	"github.com/the-witty-one/doctors-appointment-api/db"
	"github.com/the-witty-one/doctors-appointment-api/routes"
	"github.com/the-witty-one/doctors-appointment-api/store"
	"github.com/the-witty-one/doctors-appointment-api/utils"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	if cfg.Database.SeedSampleData {
		if err := db.SeedSampleData(gormDB); err != nil {
			log.Fatal("Failed to seed sample data: ", err)
		}
		log.Println("Sample data seeded")
	}

	var doctorCache *cache.Cache
	if cfg.Redis.Addr != "" {
		doctorCache, err = cache.Connect(cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Connected to redis")
	}

	recordStore := store.New(gormDB)
	bookingService := booking.NewService(recordStore)

	if cfg.SMTP.Host != "" && cfg.SMTP.AdminEmail != "" {
		digest := cron.NewDigest(recordStore, utils.NewMailer(cfg.SMTP), cfg.SMTP.AdminEmail)
		if err := digest.Start(cfg.SMTP.DigestSchedule); err != nil {
			log.Fatal(err)
		}
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupDoctorRoutes(app, controllers.NewDoctorController(recordStore, doctorCache))
	routes.SetupAppointmentRoutes(app, controllers.NewAppointmentController(recordStore, bookingService))
	routes.SetupPatientRoutes(app, controllers.NewPatientController(recordStore))

	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
