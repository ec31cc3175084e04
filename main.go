package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"classroom_manager/config"
	"classroom_manager/database"
	"classroom_manager/handler"
	"classroom_manager/planner"
	"classroom_manager/router"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	database.ConnectDB()

	p := planner.New(database.NewRedisStore(database.Client))
	if err := p.Bootstrap(); err != nil {
		log.Printf("bootstrap persisted with errors: %v", err)
	}

	p.StartAutoSaveScheduler()
	defer planner.StopAutoSaveScheduler()
	p.StartBackupScheduler()
	defer planner.StopBackupScheduler()

	router.SetupRoutes(app, handler.New(p))

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
