package main

import (
	"coursecart/config"
	"coursecart/database"
	authRoutes "coursecart/routers/authRoutes"
	checkoutRoutes "coursecart/routers/checkoutRoutes"
	courseRoutes "coursecart/routers/courseRoutes"
	userRoutes "coursecart/routers/userRoutes"
	"coursecart/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	checkoutRoutes.SetupCheckoutRoutes(app)
	userRoutes.SetupUserRoutes(app)

	utils.InitializeOrderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
