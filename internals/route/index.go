// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "desaku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up RegistryRoutes...")
	routeDetails.RegistryRoutes(app, db)

	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
