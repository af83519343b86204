package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dgn urutan: recovery → cors → logger
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
