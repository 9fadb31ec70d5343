package routes

import (
	"jobrank/internal/delivery/http/handler"
	"jobrank/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health   *handler.HealthHandler
	Rank     *handler.RankHandler
	Feedback *handler.FeedbackHandler
	Model    *handler.ModelHandler
}

// Register wires /health plus the /api/v1 surface. When authMw is nil the
// service runs in trusted internal mode and callers supply candidate ids in
// the request body.
func Register(app *fiber.App, h Handlers, authMw *middleware.AuthMiddleware) {
	if app == nil {
		return
	}

	h.Health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	if authMw != nil {
		v1 = v1.Group("", authMw.Middleware())
	}

	h.Rank.RegisterRoutes(v1)
	h.Feedback.RegisterRoutes(v1)
	h.Model.RegisterRoutes(v1)
}
