package app

import (
	"fmt"
	"strings"

	"jobrank/internal/config"
	"jobrank/internal/delivery/http/handler"
	"jobrank/internal/delivery/http/middleware"
	"jobrank/internal/delivery/http/routes"
	"jobrank/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	var authMw *middleware.AuthMiddleware
	if cfg.Auth.Enabled() {
		authMw = middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.Auth.JWTSecret))
	}

	routes.Register(f, routes.Handlers{
		Health:   handler.NewHealthHandler(),
		Rank:     handler.NewRankHandler(c.RankUC),
		Feedback: handler.NewFeedbackHandler(c.FeedbackUC),
		Model:    handler.NewModelHandler(c.ModelUC),
	}, authMw)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
