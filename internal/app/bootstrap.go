package app

import (
	"fmt"
	"strings"

	"able-match/internal/delivery/http/middleware"
	"able-match/internal/delivery/http/routes"
	"able-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	routes.Register(f, routes.Deps{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		Hub:    c.Hub,
		WS:     ws.NewHandler(c.Hub, c.Logger),
	})

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, error) {
	if c == nil {
		return nil, fmt.Errorf("nil container")
	}
	return New(c), nil
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
