package routes

import (
	"able-match/internal/config"
	"able-match/internal/database"
	"able-match/internal/delivery/http/handler"
	"able-match/internal/delivery/http/middleware"
	"able-match/internal/domain/matching"
	"able-match/internal/pkg/jwt"
	"able-match/internal/repository"
	"able-match/internal/usecase"
	"able-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure the route tree hangs off.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.Cache
	Hub    *ws.Hub
	WS     *ws.Handler
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(deps.DB).RegisterRoutes(app)

	if deps.WS != nil {
		app.Get("/ws", deps.WS.HandleRankingsWS)
	}

	api := app.Group("/api")
	registerV1(api.Group("/v1"), deps)
}

func registerV1(r fiber.Router, deps Deps) {
	cfg := deps.Config

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	candidateRepo := repository.NewPostgresCandidateRepository(deps.DB)

	var announcer usecase.Announcer = usecase.NopAnnouncer{}
	if deps.Hub != nil {
		announcer = ws.NewAnnouncer(deps.Hub)
	}

	engine := matching.New(cfg.Matching.Weights)
	rankingUC := usecase.NewRankingUsecase(jobRepo, candidateRepo, engine, deps.Cache, cfg.Matching.CacheTTL, announcer)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	jobsGroup := r.Group("/jobs")
	handler.NewJobsHandler(jobRepo).RegisterRoutes(jobsGroup)

	protected := jobsGroup.Group("", authMw.Middleware())
	handler.NewRankingHandler(rankingUC).RegisterRoutes(protected)
}
