package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"

	"github.com/GeraldMcToaster/EcoWars/internal/api"
	"github.com/GeraldMcToaster/EcoWars/internal/config"
	"github.com/GeraldMcToaster/EcoWars/internal/constants"
	"github.com/GeraldMcToaster/EcoWars/internal/logging"
	"github.com/GeraldMcToaster/EcoWars/internal/realtime"
	"github.com/GeraldMcToaster/EcoWars/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Invalid configuration", err, nil)
	}

	db, err := storage.OpenAndMigrate(cfg.DatabasePath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db, cfg.OpenMatchTTL)
	hub := realtime.NewHub()
	handler := api.NewMatchHandler(repo, hub, cfg.BotName)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteOpenMatches, handler.ListOpenMatches)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		apiRoutes.POST(constants.RouteMatches, handler.CreateMatch)
		apiRoutes.POST(constants.RouteMatchesJoin, handler.JoinMatch)
		apiRoutes.GET(constants.RouteMatchByCode, handler.GetMatch)
		apiRoutes.POST(constants.RouteMatchAction, handler.SubmitAction)
		apiRoutes.GET(constants.RouteMatchSubscribe, handler.SubscribeMatch)
	}

	// Browser clients are served from a separate origin during development.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{constants.HeaderContentType}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
	)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := http.ListenAndServe(addr, cors(router)); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
