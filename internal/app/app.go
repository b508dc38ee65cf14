package app

import (
	"fmt"
	"net/http"

	"github.com/rainesports/site-api/internal/config"
	discordclient "github.com/rainesports/site-api/internal/infrastructure/discord"
	"github.com/rainesports/site-api/internal/infrastructure/repository/memory"
	"github.com/rainesports/site-api/internal/interfaces/httpapi"
	idgen "github.com/rainesports/site-api/internal/platform/id"
	"github.com/rainesports/site-api/internal/platform/logging"
	"github.com/rainesports/site-api/internal/usecase"
)

// Services groups the long-lived use cases the server and background
// workers share.
type Services struct {
	Auth *usecase.AuthService
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *Services, error) {
	memberRepo := memory.NewMemberRepository(memory.SeedMembers())
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
	newsRepo := memory.NewNewsRepository(memory.SeedNews())
	discordRepo := memory.NewDiscordStatsRepository(memory.SeedDiscordStats())
	announcementRepo := memory.NewAnnouncementRepository()
	sessionRepo := memory.NewSessionRepository()
	userRepo := memory.NewUserRepository()

	discordClient := discordclient.NewClient(
		&http.Client{Timeout: cfg.DiscordTimeout},
		cfg.DiscordAPIBaseURL,
		logger,
	)

	rosterSvc := usecase.NewRosterService(memberRepo)
	tournamentSvc := usecase.NewTournamentService(tournamentRepo)
	newsSvc := usecase.NewNewsService(newsRepo)
	announcementSvc := usecase.NewAnnouncementService(announcementRepo)
	discordSvc := usecase.NewDiscordService(discordRepo, discordClient, logger)
	authSvc := usecase.NewAuthService(
		sessionRepo,
		idgen.NewRandomGenerator(),
		cfg.AdminPassword,
		cfg.SessionTTL,
		logger,
	)
	userSvc := usecase.NewUserService(userRepo)

	handler := httpapi.NewHandler(
		rosterSvc,
		tournamentSvc,
		newsSvc,
		announcementSvc,
		discordSvc,
		authSvc,
		userSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, &Services{Auth: authSvc}, nil
}
