package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/team-members", handler.ListTeamMembers)
	mux.HandleFunc("GET /api/team-members/{id}", handler.GetTeamMember)
	mux.HandleFunc("POST /api/team-members", handler.CreateTeamMember)

	mux.HandleFunc("GET /api/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /api/tournaments/upcoming", handler.ListUpcomingTournaments)
	mux.HandleFunc("GET /api/tournaments/results", handler.ListTournamentResults)
	mux.HandleFunc("POST /api/tournaments", handler.CreateTournament)

	mux.HandleFunc("GET /api/news", handler.ListNews)
	mux.HandleFunc("GET /api/news/{id}", handler.GetNewsItem)
	mux.HandleFunc("POST /api/news", handler.CreateNewsItem)

	mux.HandleFunc("GET /api/discord-stats", handler.GetDiscordStats)

	mux.HandleFunc("GET /api/announcements", handler.ListAnnouncements)
	mux.HandleFunc("GET /api/announcements/active", handler.ListActiveAnnouncements)

	mux.HandleFunc("POST /api/contact", handler.Contact)

	// Login issues the bearer token, so it is the one admin route
	// outside the session gate.
	mux.HandleFunc("POST /api/admin/login", handler.Login)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("POST /api/admin/logout", RequireAdmin(verifier, http.HandlerFunc(handler.Logout)))

	// Same create handlers as the public seeding routes, behind the gate
	// for tooling that should not depend on the public variants staying open.
	mux.Handle("POST /api/admin/team-members", RequireAdmin(verifier, http.HandlerFunc(handler.CreateTeamMember)))
	mux.Handle("POST /api/admin/tournaments", RequireAdmin(verifier, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("POST /api/admin/news", RequireAdmin(verifier, http.HandlerFunc(handler.CreateNewsItem)))

	mux.Handle("PUT /api/admin/discord-stats", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateDiscordStats)))

	mux.Handle("POST /api/admin/announcements", RequireAdmin(verifier, http.HandlerFunc(handler.CreateAnnouncement)))
	mux.Handle("PUT /api/admin/announcements/{id}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateAnnouncement)))
	mux.Handle("DELETE /api/admin/announcements/{id}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteAnnouncement)))

	mux.Handle("POST /api/admin/users", RequireAdmin(verifier, http.HandlerFunc(handler.RegisterUser)))
}
