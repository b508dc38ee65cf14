package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/rainesports/site-api/internal/domain/announcement"
	"github.com/rainesports/site-api/internal/domain/discord"
	"github.com/rainesports/site-api/internal/domain/news"
	"github.com/rainesports/site-api/internal/domain/roster"
	"github.com/rainesports/site-api/internal/domain/tournament"
)

func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMembers")
	defer span.End()

	members, err := h.roster.ListMembers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list team members failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamMemberDTO, 0, len(members))
	for _, m := range members {
		items = append(items, memberToDTO(m))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamMember")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := h.roster.GetMember(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, memberToDTO(member))
}

func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeamMember")
	defer span.End()

	var req createTeamMemberRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := h.roster.CreateMember(ctx, roster.NewMember{
		Name:        req.Name,
		Role:        req.Role,
		Rank:        req.Rank,
		KDA:         req.KDA,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team member failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, memberToDTO(member))
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	h.writeTournaments(ctx, w, r, h.tournaments.ListTournaments)
}

func (h *Handler) ListUpcomingTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingTournaments")
	defer span.End()

	h.writeTournaments(ctx, w, r, h.tournaments.ListUpcoming)
}

func (h *Handler) ListTournamentResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentResults")
	defer span.End()

	h.writeTournaments(ctx, w, r, h.tournaments.ListResults)
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournaments.CreateTournament(ctx, tournament.NewTournament{
		Opponent:   req.Opponent,
		Date:       req.Date,
		Type:       req.Type,
		Result:     req.Result,
		IsUpcoming: req.IsUpcoming,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, tournamentToDTO(item))
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	items, err := h.news.ListNews(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]newsItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, newsToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetNewsItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNewsItem")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.news.GetNewsItem(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) CreateNewsItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNewsItem")
	defer span.End()

	var req createNewsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.news.CreateNewsItem(ctx, news.NewItem{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		PublishedAt: req.PublishedAt,
		Author:      req.Author,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create news item failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, newsToDTO(item))
}

func (h *Handler) GetDiscordStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDiscordStats")
	defer span.End()

	stats, err := h.discord.GetStats(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, discordStatsToDTO(stats))
}

func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnnouncements")
	defer span.End()

	h.writeAnnouncements(ctx, w, r, h.announcements.ListAnnouncements)
}

func (h *Handler) ListActiveAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActiveAnnouncements")
	defer span.End()

	h.writeAnnouncements(ctx, w, r, h.announcements.ListActiveAnnouncements)
}

type listTournamentsFunc = func(ctx context.Context) ([]tournament.Tournament, error)

func (h *Handler) writeTournaments(ctx context.Context, w http.ResponseWriter, _ *http.Request, list listTournamentsFunc) {
	items, err := list(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

type listAnnouncementsFunc = func(ctx context.Context) ([]announcement.Announcement, error)

func (h *Handler) writeAnnouncements(ctx context.Context, w http.ResponseWriter, _ *http.Request, list listAnnouncementsFunc) {
	items, err := list(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list announcements failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]announcementDTO, 0, len(items))
	for _, item := range items {
		out = append(out, announcementToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

type createTeamMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Rank        string `json:"rank" validate:"required"`
	KDA         string `json:"kda" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Description string `json:"description" validate:"required"`
	IsActive    *bool  `json:"isActive"`
}

type createTournamentRequest struct {
	Opponent   string  `json:"opponent" validate:"required"`
	Date       string  `json:"date" validate:"required"`
	Type       string  `json:"type" validate:"required"`
	Result     *string `json:"result"`
	IsUpcoming *bool   `json:"isUpcoming"`
}

type createNewsRequest struct {
	Title       string `json:"title" validate:"required"`
	Excerpt     string `json:"excerpt" validate:"required"`
	Content     string `json:"content" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	PublishedAt string `json:"publishedAt" validate:"required"`
	Author      string `json:"author" validate:"required"`
}

type teamMemberDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Rank        string `json:"rank"`
	KDA         string `json:"kda"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type tournamentDTO struct {
	ID         int     `json:"id"`
	Opponent   string  `json:"opponent"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Result     *string `json:"result"`
	IsUpcoming bool    `json:"isUpcoming"`
}

type newsItemDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl"`
	PublishedAt string `json:"publishedAt"`
	Author      string `json:"author"`
}

type discordStatsDTO struct {
	ID            int       `json:"id"`
	TotalMembers  int       `json:"totalMembers"`
	OnlineMembers int       `json:"onlineMembers"`
	InviteURL     string    `json:"inviteUrl"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type announcementDTO struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func memberToDTO(m roster.Member) teamMemberDTO {
	return teamMemberDTO{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Rank:        m.Rank,
		KDA:         m.KDA,
		ImageURL:    m.ImageURL,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:         t.ID,
		Opponent:   t.Opponent,
		Date:       t.Date,
		Type:       t.Type,
		Result:     t.Result,
		IsUpcoming: t.IsUpcoming,
	}
}

func newsToDTO(item news.Item) newsItemDTO {
	return newsItemDTO{
		ID:          item.ID,
		Title:       item.Title,
		Excerpt:     item.Excerpt,
		Content:     item.Content,
		ImageURL:    item.ImageURL,
		PublishedAt: item.PublishedAt,
		Author:      item.Author,
	}
}

func discordStatsToDTO(s discord.Stats) discordStatsDTO {
	return discordStatsDTO{
		ID:            s.ID,
		TotalMembers:  s.TotalMembers,
		OnlineMembers: s.OnlineMembers,
		InviteURL:     s.InviteURL,
		UpdatedAt:     s.UpdatedAt,
	}
}

func announcementToDTO(a announcement.Announcement) announcementDTO {
	return announcementDTO{
		ID:        a.ID,
		Title:     a.Title,
		Message:   a.Message,
		Type:      a.Type,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
