package httpapi

import (
	"net/http"
	"time"

	"github.com/rainesports/site-api/internal/domain/announcement"
	"github.com/rainesports/site-api/internal/domain/user"
	"github.com/rainesports/site-api/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.auth.Login(ctx, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "admin login rejected", "remote_addr", r.RemoteAddr)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, loginResponse{
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
	})
}

// Logout revokes the caller's session. Revocation is best-effort: by the
// time the handler runs the gate has already verified the token, and a
// second logout with the same token still reports success.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if sess, ok := sessionFromContext(ctx); ok {
		if err := h.auth.Logout(ctx, sess.ID); err != nil {
			h.logger.WarnContext(ctx, "session revoke failed", "error", err)
		}
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *Handler) UpdateDiscordStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDiscordStats")
	defer span.End()

	var req updateDiscordStatsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.discord.UpdateStats(ctx, usecase.UpdateDiscordStatsInput{
		InviteURL:     req.InviteURL,
		TotalMembers:  req.TotalMembers,
		OnlineMembers: req.OnlineMembers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update discord stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, discordStatsToDTO(stats))
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAnnouncement")
	defer span.End()

	var req createAnnouncementRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.announcements.CreateAnnouncement(ctx, announcement.NewAnnouncement{
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create announcement failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, announcementToDTO(item))
}

func (h *Handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAnnouncement")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateAnnouncementRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.announcements.UpdateAnnouncement(ctx, id, announcement.Patch{
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, announcementToDTO(item))
}

func (h *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAnnouncement")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.announcements.DeleteAnnouncement(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete announcement failed", "id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	var req registerUserRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.users.Register(ctx, user.NewUser{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register user failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, userDTO{
		ID:       created.ID,
		Username: created.Username,
	})
}

// Contact validates the submission and logs it. Delivery to an external
// channel is out of scope for this deployment.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Contact")
	defer span.End()

	var req contactRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "contact form submission",
		"name", req.Name,
		"email", req.Email,
		"subject", req.Subject,
	)

	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Contact form submitted successfully"})
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	SessionID string    `json:"sessionId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type updateDiscordStatsRequest struct {
	InviteURL     string `json:"inviteUrl" validate:"required"`
	TotalMembers  *int   `json:"totalMembers" validate:"omitempty,min=0"`
	OnlineMembers *int   `json:"onlineMembers" validate:"omitempty,min=0"`
}

type createAnnouncementRequest struct {
	Title    string  `json:"title" validate:"required"`
	Message  string  `json:"message" validate:"required"`
	Type     *string `json:"type" validate:"omitempty,oneof=info warning success error"`
	IsActive *bool   `json:"isActive"`
}

type updateAnnouncementRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Message  *string `json:"message" validate:"omitempty,min=1"`
	Type     *string `json:"type" validate:"omitempty,oneof=info warning success error"`
	IsActive *bool   `json:"isActive"`
}

type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type userDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
