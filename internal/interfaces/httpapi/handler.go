package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/rainesports/site-api/internal/platform/logging"
	"github.com/rainesports/site-api/internal/usecase"
)

type Handler struct {
	roster        *usecase.RosterService
	tournaments   *usecase.TournamentService
	news          *usecase.NewsService
	announcements *usecase.AnnouncementService
	discord       *usecase.DiscordService
	auth          *usecase.AuthService
	users         *usecase.UserService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	roster *usecase.RosterService,
	tournaments *usecase.TournamentService,
	news *usecase.NewsService,
	announcements *usecase.AnnouncementService,
	discord *usecase.DiscordService,
	auth *usecase.AuthService,
	users *usecase.UserService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &Handler{
		roster:        roster,
		tournaments:   tournaments,
		news:          news,
		announcements: announcements,
		discord:       discord,
		auth:          auth,
		users:         users,
		logger:        logger,
		validator:     v,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate parses the JSON body into req and runs the declared
// struct validations, translating failures into the field-violation list
// the API surfaces on 400s.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, req any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(req); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, req)
}

func (h *Handler) validateRequest(ctx context.Context, req any) error {
	err := h.validator.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	violations := make([]fieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, fieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}

	return &validationError{violations: violations}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}

func pathID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid id %q", usecase.ErrInvalidInput, raw)
	}

	return id, nil
}
