package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	domain "github.com/rainesports/site-api/internal/domain/discord"
	"github.com/rainesports/site-api/internal/platform/logging"
	"github.com/rainesports/site-api/internal/usecase"
)

const defaultBaseURL = "https://discord.com/api/v10"

// invitePrefixRegex strips the known invite link forms down to a bare code.
var invitePrefixRegex = regexp.MustCompile(`^https?://(www\.)?(discord\.gg/|discordapp\.com/invite/|discord\.com/invite/)`)

// Client fetches invite metadata from the Discord directory API. It holds no
// state beyond its HTTP client and performs no retries: a failed lookup is
// reported as a dependency failure and the caller decides how to degrade.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(httpClient *http.Client, baseURL string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 5 * time.Second
	}

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		logger:     logger,
	}
}

func (c *Client) FetchInvite(ctx context.Context, inviteURL string) (domain.InviteInfo, error) {
	inviteURL = strings.TrimSpace(inviteURL)
	if inviteURL == "" {
		return domain.InviteInfo{}, fmt.Errorf("%w: invite url is required", usecase.ErrInvalidInput)
	}

	code := invitePrefixRegex.ReplaceAllString(inviteURL, "")
	endpoint := fmt.Sprintf("%s/invites/%s?with_counts=true", c.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.InviteInfo{}, fmt.Errorf("create invite request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.InviteInfo{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "request discord invite %s: %v", code, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.InviteInfo{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "read invite response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "discord invite lookup non-2xx",
			"status_code", resp.StatusCode,
			"invite_code", code,
		)
		return domain.InviteInfo{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "discord invite lookup status %d", resp.StatusCode)
	}

	var decoded inviteResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return domain.InviteInfo{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "unmarshal invite response: %v", err)
	}

	serverName := "Unknown Server"
	if decoded.Guild != nil && strings.TrimSpace(decoded.Guild.Name) != "" {
		serverName = decoded.Guild.Name
	}

	return domain.InviteInfo{
		TotalMembers:  decoded.ApproximateMemberCount,
		OnlineMembers: decoded.ApproximatePresenceCount,
		ServerName:    serverName,
		InviteURL:     inviteURL,
	}, nil
}

type inviteResponse struct {
	ApproximateMemberCount   int          `json:"approximate_member_count"`
	ApproximatePresenceCount int          `json:"approximate_presence_count"`
	Guild                    *inviteGuild `json:"guild"`
}

type inviteGuild struct {
	Name string `json:"name"`
}
