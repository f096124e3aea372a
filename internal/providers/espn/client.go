package espn

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/providers"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches scoreboards from the ESPN site API and normalizes them into
// domain models. Every call is a single stateless GET: no retries, no cache.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchScoreboard retrieves and normalizes one league's scoreboard.
func (c *Client) FetchScoreboard(ctx context.Context, league domain.League, q providers.Query) (domain.Scoreboard, error) {
	raw, err := c.getScoreboard(ctx, league, q.Values())
	if err != nil {
		return domain.Scoreboard{}, err
	}
	return normalizeScoreboard(raw, league), nil
}

// FetchLeagueInfo resolves the league metadata the scoreboard reports:
// season year/type and the current week.
func (c *Client) FetchLeagueInfo(ctx context.Context, league domain.League) (domain.LeagueInfo, error) {
	raw, err := c.getScoreboard(ctx, league, nil)
	if err != nil {
		return domain.LeagueInfo{}, err
	}

	info := domain.LeagueInfo{}
	if len(raw.Leagues) > 0 {
		upstream := raw.Leagues[0]
		info.ID = upstream.ID
		info.Name = upstream.Name
		info.Abbreviation = upstream.Abbreviation
		if upstream.Season.Year != nil {
			info.SeasonYear = *upstream.Season.Year
		}
		info.SeasonType = upstream.Season.Type.Type
	}
	if week := weekNumber(raw); week != nil {
		info.CurrentWeek = *week
	}
	return info, nil
}

func (c *Client) getScoreboard(ctx context.Context, league domain.League, params url.Values) (scoreboardResponse, error) {
	var raw scoreboardResponse
	err := c.get(ctx, league.SportPath+"/scoreboard", params, &raw)
	return raw, err
}

// get performs one GET against the API root and decodes the JSON body into
// dst. Failures come back as distinct kinds: a StatusError for non-2xx
// responses, a DecodeError for malformed bodies, and the transport error
// itself for network-level trouble.
func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(dst); decodeErr != nil {
		return &providers.DecodeError{Provider: providerName, Err: decodeErr}
	}
	return nil
}
