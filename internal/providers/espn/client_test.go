package espn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchScoreboardBuildsRequest(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"week": {"number": 10}, "events": []}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/sports",
		UserAgent:  "scores-test",
		HTTPClient: &http.Client{Transport: rt},
	})

	sb, err := client.FetchScoreboard(context.Background(), domain.NFL, providers.Query{Week: 10, SeasonType: 2})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if captured.URL.Path != "/sports/football/nfl/scoreboard" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	if got := captured.Header.Get("User-Agent"); got != "scores-test" {
		t.Fatalf("unexpected user agent %q", got)
	}
	q, err := url.ParseQuery(captured.URL.RawQuery)
	if err != nil {
		t.Fatalf("failed parsing query: %v", err)
	}
	if q.Get("week") != "10" || q.Get("seasontype") != "2" {
		t.Fatalf("unexpected query %v", q)
	}
	if sb.Week == nil || *sb.Week != 10 {
		t.Fatalf("unexpected scoreboard %+v", sb)
	}
}

func TestFetchScoreboardNon2xxReturnsStatusError(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusServiceUnavailable, "upstream down"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchScoreboard(context.Background(), domain.NBA, providers.Query{})
	sErr, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if sErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", sErr.StatusCode)
	}
	if !strings.Contains(sErr.Body, "upstream down") {
		t.Fatalf("expected body excerpt, got %q", sErr.Body)
	}
}

func TestFetchScoreboardMalformedJSONReturnsDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"events": [`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchScoreboard(context.Background(), domain.NHL, providers.Query{})
	if _, ok := providers.AsDecodeError(err); !ok {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestFetchScoreboardNetworkErrorPropagates(t *testing.T) {
	cause := errors.New("connection refused")
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, cause
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchScoreboard(context.Background(), domain.CBB, providers.Query{})
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected network error to surface, got %v", err)
	}
	if _, ok := providers.AsStatusError(err); ok {
		t.Fatal("network failures must not masquerade as status errors")
	}
}

func TestFetchLeagueInfo(t *testing.T) {
	body := `{
		"leagues": [{"id": "28", "name": "National Football League", "abbreviation": "NFL",
			"season": {"year": 2025, "type": {"type": 2, "name": "Regular Season"}}}],
		"week": {"number": 12},
		"events": []
	}`
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.RawQuery != "" {
			t.Fatalf("league info fetch should carry no params, got %s", req.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, body), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	info, err := client.FetchLeagueInfo(context.Background(), domain.NFL)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if info.ID != "28" || info.Abbreviation != "NFL" {
		t.Fatalf("unexpected league identity %+v", info)
	}
	if info.SeasonYear != 2025 || info.SeasonType != 2 || info.CurrentWeek != 12 {
		t.Fatalf("unexpected season info %+v", info)
	}
}
