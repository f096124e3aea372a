package handlers

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"espn-scores-service/internal/app/scores"
	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/logging"
	"espn-scores-service/internal/providers"
)

// Handler wires HTTP routes to the scores service. Every scoreboard request
// fetches live from the upstream; nothing is cached between requests.
type Handler struct {
	svc    *scores.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *scores.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case strings.HasPrefix(r.URL.Path, "/scores/"):
		h.Scores(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service is stateless, so it is
// ready as soon as it can serve.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Scores serves GET /scores/{league}. Query parameters: date (date-indexed
// leagues), week plus optional seasontype (week-indexed leagues), status
// (final, in_progress, scheduled), groups (conference name or ID for college
// leagues). A seasontype without a week resolves the current week of that
// season type. With no week or date it returns the league's current
// scoreboard.
func (h *Handler) Scores(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	league, ok := h.leagueFromPath(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "unknown league", h.logger)
		return
	}

	params := r.URL.Query()
	opts := scores.Options{
		Status:     domain.GameStatus(params.Get("status")),
		Conference: params.Get("groups"),
	}

	week, ok := intParam(params, "week")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid week parameter", h.logger)
		return
	}
	seasonType, ok := intParam(params, "seasontype")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid seasontype parameter", h.logger)
		return
	}

	ctx := r.Context()
	var board domain.Scoreboard
	var err error
	switch {
	case week > 0:
		board, err = h.svc.Week(ctx, league, week, seasonType, opts)
	case seasonType > 0:
		board, err = h.svc.CurrentWeek(ctx, league, seasonType, opts)
	case params.Get("date") != "":
		board, err = h.svc.Date(ctx, league, params.Get("date"), opts)
	default:
		board, err = h.svc.Today(ctx, league, opts)
	}
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served scoreboard",
			slog.String(logging.FieldLeague, league.Tag),
			slog.Int(logging.FieldCount, len(board.Games)),
		)
	}
	writeJSON(w, nethttp.StatusOK, board, h.logger)
}

func (h *Handler) writeFetchError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if scores.IsInvalidInput(err) {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if statusErr, ok := providers.AsStatusError(err); ok {
		msg := fmt.Sprintf("upstream responded with status %d", statusErr.StatusCode)
		writeError(w, r, nethttp.StatusBadGateway, msg, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusBadGateway, "upstream unavailable", h.logger)
}

// leagueFromPath resolves the league tag in /scores/{league}.
func (h *Handler) leagueFromPath(path string) (domain.League, bool) {
	raw := strings.TrimPrefix(path, "/scores/")
	raw = strings.TrimSuffix(raw, "/")
	tag, err := url.PathUnescape(raw)
	if err != nil || tag == "" || strings.Contains(tag, "/") {
		return domain.League{}, false
	}
	return domain.LeagueFromTag(tag)
}

// intParam parses an optional positive integer query parameter. Returns
// (0, true) when absent.
func intParam(params url.Values, key string) (int, bool) {
	raw := params.Get(key)
	if raw == "" {
		return 0, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}
