package scores

import (
	"context"
	"log/slog"
	"time"

	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/logging"
	"espn-scores-service/internal/providers"
	"espn-scores-service/internal/timeutil"
)

// Season types as the upstream numbers them.
const (
	SeasonPreseason  = 1
	SeasonRegular    = 2
	SeasonPostseason = 3
)

// maxWeeks bounds NFL week numbers per season type.
var maxWeeks = map[int]int{
	SeasonPreseason:  4,
	SeasonRegular:    18,
	SeasonPostseason: 5,
}

// Options narrows a scoreboard request. The zero value applies no filter.
type Options struct {
	// Status keeps only games in the given state. Must be one of the
	// canonical statuses when set.
	Status domain.GameStatus
	// Conference is a conference name or numeric group ID, honored for
	// college leagues.
	Conference string
}

// Service exposes the scoreboard operations callers actually want: today's
// games, a specific date or week, and status-filtered views. Every call maps
// to a single upstream fetch (CurrentWeek makes two); validation failures
// return before any request is made.
type Service struct {
	provider providers.Provider
	logger   *slog.Logger
	now      func() time.Time
}

// NewService builds a Service over the given provider.
func NewService(provider providers.Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger, now: time.Now}
}

// Today fetches the league's current scoreboard: today's games for
// date-indexed leagues, the current week for week-indexed ones.
func (s *Service) Today(ctx context.Context, league domain.League, opts Options) (domain.Scoreboard, error) {
	q, err := s.baseQuery(league, opts)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	if league.Index == domain.DateIndexed {
		q.Dates = timeutil.FormatDate(s.now())
	}
	return s.fetch(ctx, league, q, opts)
}

// Date fetches the scoreboard for a specific calendar date. Accepted date
// forms are normalized to the upstream format; anything else is passed
// through as-is.
func (s *Service) Date(ctx context.Context, league domain.League, date string, opts Options) (domain.Scoreboard, error) {
	q, err := s.baseQuery(league, opts)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	q.Dates = timeutil.NormalizeDate(date)
	return s.fetch(ctx, league, q, opts)
}

// Week fetches a specific week of a week-indexed league. seasonType defaults
// to the regular season when zero. NFL weeks are validated against the
// season-type bounds before any request; CFB weeks are passed through.
func (s *Service) Week(ctx context.Context, league domain.League, week, seasonType int, opts Options) (domain.Scoreboard, error) {
	if league.Index != domain.WeekIndexed {
		return domain.Scoreboard{}, ErrNotWeekIndexed
	}
	if seasonType == 0 {
		seasonType = SeasonRegular
	}
	if league.Tag == domain.NFL.Tag {
		max, ok := maxWeeks[seasonType]
		if !ok {
			max = maxWeeks[SeasonRegular]
		}
		if week < 1 || week > max {
			return domain.Scoreboard{}, &InvalidWeekError{Week: week, SeasonType: seasonType, Max: max}
		}
	}
	q, err := s.baseQuery(league, opts)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	q.Week = week
	q.SeasonType = seasonType
	return s.fetch(ctx, league, q, opts)
}

// CurrentWeek resolves the league's current week from league info, then
// fetches that week's scoreboard. A non-zero seasonType pins the season type;
// when zero it follows the league info. When the info request fails the fetch
// proceeds with week 1 rather than surfacing the error.
func (s *Service) CurrentWeek(ctx context.Context, league domain.League, seasonType int, opts Options) (domain.Scoreboard, error) {
	if league.Index != domain.WeekIndexed {
		return domain.Scoreboard{}, ErrNotWeekIndexed
	}
	q, err := s.baseQuery(league, opts)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	q.Week = 1
	q.SeasonType = SeasonRegular
	if seasonType > 0 {
		q.SeasonType = seasonType
	}
	info, err := s.provider.FetchLeagueInfo(ctx, league)
	if err != nil {
		logging.Warn(s.logger, "league info unavailable, defaulting to week 1",
			slog.String(logging.FieldLeague, league.Tag),
			slog.String(logging.FieldError, err.Error()))
	} else {
		if info.CurrentWeek > 0 {
			q.Week = info.CurrentWeek
		}
		if seasonType == 0 && info.SeasonType > 0 {
			q.SeasonType = info.SeasonType
		}
	}
	return s.fetch(ctx, league, q, opts)
}

// Preseason fetches a preseason week. Week 0 means the current week.
func (s *Service) Preseason(ctx context.Context, league domain.League, week int, opts Options) (domain.Scoreboard, error) {
	return s.seasonWeek(ctx, league, week, SeasonPreseason, opts)
}

// Playoffs fetches an NFL postseason week. Week 0 means the current week.
func (s *Service) Playoffs(ctx context.Context, week int, opts Options) (domain.Scoreboard, error) {
	return s.seasonWeek(ctx, domain.NFL, week, SeasonPostseason, opts)
}

// Postseason fetches a CFB postseason week. Week 0 means the current week.
func (s *Service) Postseason(ctx context.Context, week int, opts Options) (domain.Scoreboard, error) {
	return s.seasonWeek(ctx, domain.CFB, week, SeasonPostseason, opts)
}

func (s *Service) seasonWeek(ctx context.Context, league domain.League, week, seasonType int, opts Options) (domain.Scoreboard, error) {
	if week == 0 {
		return s.CurrentWeek(ctx, league, seasonType, opts)
	}
	return s.Week(ctx, league, week, seasonType, opts)
}

// FinalGames returns today's (or the current week's) completed games.
func (s *Service) FinalGames(ctx context.Context, league domain.League, opts Options) (domain.Scoreboard, error) {
	opts.Status = domain.StatusFinal
	return s.Today(ctx, league, opts)
}

// LiveGames returns today's (or the current week's) in-progress games.
func (s *Service) LiveGames(ctx context.Context, league domain.League, opts Options) (domain.Scoreboard, error) {
	opts.Status = domain.StatusInProgress
	return s.Today(ctx, league, opts)
}

// UpcomingGames returns today's (or the current week's) games not yet started.
func (s *Service) UpcomingGames(ctx context.Context, league domain.League, opts Options) (domain.Scoreboard, error) {
	opts.Status = domain.StatusScheduled
	return s.Today(ctx, league, opts)
}

// baseQuery validates the options and folds the conference filter into a
// query. Returns an invalid-input error before any upstream call.
func (s *Service) baseQuery(league domain.League, opts Options) (providers.Query, error) {
	if opts.Status != "" && !domain.ValidStatus(opts.Status) {
		return providers.Query{}, &InvalidStatusError{Status: string(opts.Status)}
	}
	var q providers.Query
	if opts.Conference != "" {
		group, err := ResolveConference(league, opts.Conference)
		if err != nil {
			return providers.Query{}, err
		}
		q.Groups = group
	}
	return q, nil
}

func (s *Service) fetch(ctx context.Context, league domain.League, q providers.Query, opts Options) (domain.Scoreboard, error) {
	board, err := s.provider.FetchScoreboard(ctx, league, q)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	if opts.Status != "" {
		board.Games = filterGames(board.Games, opts.Status)
	}
	return board, nil
}

func filterGames(games []domain.Game, status domain.GameStatus) []domain.Game {
	filtered := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if g.Status == status {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
