package fixture

import (
	"context"
	"testing"
	"time"

	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/providers"
)

func TestFetchScoreboardWeekIndexed(t *testing.T) {
	p := New()
	p.now = func() time.Time { return time.Date(2025, 11, 16, 13, 30, 0, 0, time.UTC) }

	sb, err := p.FetchScoreboard(context.Background(), domain.NFL, providers.Query{Week: 9})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if sb.Week == nil || *sb.Week != 9 {
		t.Fatalf("expected requested week echoed back, got %v", sb.Week)
	}
	if sb.Date != nil {
		t.Fatal("week-indexed fixture must not carry a date")
	}
	if len(sb.Games) != 3 {
		t.Fatalf("expected 3 fixture games, got %d", len(sb.Games))
	}
	if sb.Games[1].GameTime == nil || sb.Games[1].GameTime.Quarter != "Q2" {
		t.Fatalf("expected football quarter label, got %+v", sb.Games[1].GameTime)
	}
}

func TestFetchScoreboardDateIndexed(t *testing.T) {
	p := New()
	p.now = func() time.Time { return time.Date(2025, 11, 16, 13, 30, 0, 0, time.UTC) }

	sb, err := p.FetchScoreboard(context.Background(), domain.NHL, providers.Query{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if sb.Date == nil || *sb.Date != "2025-11-16" {
		t.Fatalf("expected fixture date, got %v", sb.Date)
	}
	if sb.Week != nil {
		t.Fatal("date-indexed fixture must not carry a week")
	}
	if sb.Games[1].GameTime == nil || sb.Games[1].GameTime.Period != "2" {
		t.Fatalf("expected hockey period label, got %+v", sb.Games[1].GameTime)
	}
}

func TestFetchLeagueInfo(t *testing.T) {
	p := New()
	info, err := p.FetchLeagueInfo(context.Background(), domain.CFB)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if info.Abbreviation != "CFB" || info.CurrentWeek != 1 || info.SeasonType != 2 {
		t.Fatalf("unexpected info %+v", info)
	}
}
