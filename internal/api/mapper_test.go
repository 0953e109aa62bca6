package api

import (
	"testing"
	"time"

	"github.com/sanverite/skinmock/internal/core"
)

func TestFromProgressEntry_DateUsesEntryLocation(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	now := time.Date(2026, time.January, 1, 1, 0, 0, 0, loc)
	v := FromProgressEntry(core.NextEntry(0, now))
	if v.Date != "2026-01-01" {
		t.Fatalf("date: got %q", v.Date)
	}
	if v.Week != "Week 1" || v.Score != 85 {
		t.Fatalf("got %+v", v)
	}
}
