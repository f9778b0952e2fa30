package journey

import (
	"testing"
	"time"

	"github.com/spinetrack/platform/pkg/common/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStageRangesAreContiguous(t *testing.T) {
	for i := 0; i < len(Stages)-1; i++ {
		if Stages[i].DayRange.To+1 != Stages[i+1].DayRange.From {
			t.Fatalf("gap between %s (to=%d) and %s (from=%d)",
				Stages[i].ID, Stages[i].DayRange.To,
				Stages[i+1].ID, Stages[i+1].DayRange.From)
		}
	}
}

func TestClassify(t *testing.T) {
	surgery := day("2026-02-10")

	cases := []struct {
		today string
		want  StageID
	}{
		{"2026-01-01", StageDecision}, // far before the first range
		{"2026-02-04", StageDecision},
		{"2026-02-09", StageDecision},
		{"2026-02-10", StageSurgery},
		{"2026-02-11", StageImmediate},
		{"2026-02-17", StageImmediate},
		{"2026-02-18", StageEarlyRecovery},
		{"2026-03-12", StageEarlyRecovery},
		{"2026-03-13", StageMidRecovery},
		{"2026-05-01", StageMidRecovery}, // 80 days post-op
		{"2026-08-10", StageFullRecovery},
		{"2031-02-10", StageFullRecovery}, // open-ended tail
	}

	for _, tc := range cases {
		if got := Classify(surgery, day(tc.today)); got != tc.want {
			t.Errorf("Classify(%s): got %s, want %s", tc.today, got, tc.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	surgery := day("2026-02-10")
	prev := -1
	for d := -30; d <= 400; d++ {
		today := surgery.AddDate(0, 0, d)
		idx := indexOf(Classify(surgery, today))
		if idx < prev {
			t.Fatalf("stage index decreased at day %d: %d -> %d", d, prev, idx)
		}
		prev = idx
	}
}

func TestProgressBoundsAndSteps(t *testing.T) {
	surgery := day("2026-02-10")
	prev := 0
	for d := -30; d <= 400; d++ {
		today := surgery.AddDate(0, 0, d)
		p := Progress(surgery, today)
		if p < 0 || p > 100 {
			t.Fatalf("progress out of range at day %d: %d", d, p)
		}
		if p < prev {
			t.Fatalf("progress decreased at day %d: %d -> %d", d, prev, p)
		}
		prev = p
	}

	// midpoint of the first of six bands
	if got := Progress(surgery, day("2026-02-05")); got != 8 {
		t.Errorf("decision progress: got %d, want 8", got)
	}
	// midpoint of the last band
	if got := Progress(surgery, day("2027-06-01")); got != 92 {
		t.Errorf("full_recovery progress: got %d, want 92", got)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(StageDecision, StageImmediate); got != models.StatusCompleted {
		t.Errorf("decision vs immediate: got %s", got)
	}
	if got := Status(StageImmediate, StageImmediate); got != models.StatusCurrent {
		t.Errorf("immediate vs immediate: got %s", got)
	}
	if got := Status(StageFullRecovery, StageImmediate); got != models.StatusUpcoming {
		t.Errorf("full_recovery vs immediate: got %s", got)
	}
}

func TestDaysSinceNormalizesToMidnight(t *testing.T) {
	surgery := time.Date(2026, 2, 10, 23, 50, 0, 0, time.UTC)
	today := time.Date(2026, 2, 11, 0, 10, 0, 0, time.UTC)
	if got := DaysSince(surgery, today); got != 1 {
		t.Errorf("DaysSince across midnight: got %d, want 1", got)
	}
}

func TestDaysSinceAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2026-03-08 02:00 springs forward, so the two-day span is 47 hours.
	surgery := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	today := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	if got := DaysSince(surgery, today); got != 2 {
		t.Errorf("DaysSince across spring-forward: got %d, want 2", got)
	}
	// Fall-back stretches the span to 49 hours.
	surgery = time.Date(2026, 10, 31, 0, 0, 0, 0, loc)
	today = time.Date(2026, 11, 2, 0, 0, 0, 0, loc)
	if got := DaysSince(surgery, today); got != 2 {
		t.Errorf("DaysSince across fall-back: got %d, want 2", got)
	}
}
