package record

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/schedule"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func fixedNow(s string) func() time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return func() time.Time { return d }
}

func testRow(t *testing.T, surgeryDate string) PatientModel {
	t.Helper()
	cats, err := json.Marshal([]string{"UBE"})
	if err != nil {
		t.Fatalf("marshal categories: %v", err)
	}
	row := PatientModel{
		PatientNumber: "12345678",
		Name:          "홍길동",
		Age:           58,
		Sex:           "M",
		DiagnosisCode: "M51.2",
		DiagnosisName: "Lumbar disc herniation",
		DiagnosisKo:   "요추 추간판 탈출증",
		OpName:        "UBE discectomy L4-5",
		OpCategories:  cats,
		Schedule:      "9A",
		Surgeon:       "김철수",
		Hospital:      "다보스 병원",
	}
	if surgeryDate != "" {
		d, err := time.Parse("2006-01-02", surgeryDate)
		if err != nil {
			t.Fatalf("bad date: %v", err)
		}
		row.SurgeryDate = &d
	}
	return row
}

func TestAssemblePatientView(t *testing.T) {
	svc := &Service{now: fixedNow("2026-02-11")}
	resp := svc.assemble(testRow(t, "2026-02-10"), nil)
	p := resp.Patient

	if p.Surgery.Abbreviation != "UBE" {
		t.Fatalf("abbreviation = %q", p.Surgery.Abbreviation)
	}
	if p.Surgery.NameKo == "" || p.Surgery.Date != "2026-02-10" {
		t.Fatalf("surgery = %+v", p.Surgery)
	}
	if p.Admission.Date != "2026-02-09" {
		t.Fatalf("admission = %q, want day before surgery", p.Admission.Date)
	}
	// UBE stays two nights.
	if p.Admission.ExpectedDischarge != "2026-02-12" {
		t.Fatalf("expected discharge = %q", p.Admission.ExpectedDischarge)
	}
	if len(p.Stages) == 0 || len(p.FollowUps) != 5 {
		t.Fatalf("stages=%d follow-ups=%d", len(p.Stages), len(p.FollowUps))
	}
	if p.PromInstruments[1] != "ODI" {
		t.Fatalf("instruments = %v, want ODI for lumbar", p.PromInstruments)
	}

	var current int
	for _, st := range p.Stages {
		if st.Status == models.StatusCurrent {
			current++
		}
	}
	if current == 0 {
		t.Fatal("no current stage the day after surgery")
	}
}

func TestAssembleFirstVisitOverride(t *testing.T) {
	svc := &Service{now: fixedNow("2026-02-11")}
	row := testRow(t, "2026-02-10")
	row.FirstVisit = "2026-02-20"

	resp := svc.assemble(row, nil)
	if resp.Patient.FollowUps[0].Date != "2026-02-20" {
		t.Fatalf("first follow-up = %q, want booked date", resp.Patient.FollowUps[0].Date)
	}
	if resp.Patient.FollowUps[1].Date != "2026-03-24" {
		t.Fatalf("second follow-up = %q, want computed date", resp.Patient.FollowUps[1].Date)
	}
}

func TestAssembleWithoutSurgeryDate(t *testing.T) {
	svc := &Service{now: fixedNow("2026-02-11")}
	resp := svc.assemble(testRow(t, ""), nil)
	p := resp.Patient

	if p.Surgery.Date != "" || p.Admission.Date != "" {
		t.Fatalf("expected empty dates, got surgery=%q admission=%q", p.Surgery.Date, p.Admission.Date)
	}
	if p.FollowUps != nil {
		t.Fatalf("expected no follow-ups, got %v", p.FollowUps)
	}
	for _, st := range p.Stages {
		if st.Status != models.StatusUpcoming {
			t.Fatalf("stage %q status = %q, want upcoming", st.ID, st.Status)
		}
	}
}

func TestBuildTrendOrderAndGaps(t *testing.T) {
	odi := 42.0
	subs := map[schedule.Timepoint]models.PromSubmission{
		schedule.TimepointThreeMo: {
			VasBack:     3,
			SubmittedAt: time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC),
		},
		schedule.TimepointPreOp: {
			VasBack:         7,
			OdiTotalPercent: &odi,
			SubmittedAt:     time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC),
		},
	}

	trend := buildTrend(subs)
	if len(trend) != 2 {
		t.Fatalf("got %d points, want 2", len(trend))
	}
	if trend[0].Label != "수술 전" || trend[1].Label != "3개월" {
		t.Fatalf("labels = %q, %q", trend[0].Label, trend[1].Label)
	}
	if *trend[0].VasBack != 7 || *trend[0].OdiPercent != 42.0 {
		t.Fatalf("pre-op point = %+v", trend[0])
	}
	if trend[0].Date != "2026-02-09" {
		t.Fatalf("pre-op date = %q", trend[0].Date)
	}
	if trend[1].OdiPercent != nil {
		t.Fatal("3mo point should have nil ODI")
	}
}

func TestDecodeCategories(t *testing.T) {
	if got := decodeCategories([]byte(`["UBE","ULBD"]`)); len(got) != 2 || got[0] != "UBE" {
		t.Fatalf("decodeCategories = %v", got)
	}
	if got := decodeCategories(nil); got != nil {
		t.Fatalf("nil input = %v", got)
	}
	if got := decodeCategories([]byte(`{broken`)); got != nil {
		t.Fatalf("malformed input = %v", got)
	}
}
