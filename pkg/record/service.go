package record

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/journey"
	"github.com/spinetrack/platform/pkg/schedule"
	"github.com/spinetrack/platform/pkg/surgery"
)

// Publisher is the event sink for PROM submissions. Satisfied by
// kafka.Producer.
type Publisher interface {
	PublishEvent(ctx context.Context, eventType string, source string, data map[string]interface{}) error
}

// Service assembles the patient-journey view from the stored hospital record
// and files PROM questionnaires. All scheduling output is derived on read;
// only the surgery date and raw classification are persisted.
type Service struct {
	repo      *Repository
	cache     *Cache
	publisher Publisher
	now       func() time.Time
}

func NewService(repo *Repository, cache *Cache, publisher Publisher) *Service {
	return &Service{repo: repo, cache: cache, publisher: publisher, now: time.Now}
}

var trendTimepoints = []struct {
	tp    schedule.Timepoint
	label string
}{
	{schedule.TimepointPreOp, "수술 전"},
	{schedule.TimepointOneMonth, "1개월"},
	{schedule.TimepointThreeMo, "3개월"},
	{schedule.TimepointSixMonths, "6개월"},
	{schedule.TimepointOneYear, "1년"},
}

// GetPatient returns the assembled view, served from cache when fresh.
func (s *Service) GetPatient(ctx context.Context, patientNumber string) (models.PatientResponse, error) {
	if resp, ok := s.cache.Get(ctx, patientNumber); ok {
		return resp, nil
	}

	row, err := s.repo.GetPatient(ctx, patientNumber)
	if err != nil {
		return models.PatientResponse{}, err
	}

	subs, err := s.repo.ListPromSubmissions(ctx, patientNumber)
	if err != nil {
		return models.PatientResponse{}, err
	}

	resp := s.assemble(row, subs)
	s.cache.Set(ctx, patientNumber, resp)
	return resp, nil
}

// SubmitProm files the questionnaire under the clinical window implied by
// the submission date, emits a prom.submitted event, and invalidates the
// cached view. Event publish failures are logged, not surfaced.
func (s *Service) SubmitProm(ctx context.Context, patientNumber string, submission models.PromSubmission) (schedule.Timepoint, error) {
	row, err := s.repo.GetPatient(ctx, patientNumber)
	if err != nil {
		return "", err
	}

	submittedAt := submission.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = s.now().UTC()
		submission.SubmittedAt = submittedAt
	}

	timepoint := schedule.TimepointPreOp
	if row.SurgeryDate != nil {
		timepoint = schedule.Bucket(journey.DaysSince(*row.SurgeryDate, submittedAt))
	}

	if err := s.repo.SavePromSubmission(ctx, patientNumber, timepoint, submission); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx, patientNumber)

	if s.publisher != nil {
		data := map[string]interface{}{
			"patient_number": patientNumber,
			"timepoint":      string(timepoint),
			"submitted_at":   submittedAt.Format(time.RFC3339),
		}
		if err := s.publisher.PublishEvent(ctx, "prom.submitted", "patient-service", data); err != nil {
			logger.Log.WithError(err).Error("Failed to publish PROM submission event")
		}
	}

	return timepoint, nil
}

// UpsertRecord writes a hospital feed row and drops the stale cached view.
func (s *Service) UpsertRecord(ctx context.Context, patient PatientModel) error {
	if err := s.repo.UpsertPatient(ctx, patient); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, patient.PatientNumber)
	return nil
}

// PatientContext builds the chat generator's patient block from the stored
// record.
func (s *Service) PatientContext(ctx context.Context, patientNumber string) (models.PatientContext, error) {
	row, err := s.repo.GetPatient(ctx, patientNumber)
	if err != nil {
		return models.PatientContext{}, err
	}

	categories := decodeCategories(row.OpCategories)
	pctx := models.PatientContext{
		Name:                row.Name,
		Diagnosis:           diagnosisLabel(row),
		SurgeryType:         surgery.NameKo(categories, row.OpName),
		SurgerySchedule:     row.Schedule,
		SurgeryAbbreviation: surgery.Abbreviation(categories, row.OpName),
	}
	if row.SurgeryDate != nil {
		pctx.SurgeryDate = row.SurgeryDate.Format("2006-01-02")
		pctx.CurrentStage = string(journey.Classify(*row.SurgeryDate, s.now()))
	} else {
		pctx.CurrentStage = string(journey.StageDecision)
	}
	return pctx, nil
}

func (s *Service) assemble(row PatientModel, subs map[schedule.Timepoint]models.PromSubmission) models.PatientResponse {
	categories := decodeCategories(row.OpCategories)
	tmpl := surgery.TemplateFor(categories)
	today := s.now()

	patient := models.Patient{
		ID:   row.PatientNumber,
		Name: row.Name,
		Age:  row.Age,
		Sex:  row.Sex,
		Diagnosis: models.Diagnosis{
			Code:   row.DiagnosisCode,
			Name:   row.DiagnosisName,
			NameKo: row.DiagnosisKo,
		},
		Surgery: models.Surgery{
			Name:         tmpl.Name,
			NameKo:       surgery.NameKo(categories, row.OpName),
			Abbreviation: surgery.Abbreviation(categories, row.OpName),
			Categories:   categories,
			Schedule:     row.Schedule,
		},
		Hospital:        row.Hospital,
		Surgeon:         row.Surgeon,
		PromInstruments: surgery.PromInstruments(categories),
	}

	var surgeryDate time.Time
	if row.SurgeryDate != nil {
		surgeryDate = *row.SurgeryDate
		patient.Surgery.Date = surgeryDate.Format("2006-01-02")
		patient.Admission = models.Admission{
			Date:              schedule.AddDays(surgeryDate, -1),
			ExpectedDischarge: schedule.AddDays(surgeryDate, tmpl.StayNights),
		}
	}

	patient.Stages = schedule.BuildStages(tmpl, surgeryDate, today)
	patient.FollowUps = schedule.BuildFollowUps(tmpl.FollowUpOffsets, surgeryDate, row.FirstVisit)

	return models.PatientResponse{
		Patient:   patient,
		PromTrend: buildTrend(subs),
	}
}

// buildTrend renders one point per clinical window in chronological order.
// Windows without a submission are skipped rather than zero-filled.
func buildTrend(subs map[schedule.Timepoint]models.PromSubmission) []models.PromTrendPoint {
	var trend []models.PromTrendPoint
	for _, tpl := range trendTimepoints {
		sub, ok := subs[tpl.tp]
		if !ok {
			continue
		}
		point := models.PromTrendPoint{
			Label:      tpl.label,
			VasBack:    f(sub.VasBack),
			VasLeg:     f(sub.VasLeg),
			OdiPercent: sub.OdiTotalPercent,
			NdiPercent: sub.NdiTotalPercent,
			JoaScore:   f(sub.JoaScore),
			EqVas:      f(sub.EqVas),
		}
		if !sub.SubmittedAt.IsZero() {
			point.Date = sub.SubmittedAt.Format("2006-01-02")
		}
		trend = append(trend, point)
	}
	return trend
}

func f(v float64) *float64 { return &v }

func decodeCategories(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		logger.Log.WithError(err).Warn("Malformed op_categories, ignoring")
		return nil
	}
	return categories
}

func diagnosisLabel(row PatientModel) string {
	if row.DiagnosisKo != "" {
		return row.DiagnosisKo
	}
	return row.DiagnosisName
}
