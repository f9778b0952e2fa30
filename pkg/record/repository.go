// Package record persists hospital patient records and PROM questionnaire
// submissions, and assembles the derived patient-journey view served to the
// patient app.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/schedule"
)

var ErrPatientNotFound = errors.New("patient not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PatientModel mirrors the hospital feed: one row per patient number with
// the raw surgery classification. Journey stages are never stored.
type PatientModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	PatientNumber string         `gorm:"uniqueIndex;column:patient_number"`
	Name          string         `gorm:"column:name"`
	Age           int            `gorm:"column:age"`
	Sex           string         `gorm:"column:sex"`
	DiagnosisCode string         `gorm:"column:diagnosis_code"`
	DiagnosisName string         `gorm:"column:diagnosis_name"`
	DiagnosisKo   string         `gorm:"column:diagnosis_ko"`
	OpName        string         `gorm:"column:op_name"`
	OpCategories  datatypes.JSON `gorm:"type:jsonb;column:op_categories"`
	SurgeryDate   *time.Time     `gorm:"column:surgery_date"`
	Schedule      string         `gorm:"column:schedule"`
	FirstVisit    string         `gorm:"column:first_visit"`
	Surgeon       string         `gorm:"column:surgeon"`
	Hospital      string         `gorm:"column:hospital"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (PatientModel) TableName() string {
	return "patients"
}

// PromModel stores one questionnaire per patient and timepoint; resubmitting
// within the same clinical window overwrites the earlier answer.
type PromModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	PatientNumber string         `gorm:"index;uniqueIndex:idx_prom_patient_timepoint;column:patient_number"`
	Timepoint     string         `gorm:"uniqueIndex:idx_prom_patient_timepoint;column:timepoint"`
	Payload       datatypes.JSON `gorm:"type:jsonb;column:payload"`
	SubmittedAt   time.Time      `gorm:"column:submitted_at"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (PromModel) TableName() string {
	return "prom_submissions"
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&PatientModel{}, &PromModel{})
}

func (r *Repository) GetPatient(ctx context.Context, patientNumber string) (PatientModel, error) {
	var patient PatientModel
	err := r.db.WithContext(ctx).Where("patient_number = ?", patientNumber).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PatientModel{}, ErrPatientNotFound
	}
	if err != nil {
		return PatientModel{}, err
	}
	return patient, nil
}

// UpsertPatient writes a hospital feed row, keyed by patient number.
func (r *Repository) UpsertPatient(ctx context.Context, patient PatientModel) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	now := time.Now().UTC()
	patient.UpdatedAt = now
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = now
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "patient_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "age", "sex", "diagnosis_code", "diagnosis_name", "diagnosis_ko",
			"op_name", "op_categories", "surgery_date", "schedule", "first_visit",
			"surgeon", "hospital", "updated_at",
		}),
	}).Create(&patient).Error
}

// SavePromSubmission files the questionnaire under its timepoint, replacing
// any earlier submission in the same window.
func (r *Repository) SavePromSubmission(ctx context.Context, patientNumber string, timepoint schedule.Timepoint, submission models.PromSubmission) error {
	payload, err := json.Marshal(submission)
	if err != nil {
		return err
	}

	submittedAt := submission.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	now := time.Now().UTC()
	row := PromModel{
		ID:            uuid.New(),
		PatientNumber: patientNumber,
		Timepoint:     string(timepoint),
		Payload:       payload,
		SubmittedAt:   submittedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_number"}, {Name: "timepoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "submitted_at", "updated_at"}),
	}).Create(&row).Error
}

// ListPromSubmissions returns the patient's questionnaires keyed by timepoint.
func (r *Repository) ListPromSubmissions(ctx context.Context, patientNumber string) (map[schedule.Timepoint]models.PromSubmission, error) {
	var rows []PromModel
	if err := r.db.WithContext(ctx).Where("patient_number = ?", patientNumber).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[schedule.Timepoint]models.PromSubmission, len(rows))
	for _, row := range rows {
		var submission models.PromSubmission
		if err := json.Unmarshal(row.Payload, &submission); err != nil {
			return nil, err
		}
		if submission.SubmittedAt.IsZero() {
			submission.SubmittedAt = row.SubmittedAt
		}
		out[schedule.Timepoint(row.Timepoint)] = submission
	}
	return out, nil
}
