package models

import (
	"time"
)

// Triage severity assigned to a patient message. Ordered: green < yellow < red.
type TriageLevel string

const (
	TriageGreen  TriageLevel = "green"
	TriageYellow TriageLevel = "yellow"
	TriageRed    TriageLevel = "red"
)

// Rank returns the ordering position of the level so callers can compare
// severities. Unknown levels rank below green.
func (t TriageLevel) Rank() int {
	switch t {
	case TriageGreen:
		return 1
	case TriageYellow:
		return 2
	case TriageRed:
		return 3
	default:
		return 0
	}
}

type StageStatus string

const (
	StatusCompleted StageStatus = "completed"
	StatusCurrent   StageStatus = "current"
	StatusUpcoming  StageStatus = "upcoming"
)

type StagePhase string

const (
	PhaseInpatient  StagePhase = "inpatient"
	PhaseOutpatient StagePhase = "outpatient"
)

// Patient record as assembled for the patient-facing API. The surgery date is
// the only persisted scheduling fact; stages and follow-ups are derived views.
type Patient struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Sex             string          `json:"sex"` // "M" or "F"
	Diagnosis       Diagnosis       `json:"diagnosis"`
	Surgery         Surgery         `json:"surgery"`
	Admission       Admission       `json:"admission"`
	Hospital        string          `json:"hospital"`
	Surgeon         string          `json:"surgeon"`
	PromInstruments []string        `json:"prom_instruments"`
	FollowUps       []FollowUp      `json:"follow_ups"`
	Stages          []ClinicalStage `json:"stages"`
}

type Diagnosis struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameKo string `json:"name_ko"`
}

type Surgery struct {
	Name         string   `json:"name"`
	NameKo       string   `json:"name_ko"`
	Abbreviation string   `json:"abbreviation"`
	Date         string   `json:"date"` // ISO date, empty when unknown
	Categories   []string `json:"categories"`
	Schedule     string   `json:"schedule,omitempty"` // slot token, e.g. "9A", "AMOC1"
}

type Admission struct {
	Date              string `json:"date"`
	ExpectedDischarge string `json:"expected_discharge"`
}

// ClinicalStage is a template stage materialized against a surgery date.
// Status is recomputed on every read; it is never stored.
type ClinicalStage struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Date         string      `json:"date"` // empty when the stage has no fixed date
	Status       StageStatus `json:"status"`
	Phase        StagePhase  `json:"phase"`
	Instructions []string    `json:"instructions"`
	Warnings     []string    `json:"warnings"`
	Dos          []string    `json:"dos"`
	Donts        []string    `json:"donts"`
	Faq          []FaqItem   `json:"faq,omitempty"`
}

type FollowUp struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// FaqItem is a per-stage question/answer pair embedded in a template stage.
type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Chat models

type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type PatientContext struct {
	Name                string `json:"name"`
	Diagnosis           string `json:"diagnosis"`
	SurgeryType         string `json:"surgery_type"`
	SurgeryDate         string `json:"surgery_date"`
	SurgerySchedule     string `json:"surgery_schedule,omitempty"`
	SurgeryAbbreviation string `json:"surgery_abbreviation,omitempty"`
	CurrentStage        string `json:"current_stage"`
}

type ChatRequest struct {
	Messages       []ChatMessage  `json:"messages"`
	PatientContext PatientContext `json:"patient_context"`
}

type ChatResponse struct {
	Content string      `json:"content"`
	Triage  TriageLevel `json:"triage"`
}

// PROM models

type PromSubmission struct {
	VasBack         float64   `json:"vas_back"`
	VasLeg          float64   `json:"vas_leg"`
	OdiScores       []int     `json:"odi_scores,omitempty"`
	OdiTotalPercent *float64  `json:"odi_total_percent,omitempty"`
	NdiScores       []int     `json:"ndi_scores,omitempty"`
	NdiTotalPercent *float64  `json:"ndi_total_percent,omitempty"`
	JoaScore        float64   `json:"joa_score"`
	Eq5dDimensions  []int     `json:"eq5d_dimensions,omitempty"`
	Eq5dCode        string    `json:"eq5d_code,omitempty"`
	EqVas           float64   `json:"eq_vas"`
	SubmittedAt     time.Time `json:"submitted_at,omitempty"`
}

type PromTrendPoint struct {
	Label      string   `json:"label"`
	Date       string   `json:"date"`
	VasBack    *float64 `json:"vas_back"`
	VasLeg     *float64 `json:"vas_leg"`
	OdiPercent *float64 `json:"odi_percent"`
	NdiPercent *float64 `json:"ndi_percent"`
	JoaScore   *float64 `json:"joa_score"`
	EqVas      *float64 `json:"eq_vas"`
}

type PatientResponse struct {
	Patient   Patient          `json:"patient"`
	PromTrend []PromTrendPoint `json:"prom_trend"`
}

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // triage.escalated, prom.submitted
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}
