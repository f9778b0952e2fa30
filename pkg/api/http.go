// Package api exposes the patient-facing HTTP surface: the assembled
// journey view, PROM submission, chat, and stage-aware quick questions.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/spinetrack/platform/pkg/chat"
	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/journey"
	"github.com/spinetrack/platform/pkg/record"
	"github.com/spinetrack/platform/pkg/triage"
)

type Handler struct {
	records *record.Service
	chat    *chat.Service
}

func NewHandler(records *record.Service, chatSvc *chat.Service) *Handler {
	return &Handler{records: records, chat: chatSvc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/patient", h.handleGetPatient).Methods(http.MethodGet)
	r.HandleFunc("/api/prom", h.handleSubmitProm).Methods(http.MethodPost)
	r.HandleFunc("/api/chat", h.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/quick-questions", h.handleQuickQuestions).Methods(http.MethodGet)
	r.HandleFunc("/api/records", h.handleUpsertRecord).Methods(http.MethodPost)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
}

// patientNumber resolves the patient from the ptno query parameter, falling
// back to the host subdomain (each patient gets a personal link like
// 12345678.app.example.com).
func patientNumber(r *http.Request) string {
	if ptno := r.URL.Query().Get("ptno"); ptno != "" {
		return ptno
	}
	host := r.Host
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	parts := strings.Split(host, ".")
	if len(parts) >= 3 && parts[0] != "www" {
		return parts[0]
	}
	return ""
}

func (h *Handler) handleGetPatient(w http.ResponseWriter, r *http.Request) {
	ptno := patientNumber(r)
	if ptno == "" {
		http.Error(w, "patient number is required", http.StatusBadRequest)
		return
	}

	resp, err := h.records.GetPatient(r.Context(), ptno)
	if errors.Is(err, record.ErrPatientNotFound) {
		http.Error(w, "patient not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log.WithError(err).Error("failed to load patient")
		http.Error(w, "failed to load patient", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSubmitProm(w http.ResponseWriter, r *http.Request) {
	ptno := patientNumber(r)
	if ptno == "" {
		http.Error(w, "patient number is required", http.StatusBadRequest)
		return
	}

	var submission models.PromSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	timepoint, err := h.records.SubmitProm(r.Context(), ptno, submission)
	if errors.Is(err, record.ErrPatientNotFound) {
		http.Error(w, "patient not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log.WithError(err).Error("failed to save PROM submission")
		http.Error(w, "failed to save submission", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"timepoint": timepoint})
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		http.Error(w, "messages are required", http.StatusBadRequest)
		return
	}

	// The app usually sends the context it already holds; personal links
	// without one get it rebuilt from the stored record.
	if req.PatientContext.Name == "" {
		if ptno := patientNumber(r); ptno != "" {
			pctx, err := h.records.PatientContext(r.Context(), ptno)
			if err != nil && !errors.Is(err, record.ErrPatientNotFound) {
				logger.Log.WithError(err).Error("failed to build patient context")
				http.Error(w, "failed to build patient context", http.StatusInternalServerError)
				return
			}
			if err == nil {
				req.PatientContext = pctx
			}
		}
	}

	resp, err := h.chat.Reply(r.Context(), req)
	if err != nil {
		logger.Log.WithError(err).Error("failed to generate chat reply")
		http.Error(w, "failed to generate reply", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleQuickQuestions(w http.ResponseWriter, r *http.Request) {
	stage := journey.StageID(r.URL.Query().Get("stage"))
	if stage == "" {
		ptno := patientNumber(r)
		if ptno == "" {
			http.Error(w, "stage or patient number is required", http.StatusBadRequest)
			return
		}
		pctx, err := h.records.PatientContext(r.Context(), ptno)
		if errors.Is(err, record.ErrPatientNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Log.WithError(err).Error("failed to resolve journey stage")
			http.Error(w, "failed to resolve stage", http.StatusInternalServerError)
			return
		}
		stage = journey.StageID(pctx.CurrentStage)
	}

	questions := triage.QuickQuestions(stage)
	if questions == nil {
		http.Error(w, "unknown stage", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": questions})
}

// RecordFeedRequest is the hospital feed payload: the raw EMR facts this
// service derives everything else from.
type RecordFeedRequest struct {
	PatientNumber string   `json:"patient_number"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Sex           string   `json:"sex"`
	DiagnosisCode string   `json:"diagnosis_code"`
	DiagnosisName string   `json:"diagnosis_name"`
	DiagnosisKo   string   `json:"diagnosis_ko"`
	OpName        string   `json:"op_name"`
	OpCategories  []string `json:"op_categories"`
	SurgeryDate   string   `json:"surgery_date"` // YYYY-MM-DD, empty when unscheduled
	Schedule      string   `json:"schedule"`
	FirstVisit    string   `json:"first_visit"`
	Surgeon       string   `json:"surgeon"`
	Hospital      string   `json:"hospital"`
}

func (h *Handler) handleUpsertRecord(w http.ResponseWriter, r *http.Request) {
	var req RecordFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.PatientNumber == "" || req.Name == "" {
		http.Error(w, "patient_number and name are required", http.StatusBadRequest)
		return
	}

	row := record.PatientModel{
		PatientNumber: req.PatientNumber,
		Name:          req.Name,
		Age:           req.Age,
		Sex:           req.Sex,
		DiagnosisCode: req.DiagnosisCode,
		DiagnosisName: req.DiagnosisName,
		DiagnosisKo:   req.DiagnosisKo,
		OpName:        req.OpName,
		Schedule:      req.Schedule,
		FirstVisit:    req.FirstVisit,
		Surgeon:       req.Surgeon,
		Hospital:      req.Hospital,
	}
	if len(req.OpCategories) > 0 {
		cats, err := json.Marshal(req.OpCategories)
		if err != nil {
			http.Error(w, "invalid op_categories", http.StatusBadRequest)
			return
		}
		row.OpCategories = cats
	}
	if req.SurgeryDate != "" {
		d, err := time.Parse("2006-01-02", req.SurgeryDate)
		if err != nil {
			http.Error(w, "invalid surgery_date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		row.SurgeryDate = &d
	}

	if err := h.records.UpsertRecord(r.Context(), row); err != nil {
		logger.Log.WithError(err).Error("failed to upsert patient record")
		http.Error(w, "failed to save record", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"patient_number": req.PatientNumber})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "patient-service"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.WithError(err).Error("failed to encode response")
	}
}
