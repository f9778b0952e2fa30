package chat

import (
	"context"
	"fmt"

	"github.com/spinetrack/platform/pkg/common/config"
	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/journey"
	"github.com/spinetrack/platform/pkg/llm"
	"github.com/spinetrack/platform/pkg/triage"
)

// Publisher is the escalation sink. Satisfied by kafka.Producer.
type Publisher interface {
	PublishEvent(ctx context.Context, eventType string, source string, data map[string]interface{}) error
}

const fallbackMessage = "죄송합니다. 지금은 답변을 생성할 수 없습니다. 급한 증상이 있으시면 병원에 직접 연락해주세요."

// Service answers patient messages. Two safety nets run on every request:
// the red-flag scan on the inbound message, which can only raise the final
// triage level, and the FAQ catalog, which answers when the generator is
// unavailable.
type Service struct {
	llm          llm.Client
	scanner      *triage.Scanner
	matcher      *triage.Matcher
	publisher    Publisher
	historyLimit int
	hospital     string
	phone        string
}

func NewService(cfg *config.Config, client llm.Client, scanner *triage.Scanner, matcher *triage.Matcher, publisher Publisher) *Service {
	return &Service{
		llm:          client,
		scanner:      scanner,
		matcher:      matcher,
		publisher:    publisher,
		historyLimit: cfg.ChatHistoryLimit,
		hospital:     cfg.HospitalName,
		phone:        cfg.HospitalPhone,
	}
}

// Reply generates a triaged answer for the latest user message in the
// request. Red results are escalated to the event bus; a publish failure is
// logged but never blocks the reply.
func (s *Service) Reply(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return models.ChatResponse{}, fmt.Errorf("empty message history")
	}
	userMessage := latestUserMessage(req.Messages)

	resp := s.generate(ctx, req)

	// The scan runs on what the patient actually typed, independently of
	// what the generator returned. It can only raise, never lower.
	if s.scanner.DetectRedFlag(userMessage) && models.TriageRed.Rank() > resp.Triage.Rank() {
		resp.Triage = models.TriageRed
	}

	if resp.Triage == models.TriageRed {
		s.escalate(ctx, req.PatientContext, userMessage, resp.Content)
	}

	return resp, nil
}

func (s *Service) generate(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	messages := make([]models.ChatMessage, 0, s.historyLimit+1)
	messages = append(messages, models.ChatMessage{
		Role:    "system",
		Content: BuildSystemPrompt(req.PatientContext, s.hospital, s.phone),
	})
	messages = append(messages, boundHistory(req.Messages, s.historyLimit)...)

	raw, err := s.llm.Chat(ctx, messages)
	if err != nil {
		logger.Log.WithError(err).Warn("Chat generation failed, falling back to FAQ catalog")
		return s.fallback(req)
	}

	content, level, tagged := triage.ParseResponse(raw)
	if !tagged {
		logger.Log.WithField("stage", req.PatientContext.CurrentStage).
			Warn("Generator reply carried no triage tag, defaulting to green")
	}
	return models.ChatResponse{Content: content, Triage: level}
}

// fallback answers from the FAQ catalog when the generator is unavailable.
// No catalog hit yields a fixed apology tagged green; the red-flag scan in
// Reply still escalates emergencies.
func (s *Service) fallback(req models.ChatRequest) models.ChatResponse {
	userMessage := latestUserMessage(req.Messages)
	if entry := s.matcher.Match(userMessage, journey.StageID(req.PatientContext.CurrentStage)); entry != nil {
		return models.ChatResponse{Content: entry.Answer, Triage: entry.Triage}
	}
	return models.ChatResponse{Content: fallbackMessage, Triage: models.TriageGreen}
}

func (s *Service) escalate(ctx context.Context, pctx models.PatientContext, message, answer string) {
	if s.publisher == nil {
		return
	}
	data := map[string]interface{}{
		"patient_name":  pctx.Name,
		"surgery_type":  pctx.SurgeryType,
		"surgery_date":  pctx.SurgeryDate,
		"current_stage": pctx.CurrentStage,
		"message":       message,
		"answer":        answer,
		"triage":        string(models.TriageRed),
	}
	if err := s.publisher.PublishEvent(ctx, "triage.escalated", "chat-service", data); err != nil {
		logger.Log.WithError(err).Error("Failed to publish triage escalation")
	}
}

// boundHistory keeps the most recent turns within the configured limit.
func boundHistory(messages []models.ChatMessage, limit int) []models.ChatMessage {
	if limit <= 0 || len(messages) <= limit {
		return messages
	}
	return messages[len(messages)-limit:]
}

func latestUserMessage(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return messages[len(messages)-1].Content
}
