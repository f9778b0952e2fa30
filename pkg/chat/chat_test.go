package chat

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/spinetrack/platform/pkg/common/config"
	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/triage"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fakeLLM struct {
	reply string
	err   error
	got   []models.ChatMessage
}

func (f *fakeLLM) Chat(_ context.Context, messages []models.ChatMessage) (string, error) {
	f.got = messages
	return f.reply, f.err
}

type fakePublisher struct {
	events []string
	data   []map[string]interface{}
	err    error
}

func (f *fakePublisher) PublishEvent(_ context.Context, eventType, _ string, data map[string]interface{}) error {
	f.events = append(f.events, eventType)
	f.data = append(f.data, data)
	return f.err
}

func newTestService(client *fakeLLM, pub *fakePublisher) *Service {
	cfg := config.Load()
	scanner := triage.NewScanner(triage.DefaultRedFlagRules())
	matcher := triage.NewMatcher(triage.DefaultFaqCatalog())
	return NewService(cfg, client, scanner, matcher, pub)
}

func request(messages ...models.ChatMessage) models.ChatRequest {
	return models.ChatRequest{
		Messages: messages,
		PatientContext: models.PatientContext{
			Name:         "홍길동",
			Diagnosis:    "요추 추간판 탈출증",
			SurgeryType:  "양방향 내시경 디스크 제거술",
			SurgeryDate:  "2026-02-10",
			CurrentStage: "early_recovery",
		},
	}
}

func TestEstimateSurgeryTime(t *testing.T) {
	cases := []struct {
		schedule     string
		abbreviation string
		contains     string
	}{
		{"9A", "UBE", "오전 9시"},
		{"9A", "UBE", "60분"},
		{"AM1", "ACDF", "오전 9시"},
		{"1ST", "", "오전 9시"},
		{"AMOC1", "UBE", "오전 첫 수술 이후"},
		{"AM3", "UBE", "오전 두 번째 수술 이후"},
		{"PMOC", "Fusion", "오후 12시 30분"},
		{"PMOC", "Fusion", "150분"},
		{"PM2", "UBE", "오후 첫 수술 이후"},
		{"10A", "LP", "오전 10시"},
		{"1P", "VP", "오후 1시"},
		{"1P", "VP", "60분"},
		{"OC-EXTRA", "TLIF", "스케줄: OC-EXTRA"},
		{"OC-EXTRA", "", "90분"},
	}
	for _, tc := range cases {
		got := EstimateSurgeryTime(tc.schedule, tc.abbreviation)
		if !strings.Contains(got, tc.contains) {
			t.Fatalf("EstimateSurgeryTime(%q, %q) = %q, want substring %q", tc.schedule, tc.abbreviation, got, tc.contains)
		}
	}

	if got := EstimateSurgeryTime("", "UBE"); got != "수술 스케줄 정보 없음" {
		t.Fatalf("empty schedule = %q", got)
	}
}

func TestBuildSystemPromptIncludesContext(t *testing.T) {
	prompt := BuildSystemPrompt(models.PatientContext{
		Name:                "홍길동",
		Diagnosis:           "요추 추간판 탈출증",
		SurgeryType:         "UBE",
		SurgeryDate:         "2026-02-10",
		SurgerySchedule:     "9A",
		SurgeryAbbreviation: "UBE",
		CurrentStage:        "immediate",
	}, "다보스 병원", "051-000-0000")

	for _, want := range []string{
		"홍길동",
		"요추 추간판 탈출증",
		"2026-02-10",
		"오전 9시 시작 예정",
		"다보스 병원 (051-000-0000)",
		"[TRIAGE:red]",
		"ERAS",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("system prompt missing %q", want)
		}
	}
}

func TestReplyParsesTriageTag(t *testing.T) {
	client := &fakeLLM{reply: "샤워는 2-3일부터 가능합니다 [TRIAGE:green]"}
	svc := newTestService(client, &fakePublisher{})

	resp, err := svc.Reply(context.Background(), request(
		models.ChatMessage{Role: "user", Content: "샤워는 언제부터 가능한가요?"},
	))
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if resp.Content != "샤워는 2-3일부터 가능합니다" {
		t.Fatalf("content = %q", resp.Content)
	}
	if resp.Triage != models.TriageGreen {
		t.Fatalf("triage = %q, want green", resp.Triage)
	}
	if client.got[0].Role != "system" {
		t.Fatalf("first message role = %q, want system", client.got[0].Role)
	}
}

func TestReplyLogsMissingTriageTag(t *testing.T) {
	hook := logtest.NewLocal(logger.Log)
	defer logger.Log.ReplaceHooks(make(logrus.LevelHooks))

	client := &fakeLLM{reply: "샤워는 2-3일부터 가능합니다"}
	svc := newTestService(client, &fakePublisher{})

	resp, err := svc.Reply(context.Background(), request(
		models.ChatMessage{Role: "user", Content: "샤워는 언제부터 가능한가요?"},
	))
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if resp.Triage != models.TriageGreen {
		t.Fatalf("triage = %q, want green default", resp.Triage)
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, "no triage tag") {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected a warning for the untagged reply")
	}
}

func TestReplyRedFlagOverridesGeneratorLevel(t *testing.T) {
	// Generator mislabels an emergency as green; the inbound scan corrects it.
	client := &fakeLLM{reply: "조금 쉬어보세요 [TRIAGE:green]"}
	pub := &fakePublisher{}
	svc := newTestService(client, pub)

	resp, err := svc.Reply(context.Background(), request(
		models.ChatMessage{Role: "user", Content: "다리에 힘이 없어요"},
	))
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if resp.Triage != models.TriageRed {
		t.Fatalf("triage = %q, want red", resp.Triage)
	}
	if len(pub.events) != 1 || pub.events[0] != "triage.escalated" {
		t.Fatalf("events = %v, want one triage.escalated", pub.events)
	}
	if pub.data[0]["message"] != "다리에 힘이 없어요" {
		t.Fatalf("escalation message = %v", pub.data[0]["message"])
	}
}

func TestReplyFallsBackToFaqOnGeneratorError(t *testing.T) {
	client := &fakeLLM{err: errors.New("upstream timeout")}
	svc := newTestService(client, &fakePublisher{})

	resp, err := svc.Reply(context.Background(), request(
		models.ChatMessage{Role: "user", Content: "운전은 언제부터 가능한가요?"},
	))
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if resp.Triage != models.TriageGreen {
		t.Fatalf("triage = %q, want green", resp.Triage)
	}
	if !strings.Contains(resp.Content, "운전") {
		t.Fatalf("expected FAQ answer about driving, got %q", resp.Content)
	}
}

func TestReplyFallbackStillEscalatesEmergencies(t *testing.T) {
	client := &fakeLLM{err: errors.New("upstream timeout")}
	pub := &fakePublisher{}
	svc := newTestService(client, pub)

	resp, err := svc.Reply(context.Background(), request(
		models.ChatMessage{Role: "user", Content: "갑자기 마비가 온 것 같아요"},
	))
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if resp.Triage != models.TriageRed {
		t.Fatalf("triage = %q, want red", resp.Triage)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected escalation event, got %v", pub.events)
	}
}

func TestReplyNoMatchFallbackMessage(t *testing.T) {
	client := &fakeLLM{err: errors.New("upstream timeout")}
	svc := newTestService(client, &fakePublisher{})

	resp, err := svc.Reply(context.Background(), request(
		models.ChatMessage{Role: "user", Content: "오늘 하늘이 맑네요"},
	))
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if resp.Content != fallbackMessage {
		t.Fatalf("content = %q, want fixed fallback", resp.Content)
	}
	if resp.Triage != models.TriageGreen {
		t.Fatalf("triage = %q, want green", resp.Triage)
	}
}

func TestReplyEmptyHistory(t *testing.T) {
	svc := newTestService(&fakeLLM{}, &fakePublisher{})
	if _, err := svc.Reply(context.Background(), models.ChatRequest{}); err == nil {
		t.Fatal("expected error for empty history")
	}
}

func TestBoundHistory(t *testing.T) {
	msgs := []models.ChatMessage{
		{Role: "user", Content: "1"},
		{Role: "assistant", Content: "2"},
		{Role: "user", Content: "3"},
		{Role: "assistant", Content: "4"},
		{Role: "user", Content: "5"},
	}
	bounded := boundHistory(msgs, 2)
	if len(bounded) != 2 || bounded[0].Content != "4" || bounded[1].Content != "5" {
		t.Fatalf("boundHistory = %v", bounded)
	}
	if got := boundHistory(msgs, 10); len(got) != 5 {
		t.Fatalf("boundHistory under limit = %d messages", len(got))
	}
	if got := boundHistory(msgs, 0); len(got) != 5 {
		t.Fatalf("boundHistory zero limit = %d messages", len(got))
	}
}
