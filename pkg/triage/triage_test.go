package triage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/journey"
)

func TestDetectRedFlag(t *testing.T) {
	scanner := NewScanner(DefaultRedFlagRules())
	cases := []struct {
		message string
		want    bool
	}{
		{"다리에 힘이 없어요", true},
		{"갑자기 마비가 온 것 같아요", true},
		{"숨쉬기가 힘들어요", true},
		{"열이 39도까지 올랐어요", true},
		{"어제 쓰러질 뻔했어요", true},
		{"소변 못 본 지 하루가 넘었어요", true},
		{"샤워는 언제부터 가능한가요?", false},
		{"수술 부위가 조금 가려워요", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := scanner.DetectRedFlag(tc.message); got != tc.want {
			t.Fatalf("DetectRedFlag(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestScannerDisabledRule(t *testing.T) {
	cfg := RedFlagConfig{Rules: []RedFlagRule{
		{Keyword: "마비", Label: "paralysis", Enabled: false},
		{Keyword: "고열", Label: "high-fever", Enabled: true},
	}}
	scanner := NewScanner(cfg)
	if scanner.DetectRedFlag("마비 증상이 있어요") {
		t.Fatal("disabled rule should not match")
	}
	if !scanner.DetectRedFlag("고열이 나요") {
		t.Fatal("enabled rule should match")
	}
}

func TestLoadRedFlagRulesOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte("rules:\n  - keyword: \"어지러\"\n    label: dizziness\n    enabled: true\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	cfg, err := LoadRedFlagRules(path)
	if err != nil {
		t.Fatalf("LoadRedFlagRules: %v", err)
	}
	scanner := NewScanner(cfg)
	if !scanner.DetectRedFlag("머리가 어지러워요") {
		t.Fatal("override keyword should match")
	}
	if scanner.DetectRedFlag("마비가 왔어요") {
		t.Fatal("default keywords should be replaced by the override")
	}
}

func TestLoadRedFlagRulesEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadRedFlagRules("")
	if err != nil {
		t.Fatalf("LoadRedFlagRules: %v", err)
	}
	if len(cfg.Rules) == 0 {
		t.Fatal("default rules are empty")
	}
	scanner := NewScanner(cfg)
	for _, msg := range []string{"마비가 왔어요", "숨쉬기 힘들어요", "소변 못 봐요"} {
		if !scanner.DetectRedFlag(msg) {
			t.Fatalf("default catalog should flag %q", msg)
		}
	}
}

func TestMatchTierPrecedence(t *testing.T) {
	m := NewMatcher(DefaultFaqCatalog())

	// "다리가 부어서 못 걷겠어요" triggers both the calf-swelling red entry
	// and the swelling yellow entry; red must win.
	entry := m.Match("한쪽 다리 부어서 아파요", "")
	if entry == nil || entry.Triage != models.TriageRed {
		t.Fatalf("expected red entry, got %+v", entry)
	}

	// Fever without any red keyword lands on yellow.
	entry = m.Match("수술 부위에 열이 나는 것 같아요", "")
	if entry == nil || entry.ID != "faq-y1" {
		t.Fatalf("expected faq-y1, got %+v", entry)
	}

	// Plain lifestyle question lands on green.
	entry = m.Match("샤워는 언제부터 되나요?", journey.StageEarlyRecovery)
	if entry == nil || entry.ID != "faq-g1" {
		t.Fatalf("expected faq-g1, got %+v", entry)
	}

	if entry := m.Match("오늘 날씨가 좋네요", ""); entry != nil {
		t.Fatalf("expected no match, got %+v", entry)
	}
}

func TestMatchFirstInCatalogOrderWins(t *testing.T) {
	m := NewMatcher(DefaultFaqCatalog())
	// "운동" appears in both faq-g4 keywords and nothing earlier; but "약"
	// appears in faq-g5 while "식사" is in faq-g6. A message hitting both
	// resolves to the earlier entry.
	entry := m.Match("약 먹고 식사해도 되나요?", "")
	if entry == nil || entry.ID != "faq-g5" {
		t.Fatalf("expected faq-g5 (earlier in catalog), got %+v", entry)
	}
}

func TestMatchGreenStageRestriction(t *testing.T) {
	cat := FaqCatalog{Entries: []FaqEntry{
		{
			ID:       "faq-pre",
			Keywords: []string{"금식"},
			Question: "금식은 어떻게 하나요?",
			Answer:   "수술 2시간 전까지 맑은 음료가 가능합니다.",
			Triage:   models.TriageGreen,
			Stages:   []journey.StageID{journey.StageDecision, journey.StageSurgery},
		},
	}}
	m := NewMatcher(cat)

	if entry := m.Match("금식 안내해주세요", journey.StageDecision); entry == nil {
		t.Fatal("expected match in allowed stage")
	}
	if entry := m.Match("금식 안내해주세요", journey.StageMidRecovery); entry != nil {
		t.Fatalf("expected no match outside allowed stages, got %+v", entry)
	}
	// Unknown current stage does not filter.
	if entry := m.Match("금식 안내해주세요", ""); entry == nil {
		t.Fatal("expected match when stage is unknown")
	}
}

func TestQuickQuestionsPerStage(t *testing.T) {
	for _, stage := range []journey.StageID{
		journey.StageDecision,
		journey.StageSurgery,
		journey.StageImmediate,
		journey.StageEarlyRecovery,
		journey.StageMidRecovery,
		journey.StageFullRecovery,
	} {
		qs := QuickQuestions(stage)
		if len(qs) != 3 {
			t.Fatalf("stage %s: %d quick questions, want 3", stage, len(qs))
		}
		for _, q := range qs {
			if q.Label == "" || q.Message == "" {
				t.Fatalf("stage %s: empty quick question", stage)
			}
		}
	}
	if qs := QuickQuestions("nope"); qs != nil {
		t.Fatalf("unknown stage should return nil, got %v", qs)
	}
}

func TestParseResponse(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantContent string
		wantLevel   models.TriageLevel
		wantTagged  bool
	}{
		{
			"trailing tag",
			"샤워는 2-3일부터 가능합니다 [TRIAGE:green]",
			"샤워는 2-3일부터 가능합니다",
			models.TriageGreen,
			true,
		},
		{
			"red tag",
			"즉시 응급실에 내원하세요. [TRIAGE:red]",
			"즉시 응급실에 내원하세요.",
			models.TriageRed,
			true,
		},
		{
			"tag mid-text",
			"[TRIAGE:yellow] 의료진과 상의가 필요합니다.",
			"의료진과 상의가 필요합니다.",
			models.TriageYellow,
			true,
		},
		{
			"first tag wins, all stripped",
			"괜찮습니다 [TRIAGE:green] 하지만 주의하세요 [TRIAGE:yellow]",
			"괜찮습니다 하지만 주의하세요",
			models.TriageGreen,
			true,
		},
		{
			"missing tag defaults to green",
			"일반적인 안내입니다.",
			"일반적인 안내입니다.",
			models.TriageGreen,
			false,
		},
		{
			"malformed tag is kept verbatim",
			"안내입니다 [TRIAGE:purple]",
			"안내입니다 [TRIAGE:purple]",
			models.TriageGreen,
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content, level, tagged := ParseResponse(tc.raw)
			if content != tc.wantContent {
				t.Fatalf("content = %q, want %q", content, tc.wantContent)
			}
			if level != tc.wantLevel {
				t.Fatalf("level = %q, want %q", level, tc.wantLevel)
			}
			if tagged != tc.wantTagged {
				t.Fatalf("tagged = %v, want %v", tagged, tc.wantTagged)
			}
		})
	}
}
