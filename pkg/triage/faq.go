package triage

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/journey"
)

// FaqEntry is one canned answer with its keyword triggers and triage level.
// Stages restricts a green entry to certain journey stages; empty means all.
type FaqEntry struct {
	ID       string             `yaml:"id" json:"id"`
	Keywords []string           `yaml:"keywords" json:"keywords"`
	Question string             `yaml:"question" json:"question"`
	Answer   string             `yaml:"answer" json:"answer"`
	Triage   models.TriageLevel `yaml:"triage" json:"triage"`
	Stages   []journey.StageID  `yaml:"stages,omitempty" json:"stages,omitempty"`
}

type FaqCatalog struct {
	Entries []FaqEntry `yaml:"entries" json:"entries"`
}

// LoadFaqCatalog reads a YAML catalog override. An empty path keeps the
// built-in catalog.
func LoadFaqCatalog(path string) (FaqCatalog, error) {
	if path == "" {
		return DefaultFaqCatalog(), nil
	}
	content, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return DefaultFaqCatalog(), err
	}

	var cat FaqCatalog
	if err := yaml.Unmarshal(content, &cat); err != nil {
		return FaqCatalog{}, err
	}

	if len(cat.Entries) == 0 {
		return FaqCatalog{}, errors.New("no FAQ entries configured")
	}

	return cat, nil
}

// Matcher answers patient messages from the catalog, red tier before yellow
// before green. Within a tier the first entry in catalog order wins.
type Matcher struct {
	catalog FaqCatalog
}

func NewMatcher(cat FaqCatalog) *Matcher {
	return &Matcher{catalog: cat}
}

// Match returns the first catalog entry triggered by the message, or nil.
// Green entries restricted to specific stages are skipped when the patient's
// current stage is known and not listed.
func (m *Matcher) Match(message string, currentStage journey.StageID) *FaqEntry {
	if m == nil {
		return nil
	}
	lower := strings.ToLower(message)

	for _, level := range []models.TriageLevel{models.TriageRed, models.TriageYellow, models.TriageGreen} {
		for i := range m.catalog.Entries {
			entry := &m.catalog.Entries[i]
			if entry.Triage != level {
				continue
			}
			if level == models.TriageGreen && !stageAllowed(entry.Stages, currentStage) {
				continue
			}
			if matchesKeyword(lower, entry.Keywords) {
				return entry
			}
		}
	}
	return nil
}

func matchesKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func stageAllowed(stages []journey.StageID, current journey.StageID) bool {
	if len(stages) == 0 || current == "" {
		return true
	}
	for _, s := range stages {
		if s == current {
			return true
		}
	}
	return false
}

// QuickQuestion is a suggested tap-to-send prompt shown in the chat UI.
type QuickQuestion struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// QuickQuestions returns the suggested prompts for a journey stage.
func QuickQuestions(stage journey.StageID) []QuickQuestion {
	switch stage {
	case journey.StageDecision:
		return []QuickQuestion{
			{Label: "수술 과정", Message: "수술은 어떤 과정으로 진행되나요?"},
			{Label: "금식 안내", Message: "수술 전 금식은 어떻게 하나요?"},
			{Label: "준비물", Message: "입원 시 준비물이 뭐가 필요한가요?"},
		}
	case journey.StageSurgery:
		return []QuickQuestion{
			{Label: "마취", Message: "마취는 어떻게 진행되나요?"},
			{Label: "수술 시간", Message: "수술 시간이 얼마나 걸리나요?"},
			{Label: "보호자 대기", Message: "보호자는 어디서 대기하나요?"},
		}
	case journey.StageImmediate:
		return []QuickQuestion{
			{Label: "통증 관리", Message: "통증이 심한데 어떻게 하나요?"},
			{Label: "보행", Message: "언제부터 걸을 수 있나요?"},
			{Label: "퇴원", Message: "퇴원은 언제 가능한가요?"},
		}
	case journey.StageEarlyRecovery:
		return []QuickQuestion{
			{Label: "샤워", Message: "샤워는 언제부터 할 수 있나요?"},
			{Label: "운전", Message: "운전은 언제부터 가능한가요?"},
			{Label: "상처 관리", Message: "상처 부위를 어떻게 관리하나요?"},
		}
	case journey.StageMidRecovery:
		return []QuickQuestion{
			{Label: "운동", Message: "운동은 언제부터 할 수 있나요?"},
			{Label: "출근", Message: "직장 복귀는 언제 가능한가요?"},
			{Label: "보조기", Message: "보조기는 얼마나 착용해야 하나요?"},
		}
	case journey.StageFullRecovery:
		return []QuickQuestion{
			{Label: "재발 예방", Message: "재발을 예방하려면 어떻게 해야 하나요?"},
			{Label: "스포츠", Message: "운동은 언제부터 할 수 있나요?"},
			{Label: "정기 검진", Message: "정기 검진은 얼마나 자주 받아야 하나요?"},
		}
	default:
		return nil
	}
}

func DefaultFaqCatalog() FaqCatalog {
	return FaqCatalog{Entries: []FaqEntry{
		{
			ID:       "faq-g1",
			Keywords: []string{"샤워", "씻기", "목욕", "세수"},
			Question: "샤워는 언제부터 할 수 있나요?",
			Answer:   "수술 후 2-3일부터 간단한 샤워가 가능합니다. 수술 부위에 직접 물이 닿지 않도록 방수 테이프를 붙이고, 탕이나 사우나는 수술 후 4주까지 피해주세요.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g2",
			Keywords: []string{"운전", "차", "드라이브"},
			Question: "운전은 언제부터 가능한가요?",
			Answer:   "수술 후 2주 외래 방문 시 의료진과 상의해주세요. 통상적으로 수술 후 2-4주 후부터 짧은 거리 운전이 가능합니다. 장거리 운전은 6주 이후를 권장합니다.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g3",
			Keywords: []string{"출근", "회사", "직장", "복귀", "업무"},
			Question: "직장 복귀는 언제 가능한가요?",
			Answer:   "사무직의 경우 보통 수술 후 2-4주, 육체노동이 많은 직종은 6-12주 후 복귀가 가능합니다. 무거운 물건 들기는 6주 이후부터 점진적으로 가능합니다.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g4",
			Keywords: []string{"운동", "헬스", "수영", "골프", "등산", "조깅"},
			Question: "운동은 언제부터 할 수 있나요?",
			Answer:   "가벼운 산책은 퇴원 직후부터 가능합니다. 수영은 4주 후, 골프는 6주 후, 등산이나 조깅은 8-12주 후부터 점진적으로 시작하세요. 무거운 웨이트 트레이닝은 3개월 이후를 권장합니다.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g5",
			Keywords: []string{"통증", "아파", "진통제", "약", "타이레놀"},
			Question: "퇴원 후 통증이 있으면 어떻게 하나요?",
			Answer:   "처방받은 아세트아미노펜(타이레놀)을 하루 3회 규칙적으로 복용하세요. 추가 통증 시 처방받은 NSAIDs를 함께 복용할 수 있습니다. 마약성 진통제는 사용하지 않습니다.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g6",
			Keywords: []string{"식사", "음식", "밥", "먹기", "식이"},
			Question: "식사에 제한이 있나요?",
			Answer:   "수술 후 특별한 식이 제한은 없습니다. 균형 잡힌 식사를 하시되, 뼈 건강을 위해 칼슘과 비타민D가 풍부한 음식을 챙기시는 것이 좋습니다.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g7",
			Keywords: []string{"잠", "자세", "수면", "베개", "눕기"},
			Question: "수면 자세는 어떻게 해야 하나요?",
			Answer:   "똑바로 누워 무릎 아래에 베개를 받치는 것이 가장 편합니다. 옆으로 누울 때는 양 무릎 사이에 베개를 끼우세요. 엎드려 자는 것은 4주간 피해주세요.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g8",
			Keywords: []string{"보조기", "허리띠", "벨트", "코르셋"},
			Question: "보조기는 얼마나 착용해야 하나요?",
			Answer:   "수술 유형에 따라 다릅니다. UBE의 경우 2-4주, 유합술의 경우 2-3개월 착용을 권장합니다. 취침 시에는 벗어도 됩니다. 외래 방문 시 의료진과 제거 시기를 상의하세요.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g9",
			Keywords: []string{"술", "음주", "알코올", "맥주", "소주"},
			Question: "음주는 언제부터 가능한가요?",
			Answer:   "수술 후 최소 4주간은 음주를 피해주세요. 진통제 복용 중에는 절대 음주하시면 안 됩니다. 이후에도 과음은 뼈 회복에 좋지 않으므로 적당량만 드세요.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-g10",
			Keywords: []string{"비행기", "여행", "해외"},
			Question: "비행기를 타도 되나요?",
			Answer:   "수술 후 2주 이내 장거리 비행은 피하세요. 2주 이후 짧은 비행(2-3시간)은 가능합니다. 장거리 비행은 4주 이후를 권장하며, 30분마다 일어나 스트레칭하세요.",
			Triage:   models.TriageGreen,
		},
		{
			ID:       "faq-y1",
			Keywords: []string{"열", "발열", "체온", "38"},
			Question: "수술 부위에 열감이 느껴져요",
			Answer:   "수술 후 2-3일간 미열(37.5도 이하)은 정상적인 반응입니다. 하지만 38도 이상의 발열이 지속되거나 수술 부위가 붉어지고 부어오르면 감염 가능성이 있으니 의료진에게 연락해주세요.",
			Triage:   models.TriageYellow,
		},
		{
			ID:       "faq-y2",
			Keywords: []string{"저림", "찌릿", "감각", "무감각", "찌릿찌릿"},
			Question: "다리/팔이 저리고 감각이 이상해요",
			Answer:   "수술 직후 일시적인 저림은 신경 회복 과정에서 나타날 수 있습니다. 하지만 새로 생긴 저림이나 점점 심해지는 감각 이상은 신경 문제 신호일 수 있으니, 의료진과 상의가 필요합니다.",
			Triage:   models.TriageYellow,
		},
		{
			ID:       "faq-y3",
			Keywords: []string{"소변", "대변", "배뇨", "배변", "방광"},
			Question: "소변/대변이 잘 안 나와요",
			Answer:   "수술 후 일시적인 배뇨/배변 곤란은 마취의 영향으로 나타날 수 있습니다. 하지만 24시간 이상 소변을 보지 못하거나, 하반신 감각 이상과 함께 나타나면 마미증후군의 징후일 수 있으니 즉시 의료진에게 알려주세요.",
			Triage:   models.TriageYellow,
		},
		{
			ID:       "faq-y4",
			Keywords: []string{"출혈", "피", "진물", "상처"},
			Question: "수술 부위에서 분비물이 나와요",
			Answer:   "수술 후 1-2일간 소량의 붉은 분비물은 정상입니다. 하지만 다량의 출혈이나 노란색/녹색 분비물, 악취가 나는 경우는 감염 징후이므로 의료진에게 연락해주세요.",
			Triage:   models.TriageYellow,
		},
		{
			ID:       "faq-y5",
			Keywords: []string{"부었", "부어", "붓기", "부종"},
			Question: "수술 부위가 많이 부어 있어요",
			Answer:   "수술 후 2-3일간 약간의 부기는 정상입니다. 하지만 부기가 점점 심해지거나 열감/발적이 동반되면 의료진과 상의가 필요합니다.",
			Triage:   models.TriageYellow,
		},
		{
			ID:       "faq-r1",
			Keywords: []string{"마비", "못움직", "움직이지", "힘이 없", "못걸"},
			Question: "다리/팔에 힘이 없어요 (마비 증상)",
			Answer:   "⚠️ 새로 발생한 근력 저하/마비는 응급 상황입니다. 신경 손상 또는 혈종 압박의 징후일 수 있습니다. 즉시 응급실에 내원하시거나 119에 연락해주세요.",
			Triage:   models.TriageRed,
		},
		{
			ID:       "faq-r2",
			Keywords: []string{"두통", "머리", "구토", "뇌"},
			Question: "극심한 두통과 구토가 있어요",
			Answer:   "⚠️ 수술 후 극심한 두통(특히 앉거나 서면 악화)은 경막 손상에 의한 뇌척수액 누출 가능성이 있습니다. 구토가 동반되면 즉시 응급실에 내원하세요.",
			Triage:   models.TriageRed,
		},
		{
			ID:       "faq-r3",
			Keywords: []string{"흉통", "가슴", "숨", "호흡곤란", "숨쉬기"},
			Question: "가슴이 아프고 숨쉬기 어려워요",
			Answer:   "⚠️ 수술 후 갑작스러운 흉통/호흡곤란은 폐색전증의 위험 신호입니다. 이는 생명을 위협하는 응급 상황이므로 즉시 119에 연락하세요.",
			Triage:   models.TriageRed,
		},
		{
			ID:       "faq-r4",
			Keywords: []string{"종아리", "다리 부어", "한쪽 다리"},
			Question: "한쪽 종아리가 심하게 부어올랐어요",
			Answer:   "⚠️ 한쪽 종아리의 갑작스러운 부종과 통증은 심부정맥 혈전증(DVT)의 징후일 수 있습니다. 이는 폐색전증으로 진행할 수 있으므로 즉시 응급실에 내원하세요.",
			Triage:   models.TriageRed,
		},
	}}
}
