package journey

import (
	"math"
	"time"

	"github.com/spinetrack/platform/pkg/common/models"
)

// StageID identifies one of the six coarse recovery phases. The phases are
// surgery-type independent; each is keyed by elapsed days since surgery.
type StageID string

const (
	StageDecision      StageID = "decision"
	StageSurgery       StageID = "surgery"
	StageImmediate     StageID = "immediate"
	StageEarlyRecovery StageID = "early_recovery"
	StageMidRecovery   StageID = "mid_recovery"
	StageFullRecovery  StageID = "full_recovery"
)

type DayRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type Stage struct {
	ID               StageID  `json:"id"`
	Title            string   `json:"title"`
	TitleKo          string   `json:"title_ko"`
	Subtitle         string   `json:"subtitle"`
	Description      string   `json:"description"`
	DayRange         DayRange `json:"day_range"`
	Tasks            []string `json:"tasks"`
	ClinicalStageIDs []string `json:"clinical_stage_ids"`
}

// Stages is the ordered journey catalog. Day ranges are contiguous and
// non-overlapping; values below the first range resolve to the first stage
// and values above the last resolve to the last.
var Stages = []Stage{
	{
		ID:          StageDecision,
		Title:       "Surgery Decision",
		TitleKo:     "수술 결정",
		Subtitle:    "수술 전 준비 단계",
		Description: "수술이 결정되었습니다. 입원 전 준비사항을 확인하고, 수술에 대한 교육 자료를 읽어보세요.",
		DayRange:    DayRange{From: -7, To: -1},
		Tasks: []string{
			"수술 동의서 확인",
			"수술 전 검사 완료 (혈액, 심전도, X-ray)",
			"ERAS 금식 안내 확인",
			"수술 전 교육 영상 시청",
			"보호자 연락처 등록",
		},
		ClinicalStageIDs: []string{"pre-op"},
	},
	{
		ID:          StageSurgery,
		Title:       "Surgery Day",
		TitleKo:     "수술 당일",
		Subtitle:    "수술 진행",
		Description: "오늘은 수술일입니다. 의료진이 최선을 다해 수술을 진행합니다.",
		DayRange:    DayRange{From: 0, To: 0},
		Tasks: []string{
			"수술 전 금식 확인",
			"수술실 이동",
			"수술 후 회복실 안정",
			"병동 복귀 후 조기 보행 시작",
		},
		ClinicalStageIDs: []string{"surgery-day"},
	},
	{
		ID:          StageImmediate,
		Title:       "Immediate Recovery",
		TitleKo:     "초기 회복",
		Subtitle:    "수술 후 입원 기간",
		Description: "수술 직후 회복 기간입니다. 통증 관리, 조기 보행, 식이 진행에 집중합니다.",
		DayRange:    DayRange{From: 1, To: 7},
		Tasks: []string{
			"통증 자가평가 (VAS) 기록",
			"보행 거리 점진적 확대",
			"일반식 식이 진행",
			"배액관/도뇨관 제거 확인",
			"퇴원 교육 이수",
		},
		ClinicalStageIDs: []string{"pod1", "pod2-3", "pod3-4", "discharge"},
	},
	{
		ID:          StageEarlyRecovery,
		Title:       "Early Recovery",
		TitleKo:     "초기 외래",
		Subtitle:    "퇴원 후 2주",
		Description: "퇴원 후 첫 외래 방문까지의 기간입니다. 일상 복귀를 서서히 시작합니다.",
		DayRange:    DayRange{From: 8, To: 30},
		Tasks: []string{
			"첫 외래 방문 (수술 후 2주)",
			"상처 드레싱 상태 확인",
			"PROM 설문 작성 (VAS, ODI/NDI)",
			"가벼운 산책 시작",
			"운전/출근 시기 의료진 확인",
		},
		ClinicalStageIDs: []string{"fu-2w"},
	},
	{
		ID:          StageMidRecovery,
		Title:       "Mid Recovery",
		TitleKo:     "중기 회복",
		Subtitle:    "1~3개월",
		Description: "수술 부위가 안정화되는 시기입니다. 활동 범위를 서서히 넓혀갑니다.",
		DayRange:    DayRange{From: 31, To: 180},
		Tasks: []string{
			"외래 방문 (6주, 3개월)",
			"PROM 설문 정기 작성",
			"재활 운동 프로그램 시작",
			"무거운 물건 들기 제한 확인",
			"직장 복귀 계획 수립",
		},
		ClinicalStageIDs: []string{"fu-6w", "fu-3m"},
	},
	{
		ID:          StageFullRecovery,
		Title:       "Full Recovery",
		TitleKo:     "완전 회복",
		Subtitle:    "6개월~1년",
		Description: "장기 추적 단계입니다. 대부분의 활동이 가능하며, 정기 검진으로 경과를 확인합니다.",
		DayRange:    DayRange{From: 181, To: 365},
		Tasks: []string{
			"외래 방문 (6개월, 1년)",
			"최종 PROM 설문 작성",
			"운동 제한 해제 확인",
			"일상 활동 완전 복귀",
		},
		ClinicalStageIDs: []string{"fu-6m", "fu-1y"},
	},
}

// midnight truncates a time to 00:00 local so day arithmetic ignores
// partial-day skew.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysSince returns whole days from surgery to today, positive after surgery.
// The quotient is rounded, not truncated, so a DST transition inside the span
// cannot shift the count by a day.
func DaysSince(surgeryDate, today time.Time) int {
	diff := midnight(today).Sub(midnight(surgeryDate))
	return int(math.Round(diff.Hours() / 24))
}

// Classify maps elapsed days since surgery onto a journey stage. Days before
// the first range resolve to the first stage; days past the last range stay
// in full_recovery indefinitely.
func Classify(surgeryDate, today time.Time) StageID {
	diffDays := DaysSince(surgeryDate, today)

	for _, stage := range Stages {
		if diffDays >= stage.DayRange.From && diffDays <= stage.DayRange.To {
			return stage.ID
		}
	}

	if diffDays < Stages[0].DayRange.From {
		return Stages[0].ID
	}
	return Stages[len(Stages)-1].ID
}

// Get returns the catalog entry for the given stage id, or the first stage
// when the id is unknown.
func Get(id StageID) Stage {
	for _, stage := range Stages {
		if stage.ID == id {
			return stage
		}
	}
	return Stages[0]
}

func indexOf(id StageID) int {
	for i, stage := range Stages {
		if stage.ID == id {
			return i
		}
	}
	return -1
}

// Progress reports a coarse completion percentage: the midpoint of the
// current stage's slice of the six equal bands. It advances in discrete
// steps, one per stage, and never animates within a stage.
func Progress(surgeryDate, today time.Time) int {
	idx := indexOf(Classify(surgeryDate, today))
	pct := (float64(idx) + 0.5) / float64(len(Stages)) * 100
	return int(pct + 0.5)
}

// Status compares a stage's position against the current stage. It is a pure
// index comparison, so it stays consistent even when Classify was called with
// a different "now" snapshot in the same request.
func Status(stageID, currentID StageID) models.StageStatus {
	stageIdx := indexOf(stageID)
	currentIdx := indexOf(currentID)
	if stageIdx < currentIdx {
		return models.StatusCompleted
	}
	if stageIdx == currentIdx {
		return models.StatusCurrent
	}
	return models.StatusUpcoming
}
