package surgery

import "github.com/spinetrack/platform/pkg/common/models"

// Fallback template for category labels the registry does not recognize.
var genericTemplate = Template{
	Type:            TypeGeneric,
	Name:            "Spine Surgery",
	NameKo:          "척추 수술",
	Abbreviation:    "OP",
	Region:          RegionLumbar,
	DurationMinutes: 90,
	StayNights:      2,
	PromInstruments: []string{"vas", "odi", "joa", "eq5d", "eqvas"},
	VasScales: []VasScale{
		{ID: "vas_back", Label: "허리 통증"},
	},
	FollowUpOffsets: standardFollowUps,
	Stages: []TemplateStage{
		{
			ID:           "pre-op",
			Title:        "수술 전 준비",
			DateOffset:   offset(-1),
			Phase:        models.PhaseInpatient,
			Instructions: []string{"입원 수속", "수술 전 검사", "마취과 상담", "ERAS 금식 안내 확인"},
			Warnings:     []string{"약물 복용 이력 반드시 고지"},
			Dos:          []string{"동의서 서명", "보호자 연락처 확인"},
			Donts:        []string{"금식 시간 이후 음식 섭취 금지"},
		},
		{
			ID:           "surgery-day",
			Title:        "수술 당일",
			DateOffset:   offset(0),
			Phase:        models.PhaseInpatient,
			Instructions: []string{"수술 시행", "회복실 관찰", "병실 복귀"},
			Warnings:     []string{"이상 증상 발생 시 즉시 의료진 호출"},
			Dos:          []string{"안정 취하기", "통증 알리기"},
			Donts:        []string{"무리하게 움직이지 않기"},
		},
		{
			ID:           "pod1",
			Title:        "수술 후 1일차",
			DateOffset:   offset(1),
			Phase:        models.PhaseInpatient,
			Instructions: []string{"기립 시도", "식이 진행", "드레싱 확인"},
			Warnings:     []string{"발열 시 의료진 보고"},
			Dos:          []string{"조기 보행 시도", "충분한 수분 섭취"},
			Donts:        []string{"무거운 물건 들지 않기"},
		},
		{
			ID:           "discharge",
			Title:        "퇴원",
			DateOffset:   offset(2),
			Phase:        models.PhaseInpatient,
			Instructions: []string{"퇴원 약 수령", "외래 예약 확인", "자가 관리 교육"},
			Warnings:     []string{"고열, 마비 발생 시 응급 내원"},
			Dos:          []string{"처방 약물 복용", "상처 관리"},
			Donts:        []string{"과도한 활동 금지"},
		},
		{
			ID:           "fu-2w",
			Title:        "수술 후 2주 외래",
			DateOffset:   offset(14),
			Phase:        models.PhaseOutpatient,
			Instructions: []string{"상처 확인", "PROM 설문 작성"},
			Warnings:     []string{"이상 소견 시 추가 검사"},
			Dos:          []string{"일상 활동 점진적 확대"},
			Donts:        []string{"격렬한 운동 금지"},
		},
		{
			ID:           "fu-6w",
			Title:        "수술 후 6주 외래",
			DateOffset:   offset(42),
			Phase:        models.PhaseOutpatient,
			Instructions: []string{"영상 검사", "PROM 설문 작성", "활동 범위 확대 여부 결정"},
			Warnings:     []string{},
			Dos:          []string{"운동 시작"},
			Donts:        []string{"과도한 부하 금지"},
		},
		{
			ID:           "fu-3m",
			Title:        "수술 후 3개월 외래",
			DateOffset:   offset(90),
			Phase:        models.PhaseOutpatient,
			Instructions: []string{"PROM 설문 작성", "기능 평가"},
			Warnings:     []string{},
			Dos:          []string{"정상 활동 복귀"},
			Donts:        []string{},
		},
		{
			ID:           "fu-6m",
			Title:        "수술 후 6개월 외래",
			DateOffset:   offset(180),
			Phase:        models.PhaseOutpatient,
			Instructions: []string{"PROM 설문 작성", "최종 평가"},
			Warnings:     []string{},
			Dos:          []string{"규칙적 운동 유지"},
			Donts:        []string{},
		},
		{
			ID:           "fu-1y",
			Title:        "수술 후 1년 외래",
			DateOffset:   offset(365),
			Phase:        models.PhaseOutpatient,
			Instructions: []string{"최종 PROM 설문", "치료 종결 상담"},
			Warnings:     []string{},
			Dos:          []string{"장기 건강 관리"},
			Donts:        []string{},
		},
	},
}
