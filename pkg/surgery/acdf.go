package surgery

import "github.com/spinetrack/platform/pkg/common/models"

// 전방 경추 추간판 제거 및 유합술
var acdfTemplate = Template{
	Type:            TypeACDF,
	Name:            "Anterior Cervical Discectomy and Fusion",
	NameKo:          "전방 경추 추간판 제거 및 유합술",
	Abbreviation:    "ACDF",
	Region:          RegionCervical,
	DurationMinutes: 120,
	StayNights:      2,
	PromInstruments: []string{"vas", "ndi", "joa", "eq5d", "eqvas"},
	VasScales: []VasScale{
		{ID: "vas_neck", Label: "목 통증"},
		{ID: "vas_arm", Label: "팔 통증 / 저림"},
	},
	FollowUpOffsets: standardFollowUps,
	Stages: []TemplateStage{
		{
			ID:         "pre-op",
			Title:      "수술 전 준비 (입원 당일)",
			DateOffset: offset(-1),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"입원 수속 및 병실 배정",
				"수술 전 검사 시행 (혈액, 심전도, 경추 영상)",
				"마취과 상담 및 동의서 작성",
				"ERAS 금식: 맑은 음료는 수술 2시간 전까지, 가벼운 식사는 6시간 전까지",
			},
			Warnings: []string{"항응고제 복용 시 반드시 의료진에게 알릴 것"},
			Dos:      []string{"수술 동의서 꼼꼼히 읽고 서명하기", "보호자 연락처 확인하기"},
			Donts:    []string{"금식 시간 이후 음식 및 음료 섭취 금지", "흡연 금지"},
		},
		{
			ID:         "surgery-day",
			Title:      "수술 당일",
			DateOffset: offset(0),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"수술 가운으로 환복",
				"ACDF 수술 시행 (약 1.5~2시간)",
				"회복실에서 마취 회복",
				"경추 보조기 착용",
				"삼킴 기능 및 사지 운동 확인",
			},
			Warnings: []string{
				"삼킴 곤란(연하 장애) 발생 시 즉시 보고",
				"사지 감각 저하 또는 마비 시 즉시 알릴 것",
				"호흡 곤란 시 즉시 의료진 호출",
			},
			Dos:   []string{"의료진 지시에 따라 안정 취하기", "경추 보조기 유지하기"},
			Donts: []string{"목을 과도하게 움직이지 않기", "수술 부위 만지지 않기"},
		},
		{
			ID:         "pod1",
			Title:      "수술 후 1일차 (POD#1)",
			DateOffset: offset(1),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"경추 보조기 착용 후 기립 시도",
				"연식 식사 시작",
				"삼킴 기능 재확인",
				"X-ray 촬영",
			},
			Warnings: []string{"삼킴 곤란 지속 시 의료진 보고", "발열 시 의료진 보고"},
			Dos:      []string{"경추 보조기 착용 유지", "부드러운 음식부터 시작", "충분한 수분 섭취"},
			Donts:    []string{"경추 보조기 없이 활동하지 않기", "목 회전/과굴곡 금지", "무거운 물건 들지 않기"},
		},
		{
			ID:         "discharge",
			Title:      "퇴원 및 퇴원교육",
			DateOffset: offset(2),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"퇴원 약 수령",
				"외래 예약 확인 (2주 후)",
				"경추 보조기 착용 교육",
				"상처 관리법 교육",
			},
			Warnings: []string{"삼킴 곤란 악화 시 응급 내원", "사지 마비 발생 시 즉시 응급실 방문"},
			Dos:      []string{"경추 보조기 6~8주 착용", "부드러운 음식 섭취 유지", "처방 약물 복용"},
			Donts:    []string{"무거운 물건 들지 않기", "장시간 목을 숙이는 자세 금지", "목욕탕/사우나 금지"},
		},
		{
			ID:         "fu-2w",
			Title:      "수술 후 2주 외래",
			DateOffset: offset(14),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"상처 확인 및 실밥 제거",
				"PROM 설문 작성 (VAS, NDI, EQ-5D)",
				"삼킴 기능 확인",
			},
			Warnings: []string{"삼킴 곤란 지속 시 ENT 협진"},
			Dos:      []string{"일상 활동 점진적 확대", "경추 보조기 꾸준히 착용"},
			Donts:    []string{"경추 보조기 임의 제거 금지", "격렬한 운동 금지"},
			Faq: []models.FaqItem{
				{Question: "목소리가 쉰 것 같아요. 괜찮은가요?", Answer: "수술 접근 과정에서 성대 신경이 자극되어 일시적 쉰 목소리가 있을 수 있습니다. 대부분 수주 내 회복되며, 지속 시 외래에서 상의하세요."},
				{Question: "샤워는 언제부터 가능한가요?", Answer: "실밥 제거 후 방수 드레싱을 유지하면 샤워가 가능합니다."},
			},
		},
		{
			ID:         "fu-6w",
			Title:      "수술 후 6주 외래",
			DateOffset: offset(42),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"X-ray 촬영 (유합 진행 확인)",
				"PROM 설문 작성",
				"경추 보조기 제거 여부 결정",
			},
			Warnings: []string{"유합 지연 시 보조기 연장 착용"},
			Dos:      []string{"목 스트레칭 시작 (의사 허가 후)", "바른 자세 유지"},
			Donts:    []string{"접촉 스포츠 금지", "무거운 물건 들기 금지"},
		},
		{
			ID:         "fu-3m",
			Title:      "수술 후 3개월 외래",
			DateOffset: offset(90),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"X-ray/CT 촬영 (유합 확인)",
				"PROM 설문 작성",
				"일상 복귀 평가",
			},
			Warnings: []string{"유합 부전 시 추가 치료 필요"},
			Dos:      []string{"정상 활동 점진적 복귀", "목 근력 강화 운동"},
			Donts:    []string{"과도한 목 운동 자제"},
		},
		{
			ID:         "fu-6m",
			Title:      "수술 후 6개월 외래",
			DateOffset: offset(180),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"PROM 설문 작성",
				"기능적 회복 평가",
			},
			Warnings: []string{"인접 분절 퇴행 증상 모니터링"},
			Dos:      []string{"규칙적 운동", "바른 자세 유지"},
			Donts:    []string{"고강도 목 부하 운동 자제"},
		},
		{
			ID:         "fu-1y",
			Title:      "수술 후 1년 외래",
			DateOffset: offset(365),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"최종 PROM 설문 작성",
				"X-ray 촬영",
				"최종 평가 및 치료 종결",
			},
			Warnings: []string{"인접 분절 퇴행 가능성 교육"},
			Dos:      []string{"평생 바른 자세 유지", "규칙적 운동"},
			Donts:    []string{"장기간 목 건강 관리 소홀히 하지 않기"},
		},
	},
}
