package surgery

import "github.com/spinetrack/platform/pkg/common/models"

// 추궁판 성형술 / 추궁 절제술 (경추 후방 감압)
var lpTemplate = Template{
	Type:            TypeLP,
	Name:            "Laminoplasty / Laminectomy",
	NameKo:          "추궁판 성형술 / 추궁 절제술",
	Abbreviation:    "LP",
	Region:          RegionCervical,
	DurationMinutes: 150,
	StayNights:      3,
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
				"수술 전 검사 시행 (혈액, 심전도, 경추 MRI/CT 검토)",
				"마취과 상담 및 동의서 작성",
				"ERAS 금식: 맑은 음료는 수술 2시간 전까지, 가벼운 식사는 6시간 전까지",
			},
			Warnings: []string{
				"항응고제/항혈소판제 복용 시 반드시 의료진에게 알릴 것",
				"알레르기 이력 반드시 고지",
			},
			Dos:   []string{"수술 동의서 꼼꼼히 읽고 서명하기", "보호자 연락처 확인하기"},
			Donts: []string{"금식 시간 이후 음식 및 음료 섭취 금지", "흡연 금지"},
		},
		{
			ID:         "surgery-day",
			Title:      "수술 당일",
			DateOffset: offset(0),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"수술 가운으로 환복, IV 확보",
				"후방 접근 추궁 성형/절제술 시행 (약 2~2.5시간)",
				"회복실에서 마취 회복 후 병실 복귀",
				"사지 감각 및 운동 기능 확인",
				"경추 보조기 착용",
			},
			Warnings: []string{
				"사지 위약감 또는 마비 발생 시 즉시 알릴 것",
				"심한 두통, 오심, 구토 시 의료진 호출",
				"수술 부위 배액량 관찰",
			},
			Dos:   []string{"의료진 지시에 따라 안정 취하기", "통증 참지 말고 알리기"},
			Donts: []string{"목을 과도하게 움직이지 않기", "수술 부위 만지지 않기"},
		},
		{
			ID:         "pod1",
			Title:      "수술 후 1일차 (POD#1)",
			DateOffset: offset(1),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"경추 보조기 착용 하에 기립 및 보행 시작",
				"식이 진행 (유동식 → 일반식)",
				"배액관 제거 (의사 판단 하)",
				"수술 부위 드레싱 상태 확인",
			},
			Warnings: []string{
				"보행 시 어지럼증이나 사지 위약감 발생 시 즉시 중단",
				"발열(38°C 이상) 시 의료진 보고",
			},
			Dos:   []string{"조기 보행 시도하기", "심호흡 운동 자주 하기", "충분한 수분 섭취"},
			Donts: []string{"보조기 없이 활동하지 않기", "목 숙이기/젖히기 금지"},
		},
		{
			ID:         "discharge",
			Title:      "퇴원 및 퇴원교육",
			DateOffset: offset(3),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"퇴원 약 수령 (진통제, 근이완제)",
				"외래 예약 확인 (2주 후)",
				"경추 보조기 착용 교육",
				"상처 관리법 교육",
			},
			Warnings: []string{
				"퇴원 후 38°C 이상 발열 시 응급 내원",
				"사지 마비 또는 대소변 장애 발생 시 즉시 응급실 방문",
			},
			Dos:   []string{"처방 약물 정해진 시간에 복용하기", "짧은 거리 산책 매일 하기", "상처 부위 건조하게 유지하기"},
			Donts: []string{"무거운 물건 들지 않기", "장시간 목을 숙이는 자세 금지", "목욕탕/사우나 금지"},
		},
		{
			ID:         "fu-2w",
			Title:      "수술 후 2주 외래",
			DateOffset: offset(14),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"수술 부위 상처 확인 및 실밥 제거",
				"PROM 설문 작성 (VAS, NDI, JOA)",
				"신경학적 검진",
			},
			Warnings: []string{"상처 치유 지연 또는 감염 소견 시 추가 처치 필요"},
			Dos:      []string{"일상 생활 동작 점진적으로 늘리기", "걷기 운동 하루 20~30분"},
			Donts:    []string{"무거운 물건 들기 금지", "격렬한 운동 금지"},
			Faq: []models.FaqItem{
				{Question: "목 뒤쪽이 뻐근한데 정상인가요?", Answer: "후방 접근 수술 후 목 주변 근육 통증은 흔합니다. 온찜질과 처방 약물로 대부분 호전됩니다."},
			},
		},
		{
			ID:         "fu-6w",
			Title:      "수술 후 6주 외래",
			DateOffset: offset(42),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"X-ray 촬영하여 경과 확인",
				"PROM 설문 작성",
				"보조기 착용 중단 여부 결정",
				"목 재활 운동 교육",
			},
			Warnings: []string{"팔 저림 재발 시 MRI 추가 검사 필요 가능"},
			Dos:      []string{"목 스트레칭 시작 (의사 허가 후)", "바른 자세 습관 유지하기"},
			Donts:    []string{"접촉 스포츠 금지", "과도한 목 운동 금지"},
		},
		{
			ID:         "fu-3m",
			Title:      "수술 후 3개월 외래",
			DateOffset: offset(90),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"PROM 설문 작성",
				"일상 복귀 수준 평가",
				"직장 복귀 가능 여부 상담",
			},
			Warnings: []string{"증상 재발 시 추가 검사 필요"},
			Dos:      []string{"정상 일상 활동으로 점진적 복귀", "목 근력 강화 운동"},
			Donts:    []string{"고강도 접촉 스포츠 아직 금지"},
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
			Warnings: []string{"만성 목 통증 시 통증 클리닉 연계 고려"},
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
				"최종 기능 평가 및 치료 종결 상담",
			},
			Warnings: []string{"인접 분절 퇴행 가능성 교육"},
			Dos:      []string{"평생 바른 자세 유지", "규칙적 운동"},
			Donts:    []string{"장기간 목 건강 관리 소홀히 하지 않기"},
		},
	},
}
