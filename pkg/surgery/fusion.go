package surgery

import "github.com/spinetrack/platform/pkg/common/models"

// 요추 유합술 (PLIF/TLIF 포함)
var fusionTemplate = Template{
	Type:            TypeFusion,
	Name:            "Lumbar Fusion",
	NameKo:          "요추 유합술",
	Abbreviation:    "Fusion",
	Region:          RegionLumbar,
	DurationMinutes: 180,
	StayNights:      4,
	PromInstruments: []string{"vas", "odi", "joa", "eq5d", "eqvas"},
	VasScales: []VasScale{
		{ID: "vas_back", Label: "허리 통증"},
		{ID: "vas_leg", Label: "다리 통증 / 저림"},
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
				"수술 전 혈액검사, 심전도, 흉부 X-ray 시행",
				"마취과 상담 및 동의서 작성",
				"수술 부위 피부 준비",
				"ERAS 금식: 맑은 음료는 수술 2시간 전까지, 가벼운 식사는 6시간 전까지",
			},
			Warnings: []string{
				"항응고제/항혈소판제 복용 시 반드시 의료진에게 알릴 것",
				"알레르기 이력 반드시 고지",
			},
			Dos:   []string{"수술 동의서 꼼꼼히 읽고 서명하기", "보호자 연락처 확인하기", "개인 귀중품은 보호자에게 맡기기"},
			Donts: []string{"금식 시간 이후 음식 및 음료 섭취 금지", "흡연 금지", "임의로 약 복용하지 않기"},
		},
		{
			ID:         "surgery-day",
			Title:      "수술 당일",
			DateOffset: offset(0),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"수술 가운으로 환복, IV 확보",
				"요추 유합술 시행 (약 2.5~3시간, 나사못 고정 및 케이지 삽입)",
				"회복실에서 마취 회복 후 병실 복귀",
				"하지 감각 및 운동 기능 확인",
				"도뇨관 유지 (3시간 이상 수술)",
			},
			Warnings: []string{
				"수술 후 하지 감각 저하 또는 마비 발생 시 즉시 알릴 것",
				"심한 두통, 오심, 구토 시 의료진 호출",
				"배액량 과다 시 의료진 보고",
			},
			Dos:   []string{"의료진 지시에 따라 안정 취하기", "통증 참지 말고 알리기", "통나무 굴리기 방식으로 돌아눕기"},
			Donts: []string{"무리하게 움직이지 않기", "허리 비틀기 동작 금지", "수술 부위 만지지 않기"},
		},
		{
			ID:         "pod1",
			Title:      "수술 후 1일차 (POD#1)",
			DateOffset: offset(1),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"도뇨관 제거 및 자가 배뇨 확인",
				"보조기 착용 하에 침상 옆 기립 시도",
				"식이 진행 (유동식 → 일반식)",
				"수술 부위 드레싱 상태 확인",
			},
			Warnings: []string{
				"기립 시 어지럼증이나 하지 위약감 발생 시 즉시 중단",
				"발열(38°C 이상) 시 의료진 보고",
				"자가 배뇨 곤란 시 알릴 것",
			},
			Dos:   []string{"보조기 착용 후 기립 연습하기", "심호흡 운동 자주 하기", "충분한 수분 섭취"},
			Donts: []string{"보조기 없이 일어나지 않기", "허리 숙이기/비틀기 금지"},
		},
		{
			ID:         "pod2-3",
			Title:      "수술 후 2-3일차",
			DateOffset: offset(2),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"보행기 이용 보행 거리 점진적 확대",
				"배액관 제거 (의사 판단 하)",
				"X-ray 촬영 (나사못 위치 확인)",
				"재활 운동 교육 시작",
			},
			Warnings: []string{
				"보행 중 하지 방사통 악화 시 보고",
				"상처 부위 삼출물 증가 시 보고",
			},
			Dos:   []string{"보행 거리 매일 조금씩 늘리기", "통증 수준 기록하기"},
			Donts: []string{"장시간 앉아 있지 않기", "무거운 물건 들지 않기"},
		},
		{
			ID:         "discharge",
			Title:      "퇴원 및 퇴원교육",
			DateOffset: offset(4),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"퇴원 약 수령 (진통제, 근이완제, 위장약)",
				"외래 예약 확인 (2주 후)",
				"보조기 착용 교육 (2~3개월 착용)",
				"상처 관리법 교육",
				"재활 운동 교육자료 수령",
			},
			Warnings: []string{
				"퇴원 후 38°C 이상 발열 시 응급 내원",
				"하지 마비 또는 대소변 장애 발생 시 즉시 응급실 방문",
				"수술 부위 발적, 부종, 농성 삼출물 시 즉시 내원",
			},
			Dos:   []string{"처방 약물 정해진 시간에 복용하기", "보조기 착용하고 짧은 거리 산책하기", "상처 부위 건조하게 유지하기"},
			Donts: []string{"3kg 이상 물건 들지 않기", "장시간 앉거나 운전하지 않기", "목욕탕, 사우나, 수영장 이용 금지", "허리 굽히는 동작 금지"},
		},
		{
			ID:         "fu-2w",
			Title:      "수술 후 2주 외래",
			DateOffset: offset(14),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"수술 부위 상처 확인 및 실밥 제거",
				"PROM 설문 작성 (VAS, ODI, EQ-5D)",
				"신경학적 검진",
				"필요 시 약물 조정",
			},
			Warnings: []string{
				"상처 치유 지연 또는 감염 소견 시 추가 처치 필요",
				"통증이 수술 전보다 악화된 경우 반드시 보고",
			},
			Dos:   []string{"일상 생활 동작 점진적으로 늘리기", "걷기 운동 하루 20~30분", "보조기 꾸준히 착용하기"},
			Donts: []string{"5kg 이상 물건 들기 금지", "장시간 연속 앉기 금지", "격렬한 운동 금지"},
			Faq: []models.FaqItem{
				{Question: "나사못이 움직일 수 있나요?", Answer: "고정된 나사못은 정상 활동으로 움직이지 않습니다. 다만 유합이 완성될 때까지 무리한 허리 사용은 피하세요."},
				{Question: "보조기는 얼마나 착용하나요?", Answer: "유합술은 보통 2~3개월 착용합니다. 취침 시에는 벗어도 됩니다."},
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
				"재활 운동 진행 상황 평가",
			},
			Warnings: []string{"하지 방사통 재발 시 MRI 추가 검사 필요 가능"},
			Dos:      []string{"걷기 거리 점진적 확대", "저강도 유산소 운동 시작", "바른 자세 습관 유지하기"},
			Donts:    []string{"무거운 역기 운동 금지", "허리 과신전/과굴곡 동작 금지", "보조기 임의 제거 금지"},
		},
		{
			ID:         "fu-3m",
			Title:      "수술 후 3개월 외래",
			DateOffset: offset(90),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"X-ray/CT 촬영 (유합 확인)",
				"PROM 설문 작성",
				"보조기 착용 중단 여부 결정",
				"직장 복귀 가능 여부 상담",
			},
			Warnings: []string{"유합 부전 시 추가 치료 필요"},
			Dos:      []string{"코어 근력 강화 운동 시작하기", "규칙적인 운동 습관 만들기", "체중 관리"},
			Donts:    []string{"고강도 접촉 스포츠 아직 금지", "무리한 허리 사용 동작 자제"},
			Faq: []models.FaqItem{
				{Question: "유합이 안 되면 어떻게 되나요?", Answer: "유합 부전은 5~10%에서 발생할 수 있습니다. 흡연, 골다공증이 위험 요인이며, 필요 시 추가 치료를 상담합니다."},
			},
		},
		{
			ID:         "fu-6m",
			Title:      "수술 후 6개월 외래",
			DateOffset: offset(180),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"PROM 설문 작성",
				"기능적 회복 평가",
				"운동 강도 상향 가능 여부 판단",
			},
			Warnings: []string{"만성 통증 양상이 있으면 통증 클리닉 연계 고려"},
			Dos:      []string{"다양한 운동 활동 점진적으로 확대", "정기적인 코어 운동 유지"},
			Donts:    []string{"급격한 고강도 운동 전환 금지"},
		},
		{
			ID:         "fu-1y",
			Title:      "수술 후 1년 외래",
			DateOffset: offset(365),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"최종 PROM 설문 작성",
				"X-ray/CT 촬영 (최종 유합 확인)",
				"최종 기능 평가 및 치료 종결 상담",
				"장기 관리 계획 수립",
			},
			Warnings: []string{"인접 분절 퇴행 가능성에 대해 교육"},
			Dos:      []string{"평생 코어 근력 운동 유지", "바른 자세 습관 생활화", "적정 체중 유지"},
			Donts:    []string{"장기간 허리 건강 관리 소홀히 하지 않기"},
		},
	},
}
