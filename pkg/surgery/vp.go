package surgery

import "github.com/spinetrack/platform/pkg/common/models"

// 척추체 성형술 (골다공증성 압박골절)
var vpTemplate = Template{
	Type:            TypeVP,
	Name:            "Vertebroplasty",
	NameKo:          "척추체 성형술",
	Abbreviation:    "VP",
	Region:          RegionThoracolumbar,
	DurationMinutes: 30,
	StayNights:      1,
	PromInstruments: []string{"vas", "odi", "eq5d", "eqvas"},
	VasScales: []VasScale{
		{ID: "vas_back", Label: "허리/등 통증"},
	},
	FollowUpOffsets: standardFollowUps,
	Stages: []TemplateStage{
		{
			ID:         "pre-op",
			Title:      "수술 전 준비",
			DateOffset: offset(-1),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"입원 수속 및 혈액검사, 심전도 시행",
				"골밀도 검사(DEXA) 결과 확인",
				"마취과 상담 및 동의서 작성",
				"골절 부위 영상 검토 (X-ray, MRI, CT)",
				"ERAS 금식: 맑은 음료는 수술 2시간 전까지, 가벼운 식사는 6시간 전까지 가능",
			},
			Warnings: []string{
				"항응고제 복용 중이면 반드시 의료진에게 알릴 것",
				"약물 알레르기 (특히 조영제, 시멘트 성분) 고지",
			},
			Dos:   []string{"현재 복용 중인 약물 목록 준비하기", "보호자 동반 확인", "수술 전 통증 수준 기록해두기"},
			Donts: []string{"수술 6시간 전부터 고형식 금지, 2시간 전부터 맑은 음료 금지", "임의로 약 복용하지 않기"},
		},
		{
			ID:         "surgery-day",
			Title:      "수술 당일",
			DateOffset: offset(0),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"수술 가운 환복, IV 확보",
				"투시(C-arm) 유도 하 골절 추체에 바늘 삽입",
				"골시멘트(PMMA) 주입 (약 30분 소요)",
				"회복실 관찰 후 병실 복귀",
				"2시간 앙와위 안정 후 조기 보행 시작 (ERAS 프로토콜)",
				"연하 가능 시 즉시 경구 식이 시작",
				"다중모드 통증 관리 (아세트아미노펜 650mg 하루 3회 + 필요 시 NSAIDs)",
			},
			Warnings: []string{
				"시술 후 하지 감각 이상이나 마비 발생 시 즉시 알릴 것",
				"흉통, 호흡곤란 발생 시 즉시 의료진 호출",
				"시멘트 누출에 의한 증상 모니터링",
			},
			Dos:   []string{"시술 후 2시간 바로 누운 자세 유지하기", "통증 변화 정확히 전달하기", "2시간 안정 후 바로 보행 시작하기"},
			Donts: []string{"시술 직후 급하게 일어나지 않기", "허리 비틀기 동작 금지"},
		},
		{
			ID:         "pod1",
			Title:      "수술 후 1일차 (POD#1)",
			DateOffset: offset(1),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"보행 거리 점진적 확대",
				"X-ray 촬영으로 시멘트 위치 확인",
				"통증 변화 평가",
				"골다공증 치료 약물 처방 확인",
			},
			Warnings: []string{
				"보행 시 현기증이나 하지 위약감 발생 시 즉시 중단",
				"새로운 부위의 통증 발생 시 보고",
			},
			Dos:   []string{"보조기 착용하고 천천히 걷기", "충분한 수분과 영양 섭취", "낙상 주의하기"},
			Donts: []string{"보조기 없이 활동하지 않기", "무거운 물건 들지 않기", "급하게 일어나지 않기 (기립성 저혈압 주의)"},
		},
		{
			ID:         "discharge",
			Title:      "퇴원 및 퇴원교육",
			DateOffset: offset(1),
			Phase:      models.PhaseInpatient,
			Instructions: []string{
				"퇴원 약 수령 (진통제, 골다공증 약물)",
				"외래 예약 확인 (2주 후)",
				"골다공증 관리 교육 (칼슘, 비타민D, 운동)",
				"낙상 예방 교육",
				"보조기 착용 지침 안내",
			},
			Warnings: []string{
				"퇴원 후 심한 통증 악화 시 내원",
				"하지 마비 또는 대소변 장애 시 즉시 응급실 방문",
				"발열 38°C 이상 시 내원",
			},
			Dos:   []string{"골다공증 약물 꾸준히 복용하기", "칼슘 + 비타민D 매일 보충하기", "실내 낙상 위험 요소 제거하기", "가벼운 걷기 운동 매일 하기"},
			Donts: []string{"허리를 과도하게 굽히는 동작 금지", "무거운 물건 들기 금지", "미끄러운 곳에서 활동 금지"},
		},
		{
			ID:         "fu-2w",
			Title:      "수술 후 2주 외래",
			DateOffset: offset(14),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"시술 부위 상태 확인",
				"PROM 설문 작성 (VAS, ODI, EQ-5D)",
				"통증 변화 평가",
				"골다공증 약물 복용 상태 확인",
			},
			Warnings: []string{
				"통증이 오히려 악화된 경우 추가 검사 필요",
				"다른 부위의 새로운 통증 발생 시 인접 추체 골절 가능성",
			},
			Dos:   []string{"걷기 운동 하루 20~30분", "골다공증 약물 꾸준히 복용하기", "칼슘/비타민D 보충 유지"},
			Donts: []string{"허리에 충격이 가는 활동 금지", "장시간 앉기 자제"},
			Faq: []models.FaqItem{
				{Question: "시멘트가 빠질 수 있나요?", Answer: "골시멘트는 주입 후 수분 내에 굳어 추체에 단단히 고정됩니다. 정상 활동으로 빠지지 않습니다."},
				{Question: "다른 뼈도 골절될 수 있나요?", Answer: "골다공증이 있으므로 다른 추체에도 골절이 발생할 수 있습니다. 골다공증 치료와 낙상 예방이 매우 중요합니다."},
			},
		},
		{
			ID:         "fu-6w",
			Title:      "수술 후 6주 외래",
			DateOffset: offset(42),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"X-ray 촬영 (추체 높이 유지 확인)",
				"PROM 설문 작성 (VAS, ODI, EQ-5D)",
				"골다공증 치료 효과 평가",
				"보조기 착용 중단 여부 결정",
			},
			Warnings: []string{"인접 추체 골절 발생 시 추가 시술 필요 가능"},
			Dos:      []string{"저강도 운동 시작 (걷기, 수중 운동)", "균형 감각 운동하기", "바른 자세 유지하기"},
			Donts:    []string{"무거운 물건 들기 금지", "허리를 급격히 비틀거나 굽히지 않기"},
			Faq: []models.FaqItem{
				{Question: "보조기를 언제 벗을 수 있나요?", Answer: "보통 4~6주 후 X-ray 확인 후 보조기 중단을 결정합니다. 골밀도와 통증 상태를 고려합니다."},
			},
		},
		{
			ID:         "fu-3m",
			Title:      "수술 후 3개월 외래",
			DateOffset: offset(90),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"X-ray 촬영",
				"PROM 설문 작성 (VAS, ODI, EQ-5D)",
				"골밀도 검사 추적 (필요 시)",
				"일상 복귀 수준 평가",
			},
			Warnings: []string{"새로운 부위의 통증 발생 시 보고"},
			Dos:      []string{"규칙적인 운동 습관 유지", "균형 잡힌 식사 (칼슘, 단백질)", "정기적 골다공증 약물 복용"},
			Donts:    []string{"고강도 충격 운동 자제", "낙상 위험 활동 자제"},
		},
		{
			ID:         "fu-6m",
			Title:      "수술 후 6개월 외래",
			DateOffset: offset(180),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"PROM 설문 작성 (VAS, ODI, EQ-5D)",
				"기능적 회복 평가",
				"골다공증 치료 약물 조정",
			},
			Warnings: []string{"만성 통증 시 통증 클리닉 연계 고려"},
			Dos:      []string{"일상 활동 정상 수행", "낙상 예방 환경 유지", "골다공증 관리 지속"},
			Donts:    []string{"골다공증 약물 임의 중단 금지"},
		},
		{
			ID:         "fu-1y",
			Title:      "수술 후 1년 외래",
			DateOffset: offset(365),
			Phase:      models.PhaseOutpatient,
			Instructions: []string{
				"최종 PROM 설문 작성 (VAS, ODI, EQ-5D)",
				"골밀도 검사 (DEXA) 추적",
				"최종 기능 평가 및 장기 관리 계획",
				"골다공증 치료 지속 여부 상담",
			},
			Warnings: []string{"인접 추체 골절 재발 가능성 인지", "새로운 증상 시 조기 내원"},
			Dos:      []string{"평생 골다공증 관리 (약물 + 운동 + 영양)", "정기 골밀도 검사", "낙상 예방 생활화"},
			Donts:    []string{"골다공증 관리 소홀히 하지 않기", "증상 발생 시 방치하지 않기"},
		},
	},
}
