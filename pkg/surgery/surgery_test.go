package surgery

import (
	"testing"
)

func TestDetectTypeFromCategories(t *testing.T) {
	cases := []struct {
		name       string
		categories []string
		opName     string
		want       Type
	}{
		{"ube category", []string{"UBE"}, "", TypeUBE},
		{"ulbd maps to ube", []string{"ULBD"}, "", TypeUBE},
		{"vp category", []string{"VP"}, "", TypeVP},
		{"kp maps to vp", []string{"KP"}, "", TypeVP},
		{"acdf category", []string{"ACDF"}, "", TypeACDF},
		{"lp category", []string{"LP"}, "", TypeLP},
		{"fusion category", []string{"Fusion"}, "", TypeFusion},
		{"unknown category", []string{"Disc"}, "", TypeGeneric},
		{"empty input", nil, "", TypeGeneric},
		{"whitespace trimmed", []string{"  ube  "}, "", TypeUBE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectType(tc.categories, tc.opName); got != tc.want {
				t.Fatalf("DetectType(%v, %q) = %q, want %q", tc.categories, tc.opName, got, tc.want)
			}
		})
	}
}

func TestDetectTypeFromOperationName(t *testing.T) {
	cases := []struct {
		opName string
		want   Type
	}{
		{"UBE discectomy L4-5", TypeUBE},
		{"Percutaneous Vertebroplasty T12", TypeVP},
		{"Balloon Kyphoplasty L1", TypeVP},
		{"ACDF C5-6", TypeACDF},
		{"Cervical Laminoplasty C3-6", TypeLP},
		{"Total Laminectomy L3", TypeLP},
		{"PLIF L4-5", TypeFusion},
		{"TLIF L5-S1", TypeFusion},
		{"Posterior Fusion", TypeFusion},
		{"Discectomy", TypeGeneric},
	}
	for _, tc := range cases {
		if got := DetectType(nil, tc.opName); got != tc.want {
			t.Fatalf("DetectType(nil, %q) = %q, want %q", tc.opName, got, tc.want)
		}
	}
}

// Laminoplasty is checked before fusion, so a combined decompression and
// fusion name resolves to the decompression type.
func TestDetectTypePrecedence(t *testing.T) {
	if got := DetectType(nil, "Laminectomy and Fusion L4-5"); got != TypeLP {
		t.Fatalf("combined name = %q, want %q", got, TypeLP)
	}
	if got := DetectType([]string{"UBE", "Fusion"}, ""); got != TypeUBE {
		t.Fatalf("multi-category = %q, want %q", got, TypeUBE)
	}
}

func TestGetTemplateFallsBackToGeneric(t *testing.T) {
	tmpl := GetTemplate(Type("no-such-type"))
	if tmpl.Type != TypeGeneric {
		t.Fatalf("unknown type template = %q, want generic", tmpl.Type)
	}
}

func TestAbbreviationPreservesUnknownCategory(t *testing.T) {
	if got := Abbreviation([]string{"Disc"}, "Discectomy"); got != "Disc" {
		t.Fatalf("Abbreviation = %q, want Disc", got)
	}
	if got := Abbreviation(nil, "Discectomy"); got != "OP" {
		t.Fatalf("Abbreviation with no categories = %q, want OP", got)
	}
	if got := Abbreviation([]string{"UBE"}, ""); got != "UBE" {
		t.Fatalf("Abbreviation = %q, want UBE", got)
	}
}

func TestNameKoFallsBackToOperationName(t *testing.T) {
	if got := NameKo([]string{"Disc"}, "Discectomy L4-5"); got != "Discectomy L4-5" {
		t.Fatalf("NameKo = %q, want raw operation name", got)
	}
	if got := NameKo([]string{"VP"}, ""); got != "척추체 성형술" {
		t.Fatalf("NameKo = %q, want 척추체 성형술", got)
	}
}

func TestPromInstrumentsByRegion(t *testing.T) {
	cervical := PromInstruments([]string{"ACDF"})
	if cervical[1] != "NDI" {
		t.Fatalf("cervical instruments = %v, want NDI second", cervical)
	}
	lumbar := PromInstruments([]string{"UBE"})
	if lumbar[1] != "ODI" {
		t.Fatalf("lumbar instruments = %v, want ODI second", lumbar)
	}
}

func TestTemplatesAreWellFormed(t *testing.T) {
	for typ, tmpl := range templates {
		if len(tmpl.Stages) == 0 {
			t.Fatalf("%s: no stages", typ)
		}
		seen := make(map[string]bool)
		prev := -10000
		for _, st := range tmpl.Stages {
			if st.ID == "" || st.Title == "" {
				t.Fatalf("%s: stage with empty id or title", typ)
			}
			if seen[st.ID] {
				t.Fatalf("%s: duplicate stage id %q", typ, st.ID)
			}
			seen[st.ID] = true
			if st.DateOffset != nil {
				if *st.DateOffset < prev {
					t.Fatalf("%s: stage %q out of chronological order", typ, st.ID)
				}
				prev = *st.DateOffset
			}
		}
		if len(tmpl.FollowUpOffsets) != 5 {
			t.Fatalf("%s: %d follow-ups, want 5", typ, len(tmpl.FollowUpOffsets))
		}
		if tmpl.DurationMinutes <= 0 || tmpl.StayNights <= 0 {
			t.Fatalf("%s: non-positive duration or stay", typ)
		}
	}
}

func TestAllTypesExcludesGeneric(t *testing.T) {
	for _, typ := range AllTypes() {
		if typ == TypeGeneric {
			t.Fatal("AllTypes includes generic fallback")
		}
		if _, ok := templates[typ]; !ok {
			t.Fatalf("AllTypes lists unregistered type %q", typ)
		}
	}
}
