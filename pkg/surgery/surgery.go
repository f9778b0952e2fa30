package surgery

import (
	"strings"

	"github.com/spinetrack/platform/pkg/common/models"
)

// Type enumerates the supported surgery templates. Generic is the designated
// fallback for category labels the registry does not recognize; detection is
// total and never fails.
type Type string

const (
	TypeUBE     Type = "ube"
	TypeVP      Type = "vp"
	TypeACDF    Type = "acdf"
	TypeLP      Type = "lp"
	TypeFusion  Type = "fusion"
	TypeGeneric Type = "generic"
)

type Region string

const (
	RegionLumbar        Region = "lumbar"
	RegionCervical      Region = "cervical"
	RegionThoracolumbar Region = "thoracolumbar"
)

// TemplateStage is a declarative checkpoint relative to the surgery date.
// A nil DateOffset means the stage has no fixed date.
type TemplateStage struct {
	ID           string            `json:"id" yaml:"id"`
	Title        string            `json:"title" yaml:"title"`
	DateOffset   *int              `json:"date_offset" yaml:"date_offset"`
	Phase        models.StagePhase `json:"phase" yaml:"phase"`
	Instructions []string          `json:"instructions" yaml:"instructions"`
	Warnings     []string          `json:"warnings" yaml:"warnings"`
	Dos          []string          `json:"dos" yaml:"dos"`
	Donts        []string          `json:"donts" yaml:"donts"`
	Faq          []models.FaqItem  `json:"faq,omitempty" yaml:"faq,omitempty"`
}

type FollowUpOffset struct {
	Label            string `json:"label" yaml:"label"`
	DaysAfterSurgery int    `json:"days_after_surgery" yaml:"days_after_surgery"`
}

type VasScale struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Template is the per-surgery-type declarative definition. Templates are
// immutable package-level values; new surgery types are added by appending a
// data entry, not by branching code.
type Template struct {
	Type            Type             `json:"type"`
	Name            string           `json:"name"`
	NameKo          string           `json:"name_ko"`
	Abbreviation    string           `json:"abbreviation"`
	Region          Region           `json:"region"`
	DurationMinutes int              `json:"duration_minutes"`
	StayNights      int              `json:"stay_nights"`
	PromInstruments []string         `json:"prom_instruments"`
	VasScales       []VasScale       `json:"vas_scales"`
	Stages          []TemplateStage  `json:"stages"`
	FollowUpOffsets []FollowUpOffset `json:"follow_up_offsets"`
}

func offset(d int) *int { return &d }

// Every template shares the clinic's standard outpatient schedule.
var standardFollowUps = []FollowUpOffset{
	{Label: "2주 외래", DaysAfterSurgery: 14},
	{Label: "6주 외래", DaysAfterSurgery: 42},
	{Label: "3개월 외래", DaysAfterSurgery: 90},
	{Label: "6개월 외래", DaysAfterSurgery: 180},
	{Label: "1년 외래", DaysAfterSurgery: 365},
}

var templates = map[Type]Template{
	TypeUBE:     ubeTemplate,
	TypeVP:      vpTemplate,
	TypeACDF:    acdfTemplate,
	TypeLP:      lpTemplate,
	TypeFusion:  fusionTemplate,
	TypeGeneric: genericTemplate,
}

// GetTemplate is a total lookup: unrecognized types fall back to the generic
// template rather than erroring.
func GetTemplate(t Type) Template {
	if tmpl, ok := templates[t]; ok {
		return tmpl
	}
	return genericTemplate
}

// AllTypes lists the five supported surgery types (excluding the generic
// fallback) in a stable order.
func AllTypes() []Type {
	return []Type{TypeUBE, TypeVP, TypeACDF, TypeLP, TypeFusion}
}

// DetectType resolves a surgery type from the record store's category labels
// and free-text operation name. Category membership wins over substring
// matches on the name; anything unrecognized maps to generic.
func DetectType(categories []string, opName string) Type {
	cats := make(map[string]bool, len(categories))
	for _, c := range categories {
		cats[strings.ToLower(strings.TrimSpace(c))] = true
	}
	name := strings.ToLower(opName)

	switch {
	case cats["ube"] || cats["ulbd"] || strings.Contains(name, "ube"):
		return TypeUBE
	case cats["vp"] || cats["kp"] || strings.Contains(name, "vertebroplasty") || strings.Contains(name, "kyphoplasty"):
		return TypeVP
	case cats["acdf"] || strings.Contains(name, "acdf"):
		return TypeACDF
	case cats["lp"] || strings.Contains(name, "laminoplasty") || strings.Contains(name, "laminectomy") || strings.Contains(name, "lp"):
		return TypeLP
	case cats["fusion"] || strings.Contains(name, "plif") || strings.Contains(name, "tlif") || strings.Contains(name, "fusion"):
		return TypeFusion
	default:
		return TypeGeneric
	}
}

// Abbreviation returns the short surgery label. For unrecognized input the
// first category label is preserved so no information is lost.
func Abbreviation(categories []string, opName string) string {
	t := DetectType(categories, opName)
	if t == TypeGeneric {
		if len(categories) > 0 && categories[0] != "" {
			return categories[0]
		}
		return "OP"
	}
	return templates[t].Abbreviation
}

// NameKo returns the Korean display name, falling back to the raw operation
// name for unrecognized types.
func NameKo(categories []string, opName string) string {
	t := DetectType(categories, opName)
	if t == TypeGeneric {
		return opName
	}
	return templates[t].NameKo
}

// PromInstruments selects the outcome instruments for the detected type.
// Cervical procedures use NDI in place of ODI.
func PromInstruments(categories []string) []string {
	t := DetectType(categories, "")
	if t == TypeACDF || t == TypeLP {
		return []string{"VAS", "NDI", "JOA", "EQ5D", "EQVAS"}
	}
	return []string{"VAS", "ODI", "JOA", "EQ5D", "EQVAS"}
}

// TemplateFor looks up the template for raw category labels.
func TemplateFor(categories []string) Template {
	return GetTemplate(DetectType(categories, ""))
}
