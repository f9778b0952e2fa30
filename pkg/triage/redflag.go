// Package triage implements the patient-message safety layer: a keyword
// red-flag scanner, tiered FAQ matching, and the response triage tag parser.
// The scanner runs on every inbound message regardless of what the chat
// generator produces, so emergencies are caught even when generation fails.
package triage

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RedFlagRule names one emergency keyword. Matching is a case-insensitive
// substring test, which deliberately over-triggers: a false red costs one
// unnecessary escalation, a missed red can cost a spinal cord.
type RedFlagRule struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	Label   string `yaml:"label" json:"label"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

type RedFlagConfig struct {
	Rules []RedFlagRule `yaml:"rules" json:"rules"`
}

// LoadRedFlagRules reads a YAML rule override. An empty path keeps the
// built-in catalog.
func LoadRedFlagRules(path string) (RedFlagConfig, error) {
	if path == "" {
		return DefaultRedFlagRules(), nil
	}
	content, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return DefaultRedFlagRules(), err
	}

	var cfg RedFlagConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return RedFlagConfig{}, err
	}

	if len(cfg.Rules) == 0 {
		return RedFlagConfig{}, errors.New("no red-flag rules configured")
	}

	return cfg, nil
}

func DefaultRedFlagRules() RedFlagConfig {
	return RedFlagConfig{Rules: []RedFlagRule{
		{Keyword: "마비", Label: "paralysis", Enabled: true},
		{Keyword: "못움직", Label: "cannot-move", Enabled: true},
		{Keyword: "움직이지", Label: "cannot-move", Enabled: true},
		{Keyword: "힘이 없", Label: "motor-weakness", Enabled: true},
		{Keyword: "못걸", Label: "cannot-walk", Enabled: true},
		{Keyword: "두통", Label: "headache", Enabled: true},
		{Keyword: "구토", Label: "vomiting", Enabled: true},
		{Keyword: "흉통", Label: "chest-pain", Enabled: true},
		{Keyword: "가슴 아", Label: "chest-pain", Enabled: true},
		{Keyword: "숨쉬기", Label: "dyspnea", Enabled: true},
		{Keyword: "호흡곤란", Label: "dyspnea", Enabled: true},
		{Keyword: "종아리 부", Label: "calf-swelling", Enabled: true},
		{Keyword: "한쪽 다리 부", Label: "calf-swelling", Enabled: true},
		{Keyword: "소변 못", Label: "urinary-retention", Enabled: true},
		{Keyword: "대변 못", Label: "bowel-retention", Enabled: true},
		{Keyword: "고열", Label: "high-fever", Enabled: true},
		{Keyword: "39도", Label: "high-fever", Enabled: true},
		{Keyword: "40도", Label: "high-fever", Enabled: true},
		{Keyword: "의식", Label: "consciousness", Enabled: true},
		{Keyword: "쓰러", Label: "collapse", Enabled: true},
		{Keyword: "실신", Label: "syncope", Enabled: true},
	}}
}

// Scanner holds the lowercased enabled keywords.
type Scanner struct {
	keywords []string
}

func NewScanner(cfg RedFlagConfig) *Scanner {
	var kws []string
	for _, rule := range cfg.Rules {
		if !rule.Enabled || rule.Keyword == "" {
			continue
		}
		kws = append(kws, strings.ToLower(rule.Keyword))
	}
	return &Scanner{keywords: kws}
}

// DetectRedFlag reports whether the message contains any emergency keyword.
func (s *Scanner) DetectRedFlag(message string) bool {
	if s == nil {
		return false
	}
	lower := strings.ToLower(message)
	for _, kw := range s.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
