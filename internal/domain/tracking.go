package domain

import "encoding/json"

// SportPlan holds per-activity plan entries. No editor exists yet, so
// entries are kept as raw JSON and round-tripped untouched.
type SportPlan struct {
	Climbing []json.RawMessage `json:"climbing"`
	Running  []json.RawMessage `json:"running"`
	Skiing   []json.RawMessage `json:"skiing"`
}

func DefaultSportPlan() SportPlan {
	return SportPlan{
		Climbing: []json.RawMessage{},
		Running:  []json.RawMessage{},
		Skiing:   []json.RawMessage{},
	}
}

type PainRecovery struct {
	Pain     float64 `json:"pain"`
	Recovery float64 `json:"recovery"`
}

func DefaultPainRecovery() PainRecovery {
	return PainRecovery{Pain: 0, Recovery: 100}
}

// LanguageProgress counts study units per language.
type LanguageProgress struct {
	French  float64 `json:"French"`
	Spanish float64 `json:"Spanish"`
	Swedish float64 `json:"Swedish"`
	Italian float64 `json:"Italian"`
}

func DefaultLanguageProgress() LanguageProgress {
	return LanguageProgress{}
}
