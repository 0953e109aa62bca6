package api

import (
	"github.com/sanverite/skinmock/internal/core"
	"github.com/sanverite/skinmock/internal/responder"
)

// FromProgressEntry converts a core entry to its wire form.
func FromProgressEntry(e core.ProgressEntry) ProgressEntryView {
	return ProgressEntryView{
		Week:     e.Week,
		Date:     e.Date.Format(core.DateLayout),
		ImageURL: e.ImageURL,
		Status:   e.Status,
		Score:    e.Score,
		Metrics: MetricsView{
			Redness:      e.Metrics.Redness,
			Inflammation: e.Metrics.Inflammation,
			Scaling:      e.Metrics.Scaling,
			Texture:      e.Metrics.Texture,
		},
	}
}

// FromHistory converts a history snapshot. An empty history encodes as [],
// never null.
func FromHistory(entries []core.ProgressEntry) []ProgressEntryView {
	out := make([]ProgressEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromProgressEntry(e))
	}
	return out
}

// FromAnalysis converts the fixed diagnosis.
func FromAnalysis(a responder.Analysis) AnalysisResponse {
	return AnalysisResponse{
		Prediction: a.Prediction,
		Confidence: a.Confidence,
		Symptoms:   append([]string{}, a.Symptoms...),
		Triggers:   append([]string{}, a.Triggers...),
		Routine: RoutineView{
			Morning:   a.Routine.Morning,
			Night:     a.Routine.Night,
			Treatment: a.Routine.Treatment,
		},
		Warnings: append([]string{}, a.Warnings...),
	}
}

// FromSkinCare converts the fixed skin profile.
func FromSkinCare(s responder.SkinCare) SkinCareResponse {
	return SkinCareResponse{
		SkinType:        s.SkinType,
		SkinColor:       s.SkinColor,
		Recommendations: append([]string{}, s.Recommendations...),
	}
}

// FromStats converts the symptom distribution.
func FromStats(s responder.Stats) StatsResponse {
	return StatsResponse{
		Labels: append([]string{}, s.Labels...),
		Values: append([]int{}, s.Values...),
	}
}
