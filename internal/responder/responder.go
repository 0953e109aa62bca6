// Package responder holds the fixed payloads served by the stateless endpoints.
//
// Nothing here reads shared state or inspects request content, except Reply,
// which matches a chat message against a short keyword list.
package responder

import "strings"

// Routine is the recommended daily care split.
type Routine struct {
	Morning   string
	Night     string
	Treatment string
}

// Analysis is the diagnostic result returned for any uploaded image.
type Analysis struct {
	Prediction string
	Confidence float64
	Symptoms   []string
	Triggers   []string
	Routine    Routine
	Warnings   []string
}

// SkinCare is the skin profile and care advice returned for any image.
type SkinCare struct {
	SkinType        string
	SkinColor       string
	Recommendations []string
}

// Stats is the current symptom distribution. Labels and Values are parallel.
type Stats struct {
	Labels []string
	Values []int
}

// Confirmation text returned when a progress entry is recorded.
const (
	ProgressMessage  = "Progress logged successfully"
	ProgressAnalysis = "Based on the new image, inflammation has reduced by 15% compared to last week."
)

// AnalyzeImage returns the fixed diagnosis. Slices are fresh on every call.
func AnalyzeImage() Analysis {
	return Analysis{
		Prediction: "Eczema",
		Confidence: 0.85,
		Symptoms:   []string{"Redness", "Itching", "Dryness"},
		Triggers:   []string{"Stress", "Dry Air", "Soap"},
		Routine: Routine{
			Morning:   "Gentle Cleanser, Moisturizer",
			Night:     "Topical Corticosteroid (if prescribed), Heavy Cream",
			Treatment: "Use prescribed ointment twice daily",
		},
		Warnings: []string{"If bleeding occurs, see a doctor immediately."},
	}
}

// AnalyzeSkinCare returns the fixed skin profile.
func AnalyzeSkinCare() SkinCare {
	return SkinCare{
		SkinType:  "Combination",
		SkinColor: "Fair - Medium",
		Recommendations: []string{
			"Use a gentle foaming cleanser.",
			"Apply a lightweight, oil-free moisturizer.",
			"Use sunscreen with SPF 30+ daily.",
			"Exfoliate 1-2 times a week with a mild chemical exfoliant.",
		},
	}
}

// SymptomStats returns the fixed symptom distribution; values sum to 100.
func SymptomStats() Stats {
	return Stats{
		Labels: []string{"Redness", "Itch", "Dryness", "Scaling"},
		Values: []int{20, 40, 25, 15},
	}
}

// Chat replies.
const (
	ItchReply    = "Itching can be relieved with cold compresses and moisturizers."
	SunReply     = "Always wear sunscreen to protect sensitive skin."
	DefaultReply = "I'm a dummy AI. I recommend seeing a dermatologist for accurate advice."
)

// keywordReplies is checked in order; the first keyword found wins.
var keywordReplies = []struct {
	keyword string
	reply   string
}{
	{"itch", ItchReply},
	{"sun", SunReply},
}

// Reply picks the canned answer for a chat message. Matching is a
// case-insensitive substring test. An empty message gets DefaultReply.
func Reply(message string) string {
	m := strings.ToLower(message)
	for _, kr := range keywordReplies {
		if strings.Contains(m, kr.keyword) {
			return kr.reply
		}
	}
	return DefaultReply
}
