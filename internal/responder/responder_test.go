package responder

import (
	"reflect"
	"testing"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"itch lower", "my arm is itchy", ItchReply},
		{"itch upper", "ITCH everywhere", ItchReply},
		{"sun mixed case", "Going out in the SuN today", SunReply},
		{"sun inside word", "is sunday ok?", SunReply},
		{"both keywords itch wins", "sun makes me itch", ItchReply},
		{"neither", "hello there", DefaultReply},
		{"empty", "", DefaultReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.msg); got != tt.want {
				t.Fatalf("Reply(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestSymptomStats(t *testing.T) {
	s := SymptomStats()
	if len(s.Labels) != 4 || len(s.Values) != 4 {
		t.Fatalf("lengths: labels=%d values=%d", len(s.Labels), len(s.Values))
	}
	sum := 0
	for _, v := range s.Values {
		sum += v
	}
	if sum != 100 {
		t.Fatalf("values sum: got %d want 100", sum)
	}
}

func TestPayloadsAreFreshCopies(t *testing.T) {
	a := AnalyzeImage()
	a.Symptoms[0] = "mutated"
	if !reflect.DeepEqual(AnalyzeImage().Symptoms, []string{"Redness", "Itching", "Dryness"}) {
		t.Fatal("AnalyzeImage shares slices between calls")
	}

	s := SymptomStats()
	s.Values[0] = 99
	if SymptomStats().Values[0] != 20 {
		t.Fatal("SymptomStats shares slices between calls")
	}

	c := AnalyzeSkinCare()
	c.Recommendations = nil
	if len(AnalyzeSkinCare().Recommendations) != 4 {
		t.Fatal("AnalyzeSkinCare recommendations changed")
	}
}

func TestAnalyzeImage_Fixed(t *testing.T) {
	a := AnalyzeImage()
	if a.Prediction != "Eczema" || a.Confidence != 0.85 {
		t.Fatalf("got prediction=%q confidence=%v", a.Prediction, a.Confidence)
	}
	if len(a.Warnings) != 1 {
		t.Fatalf("warnings: %v", a.Warnings)
	}
}
