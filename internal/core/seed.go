package core

import "time"

// SeedHistory returns a fresh copy of the six weeks every process starts with.
func SeedHistory() []ProgressEntry {
	return []ProgressEntry{
		{Week: "Week 1", Date: day(2025, time.November, 1), ImageURL: "assets/images/week1.png", Status: "Bad", Score: 30,
			Metrics: Metrics{Redness: 90, Inflammation: 85, Scaling: 70, Texture: 60}},
		{Week: "Week 2", Date: day(2025, time.November, 8), ImageURL: "assets/images/week2.png", Status: "Poor", Score: 45,
			Metrics: Metrics{Redness: 80, Inflammation: 75, Scaling: 65, Texture: 65}},
		{Week: "Week 3", Date: day(2025, time.November, 15), ImageURL: "assets/images/week3.png", Status: "Improving", Score: 60,
			Metrics: Metrics{Redness: 60, Inflammation: 55, Scaling: 50, Texture: 70}},
		{Week: "Week 4", Date: day(2025, time.November, 22), ImageURL: "assets/images/week4.png", Status: "Better", Score: 75,
			Metrics: Metrics{Redness: 40, Inflammation: 35, Scaling: 30, Texture: 80}},
		{Week: "Week 5", Date: day(2025, time.November, 29), ImageURL: "assets/images/week5.png", Status: "Good", Score: 85,
			Metrics: Metrics{Redness: 20, Inflammation: 15, Scaling: 10, Texture: 90}},
		{Week: "Week 6", Date: day(2025, time.December, 6), ImageURL: "assets/images/week6.png", Status: "Excellent", Score: 95,
			Metrics: Metrics{Redness: 5, Inflammation: 5, Scaling: 0, Texture: 95}},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
