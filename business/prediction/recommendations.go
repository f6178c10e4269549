package prediction

import (
	"fmt"

	"examscore/domain"
)

// Impact levels for recommendations.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
)

const studyGainPerHour = 2.0

// Recommend evaluates the fixed rule set over a profile and its
// predicted score. Rules are independent and checked in a fixed order;
// none short-circuits another. When nothing fires the outcome is the
// explicit optimal-habits signal rather than an empty list.
func Recommend(p domain.StudentProfile, score float64) domain.Advice {
	var items []domain.Recommendation

	if score < 70 {
		target := p.StudyHours + 2
		gain := (target - p.StudyHours) * studyGainPerHour
		items = append(items, domain.Recommendation{
			Icon:  "📚",
			Title: "Increase Study Hours",
			Description: fmt.Sprintf(
				"You currently study %.1f hrs/day. Raising that to %.1f hrs/day projects a gain of about %.1f points.",
				p.StudyHours, target, gain),
			Impact: ImpactHigh,
		})
	}

	if p.Attendance < 85 {
		items = append(items, domain.Recommendation{
			Icon:        "🎯",
			Title:       "Improve Attendance",
			Description: "Attending classes consistently is the fastest way to improve understanding. Target 90%+ attendance.",
			Impact:      ImpactHigh,
		})
	}

	if p.SleepHours < 7 {
		items = append(items, domain.Recommendation{
			Icon:        "😴",
			Title:       "Optimize Sleep",
			Description: "Aim for 7-9 hours of sleep per night. Rest directly affects focus and recall during exams.",
			Impact:      ImpactMedium,
		})
	}

	if p.SleepQuality == "poor" || p.SleepQuality == "average" {
		items = append(items, domain.Recommendation{
			Icon:        "🌙",
			Title:       "Enhance Sleep Quality",
			Description: "Better sleep quality is correlated with better memory retention. Keep a regular schedule and avoid screens before bed.",
			Impact:      ImpactMedium,
		})
	}

	if p.StudyMethod == "self-study" && score < 75 {
		items = append(items, domain.Recommendation{
			Icon:        "🔄",
			Title:       "Diversify Study Methods",
			Description: "Mixing self-study with group sessions or guided material helps surface blind spots.",
			Impact:      ImpactMedium,
		})
	}

	if len(items) == 0 {
		return domain.Advice{Optimal: true}
	}

	return domain.Advice{Items: items}
}
