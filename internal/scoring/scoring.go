// Package scoring computes the performance score of an organizational
// group from the feedback posts targeting it. The score is a
// time-decayed weighted sentiment average normalized to [0, 100],
// recomputed in full on every call; nothing is cached or persisted.
package scoring

import (
	"math"
	"time"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
)

const (
	// minPostsForScore is the insufficient-data floor: groups with
	// fewer posts get a neutral score without any decay computation.
	minPostsForScore = 5

	neutralScore = 50.0

	// decayTimescaleDays sets the exponential decay e^(-age/30),
	// giving a half-life of roughly 20.8 days.
	decayTimescaleDays = 30.0

	secondsPerDay = 86400.0
)

// Category weights. Complaints are penalized more heavily than
// appreciations are rewarded.
const (
	weightAppreciation = 1.0
	weightSuggestion   = 0.2
	weightComplaint    = -1.2
)

func categoryWeight(category string) float64 {
	switch category {
	case models.CategoryAppreciation:
		return weightAppreciation
	case models.CategorySuggestion:
		return weightSuggestion
	case models.CategoryComplaint:
		return weightComplaint
	default:
		return 0
	}
}

// ComputeScore derives the group view for the given posts, all of
// which must already target the group exactly (type and name). It is
// read-only and deterministic for a fixed post set and now.
func ComputeScore(groupType, groupName string, posts []models.Post, now time.Time) models.Group {
	group := models.Group{
		GroupType:  groupType,
		GroupName:  groupName,
		TotalPosts: len(posts),
	}

	for _, p := range posts {
		switch p.Category {
		case models.CategoryAppreciation:
			group.AppreciationCount++
		case models.CategorySuggestion:
			group.SuggestionCount++
		case models.CategoryComplaint:
			group.ComplaintCount++
		}
	}

	if group.TotalPosts < minPostsForScore {
		group.PerformanceScore = neutralScore
		return group
	}

	var numerator, denominator float64
	for _, p := range posts {
		ageDays := now.Sub(p.CreatedAt).Seconds() / secondsPerDay
		decay := math.Exp(-ageDays / decayTimescaleDays)
		numerator += categoryWeight(p.Category) * decay
		denominator += decay
	}

	// Unreachable with >=5 posts since every decay is positive, but a
	// zero denominator must not divide.
	sentiment := 0.0
	if denominator > 0 {
		sentiment = numerator / denominator
	}

	score := (sentiment + 1) * 50
	score = math.Max(0, math.Min(100, score))
	group.PerformanceScore = math.Round(score*10) / 10
	return group
}
