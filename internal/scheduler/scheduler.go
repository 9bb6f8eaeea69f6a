package scheduler

import (
	"math"
	"time"

	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/models"
)

// Quality buckets for a review. The scale deliberately skips 2; any
// value outside these four is rejected.
const (
	QualityAgain = 1
	QualityHard  = 3
	QualityGood  = 4
	QualityEasy  = 5
)

const (
	minEase = 1.3
	maxEase = 3.0

	// Cards with a day-based interval all become due at the same hour,
	// so a day's due-set surfaces together regardless of study time.
	dueHour = 4

	// A failed card loops back within the session's short-term horizon.
	relearnDelay = time.Minute
)

// ValidQuality reports whether q is one of the four supported buckets.
func ValidQuality(q int) bool {
	return q == QualityAgain || q == QualityHard || q == QualityGood || q == QualityEasy
}

// Rate applies one review outcome to a card's scheduling state and
// returns the updated card. The input card is not modified. Quality
// outside {1, 3, 4, 5} yields a validation error and the card unchanged.
func Rate(card models.Flashcard, quality int, now time.Time) (models.Flashcard, error) {
	if !ValidQuality(quality) {
		return card, errors.NewValidationError("quality", "must be one of 1, 3, 4, 5")
	}

	ef := card.EaseFactor
	switch quality {
	case QualityAgain:
		ef -= 0.20
	case QualityHard:
		ef -= 0.15
	case QualityEasy:
		ef += 0.15
	}
	ef = clampEase(ef)

	interval := 0
	status := card.Status
	repetition := card.Repetition

	if quality == QualityAgain {
		// Failure always wins: back to the short relearn loop.
		repetition = 0
		interval = 0
		status = models.StatusLearning
	} else {
		switch {
		case repetition == 0:
			if quality == QualityEasy {
				interval = 4
				status = models.StatusMastered
			} else {
				interval = 1
				status = models.StatusReview
			}
		case repetition == 1:
			interval = 6
			status = models.StatusReview
		default:
			modifier := 1.0
			if quality == QualityHard {
				modifier = 1.2
			} else if quality == QualityEasy {
				modifier = 1.3
			}
			interval = int(math.Ceil(float64(card.IntervalDays) * ef * modifier))
			if quality == QualityEasy {
				status = models.StatusMastered
			} else {
				status = models.StatusReview
			}
		}
		repetition++
	}

	card.EaseFactor = ef
	card.IntervalDays = interval
	card.Repetition = repetition
	card.Status = status
	card.NextReview = nextReviewAt(now, interval)
	return card, nil
}

func clampEase(ef float64) float64 {
	if ef < minEase {
		return minEase
	}
	if ef > maxEase {
		return maxEase
	}
	return ef
}

func nextReviewAt(now time.Time, intervalDays int) time.Time {
	if intervalDays == 0 {
		return now.Add(relearnDelay)
	}
	return time.Date(now.Year(), now.Month(), now.Day()+intervalDays, dueHour, 0, 0, 0, now.Location())
}
