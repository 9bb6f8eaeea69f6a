package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/scheduler"
)

var testNow = time.Date(2026, time.March, 14, 15, 30, 0, 0, time.UTC)

func TestRate_NewCardEasy(t *testing.T) {
	card := models.NewFlashcard("c1", "f1", "chat", "gato", testNow)

	updated, err := scheduler.Rate(card, scheduler.QualityEasy, testNow)

	require.NoError(t, err)
	assert.Equal(t, 4, updated.IntervalDays)
	assert.Equal(t, models.StatusMastered, updated.Status)
	assert.Equal(t, 1, updated.Repetition)
	assert.InDelta(t, 2.65, updated.EaseFactor, 1e-9)
}

func TestRate_AgainResetsRegardlessOfPriorState(t *testing.T) {
	cards := []models.Flashcard{
		{EaseFactor: 2.5, IntervalDays: 0, Repetition: 0, Status: models.StatusNew},
		{EaseFactor: 2.0, IntervalDays: 15, Repetition: 4, Status: models.StatusReview},
		{EaseFactor: 3.0, IntervalDays: 120, Repetition: 9, Status: models.StatusMastered},
	}

	for _, card := range cards {
		updated, err := scheduler.Rate(card, scheduler.QualityAgain, testNow)

		require.NoError(t, err)
		assert.Equal(t, 0, updated.Repetition, "repetition should reset on failure")
		assert.Equal(t, 0, updated.IntervalDays, "interval should reset on failure")
		assert.Equal(t, models.StatusLearning, updated.Status)
		assert.Equal(t, testNow.Add(time.Minute), updated.NextReview, "failed card should come back within a minute")
	}
}

func TestRate_SecondSuccessIsAlwaysSixDays(t *testing.T) {
	card := models.Flashcard{EaseFactor: 2.5, IntervalDays: 1, Repetition: 1, Status: models.StatusReview}

	for _, quality := range []int{scheduler.QualityHard, scheduler.QualityGood, scheduler.QualityEasy} {
		updated, err := scheduler.Rate(card, quality, testNow)

		require.NoError(t, err)
		assert.Equal(t, 6, updated.IntervalDays)
		assert.Equal(t, 2, updated.Repetition)
	}
}

func TestRate_MatureIntervalCalculation(t *testing.T) {
	tests := []struct {
		name             string
		quality          int
		intervalDays     int
		easeFactor       float64
		repetition       int
		expectedInterval int
		expectedStatus   models.CardStatus
	}{
		{
			name:             "good keeps ease and applies no modifier",
			quality:          scheduler.QualityGood,
			intervalDays:     10,
			easeFactor:       2.0,
			repetition:       3,
			expectedInterval: 20, // ceil(10 * 2.0 * 1.0)
			expectedStatus:   models.StatusReview,
		},
		{
			name:             "hard lowers ease and applies 1.2 modifier",
			quality:          scheduler.QualityHard,
			intervalDays:     10,
			easeFactor:       2.0,
			repetition:       3,
			expectedInterval: 23, // ceil(10 * 1.85 * 1.2)
			expectedStatus:   models.StatusReview,
		},
		{
			name:             "easy raises ease, applies 1.3 modifier and masters the card",
			quality:          scheduler.QualityEasy,
			intervalDays:     10,
			easeFactor:       2.0,
			repetition:       3,
			expectedInterval: 28, // ceil(10 * 2.15 * 1.3)
			expectedStatus:   models.StatusMastered,
		},
		{
			name:             "hard at the ease floor stays at 1.3",
			quality:          scheduler.QualityHard,
			intervalDays:     5,
			easeFactor:       1.3,
			repetition:       2,
			expectedInterval: 8, // ceil(5 * 1.3 * 1.2)
			expectedStatus:   models.StatusReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := models.Flashcard{
				EaseFactor:   tt.easeFactor,
				IntervalDays: tt.intervalDays,
				Repetition:   tt.repetition,
				Status:       models.StatusReview,
			}

			updated, err := scheduler.Rate(card, tt.quality, testNow)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedInterval, updated.IntervalDays)
			assert.Equal(t, tt.expectedStatus, updated.Status)
			assert.Equal(t, tt.repetition+1, updated.Repetition)
		})
	}
}

func TestRate_EaseStaysInRange(t *testing.T) {
	card := models.Flashcard{EaseFactor: 2.5, IntervalDays: 10, Repetition: 5}

	// Repeated failures pin the ease at exactly the floor.
	for i := 0; i < 50; i++ {
		var err error
		card, err = scheduler.Rate(card, scheduler.QualityAgain, testNow)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, card.EaseFactor, 1.3)
	}
	assert.Equal(t, 1.3, card.EaseFactor)

	// Repeated easy reviews pin it at the ceiling.
	for i := 0; i < 50; i++ {
		var err error
		card, err = scheduler.Rate(card, scheduler.QualityEasy, testNow)
		require.NoError(t, err)
		assert.LessOrEqual(t, card.EaseFactor, 3.0)
	}
	assert.Equal(t, 3.0, card.EaseFactor)
}

func TestRate_IntervalMonotonicInPriorInterval(t *testing.T) {
	prev := 0
	for interval := 1; interval <= 200; interval += 7 {
		card := models.Flashcard{EaseFactor: 1.3, IntervalDays: interval, Repetition: 2, Status: models.StatusReview}

		updated, err := scheduler.Rate(card, scheduler.QualityGood, testNow)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, updated.IntervalDays, prev, "longer prior interval should never shorten the next one")
		assert.GreaterOrEqual(t, updated.IntervalDays, interval)
		prev = updated.IntervalDays
	}
}

func TestRate_DayIntervalsNormalizeToDueHour(t *testing.T) {
	card := models.NewFlashcard("c1", "f1", "chien", "perro", testNow)

	updated, err := scheduler.Rate(card, scheduler.QualityGood, testNow)

	require.NoError(t, err)
	expected := time.Date(2026, time.March, 15, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, updated.NextReview, "same-day-interval cards should all come due at 04:00")
}

func TestRate_InvalidQuality(t *testing.T) {
	card := models.NewFlashcard("c1", "f1", "chat", "gato", testNow)

	for _, quality := range []int{0, 2, 6, -1, 42} {
		updated, err := scheduler.Rate(card, quality, testNow)

		require.Error(t, err, "quality %d should be rejected", quality)
		assert.Equal(t, card, updated, "card must be unchanged on invalid input")
	}
}
