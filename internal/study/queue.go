package study

import (
	"errors"
	"sort"
	"time"

	"github.com/vytor/lingoflash/internal/models"
)

// Mode restricts which due cards enter a session.
type Mode string

const (
	ModeNew    Mode = "new"
	ModeReview Mode = "review"
	ModeMixed  Mode = "mixed"
)

// DefaultLookahead tolerates cards coming due moments from now, so a
// card scheduled while the user navigates to the session still counts.
const DefaultLookahead = 65 * time.Second

// ErrNothingToStudy is returned when no card survives the queue filters.
// It is an empty-state signal for the caller, not a failure.
var ErrNothingToStudy = errors.New("nothing to study")

// QueueOptions configures BuildQueue.
type QueueOptions struct {
	// Folders is the full folder collection, used to resolve the scope
	// subtree. Ignored when FolderID is empty.
	Folders []models.Folder
	// FolderID scopes the queue to one folder and its descendants.
	// Empty means all cards.
	FolderID string
	// OnlyDue keeps only cards due within Lookahead of Now.
	OnlyDue bool
	// Mode further restricts due cards; zero value behaves like ModeMixed.
	Mode      Mode
	Now       time.Time
	Lookahead time.Duration
}

// BuildQueue selects and orders the cards for a study session: scope
// filter, optional due filter, then a stable sort that surfaces
// at-risk relearn cards first and defers mastered ones. An empty
// result yields ErrNothingToStudy rather than an empty session.
func BuildQueue(cards []models.Flashcard, opts QueueOptions) ([]models.Flashcard, error) {
	lookahead := opts.Lookahead
	if lookahead == 0 {
		lookahead = DefaultLookahead
	}
	cutoff := opts.Now.Add(lookahead)

	var scope map[string]bool
	if opts.FolderID != "" {
		scope = SubtreeIDs(opts.Folders, opts.FolderID)
	}

	queue := make([]models.Flashcard, 0, len(cards))
	for _, c := range cards {
		if scope != nil && !scope[c.FolderID] {
			continue
		}
		if opts.OnlyDue {
			if c.NextReview.After(cutoff) {
				continue
			}
			if opts.Mode == ModeNew && c.Status != models.StatusNew {
				continue
			}
			if opts.Mode == ModeReview && c.Status == models.StatusNew {
				continue
			}
		}
		queue = append(queue, c)
	}

	if len(queue) == 0 {
		return nil, ErrNothingToStudy
	}

	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].Status != queue[j].Status {
			return queue[i].Status.QueueRank() < queue[j].Status.QueueRank()
		}
		return queue[i].NextReview.Before(queue[j].NextReview)
	})
	return queue, nil
}
