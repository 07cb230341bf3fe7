// Package elo replays a chronological log of team matches and derives a rating
// per player. It is a pure computation and never modifies its inputs.
package elo

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// BaselineRating is every player's rating before any match is replayed.
	BaselineRating = 1000.0

	ratingScale = 400.0
)

// ErrDuplicatePlayer is returned when the roster repeats a player id.
var ErrDuplicatePlayer = errors.New("duplicate player id in roster")

// Player is a roster entry. Name is only used for resolving team fields.
type Player struct {
	ID   int64
	Name string
}

// Match is one historical result. TeamA and TeamB are comma separated name
// lists as typed by whoever recorded the match; nil scores count as 0.
type Match struct {
	Time   time.Time
	TeamA  string
	TeamB  string
	ScoreA *int
	ScoreB *int
}

// Result is the outcome of a full replay.
type Result struct {
	Ratings   map[int64]int
	Processed int // matches that changed the rating state
	Skipped   int // matches with an unresolvable side
}

// Engine replays matches with a fixed multiplier configuration.
type Engine struct {
	params Params
}

// NewEngine creates an engine using the given multiplier parameters.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// ComputeRatings replays matches with DefaultParams and returns the rounded
// rating of every roster player.
func ComputeRatings(players []Player, matches []Match, kFactor int) (map[int64]int, error) {
	result, err := NewEngine(DefaultParams).Compute(players, matches, kFactor)
	if err != nil {
		return nil, err
	}
	return result.Ratings, nil
}

// Compute replays matches in ascending time order starting from the baseline
// and returns the final ratings rounded half to even.
func (e *Engine) Compute(players []Player, matches []Match, kFactor int) (*Result, error) {
	result := &Result{Ratings: make(map[int64]int, len(players))}
	if len(players) == 0 {
		return result, nil
	}

	ratings := make(map[int64]float64, len(players))
	for _, p := range players {
		if _, exists := ratings[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePlayer, p.ID)
		}
		ratings[p.ID] = BaselineRating
	}

	resolver := NewResolver(players)
	k := float64(kFactor)

	for _, m := range chronological(matches) {
		teamA := resolver.ResolveTeam(m.TeamA)
		teamB := resolver.ResolveTeam(m.TeamB)
		if len(teamA) == 0 || len(teamB) == 0 {
			result.Skipped++
			continue
		}

		avgA := teamAverage(ratings, teamA)
		avgB := teamAverage(ratings, teamB)
		expectedA, expectedB := ExpectedScores(avgA, avgB)

		scoreA, scoreB := scoreValue(m.ScoreA), scoreValue(m.ScoreB)
		actualA, actualB := 0.5, 0.5
		margin := 0
		switch {
		case scoreA > scoreB:
			actualA, actualB = 1.0, 0.0
			margin = scoreA - scoreB
		case scoreB > scoreA:
			actualA, actualB = 0.0, 1.0
			margin = scoreB - scoreA
		}

		var multiplier float64
		if actualA > actualB {
			multiplier = e.params.Multiplier(avgA, avgB, margin)
		} else {
			multiplier = e.params.Multiplier(avgB, avgA, margin)
		}

		deltaA := k * (actualA - expectedA) * multiplier
		deltaB := k * (actualB - expectedB) * multiplier
		applyDelta(ratings, teamA, deltaA)
		applyDelta(ratings, teamB, deltaB)
		result.Processed++
	}

	for id, r := range ratings {
		result.Ratings[id] = int(math.RoundToEven(r))
	}
	return result, nil
}

// chronological returns a time ordered copy; equal timestamps keep input order.
func chronological(matches []Match) []Match {
	ordered := make([]Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time.Before(ordered[j].Time)
	})
	return ordered
}

func teamAverage(ratings map[int64]float64, ids []int64) float64 {
	var sum float64
	for _, id := range ids {
		r, ok := ratings[id]
		if !ok {
			r = BaselineRating
		}
		sum += r
	}
	return sum / float64(len(ids))
}

func applyDelta(ratings map[int64]float64, ids []int64, delta float64) {
	for _, id := range ids {
		r, ok := ratings[id]
		if !ok {
			r = BaselineRating
		}
		ratings[id] = r + delta
	}
}

func scoreValue(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
