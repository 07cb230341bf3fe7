package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
)

var errStore = errors.New("store unavailable")

type fakePlayerRepo struct {
	players []*models.Player
	nextID  int64
	err     error
}

func (r *fakePlayerRepo) Create(_ context.Context, name string) (*models.Player, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	for _, p := range r.players {
		if p.Name == name {
			return p, false, nil
		}
	}
	r.nextID++
	p := &models.Player{ID: r.nextID, Name: name, CreatedAt: time.Now()}
	r.players = append(r.players, p)
	return p, true, nil
}

func (r *fakePlayerRepo) FindAll(context.Context) ([]*models.Player, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.players, nil
}

func (r *fakePlayerRepo) Delete(_ context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeMatchRepo struct {
	matches []*models.Match
	nextID  int64
	now     time.Time
	err     error
}

func (r *fakeMatchRepo) Create(_ context.Context, clubA, clubB *string, teamA, teamB string, scoreA, scoreB *int) (*models.Match, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	if r.now.IsZero() {
		r.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	r.now = r.now.Add(time.Minute)
	m := &models.Match{
		ID: r.nextID, Time: r.now,
		ClubA: clubA, ClubB: clubB,
		TeamA: &teamA, TeamB: &teamB,
		ScoreA: scoreA, ScoreB: scoreB,
	}
	r.matches = append(r.matches, m)
	return m, nil
}

func (r *fakeMatchRepo) FindRecent(context.Context) ([]*models.Match, error) {
	out := append([]*models.Match(nil), r.matches...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, r.err
}

func (r *fakeMatchRepo) FindChronological(context.Context) ([]*models.Match, error) {
	return r.matches, r.err
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i, m := range r.matches {
		if m.ID == id {
			r.matches = append(r.matches[:i], r.matches[i+1:]...)
			return true, nil
		}
	}
	return false, r.err
}

type fakeSettingsRepo struct {
	settings *models.EloSettings
	err      error
}

func (r *fakeSettingsRepo) GetElo(context.Context) (*models.EloSettings, error) {
	return r.settings, r.err
}

func (r *fakeSettingsRepo) UpdateKFactor(_ context.Context, kFactor int) (*models.EloSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.settings = &models.EloSettings{KFactor: kFactor, UpdatedAt: time.Now()}
	return r.settings, nil
}

type publishedEvent struct {
	msgType string
	payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Broadcast(msgType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{msgType, payload})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.msgType)
	}
	return out
}

func intPtr(v int) *int { return &v }
