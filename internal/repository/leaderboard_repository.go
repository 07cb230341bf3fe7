package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/database"
)

// 팀 문자열 "{a,b}" 에서 괄호를 제거하고 이름 단위로 펼친다.
// 이름 정규화는 pkg/elo.NormalizeName 과 동일 (괄호 제거, trim, lower).
const playerAppearancesCTE = `
	WITH filtered AS (
		SELECT id, team_a, team_b,
		       COALESCE(score_a, 0) AS score_a,
		       COALESCE(score_b, 0) AS score_b
		FROM matches
		WHERE time >= $1
	),
	appearances AS (
		SELECT f.id, lower(trim(token)) AS token,
		       f.score_a AS goals_for, f.score_b AS goals_against
		FROM filtered f,
		     unnest(string_to_array(translate(f.team_a, '{}()', ''), ',')) AS token
		UNION ALL
		SELECT f.id, lower(trim(token)),
		       f.score_b, f.score_a
		FROM filtered f,
		     unnest(string_to_array(translate(f.team_b, '{}()', ''), ',')) AS token
	)
`

const standingColumns = `
	COUNT(*) FILTER (WHERE goals_for > goals_against) AS wins,
	COUNT(*) FILTER (WHERE goals_for = goals_against) AS draws,
	COUNT(*) FILTER (WHERE goals_for < goals_against) AS losses,
	COUNT(*) AS total_matches,
	COALESCE(SUM(CASE WHEN goals_for > goals_against THEN 3
	                  WHEN goals_for = goals_against THEN 1
	                  ELSE 0 END), 0) AS points,
	COALESCE(ROUND(
		COUNT(*) FILTER (WHERE goals_for > goals_against)::numeric
		/ NULLIF(COUNT(*), 0) * 100, 2), 0) AS win_percentage,
	COALESCE(SUM(goals_for), 0) AS goals_for,
	COALESCE(SUM(goals_against), 0) AS goals_against
`

type LeaderboardRepository struct {
	db *database.DB
}

func NewLeaderboardRepository(db *database.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// PlayerStandings 플레이어별 승/무/패 집계 (since 이후 매치)
func (r *LeaderboardRepository) PlayerStandings(ctx context.Context, since time.Time) ([]*models.PlayerStanding, error) {
	query := playerAppearancesCTE + `
		SELECT p.name,
		       COUNT(a.id) FILTER (WHERE a.goals_for > a.goals_against) AS wins,
		       COUNT(a.id) FILTER (WHERE a.goals_for = a.goals_against) AS draws,
		       COUNT(a.id) FILTER (WHERE a.goals_for < a.goals_against) AS losses,
		       COUNT(a.id) AS total_matches,
		       COALESCE(SUM(CASE WHEN a.goals_for > a.goals_against THEN 3
		                         WHEN a.goals_for = a.goals_against THEN 1
		                         ELSE 0 END), 0) AS points,
		       COALESCE(ROUND(
		           COUNT(a.id) FILTER (WHERE a.goals_for > a.goals_against)::numeric
		           / NULLIF(COUNT(a.id), 0) * 100, 2), 0) AS win_percentage,
		       COALESCE(SUM(a.goals_for), 0) AS goals_for,
		       COALESCE(SUM(a.goals_against), 0) AS goals_against
		FROM players p
		LEFT JOIN appearances a
		       ON a.token = lower(trim(translate(p.name, '{}()', '')))
		GROUP BY p.id, p.name
		ORDER BY win_percentage DESC, total_matches DESC, p.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query player leaderboard: %w", err)
	}
	defer rows.Close()

	standings := []*models.PlayerStanding{}
	for rows.Next() {
		s := &models.PlayerStanding{}
		if err := rows.Scan(append([]interface{}{&s.Name}, standingDest(&s.Standing)...)...); err != nil {
			return nil, fmt.Errorf("failed to scan player standing: %w", err)
		}
		standings = append(standings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player leaderboard: %w", err)
	}

	return standings, nil
}

// ClubStandings 클럽별 집계
func (r *LeaderboardRepository) ClubStandings(ctx context.Context, since time.Time) ([]*models.ClubStanding, error) {
	query := `
		WITH sides AS (
			SELECT club_a AS club, COALESCE(score_a, 0) AS goals_for, COALESCE(score_b, 0) AS goals_against
			FROM matches
			WHERE time >= $1 AND club_a IS NOT NULL AND club_a <> ''
			UNION ALL
			SELECT club_b, COALESCE(score_b, 0), COALESCE(score_a, 0)
			FROM matches
			WHERE time >= $1 AND club_b IS NOT NULL AND club_b <> ''
		)
		SELECT club,` + standingColumns + `
		FROM sides
		GROUP BY club
		ORDER BY win_percentage DESC, total_matches DESC, club ASC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query club leaderboard: %w", err)
	}
	defer rows.Close()

	standings := []*models.ClubStanding{}
	for rows.Next() {
		s := &models.ClubStanding{}
		if err := rows.Scan(append([]interface{}{&s.Club}, standingDest(&s.Standing)...)...); err != nil {
			return nil, fmt.Errorf("failed to scan club standing: %w", err)
		}
		standings = append(standings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate club leaderboard: %w", err)
	}

	return standings, nil
}

// DuoStandings 2인 이상 라인업 집계 (라인업 이름은 정렬 후 " & " 로 연결)
func (r *LeaderboardRepository) DuoStandings(ctx context.Context, since time.Time) ([]*models.DuoStanding, error) {
	query := `
		WITH sides AS (
			SELECT string_to_array(translate(team_a, '{}()', ''), ',') AS members,
			       COALESCE(score_a, 0) AS goals_for, COALESCE(score_b, 0) AS goals_against
			FROM matches
			WHERE time >= $1
			UNION ALL
			SELECT string_to_array(translate(team_b, '{}()', ''), ','),
			       COALESCE(score_b, 0), COALESCE(score_a, 0)
			FROM matches
			WHERE time >= $1
		),
		lineups AS (
			SELECT array_to_string(
			           ARRAY(SELECT trim(m) FROM unnest(members) AS m
			                 WHERE trim(m) <> '' ORDER BY lower(trim(m))),
			           ' & ') AS lineup,
			       goals_for, goals_against
			FROM sides
			WHERE array_length(members, 1) > 1
		)
		SELECT lineup,` + standingColumns + `
		FROM lineups
		GROUP BY lineup
		ORDER BY win_percentage DESC, total_matches DESC, lineup ASC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query duo leaderboard: %w", err)
	}
	defer rows.Close()

	standings := []*models.DuoStanding{}
	for rows.Next() {
		s := &models.DuoStanding{}
		if err := rows.Scan(append([]interface{}{&s.Lineup}, standingDest(&s.Standing)...)...); err != nil {
			return nil, fmt.Errorf("failed to scan duo standing: %w", err)
		}
		standings = append(standings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate duo leaderboard: %w", err)
	}

	return standings, nil
}

func standingDest(s *models.Standing) []interface{} {
	return []interface{}{
		&s.Wins,
		&s.Draws,
		&s.Losses,
		&s.TotalMatches,
		&s.Points,
		&s.WinPercentage,
		&s.GoalsFor,
		&s.GoalsAgainst,
	}
}
