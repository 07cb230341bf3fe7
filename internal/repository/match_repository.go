package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/database"
)

const matchColumns = `id, time, club_a, club_b, team_a, team_b, score_a, score_b`

type MatchRepository struct {
	db *database.DB
}

func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create 새 매치 기록
func (r *MatchRepository) Create(
	ctx context.Context,
	clubA, clubB *string,
	teamA, teamB string,
	scoreA, scoreB *int,
) (*models.Match, error) {
	query := `
		INSERT INTO matches (club_a, club_b, team_a, team_b, score_a, score_b)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + matchColumns

	match, err := scanMatch(r.db.QueryRowContext(ctx, query, clubA, clubB, teamA, teamB, scoreA, scoreB))
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return match, nil
}

// FindRecent 최신순 매치 목록
func (r *MatchRepository) FindRecent(ctx context.Context) ([]*models.Match, error) {
	return r.query(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY time DESC, id DESC`)
}

// FindChronological 시간 오름차순 매치 목록 (ELO 재계산용)
func (r *MatchRepository) FindChronological(ctx context.Context) ([]*models.Match, error) {
	return r.query(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY time ASC, id ASC`)
}

// Delete 매치 삭제, 삭제된 행이 있으면 true
func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete match: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *MatchRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []*models.Match{}
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return matches, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var (
		clubA, clubB, teamA, teamB sql.NullString
		scoreA, scoreB             sql.NullInt64
	)

	match := &models.Match{}
	err := row.Scan(
		&match.ID,
		&match.Time,
		&clubA,
		&clubB,
		&teamA,
		&teamB,
		&scoreA,
		&scoreB,
	)
	if err != nil {
		return nil, err
	}

	match.ClubA = nullString(clubA)
	match.ClubB = nullString(clubB)
	match.TeamA = nullString(teamA)
	match.TeamB = nullString(teamB)
	match.ScoreA = nullInt(scoreA)
	match.ScoreB = nullInt(scoreB)

	return match, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
