package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectColumns = `id, title, description, images, technologies, category,
	COALESCE(live_url, ''), COALESCE(github_url, ''), featured, sort_order`

// List はプロジェクト一覧を sort_order 昇順で取得する
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY sort_order ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID は ID でプロジェクトを取得する
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Seed inserts the given projects, leaving rows that already exist untouched.
func (r *PgProjectRepository) Seed(ctx context.Context, projects []*model.Project) error {
	batch := &pgx.Batch{}
	for _, p := range projects {
		batch.Queue(
			`INSERT INTO projects (id, title, description, images, technologies, category,
			                       live_url, github_url, featured, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)
			 ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Title, p.Description, p.Images, p.Technologies, p.Category,
			p.LiveURL, p.GitHubURL, p.Featured, p.Order,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for _, p := range projects {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}
	return nil
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Images, &p.Technologies, &p.Category,
		&p.LiveURL, &p.GitHubURL, &p.Featured, &p.Order); err != nil {
		return nil, err
	}
	return &p, nil
}
