package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/portfolio/backend/internal/model"
)

// MemProjectRepository は ProjectRepository のインメモリ実装
type MemProjectRepository struct {
	mu       sync.RWMutex
	projects []*model.Project
}

var _ ProjectRepository = (*MemProjectRepository)(nil)

// NewMemProjectRepository は seed を order 昇順で保持する MemProjectRepository を生成する
func NewMemProjectRepository(seed []*model.Project) *MemProjectRepository {
	projects := make([]*model.Project, len(seed))
	copy(projects, seed)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})
	return &MemProjectRepository{projects: projects}
}

// List returns a copy of the catalog slice in display order.
func (r *MemProjectRepository) List(_ context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

// GetByID は ID でプロジェクトを取得する。存在しない場合は ErrNotFound
func (r *MemProjectRepository) GetByID(_ context.Context, id string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
