package service

import (
	"context"
	"sort"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// ProjectServiceImpl は ProjectService の実装
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService は ProjectServiceImpl を生成する（DI: ProjectRepository を注入）
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// List はフィルタ済みのプロジェクト一覧を order 昇順で返す
func (s *ProjectServiceImpl) List(ctx context.Context, filter model.ProjectFilter) ([]*model.Project, error) {
	all, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]*model.Project, 0, len(all))
	for _, p := range all {
		if filter.Match(p) {
			projects = append(projects, p)
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})
	return projects, nil
}

// GetByID は ID でプロジェクトを取得する
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}
