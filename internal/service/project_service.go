package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ProjectService はプロジェクトカタログの読み取りインターフェース
type ProjectService interface {
	// List returns the projects matching filter, sorted by Order ascending.
	// An unmatched filter yields an empty, non-nil slice.
	List(ctx context.Context, filter model.ProjectFilter) ([]*model.Project, error)

	// GetByID returns repository.ErrNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*model.Project, error)
}
