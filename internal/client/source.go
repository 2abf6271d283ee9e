package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// ProjectSource yields the project catalog.
type ProjectSource interface {
	ListProjects(ctx context.Context) ([]*model.Project, error)
}

// StaticSource serves a fixed project list.
type StaticSource []*model.Project

func (s StaticSource) ListProjects(context.Context) ([]*model.Project, error) {
	return s, nil
}

// Origin tells which tier served a catalog load.
type Origin int

const (
	OriginRemote Origin = iota
	OriginFallback
)

func (o Origin) String() string {
	if o == OriginFallback {
		return "fallback"
	}
	return "remote"
}

// TieredSource loads the catalog from Primary within Timeout and falls back to
// the bundled list when Primary fails or returns no projects.
type TieredSource struct {
	Primary  ProjectSource
	Fallback []*model.Project
	Timeout  time.Duration
}

// NewTieredSource pairs primary with the bundled FallbackProjects.
func NewTieredSource(primary ProjectSource, timeout time.Duration) *TieredSource {
	return &TieredSource{Primary: primary, Fallback: FallbackProjects(), Timeout: timeout}
}

// Load never fails: on any primary error the fallback list is returned.
func (s *TieredSource) Load(ctx context.Context) ([]*model.Project, Origin) {
	if s.Primary == nil {
		return s.Fallback, OriginFallback
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	projects, err := s.Primary.ListProjects(ctx)
	if err != nil {
		slog.Info("using fallback projects data", "error", err)
		return s.Fallback, OriginFallback
	}
	if len(projects) == 0 {
		slog.Info("using fallback projects data", "reason", "empty catalog")
		return s.Fallback, OriginFallback
	}
	return projects, OriginRemote
}
