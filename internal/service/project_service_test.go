package service

import (
	"context"
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// mockProjectRepository は ProjectRepository のテスト用スタブ
type mockProjectRepository struct {
	listFunc    func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Project, error)
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func catalogFixture() []*model.Project {
	return []*model.Project{
		{ID: "5", Category: "frontend", Order: 5},
		{ID: "1", Category: "fullstack", Featured: true, Order: 1},
		{ID: "3", Category: "backend", Order: 3},
		{ID: "2", Category: "fullstack", Featured: true, Order: 2},
		{ID: "4", Category: "fullstack", Order: 4},
	}
}

func newFixtureService() ProjectService {
	return NewProjectService(&mockProjectRepository{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return catalogFixture(), nil
		},
	})
}

func ids(projects []*model.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProjectService_List_NoFilterSortedByOrder(t *testing.T) {
	got, err := newFixtureService().List(context.Background(), model.ProjectFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"1", "2", "3", "4", "5"}; !equalIDs(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestProjectService_List_CategoryAllIsUnfiltered(t *testing.T) {
	got, _ := newFixtureService().List(context.Background(), model.ProjectFilter{Category: "all"})
	if len(got) != 5 {
		t.Errorf("expected 5 projects, got %d", len(got))
	}
}

func TestProjectService_List_ByCategory(t *testing.T) {
	svc := newFixtureService()
	for _, category := range []string{"fullstack", "frontend", "backend"} {
		got, err := svc.List(context.Background(), model.ProjectFilter{Category: category})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Errorf("%s: expected matches", category)
		}
		for i, p := range got {
			if p.Category != category {
				t.Errorf("%s: got project %s with category %s", category, p.ID, p.Category)
			}
			if i > 0 && got[i-1].Order > p.Order {
				t.Errorf("%s: not sorted by order: %v", category, ids(got))
			}
		}
	}
}

func TestProjectService_List_UnknownCategoryEmpty(t *testing.T) {
	got, err := newFixtureService().List(context.Background(), model.ProjectFilter{Category: "mobile"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestProjectService_List_Featured(t *testing.T) {
	got, _ := newFixtureService().List(context.Background(), model.ProjectFilter{Featured: true})
	if want := []string{"1", "2"}; !equalIDs(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestProjectService_List_CategoryAndFeatured(t *testing.T) {
	got, _ := newFixtureService().List(context.Background(), model.ProjectFilter{Category: "backend", Featured: true})
	if len(got) != 0 {
		t.Errorf("expected no featured backend projects, got %v", ids(got))
	}
}

func TestProjectService_List_RepositoryError(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return nil, errors.New("boom")
		},
	})
	if _, err := svc.List(context.Background(), model.ProjectFilter{}); err == nil {
		t.Error("expected error")
	}
}

func TestProjectService_GetByID(t *testing.T) {
	svc := NewProjectService(repository.NewMemProjectRepository(repository.SeedProjects()))

	p, err := svc.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "1" || p.Title != "Remote Interview Platform" {
		t.Errorf("unexpected project %+v", p)
	}

	if _, err := svc.GetByID(context.Background(), "42"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
