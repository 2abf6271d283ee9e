package client

import "github.com/portfolio/backend/internal/model"

// Category is a filter button.
type Category struct {
	ID    string
	Label string
}

// DefaultCategories are the filter buttons the gallery renders.
func DefaultCategories() []Category {
	return []Category{
		{ID: model.CategoryAll, Label: "All Projects"},
		{ID: "fullstack", Label: "Full Stack"},
		{ID: "frontend", Label: "Frontend"},
		{ID: "backend", Label: "Backend"},
	}
}

// CategoryFilter projects a project list onto the active category.
// Visible is recomputed on every call, so it always reflects the latest
// category and project list.
type CategoryFilter struct {
	active   string
	projects []*model.Project
}

// NewCategoryFilter starts on "all".
func NewCategoryFilter(projects []*model.Project) *CategoryFilter {
	return &CategoryFilter{active: model.CategoryAll, projects: projects}
}

func (f *CategoryFilter) Active() string { return f.active }

// SetActive switches category; "" is treated as "all".
func (f *CategoryFilter) SetActive(category string) {
	if category == "" {
		category = model.CategoryAll
	}
	f.active = category
}

// SetProjects replaces the underlying list, e.g. after a catalog load.
func (f *CategoryFilter) SetProjects(projects []*model.Project) {
	f.projects = projects
}

// Visible returns the projects in the active category. A category with no
// projects yields an empty, non-nil slice.
func (f *CategoryFilter) Visible() []*model.Project {
	filter := model.ProjectFilter{Category: f.active}
	out := make([]*model.Project, 0, len(f.projects))
	for _, p := range f.projects {
		if filter.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists "all" followed by each category present in the projects,
// in first-appearance order.
func (f *CategoryFilter) Categories() []string {
	seen := map[string]bool{model.CategoryAll: true}
	out := []string{model.CategoryAll}
	for _, p := range f.projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
