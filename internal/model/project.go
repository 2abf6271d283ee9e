package model

// Project is a portfolio entry shown in the project gallery.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	GitHubURL    string   `json:"githubUrl,omitempty"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

// CategoryAll is the filter value that matches every category.
const CategoryAll = "all"

// ProjectFilter narrows a project listing.
// Category "" and "all" do not restrict; Featured=false does not restrict.
type ProjectFilter struct {
	Category string
	Featured bool
}

// Match reports whether p passes the filter.
func (f ProjectFilter) Match(p *Project) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	if f.Featured && !p.Featured {
		return false
	}
	return true
}
