// Command preview prints the project gallery as a visitor would see it: the
// catalog is loaded from the API, falling back to the bundled list, then
// filtered by category.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/client"
	"github.com/portfolio/backend/internal/logging"
)

func main() {
	apiURL := flag.String("api", "http://localhost:5000", "portfolio API base URL")
	category := flag.String("category", "all", "category to show")
	timeout := flag.Duration("timeout", 5*time.Second, "catalog load timeout")
	logLevel := flag.String("log-level", "WARN", "log level")
	flag.Parse()

	logging.Setup(*logLevel)

	src := client.NewTieredSource(client.NewAPIClient(*apiURL, nil), *timeout)
	projects, origin := src.Load(context.Background())

	filter := client.NewCategoryFilter(projects)
	filter.SetActive(*category)

	render(os.Stdout, filter, origin)
}

func render(w io.Writer, filter *client.CategoryFilter, origin client.Origin) {
	fmt.Fprintf(w, "catalog: %s | categories: %s | showing: %s\n\n",
		origin, strings.Join(filter.Categories(), ", "), filter.Active())

	visible := filter.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(w, "No projects in this category.")
		return
	}

	for _, p := range visible {
		card := client.NewCard(p)
		star := ""
		if p.Featured {
			star = " *"
		}
		fmt.Fprintf(w, "[%s] %s%s (%s)\n", p.ID, p.Title, star, p.Category)

		shown, more := card.Technologies()
		techs := strings.Join(shown, ", ")
		if more > 0 {
			techs += fmt.Sprintf(" +%d", more)
		}
		fmt.Fprintf(w, "    tech:   %s\n", techs)
		fmt.Fprintf(w, "    image:  %s (%d/%d)\n", card.CurrentImage(), card.Carousel().Index()+1, card.Carousel().Size())
		if p.LiveURL != "" {
			fmt.Fprintf(w, "    live:   %s\n", p.LiveURL)
		}
		if p.GitHubURL != "" {
			fmt.Fprintf(w, "    github: %s\n", p.GitHubURL)
		}
	}
}
