package client

import (
	"fmt"

	"github.com/portfolio/backend/internal/model"
)

// Carousel cycles through a fixed number of images.
type Carousel struct {
	index int
	size  int
}

// NewCarousel panics when size < 1; a project always has at least one image.
func NewCarousel(size int) *Carousel {
	if size < 1 {
		panic(fmt.Sprintf("client: carousel needs at least one image, got %d", size))
	}
	return &Carousel{size: size}
}

func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Size() int  { return c.size }

// Next advances one image, wrapping to the first.
func (c *Carousel) Next() {
	c.index = (c.index + 1) % c.size
}

// Prev steps back one image, wrapping to the last.
func (c *Carousel) Prev() {
	c.index = (c.index - 1 + c.size) % c.size
}

// JumpTo selects image k. Indicators only offer valid indices, so an
// out-of-range k is a caller bug and panics.
func (c *Carousel) JumpTo(k int) {
	if k < 0 || k >= c.size {
		panic(fmt.Sprintf("client: carousel index %d out of range [0,%d)", k, c.size))
	}
	c.index = k
}

// ShowControls reports whether prev/next buttons and indicators are rendered.
func (c *Carousel) ShowControls() bool {
	return c.size > 1
}

// collapsedTechLimit is how many technologies a collapsed card lists.
const collapsedTechLimit = 4

// Card is one project in the gallery. The compact card and its detail view
// share a single carousel, so the detail view opens on the image the card shows.
type Card struct {
	Project    *model.Project
	carousel   *Carousel
	detailOpen bool
}

// NewCard builds a card for p. A project without images still gets a
// one-slot carousel; CurrentImage then returns "".
func NewCard(p *model.Project) *Card {
	return &Card{Project: p, carousel: NewCarousel(max(1, len(p.Images)))}
}

func (c *Card) Carousel() *Carousel { return c.carousel }

// CurrentImage is the image both views display.
func (c *Card) CurrentImage() string {
	if len(c.Project.Images) == 0 {
		return ""
	}
	return c.Project.Images[c.carousel.Index()]
}

func (c *Card) OpenDetail()      { c.detailOpen = true }
func (c *Card) CloseDetail()     { c.detailOpen = false }
func (c *Card) DetailOpen() bool { return c.detailOpen }

// Technologies returns the technologies shown on the collapsed card and how
// many more are hidden behind the "+N" badge.
func (c *Card) Technologies() (shown []string, more int) {
	techs := c.Project.Technologies
	if len(techs) <= collapsedTechLimit {
		return techs, 0
	}
	return techs[:collapsedTechLimit], len(techs) - collapsedTechLimit
}
