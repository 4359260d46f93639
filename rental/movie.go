package rental

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Category price class of a movie
type Category int

// Known categories. The set is closed, every rule in pricing.go switches over all of them.
const (
	Regular Category = iota
	NewRelease
	Childrens
)

// ErrUnknownCategory is returned when a price code does not name a known category.
var ErrUnknownCategory = errors.New("unknown category")

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Regular, NewRelease, Childrens:
		return true
	}
	return false
}

func (c Category) String() string {
	switch c {
	case Regular:
		return "REGULAR"
	case NewRelease:
		return "NEW_RELEASE"
	case Childrens:
		return "CHILDRENS"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory converts a price code, as handed out by a store, into a Category.
// Matching ignores case, apostrophes and whether words are split by space, dash or underscore.
func ParseCategory(code string) (Category, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	normalized = strings.NewReplacer("'", "", "-", "_", " ", "_").Replace(normalized)

	for _, c := range []Category{Regular, NewRelease, Childrens} {
		if normalized == c.String() {
			return c, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownCategory, "price code %q", code)
}

// Movie title with the category it is priced by
type Movie struct {
	title    string
	category Category
}

// NewMovie panics on a category outside the known set, that is a bug in the caller.
func NewMovie(title string, category Category) Movie {
	if !category.Valid() {
		panic(fmt.Sprintf("rental: invalid category %v for movie %q", category, title))
	}
	return Movie{title: title, category: category}
}

// Title of the movie
func (m Movie) Title() string {
	return m.title
}

// Category the movie is priced by
func (m Movie) Category() Category {
	return m.category
}
