// ABOUTME: Defines the Candidate type flowing through the deck
// ABOUTME: Only ID matters to navigation; the rest is card display payload

package deck

import (
	"fmt"
	"strings"
)

// Candidate is one matchable entry in the deck: a mentor or course card.
// Navigation only ever inspects ID; every other field is payload carried
// through untouched and shown on the card faces.
type Candidate struct {
	ID       string   // stable identifier, unique within a catalog
	Name     string   // display name
	Headline string   // one-line pitch shown under the name
	Category string   // catalog grouping, e.g. "backend" or "design"
	Skills   []string // skill tags listed on the card
	Years    int      // years of experience, 0 when unknown
	Bio      string   // long-form text for the detail face
}

// String returns a compact one-line form used in debug logs.
func (c Candidate) String() string {
	parts := []string{c.Name}
	if c.Headline != "" {
		parts = append(parts, c.Headline)
	}
	if c.Years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", c.Years))
	}
	return fmt.Sprintf("%s [%s]", strings.Join(parts, " - "), c.ID)
}
