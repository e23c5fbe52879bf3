package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/themenu/internal/order"
)

const minFuzzyQuery = 3

// Match is a search hit.
type Match struct {
	Item     order.MenuItem
	Category string
	Distance int
}

// Search finds items whose names resemble query, tolerating typos. Substring
// hits rank first with distance 0; otherwise the closest word decides. Queries
// shorter than minFuzzyQuery runes only match as substrings. Ties keep menu
// order. limit <= 0 means no limit.
func (c *Catalog) Search(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	allowed := 0
	if n := len([]rune(q)); n >= minFuzzyQuery {
		allowed = max(1, n/3)
	}

	var out []Match
	for _, cat := range c.order {
		for _, it := range c.items[cat] {
			d, ok := nameDistance(q, strings.ToLower(it.Name), allowed)
			if !ok {
				continue
			}
			out = append(out, Match{Item: it, Category: cat, Distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func nameDistance(q, name string, allowed int) (int, bool) {
	if strings.Contains(name, q) {
		return 0, true
	}
	if allowed == 0 {
		return 0, false
	}
	qr := []rune(q)
	best := levenshtein.ComputeDistance(q, name)
	for _, w := range strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-' || r == '&'
	}) {
		if d := levenshtein.ComputeDistance(q, w); d < best {
			best = d
		}
		// a misspelt prefix such as "chok" still reaches "chocolate"
		if wr := []rune(w); len(wr) > len(qr) {
			if d := levenshtein.ComputeDistance(q, string(wr[:len(qr)])); d < best {
				best = d
			}
		}
	}
	return best, best <= allowed
}
