package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nmarks/rolo/internal/database/repository"
)

// maxFuzzyDistance bounds how far a fuzzy match may drift from the
// query before it stops being useful.
const maxFuzzyDistance = 3

// Search filters contacts by query. Substring matches on name, email,
// company, or tag come first in their original order; when nothing
// matches exactly, contacts whose name or email local part is within a
// small edit distance of the query are returned, closest first.
func Search(contacts []repository.Contact, query string) []repository.Contact {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return contacts
	}

	var exact []repository.Contact
	for _, c := range contacts {
		if matchesSubstring(c, query) {
			exact = append(exact, c)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	type scored struct {
		contact  repository.Contact
		distance int
	}
	var fuzzy []scored
	for _, c := range contacts {
		d := fuzzyDistance(c, query)
		if d <= maxFuzzyDistance {
			fuzzy = append(fuzzy, scored{contact: c, distance: d})
		}
	}
	sort.SliceStable(fuzzy, func(i, j int) bool { return fuzzy[i].distance < fuzzy[j].distance })
	out := make([]repository.Contact, 0, len(fuzzy))
	for _, s := range fuzzy {
		out = append(out, s.contact)
	}
	return out
}

func matchesSubstring(c repository.Contact, query string) bool {
	if strings.Contains(strings.ToLower(c.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Email), query) {
		return true
	}
	if c.Company != nil && strings.Contains(strings.ToLower(*c.Company), query) {
		return true
	}
	for _, t := range c.Tags {
		if strings.Contains(strings.ToLower(t.Name), query) {
			return true
		}
	}
	return false
}

// fuzzyDistance is the smallest edit distance between the query and any
// word of the name, or the email local part.
func fuzzyDistance(c repository.Contact, query string) int {
	best := maxFuzzyDistance + 1
	for _, word := range strings.Fields(strings.ToLower(c.Name)) {
		if d := levenshtein.ComputeDistance(word, query); d < best {
			best = d
		}
	}
	local := strings.ToLower(c.Email)
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}
	if local != "" {
		if d := levenshtein.ComputeDistance(local, query); d < best {
			best = d
		}
	}
	return best
}
