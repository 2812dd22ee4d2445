package service

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nmarks/rolo/internal/database/repository"
)

// Deduper flags probable duplicate contacts.
type Deduper struct {
	Contacts *repository.ContactRepo
}

// DuplicatePair is a candidate duplicate with a similarity in [0, 1].
type DuplicatePair struct {
	A, B       repository.Contact
	Similarity float64
	Reason     string
}

// nameSimilarityThreshold is the minimum name similarity for a pair
// without a shared email to be flagged.
const nameSimilarityThreshold = 0.82

// FindDuplicates scans all contacts pairwise. A shared normalized email
// is a certain duplicate; otherwise names are compared by normalized
// edit-distance similarity.
func (d *Deduper) FindDuplicates(ctx context.Context) ([]DuplicatePair, error) {
	contacts, err := d.Contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	var pairs []DuplicatePair
	for i := 0; i < len(contacts); i++ {
		for j := i + 1; j < len(contacts); j++ {
			a, b := contacts[i], contacts[j]
			if emailKey(a.Email) != "" && emailKey(a.Email) == emailKey(b.Email) {
				pairs = append(pairs, DuplicatePair{A: a, B: b, Similarity: 1, Reason: "same email"})
				continue
			}
			sim := nameSimilarity(a.Name, b.Name)
			if sim >= nameSimilarityThreshold {
				pairs = append(pairs, DuplicatePair{A: a, B: b, Similarity: sim, Reason: "similar name"})
			}
		}
	}
	return pairs, nil
}

// Merge keeps the first contact, carrying over fields it is missing
// from the second, then deletes the second.
func (d *Deduper) Merge(ctx context.Context, keep, drop repository.Contact) error {
	if keep.Email == "" && drop.Email != "" {
		keep.Email = drop.Email
	}
	if keep.Phone == nil && drop.Phone != nil {
		keep.Phone = drop.Phone
	}
	if keep.Company == nil && drop.Company != nil {
		keep.Company = drop.Company
	}
	if keep.Notes == nil && drop.Notes != nil {
		keep.Notes = drop.Notes
	}
	keep.Starred = keep.Starred || drop.Starred
	if err := d.Contacts.Update(ctx, keep); err != nil {
		return err
	}
	return d.Contacts.Delete(ctx, drop.ID)
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// nameSimilarity is 1 - dist/maxlen over case-folded names, 0 when
// either side is empty.
func nameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	return 1 - float64(dist)/float64(longest)
}
