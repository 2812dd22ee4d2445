package service

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/nmarks/rolo/internal/database/repository"
)

// ImportService handles CSV contact imports.
type ImportService struct {
	Contacts *repository.ContactRepo
	Tags     *repository.TagRepo

	// DefaultTag, when non-empty, is attached to every imported contact.
	DefaultTag string
}

type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// CSV columns: name, email, phone, company. A header row starting with
// "name" is skipped. Re-importing the same file skips rows already
// present via a source hash over the row's identity fields.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	res := ImportResult{}

	var tagID string
	if s.DefaultTag != "" {
		tag, err := s.ensureTag(ctx, s.DefaultTag)
		if err != nil {
			return res, fmt.Errorf("default tag: %w", err)
		}
		tagID = tag.ID
	}

	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}
		if len(rec) < 2 { // name, email at minimum
			res.Errors = append(res.Errors, fmt.Errorf("line %d: expected at least 2 columns", line))
			continue
		}
		name := strings.TrimSpace(rec[0])
		email := strings.TrimSpace(rec[1])
		if name == "" && email == "" {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: empty name and email", line))
			continue
		}

		c := repository.Contact{
			ID:         uuid.NewString(),
			Name:       name,
			Email:      email,
			SourceHash: hashSource(name, strings.ToLower(email)),
		}
		if len(rec) > 2 {
			c.Phone = nullableStr(rec[2])
		}
		if len(rec) > 3 {
			c.Company = nullableStr(rec[3])
		}

		if err := s.Contacts.Insert(ctx, c); err != nil {
			// skip duplicates on unique constraint
			if strings.Contains(err.Error(), "UNIQUE") {
				res.Skipped++
				continue
			}
			res.Errors = append(res.Errors, fmt.Errorf("line %d insert: %w", line, err))
			continue
		}
		if tagID != "" {
			if err := s.Contacts.SetTags(ctx, c.ID, []string{tagID}); err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("line %d tag: %w", line, err))
			}
		}
		res.Imported++
	}
	return res, nil
}

func (s *ImportService) ensureTag(ctx context.Context, name string) (repository.Tag, error) {
	if existing, err := s.Tags.GetByName(ctx, name); err != nil {
		return repository.Tag{}, err
	} else if existing != nil {
		return *existing, nil
	}
	tag := repository.Tag{
		ID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte("tag:"+name)).String(),
		Name: name,
	}
	if err := s.Tags.Upsert(ctx, tag); err != nil {
		return repository.Tag{}, err
	}
	return tag, nil
}

func hashSource(fields ...string) *string {
	sum := sha256.Sum256([]byte(strings.Join(fields, "\x1f")))
	h := hex.EncodeToString(sum[:])
	return &h
}

func nullableStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
