package repository

import (
	"context"
	"database/sql"
	"strings"
)

// ContactRepo handles contacts.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

const contactColumns = `id, name, email, phone, company, notes, starred, source_hash, created_at, updated_at`

func (r *ContactRepo) Insert(ctx context.Context, c Contact) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO contacts(id, name, email, phone, company, notes, starred, source_hash)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, c.ID, c.Name, c.Email, c.Phone, c.Company, c.Notes, c.Starred, c.SourceHash)
	return err
}

func (r *ContactRepo) Update(ctx context.Context, c Contact) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE contacts SET
	 name=?, email=?, phone=?, company=?, notes=?, starred=?,
	 updated_at=CURRENT_TIMESTAMP
	WHERE id=?;
	`, c.Name, c.Email, c.Phone, c.Company, c.Notes, c.Starred, c.ID)
	return err
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id=?`, id)
	return err
}

func (r *ContactRepo) Get(ctx context.Context, id string) (*Contact, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id=?`, id)
	c, err := scanContact(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachTags(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contacts ordered by name then email, tags attached.
func (r *ContactRepo) List(ctx context.Context) ([]Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY name COLLATE NOCASE, email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.attachTags(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SetTags replaces a contact's tag set.
func (r *ContactRepo) SetTags(ctx context.Context, contactID string, tagIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM contact_tags WHERE contact_id=?`, contactID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO contact_tags(contact_id, tag_id) VALUES (?, ?)`, contactID, tagID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// FindByEmail returns contacts whose email matches case-insensitively.
func (r *ContactRepo) FindByEmail(ctx context.Context, email string) ([]Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE lower(email)=?`, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes, &c.Starred, &c.SourceHash, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *ContactRepo) attachTags(ctx context.Context, c *Contact) error {
	rows, err := r.db.QueryContext(ctx, `
	SELECT t.id, t.name FROM tags t
	JOIN contact_tags ct ON ct.tag_id = t.id
	WHERE ct.contact_id = ?
	ORDER BY t.name`, c.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return err
		}
		c.Tags = append(c.Tags, t)
	}
	return rows.Err()
}
