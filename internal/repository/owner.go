package repository

import (
	"errors"

	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrUnknownOwnerKind = errors.New("unknown owner kind")

// OwnerRepo maintains the forms arrays on agency, business and worker rows.
type OwnerRepo interface {
	AddForm(kind owner.Kind, ownerID, formID string) error
	RemoveForm(kind owner.Kind, ownerID, formID string) error
	HasForm(kind owner.Kind, ownerID, formID string) (bool, error)
	GetFormIDs(kind owner.Kind, ownerID string) ([]string, error)
	PruneDanglingForms(kind owner.Kind) (int64, error)
}

type DBOwnerRepo struct {
	db *gorm.DB
}

func NewOwnerRepo(db *gorm.DB) *DBOwnerRepo {
	return &DBOwnerRepo{
		db: db,
	}
}

func (r *DBOwnerRepo) table(kind owner.Kind) (*gorm.DB, error) {
	name := kind.Table()
	if name == "" {
		return nil, ErrUnknownOwnerKind
	}
	return r.db.Table(name), nil
}

// AddForm inserts formID into the owner's array unless it is already there.
// Returns gorm.ErrRecordNotFound when the owner row does not exist.
func (r *DBOwnerRepo) AddForm(kind owner.Kind, ownerID, formID string) error {
	tbl, err := r.table(kind)
	if err != nil {
		return err
	}
	res := tbl.Where("id = ?", ownerID).
		Update("forms", gorm.Expr("CASE WHEN ? = ANY(forms) THEN forms ELSE array_append(forms, ?) END", formID, formID))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveForm pulls every occurrence of formID from the owner's array.
// Removing an id that is not present is not an error.
func (r *DBOwnerRepo) RemoveForm(kind owner.Kind, ownerID, formID string) error {
	tbl, err := r.table(kind)
	if err != nil {
		return err
	}
	res := tbl.Where("id = ?", ownerID).
		Update("forms", gorm.Expr("array_remove(forms, ?)", formID))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBOwnerRepo) HasForm(kind owner.Kind, ownerID, formID string) (bool, error) {
	tbl, err := r.table(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = tbl.Where("id = ? AND ? = ANY(forms)", ownerID, formID).Count(&count).Error
	return count > 0, err
}

func (r *DBOwnerRepo) GetFormIDs(kind owner.Kind, ownerID string) ([]string, error) {
	tbl, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	var row struct {
		Forms pq.StringArray
	}
	if err := tbl.Select("forms").Where("id = ?", ownerID).Take(&row).Error; err != nil {
		return nil, err
	}
	return []string(row.Forms), nil
}

// PruneDanglingForms drops ids of forms that no longer exist from every
// owner of the kind and reports how many owners changed.
func (r *DBOwnerRepo) PruneDanglingForms(kind owner.Kind) (int64, error) {
	name := kind.Table()
	if name == "" {
		return 0, ErrUnknownOwnerKind
	}
	res := r.db.Exec(`
		UPDATE `+name+` o
		SET forms = COALESCE((
			SELECT array_agg(x ORDER BY ord)
			FROM unnest(o.forms) WITH ORDINALITY AS u(x, ord)
			WHERE EXISTS (SELECT 1 FROM forms f WHERE f.id::text = x)
		), '{}')
		WHERE EXISTS (
			SELECT 1 FROM unnest(o.forms) AS x
			WHERE NOT EXISTS (SELECT 1 FROM forms f WHERE f.id::text = x)
		)`)
	return res.RowsAffected, res.Error
}
