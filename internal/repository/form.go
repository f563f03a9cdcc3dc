package repository

import (
	"github.com/linskybing/staffing-go/internal/domain/form"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// formDocument weights the searchable text of a form: title first, then
// tags, then description.
const formDocument = `setweight(to_tsvector('simple', coalesce(title, '')), 'A') || ` +
	`setweight(to_tsvector('simple', coalesce(array_to_string(tags, ' '), '')), 'B') || ` +
	`setweight(to_tsvector('simple', coalesce(description, '')), 'C')`

type FormQueryParams struct {
	Query        string
	QuestionType *form.QuestionType
	Common       *bool
	IsPublic     *bool
	Limit        int
	Offset       int
}

type FormRepo interface {
	CreateForm(f *form.Form) error
	GetFormByID(id string) (form.Form, error)
	ReplaceForm(f *form.Form) error
	DeleteForm(id string) error
	SearchForms(params FormQueryParams) ([]form.Form, error)
	ListFormsByIDs(ids []string) ([]form.Form, error)
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) GetFormByID(id string) (form.Form, error) {
	var f form.Form
	err := r.db.Where("id = ?", id).First(&f).Error
	return f, err
}

// ReplaceForm overwrites every column but id and created_at, zero values
// included.
func (r *DBFormRepo) ReplaceForm(f *form.Form) error {
	res := r.db.Model(&form.Form{ID: f.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(f)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBFormRepo) DeleteForm(id string) error {
	res := r.db.Where("id = ?", id).Delete(&form.Form{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBFormRepo) SearchForms(params FormQueryParams) ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Model(&form.Form{}).Scopes(searchScope(params)).Find(&forms).Error
	return forms, err
}

// searchScope filters forms by params. A text query orders by weighted
// rank, newest first on ties; otherwise newest first.
func searchScope(params FormQueryParams) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if params.QuestionType != nil {
			query = query.Where(datatypes.JSONQuery("questions").HasKey(string(*params.QuestionType)))
		}
		if params.Common != nil {
			query = query.Where("common = ?", *params.Common)
		}
		if params.IsPublic != nil {
			query = query.Where("is_public = ?", *params.IsPublic)
		}

		if params.Query != "" {
			query = query.
				Where(formDocument+" @@ plainto_tsquery('simple', ?)", params.Query).
				Order(clause.OrderBy{Expression: clause.Expr{
					SQL:                "ts_rank(" + formDocument + ", plainto_tsquery('simple', ?)) DESC, created_at DESC",
					Vars:               []interface{}{params.Query},
					WithoutParentheses: true,
				}})
		} else {
			query = query.Order("created_at DESC")
		}

		if params.Limit > 0 {
			query = query.Limit(params.Limit)
		}
		if params.Offset > 0 {
			query = query.Offset(params.Offset)
		}
		return query
	}
}

func (r *DBFormRepo) ListFormsByIDs(ids []string) ([]form.Form, error) {
	var forms []form.Form
	if len(ids) == 0 {
		return forms, nil
	}
	err := r.db.Where("id IN ?", ids).Order("created_at DESC").Find(&forms).Error
	return forms, err
}
