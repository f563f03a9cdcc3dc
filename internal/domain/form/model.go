package form

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Form is a business contract form: metadata plus type-partitioned questions.
type Form struct {
	ID          string         `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string         `json:"title" gorm:"type:varchar(1000)" validate:"required,max=1000"`
	Description string         `json:"description,omitempty" gorm:"type:varchar(1000)" validate:"max=1000"`
	IsPublic    *bool          `json:"isPublic"`
	Filled      *bool          `json:"filled"`
	Common      *bool          `json:"common"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]" validate:"dive,max=20"`
	Questions   QuestionSet    `json:"questions" gorm:"type:jsonb;serializer:json" validate:"-"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"<-:create;autoCreateTime"`
}

// BeforeCreate ensures that a UUID is present for new records.
func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// View is the client representation of a form: questions flattened into
// one ordering-indexed sequence.
type View struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsPublic    *bool      `json:"isPublic"`
	Filled      *bool      `json:"filled"`
	Common      *bool      `json:"common"`
	Tags        []string   `json:"tags"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewView(f Form) View {
	tags := []string(f.Tags)
	if tags == nil {
		tags = []string{}
	}
	return View{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		IsPublic:    f.IsPublic,
		Filled:      f.Filled,
		Common:      f.Common,
		Tags:        tags,
		Questions:   Project(f.Questions),
		CreatedAt:   f.CreatedAt,
	}
}
