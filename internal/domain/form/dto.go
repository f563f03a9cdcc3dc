package form

import (
	"github.com/lib/pq"
)

type CreateFormDTO struct {
	Title       string      `json:"title" example:"Contract A"`
	Description string      `json:"description" example:"Temporary staffing agreement"`
	IsPublic    *bool       `json:"isPublic" example:"true"`
	Filled      *bool       `json:"filled" example:"false"`
	Common      *bool       `json:"common" example:"false"`
	Tags        []string    `json:"tags"`
	Questions   QuestionSet `json:"questions" swaggertype:"object"`
}

// ReplaceFormDTO is a complete replacement document. Fields left out are
// cleared on the stored form.
type ReplaceFormDTO CreateFormDTO

func (d CreateFormDTO) NewForm() *Form {
	return &Form{
		Title:       d.Title,
		Description: d.Description,
		IsPublic:    d.IsPublic,
		Filled:      d.Filled,
		Common:      d.Common,
		Tags:        toStringArray(d.Tags),
		Questions:   d.Questions,
	}
}

// Replace builds the document that supersedes stored. Identity and creation
// time carry over; everything else comes from the DTO.
func (d ReplaceFormDTO) Replace(stored Form) *Form {
	f := CreateFormDTO(d).NewForm()
	f.ID = stored.ID
	f.CreatedAt = stored.CreatedAt
	return f
}

type FormQueryDTO struct {
	Query        string `form:"q"`
	QuestionType string `form:"questionType"`
	Common       *bool  `form:"common"`
	IsPublic     *bool  `form:"isPublic"`
	Limit        int    `form:"limit" binding:"omitempty,min=0,max=100"`
	Offset       int    `form:"offset" binding:"omitempty,min=0"`
}

func toStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
