package form

import (
	"gorm.io/datatypes"
)

type QuestionType string

const (
	QuestionComment                    QuestionType = "comment"
	QuestionText                       QuestionType = "text"
	QuestionTextarea                   QuestionType = "textarea"
	QuestionCheckbox                   QuestionType = "checkbox"
	QuestionCheckboxGroup              QuestionType = "checkbox_group"
	QuestionRadiobuttonGroup           QuestionType = "radiobutton_group"
	QuestionRadiobuttonGroupHorizontal QuestionType = "radiobutton_group_horizontal"
	QuestionContactInformation         QuestionType = "contact_information"
	QuestionDatepicker                 QuestionType = "datepicker"
	QuestionTimepicker                 QuestionType = "timepicker"
)

// QuestionTypes is the closed set of variants in canonical order.
// Projection walks variants in this order.
var QuestionTypes = []QuestionType{
	QuestionComment,
	QuestionText,
	QuestionTextarea,
	QuestionCheckbox,
	QuestionCheckboxGroup,
	QuestionRadiobuttonGroup,
	QuestionRadiobuttonGroupHorizontal,
	QuestionContactInformation,
	QuestionDatepicker,
	QuestionTimepicker,
}

func (t QuestionType) Known() bool {
	return newQuestion(t) != nil
}

// Question is one record of a form. Concrete types are the *XxxQuestion
// structs below; the variant is fixed by Type.
type Question interface {
	Type() QuestionType
	Header() *QuestionHeader
}

// QuestionHeader carries the fields every variant has.
type QuestionHeader struct {
	Ordering *int   `json:"ordering" validate:"required,min=0,max=99"`
	Title    string `json:"title" validate:"required,max=1000"`
	// Set only on projected records.
	QuestionType QuestionType `json:"questionType,omitempty" validate:"-"`
}

func (h *QuestionHeader) Header() *QuestionHeader { return h }

// OrderingValue returns the ordering or -1 when unset.
func (h *QuestionHeader) OrderingValue() int {
	if h.Ordering == nil {
		return -1
	}
	return *h.Ordering
}

type CommentQuestion struct {
	QuestionHeader
}

type TextQuestion struct {
	QuestionHeader
	Subtitle        string `json:"subtitle,omitempty" validate:"max=1000"`
	Optional        *bool  `json:"optional,omitempty"`
	Answer          string `json:"answer,omitempty" validate:"max=1000"`
	AnswerMinLength *int   `json:"answerMinLength,omitempty" validate:"omitempty,min=0"`
	AnswerMaxLength *int   `json:"answerMaxLength,omitempty" validate:"omitempty,min=0"`
}

type TextareaQuestion struct {
	TextQuestion
	Rows *int `json:"rows,omitempty" validate:"omitempty,min=0,max=50"`
}

type CheckboxQuestion struct {
	QuestionHeader
	Subtitle string `json:"subtitle,omitempty" validate:"max=1000"`
	Optional *bool  `json:"optional,omitempty"`
	Checked  *bool  `json:"checked,omitempty"`
}

// choiceFields is shared by the group variants.
type choiceFields struct {
	Subtitle     string              `json:"subtitle,omitempty" validate:"max=1000"`
	Optional     *bool               `json:"optional,omitempty"`
	Options      []string            `json:"options,omitempty" validate:"dive,max=500"`
	OptionValues []datatypes.JSONMap `json:"optionValues,omitempty"`
}

type CheckboxGroupQuestion struct {
	QuestionHeader
	choiceFields
}

type RadiobuttonGroupQuestion struct {
	QuestionHeader
	choiceFields
}

type RadiobuttonGroupHorizontalQuestion struct {
	QuestionHeader
	choiceFields
	Scale                  *float64 `json:"scale,omitempty" validate:"omitempty,min=0,max=10"`
	ScaleOptionTitleLeft   string   `json:"scaleOptionTitleLeft,omitempty" validate:"max=75"`
	ScaleOptionTitleCenter string   `json:"scaleOptionTitleCenter,omitempty" validate:"max=75"`
	ScaleOptionTitleRight  string   `json:"scaleOptionTitleRight,omitempty" validate:"max=75"`
}

type ContactInformationQuestion struct {
	QuestionHeader
	Subtitle          string            `json:"subtitle,omitempty" validate:"max=1000"`
	Optional          *bool             `json:"optional,omitempty"`
	ContactInfoAnswer datatypes.JSONMap `json:"contactInfoAnswer,omitempty"`
}

// pickerFields is shared by the date and time pickers.
type pickerFields struct {
	Subtitle          string `json:"subtitle,omitempty" validate:"max=1000"`
	IsClosedTimeFrame *bool  `json:"isClosedTimeFrame,omitempty"`
	Answer            string `json:"answer,omitempty" validate:"max=1000"`
}

type DatepickerQuestion struct {
	QuestionHeader
	pickerFields
}

type TimepickerQuestion struct {
	QuestionHeader
	pickerFields
}

func (*CommentQuestion) Type() QuestionType            { return QuestionComment }
func (*TextQuestion) Type() QuestionType               { return QuestionText }
func (*TextareaQuestion) Type() QuestionType           { return QuestionTextarea }
func (*CheckboxQuestion) Type() QuestionType           { return QuestionCheckbox }
func (*CheckboxGroupQuestion) Type() QuestionType      { return QuestionCheckboxGroup }
func (*RadiobuttonGroupQuestion) Type() QuestionType   { return QuestionRadiobuttonGroup }
func (*ContactInformationQuestion) Type() QuestionType { return QuestionContactInformation }
func (*DatepickerQuestion) Type() QuestionType         { return QuestionDatepicker }
func (*TimepickerQuestion) Type() QuestionType         { return QuestionTimepicker }
func (*RadiobuttonGroupHorizontalQuestion) Type() QuestionType {
	return QuestionRadiobuttonGroupHorizontal
}

// newQuestion returns an empty record of the given variant, or nil for keys
// outside the closed set.
func newQuestion(t QuestionType) Question {
	switch t {
	case QuestionComment:
		return &CommentQuestion{}
	case QuestionText:
		return &TextQuestion{}
	case QuestionTextarea:
		return &TextareaQuestion{}
	case QuestionCheckbox:
		return &CheckboxQuestion{}
	case QuestionCheckboxGroup:
		return &CheckboxGroupQuestion{}
	case QuestionRadiobuttonGroup:
		return &RadiobuttonGroupQuestion{}
	case QuestionRadiobuttonGroupHorizontal:
		return &RadiobuttonGroupHorizontalQuestion{}
	case QuestionContactInformation:
		return &ContactInformationQuestion{}
	case QuestionDatepicker:
		return &DatepickerQuestion{}
	case QuestionTimepicker:
		return &TimepickerQuestion{}
	}
	return nil
}

// shallowCopy returns a new record with the same field values as q. Slices,
// maps and pointers are shared.
func shallowCopy(q Question) Question {
	switch v := q.(type) {
	case *CommentQuestion:
		c := *v
		return &c
	case *TextQuestion:
		c := *v
		return &c
	case *TextareaQuestion:
		c := *v
		return &c
	case *CheckboxQuestion:
		c := *v
		return &c
	case *CheckboxGroupQuestion:
		c := *v
		return &c
	case *RadiobuttonGroupQuestion:
		c := *v
		return &c
	case *RadiobuttonGroupHorizontalQuestion:
		c := *v
		return &c
	case *ContactInformationQuestion:
		c := *v
		return &c
	case *DatepickerQuestion:
		c := *v
		return &c
	case *TimepickerQuestion:
		c := *v
		return &c
	}
	return q
}
