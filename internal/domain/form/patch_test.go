package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePatch(t *testing.T, raw string) map[string]json.RawMessage {
	t.Helper()
	var patch map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &patch))
	return patch
}

func storedForm() *Form {
	box := &CheckboxQuestion{}
	box.Ordering = intPtr(1)
	box.Title = "Agree"
	return &Form{
		ID:          "f1",
		Title:       "Contract",
		Description: "Warehouse shift",
		IsPublic:    boolPtr(true),
		Filled:      boolPtr(false),
		Common:      boolPtr(false),
		Tags:        []string{"night"},
		Questions:   NewQuestionSet(textAt(0, "Name"), box),
	}
}

func TestApplyMergePatchKeepsAbsentFields(t *testing.T) {
	f := storedForm()
	require.NoError(t, ApplyMergePatch(f, decodePatch(t, `{"title": "Contract B", "filled": true}`)))

	assert.Equal(t, "Contract B", f.Title)
	assert.True(t, *f.Filled)
	assert.Equal(t, "Warehouse shift", f.Description)
	assert.Equal(t, []string{"night"}, []string(f.Tags))
	assert.Equal(t, 2, f.Questions.Len())
}

func TestApplyMergePatchNullClears(t *testing.T) {
	f := storedForm()
	require.NoError(t, ApplyMergePatch(f, decodePatch(t, `{"description": null, "tags": null, "common": null}`)))

	assert.Empty(t, f.Description)
	assert.NotNil(t, f.Tags)
	assert.Empty(t, f.Tags)
	assert.Nil(t, f.Common)
}

func TestApplyMergePatchQuestionsPerVariant(t *testing.T) {
	f := storedForm()
	patch := `{"questions": {"text": [{"ordering": 0, "title": "Full name"}, {"ordering": 2, "title": "Phone"}], "checkbox": null}}`
	require.NoError(t, ApplyMergePatch(f, decodePatch(t, patch)))

	require.Len(t, f.Questions.Of(QuestionText), 2)
	assert.Equal(t, "Full name", f.Questions.Of(QuestionText)[0].Header().Title)
	assert.Empty(t, f.Questions.Of(QuestionCheckbox))
}

func TestApplyMergePatchQuestionsNull(t *testing.T) {
	f := storedForm()
	require.NoError(t, ApplyMergePatch(f, decodePatch(t, `{"questions": null}`)))
	assert.True(t, f.Questions.IsEmpty())
}

func TestApplyMergePatchImmutableAndUnknown(t *testing.T) {
	f := storedForm()
	err := ApplyMergePatch(f, decodePatch(t, `{"id": "other", "owner": "x", "isPublic": "yes"}`))

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Problems, "owner is not a form field")
	assert.Len(t, verr.Problems, 2)
	assert.Equal(t, "f1", f.ID)
}
