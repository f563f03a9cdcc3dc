package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDense(t *testing.T) {
	comment := &CommentQuestion{}
	comment.Ordering = intPtr(2)
	comment.Title = "Intro"

	date := &DatepickerQuestion{}
	date.Ordering = intPtr(0)
	date.Title = "Start"

	s := NewQuestionSet(comment, textAt(1, "Name"), date)
	out := Project(s)

	require.Len(t, out, 3)
	for i, q := range out {
		require.NotNil(t, q, "position %d", i)
		assert.Equal(t, i, q.Header().OrderingValue())
	}
	assert.Equal(t, QuestionDatepicker, out[0].Header().QuestionType)
	assert.Equal(t, QuestionText, out[1].Header().QuestionType)
	assert.Equal(t, QuestionComment, out[2].Header().QuestionType)
}

func TestProjectRoundTrip(t *testing.T) {
	s := NewQuestionSet(textAt(1, "Name"), textAt(0, "Email"))
	box := &CheckboxQuestion{}
	box.Ordering = intPtr(2)
	box.Title = "Agree"
	s.Add(box)

	var back QuestionSet
	for _, q := range Project(s) {
		back.Add(q)
	}

	for _, typ := range QuestionTypes {
		want := map[int]string{}
		for _, q := range s.Of(typ) {
			want[q.Header().OrderingValue()] = q.Header().Title
		}
		got := map[int]string{}
		for _, q := range back.Of(typ) {
			got[q.Header().OrderingValue()] = q.Header().Title
		}
		assert.Equal(t, want, got, string(typ))
	}
}

func TestProjectSparseLeavesHoles(t *testing.T) {
	out := Project(NewQuestionSet(textAt(3, "Late")))
	require.Len(t, out, 4)
	assert.Nil(t, out[0])
	assert.Nil(t, out[1])
	assert.Nil(t, out[2])

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, null, null, {"ordering": 3, "title": "Late", "questionType": "text"}]`, string(data))
}

func TestProjectDuplicateOrderingLaterVariantWins(t *testing.T) {
	box := &CheckboxQuestion{}
	box.Ordering = intPtr(0)
	box.Title = "Agree"

	out := Project(NewQuestionSet(box, textAt(0, "Name")))
	require.Len(t, out, 1)
	assert.Equal(t, QuestionCheckbox, out[0].Type())
}

func TestProjectEmpty(t *testing.T) {
	assert.Empty(t, Project(QuestionSet{}))

	missing := &CommentQuestion{}
	missing.Title = "No ordering"
	assert.Empty(t, Project(NewQuestionSet(missing)))
}

func TestNewViewDefaultsTags(t *testing.T) {
	v := NewView(Form{ID: "f1", Title: "T", Questions: NewQuestionSet(textAt(0, "Name"))})
	assert.Equal(t, []string{}, v.Tags)
	require.Len(t, v.Questions, 1)
}

func TestProjectLeavesStoredRecordsUnstamped(t *testing.T) {
	name := textAt(0, "Name")
	date := &DatepickerQuestion{}
	date.Ordering = intPtr(1)
	date.Title = "Start"
	s := NewQuestionSet(name, date)

	out := Project(s)
	require.Len(t, out, 2)
	assert.Equal(t, QuestionText, out[0].Header().QuestionType)
	assert.Equal(t, QuestionDatepicker, out[1].Header().QuestionType)
	assert.NotSame(t, name, out[0])

	assert.Empty(t, name.QuestionType)
	assert.Empty(t, date.QuestionType)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "questionType")
}
