package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// QuestionSet is the stored, type-partitioned shape of a form's questions:
// one ordered array per variant. Keys outside the closed variant set are
// preserved in Extensions but never interpreted.
type QuestionSet struct {
	ByType     map[QuestionType][]Question
	Extensions map[string]json.RawMessage
}

// NewQuestionSet groups the given records by variant, preserving order.
func NewQuestionSet(questions ...Question) QuestionSet {
	var s QuestionSet
	for _, q := range questions {
		s.Add(q)
	}
	return s
}

func (s *QuestionSet) Add(q Question) {
	if q == nil {
		return
	}
	if s.ByType == nil {
		s.ByType = make(map[QuestionType][]Question)
	}
	s.ByType[q.Type()] = append(s.ByType[q.Type()], q)
}

// Of returns the records stored under the given variant.
func (s QuestionSet) Of(t QuestionType) []Question {
	return s.ByType[t]
}

// Len counts the records of every known variant.
func (s QuestionSet) Len() int {
	n := 0
	for _, qs := range s.ByType {
		n += len(qs)
	}
	return n
}

func (s QuestionSet) IsEmpty() bool {
	return s.Len() == 0 && len(s.Extensions) == 0
}

// Each visits records variant by variant in canonical order.
func (s QuestionSet) Each(fn func(t QuestionType, i int, q Question)) {
	for _, t := range QuestionTypes {
		for i, q := range s.ByType[t] {
			fn(t, i, q)
		}
	}
}

func (s QuestionSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.ByType)+len(s.Extensions))
	for key, raw := range s.Extensions {
		out[key] = raw
	}
	for t, qs := range s.ByType {
		if qs == nil {
			qs = []Question{}
		}
		raw, err := json.Marshal(qs)
		if err != nil {
			return nil, fmt.Errorf("marshal %s questions: %w", t, err)
		}
		out[string(t)] = raw
	}
	return json.Marshal(out)
}

func (s *QuestionSet) UnmarshalJSON(data []byte) error {
	*s = QuestionSet{}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("questions must be an object keyed by question type: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t := QuestionType(key)
		if !t.Known() {
			if s.Extensions == nil {
				s.Extensions = make(map[string]json.RawMessage)
			}
			s.Extensions[key] = raw[key]
			continue
		}

		var items []json.RawMessage
		if err := json.Unmarshal(raw[key], &items); err != nil {
			return fmt.Errorf("questions.%s must be an array: %w", key, err)
		}
		if s.ByType == nil {
			s.ByType = make(map[QuestionType][]Question)
		}
		qs := make([]Question, 0, len(items))
		for i, item := range items {
			q := newQuestion(t)
			if err := json.Unmarshal(item, q); err != nil {
				return fmt.Errorf("questions.%s[%d]: %w", key, i, err)
			}
			// the variant comes from the key, never from the record
			q.Header().QuestionType = ""
			qs = append(qs, q)
		}
		s.ByType[t] = qs
	}
	return nil
}
