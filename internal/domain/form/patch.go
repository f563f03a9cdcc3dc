package form

import (
	"encoding/json"
	"sort"
)

// ApplyMergePatch merges a JSON merge patch into f. Absent keys keep their
// stored value and null clears a field. Inside "questions" every variant key
// is merged separately: an array replaces that variant, null removes it.
// The caller validates the result.
func ApplyMergePatch(f *Form, patch map[string]json.RawMessage) error {
	verr := &ValidationError{}

	keys := make([]string, 0, len(patch))
	for key := range patch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := patch[key]
		null := isNull(raw)
		var err error
		switch key {
		case "id", "createdAt":
			// immutable
		case "title":
			f.Title = ""
			if !null {
				err = json.Unmarshal(raw, &f.Title)
			}
		case "description":
			f.Description = ""
			if !null {
				err = json.Unmarshal(raw, &f.Description)
			}
		case "isPublic":
			err = patchFlag(raw, &f.IsPublic)
		case "filled":
			err = patchFlag(raw, &f.Filled)
		case "common":
			err = patchFlag(raw, &f.Common)
		case "tags":
			var tags []string
			if !null {
				err = json.Unmarshal(raw, &tags)
			}
			f.Tags = toStringArray(tags)
		case "questions":
			if null {
				f.Questions = QuestionSet{}
				break
			}
			err = patchQuestions(&f.Questions, raw)
		default:
			verr.add("%s is not a form field", key)
			continue
		}
		if err != nil {
			verr.add("%s: %v", key, err)
		}
	}
	return verr.orNil()
}

func patchFlag(raw json.RawMessage, dst **bool) error {
	if isNull(raw) {
		*dst = nil
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func patchQuestions(s *QuestionSet, raw json.RawMessage) error {
	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return err
	}

	for key, value := range byKey {
		t := QuestionType(key)
		if isNull(value) {
			delete(s.ByType, t)
			delete(s.Extensions, key)
			continue
		}

		var incoming QuestionSet
		single, err := json.Marshal(map[string]json.RawMessage{key: value})
		if err != nil {
			return err
		}
		if err := json.Unmarshal(single, &incoming); err != nil {
			return err
		}
		if t.Known() {
			if s.ByType == nil {
				s.ByType = make(map[QuestionType][]Question)
			}
			s.ByType[t] = incoming.ByType[t]
			if s.ByType[t] == nil {
				s.ByType[t] = []Question{}
			}
			continue
		}
		if s.Extensions == nil {
			s.Extensions = make(map[string]json.RawMessage)
		}
		s.Extensions[key] = value
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
