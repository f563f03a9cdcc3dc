package form

// Project flattens the type-partitioned questions into one sequence where the
// record at index i has ordering i. Each placed record is a copy stamped with
// its variant; s is left untouched.
//
// The sequence is as long as the largest ordering plus one; positions no
// record claims stay nil. Records without an ordering are skipped. When two
// records share an ordering the one from the later variant in QuestionTypes
// wins, and within a variant the later record wins. Writes reject duplicate
// orderings, so this only matters for legacy documents.
func Project(s QuestionSet) []Question {
	size := 0
	s.Each(func(_ QuestionType, _ int, q Question) {
		if o := q.Header().OrderingValue(); o+1 > size {
			size = o + 1
		}
	})

	out := make([]Question, size)
	s.Each(func(t QuestionType, _ int, q Question) {
		o := q.Header().OrderingValue()
		if o < 0 {
			return
		}
		c := shallowCopy(q)
		c.Header().QuestionType = t
		out[o] = c
	})
	return out
}
