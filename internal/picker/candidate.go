package picker

// Candidate is one selectable row.
// Display is what the user sees and what the query matches against;
// Value is what actions receive.
type Candidate struct {
	Display string
	Value   string
}

// Strings builds candidates whose display text equals their value.
func Strings(values ...string) []Candidate {
	cands := make([]Candidate, len(values))
	for i, v := range values {
		cands[i] = Candidate{Display: v, Value: v}
	}
	return cands
}

// Values returns the values of cands in order.
func Values(cands []Candidate) []string {
	values := make([]string, len(cands))
	for i, c := range cands {
		values[i] = c.Value
	}
	return values
}
