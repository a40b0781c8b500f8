package model

// Allocation is the share awarded to one heir class.
type Allocation struct {
	Class      HeirClass `json:"class"`
	Count      int       `json:"count"`
	Amount     float64   `json:"amount"`     // whole class
	Each       float64   `json:"each"`       // one member of the class
	Fraction   string    `json:"fraction"`   // descriptive, not re-derivable from Amount
	Percentage float64   `json:"percentage"` // Each as a percent of the net estate
}

// Label is the top-level label of the allocation ("Son", "Sons (3)").
func (a Allocation) Label() string {
	return a.Class.Label(a.Count)
}

// UnitLabel is the label that carries the fraction and percentage.
func (a Allocation) UnitLabel() string {
	if a.Count > 1 {
		return a.Class.EachLabel()
	}
	return a.Class.Label(a.Count)
}

type NoteKind string

const (
	NoteError     NoteKind = "error"
	NoteWarning   NoteKind = "warning"
	NoteRule      NoteKind = "rule"
	NoteBlocked   NoteKind = "blocked"
	NoteNoResidue NoteKind = "no_residue"
)

// Note is a piece of rationale attached to a result. Class is empty for
// notes that are not about one heir class.
type Note struct {
	Kind  NoteKind  `json:"kind"`
	Class HeirClass `json:"class,omitempty"`
	Label string    `json:"label"`
	Text  string    `json:"text"`
}

// DistributionResult is produced fresh by each calculation and never
// mutated afterwards.
type DistributionResult struct {
	NetEstate   float64      `json:"net_estate"`
	Allocations []Allocation `json:"allocations"`
	Notes       []Note       `json:"notes"`
}

// Exhausted reports whether this is the terminal result for an estate
// consumed entirely by debts.
func (r DistributionResult) Exhausted() bool {
	return len(r.Allocations) == 0 && len(r.Notes) == 1 && r.Notes[0].Kind == NoteError
}

// Allocation returns the allocation for class, if any.
func (r DistributionResult) Allocation(class HeirClass) (Allocation, bool) {
	for _, a := range r.Allocations {
		if a.Class == class {
			return a, true
		}
	}
	return Allocation{}, false
}

// Note returns the first note of the given kind about class, if any.
func (r DistributionResult) Note(kind NoteKind, class HeirClass) (Note, bool) {
	for _, n := range r.Notes {
		if n.Kind == kind && n.Class == class {
			return n, true
		}
	}
	return Note{}, false
}

// Total sums the top-level amounts of every allocation.
func (r DistributionResult) Total() float64 {
	var sum float64
	for _, a := range r.Allocations {
		sum += a.Amount
	}
	return sum
}

// Amounts maps labels to money. A class with several members appears twice:
// under its group label with the total and under its per-unit label.
func (r DistributionResult) Amounts() map[string]float64 {
	out := make(map[string]float64, len(r.Allocations))
	for _, a := range r.Allocations {
		out[a.Label()] = a.Amount
		if a.Count > 1 {
			out[a.UnitLabel()] = a.Each
		}
	}
	return out
}

func (r DistributionResult) Fractions() map[string]string {
	out := make(map[string]string, len(r.Allocations))
	for _, a := range r.Allocations {
		out[a.UnitLabel()] = a.Fraction
	}
	return out
}

func (r DistributionResult) Percentages() map[string]float64 {
	out := make(map[string]float64, len(r.Allocations))
	for _, a := range r.Allocations {
		out[a.UnitLabel()] = a.Percentage
	}
	return out
}

// Explanations maps note labels to their text. Later notes with the same
// label replace earlier ones.
func (r DistributionResult) Explanations() map[string]string {
	out := make(map[string]string, len(r.Notes))
	for _, n := range r.Notes {
		out[n.Label] = n.Text
	}
	return out
}
