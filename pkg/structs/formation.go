package structs

// ProcessFormation represents the scale of a single process type
type ProcessFormation struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// Formation represents the complete process formation for an App
type Formation []ProcessFormation

func (f Formation) Counts() map[string]int {
	counts := map[string]int{}

	for _, pf := range f {
		counts[pf.Type] = pf.Quantity
	}

	return counts
}

func (f Formation) Less(i, j int) bool {
	return f[i].Type < f[j].Type
}
