package model

// CatalogOption is one entry of a fixed clinical vocabulary: a stable
// identifier stored on sessions plus the human-readable label rendered into
// notes and toggle chips.
type CatalogOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultComplaintOptions returns the built-in complaint vocabulary. The
// slice order is the render order; identifiers are the persistence contract
// and must stay stable across releases.
func DefaultComplaintOptions() []CatalogOption {
	return []CatalogOption{
		{ID: "pain", Label: "Pain"},
		{ID: "stiffness", Label: "Stiffness"},
		{ID: "weakness", Label: "Weakness"},
		{ID: "numbness", Label: "Numbness / tingling"},
		{ID: "instability", Label: "Instability"},
		{ID: "limited_rom", Label: "Reduced range of motion"},
		{ID: "swelling", Label: "Swelling"},
	}
}

// DefaultMeasureOptions returns the built-in treatment-measure vocabulary.
func DefaultMeasureOptions() []CatalogOption {
	return []CatalogOption{
		{ID: "mt", Label: "Manual therapy"},
		{ID: "pt", Label: "Remedial exercise therapy"},
		{ID: "ml", Label: "Lymphatic drainage"},
		{ID: "exercise", Label: "Active exercises"},
		{ID: "edu", Label: "Patient education"},
		{ID: "taping", Label: "Taping"},
		{ID: "device", Label: "Equipment-based training"},
	}
}

// LabelFor translates a stored identifier back into its catalog label. An
// identifier without a catalog entry degrades to the identifier itself.
func LabelFor(options []CatalogOption, id string) string {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Label
		}
	}
	return id
}
