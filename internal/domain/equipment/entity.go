// Package equipment holds the equipment lookup entities. Recipes reference
// equipment by id; the records here exist to resolve those ids into display
// data at the response boundary.
package equipment

// Type categorizes a piece of equipment (dripper, kettle, grinder, ...)
type Type struct {
	ID   int64
	Name string
}

// Equipment is a catalog record for a piece of brewing gear
type Equipment struct {
	ID    int64
	Name  string
	Brand string
	Type  *Type
}

// DisplayName composes the outward-facing name: "{brand} {name}" when a
// brand is recorded, otherwise the bare name.
func (e Equipment) DisplayName() string {
	if e.Brand != "" {
		return e.Brand + " " + e.Name
	}
	return e.Name
}
