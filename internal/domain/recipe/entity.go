// Package recipe contains the core domain model for the brew catalog.
// The aggregate is reconstructed from storage and read-only afterwards;
// the only in-scope mutation (the view counter) lives in the storage layer
// as an atomic increment, never on the entity.
package recipe

import "time"

// Recipe is the aggregate root: the recipe together with its owned steps.
// Equipment, tags and the barista are foreign references resolved at the
// outbound boundary, not owned sub-aggregates.
type Recipe struct {
	id         ID
	title      string
	summary    *string
	remarks    *string
	conditions BrewingConditions

	viewCount   int
	isPublished bool
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	baristaID    *int64
	steps        []Step
	equipmentIDs []int64
	tagIDs       []int64
}

// ReconstructParams carries the already-validated state loaded from storage
type ReconstructParams struct {
	ID           ID
	Title        string
	Summary      *string
	Remarks      *string
	Conditions   BrewingConditions
	ViewCount    int
	IsPublished  bool
	PublishedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	BaristaID    *int64
	Steps        []Step
	EquipmentIDs []int64
	TagIDs       []int64
}

// Reconstruct assembles an aggregate from trusted storage data. It performs
// no validation beyond what ID and BrewingConditions already enforced;
// re-running invariant checks on every read would be wasted work.
func Reconstruct(p ReconstructParams) *Recipe {
	return &Recipe{
		id:           p.ID,
		title:        p.Title,
		summary:      p.Summary,
		remarks:      p.Remarks,
		conditions:   p.Conditions,
		viewCount:    p.ViewCount,
		isPublished:  p.IsPublished,
		publishedAt:  p.PublishedAt,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
		baristaID:    p.BaristaID,
		steps:        p.Steps,
		equipmentIDs: p.EquipmentIDs,
		tagIDs:       p.TagIDs,
	}
}

// ID returns the recipe's identifier
func (r *Recipe) ID() ID {
	return r.id
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Summary returns the short summary, nil when absent
func (r *Recipe) Summary() *string {
	return r.summary
}

// Remarks returns the free-text remarks, nil when absent
func (r *Recipe) Remarks() *string {
	return r.remarks
}

// Conditions returns the brewing conditions
func (r *Recipe) Conditions() BrewingConditions {
	return r.conditions
}

// ViewCount returns the persisted view count
func (r *Recipe) ViewCount() int {
	return r.viewCount
}

// IsPublished reports whether the recipe is externally visible
func (r *Recipe) IsPublished() bool {
	return r.isPublished
}

// PublishedAt returns when the recipe was published, nil when never
func (r *Recipe) PublishedAt() *time.Time {
	return r.publishedAt
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// BaristaID returns the referenced barista id, nil when absent
func (r *Recipe) BaristaID() *int64 {
	return r.baristaID
}

// Steps returns the ordered brewing steps
func (r *Recipe) Steps() []Step {
	return r.steps
}

// EquipmentIDs returns the referenced equipment ids
func (r *Recipe) EquipmentIDs() []int64 {
	return r.equipmentIDs
}

// TagIDs returns the referenced tag ids
func (r *Recipe) TagIDs() []int64 {
	return r.tagIDs
}
