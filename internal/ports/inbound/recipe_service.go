// Package inbound defines the interfaces for inbound ports (primary/driving adapters).
// The HTTP layer depends on these, never on the application package directly.
package inbound

import "context"

// RecipeService defines the catalog's two read use cases
type RecipeService interface {
	// SearchRecipes returns a page of published recipes matching the query.
	SearchRecipes(ctx context.Context, query SearchRecipesQuery) (*SearchResult, error)

	// GetRecipeDetail resolves a raw, untrusted id into the full detail view
	// plus the next view-count value. The persisted counter increment is
	// fired internally; its failure never fails the read.
	GetRecipeDetail(ctx context.Context, rawID string) (*RecipeDetailResult, error)
}

// RangeFilter bounds a numeric measurement; nil leaves a side open
type RangeFilter struct {
	Min *float64
	Max *float64
}

// SearchRecipesQuery carries the already-parsed search input
type SearchRecipesQuery struct {
	Page  int
	Limit int

	Search         string
	RoastLevels    []string
	GrindSizes     []string
	Equipment      []string
	EquipmentTypes []string
	BeanWeight     *RangeFilter
	WaterTemp      *RangeFilter
	WaterAmount    *RangeFilter

	SortBy    string
	SortOrder string
}

// Pagination is derived from the true totals, never stored
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// TagDTO is the wire representation of a tag
type TagDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RecipeSummary is one row of a search result page
type RecipeSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary,omitempty"`
	Equipment   []string `json:"equipment"`
	RoastLevel  string   `json:"roastLevel"`
	Tags        []TagDTO `json:"tags"`
	BaristaName string   `json:"baristaName,omitempty"`
}

// SearchResult is the search use case's output
type SearchResult struct {
	Recipes    []RecipeSummary `json:"recipes"`
	Pagination Pagination      `json:"pagination"`
}

// StepDTO is one ordered brewing step
type StepDTO struct {
	Order       int    `json:"stepOrder"`
	Description string `json:"description"`
	DurationSec *int   `json:"durationSeconds,omitempty"`
}

// EquipmentTypeDTO is the nested equipment category
type EquipmentTypeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EquipmentDTO is a resolved equipment reference on the detail view
type EquipmentDTO struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand,omitempty"`
	EquipmentType *EquipmentTypeDTO `json:"equipmentType,omitempty"`
}

// SocialLinkDTO is one barista profile link
type SocialLinkDTO struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// BaristaDTO is the resolved barista sub-resource
type BaristaDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Affiliation string          `json:"affiliation,omitempty"`
	SocialLinks []SocialLinkDTO `json:"socialLinks"`
}

// RecipeDetail is the full detail view. Brewing measurements surface as
// optional scalars; absent stays absent on the wire.
type RecipeDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     *string  `json:"summary,omitempty"`
	Remarks     *string  `json:"remarks,omitempty"`
	RoastLevel  string   `json:"roastLevel"`
	GrindSize   *string  `json:"grindSize,omitempty"`
	BeanWeight  *float64 `json:"beanWeight,omitempty"`
	WaterTemp   *float64 `json:"waterTemp,omitempty"`
	WaterAmount *float64 `json:"waterAmount,omitempty"`
	BrewingTime *int     `json:"brewingTime,omitempty"`

	Steps     []StepDTO      `json:"steps"`
	Equipment []EquipmentDTO `json:"equipment"`
	Tags      []TagDTO       `json:"tags"`
	Barista   *BaristaDTO    `json:"barista,omitempty"`

	ViewCount   int     `json:"viewCount"`
	IsPublished bool    `json:"isPublished"`
	PublishedAt *string `json:"publishedAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// RecipeDetailResult pairs the detail view with the next view-count value.
// NewViewCount is display data computed by the use case; the persisted
// increment happens independently at the storage layer.
type RecipeDetailResult struct {
	Recipe       *RecipeDetail
	NewViewCount int
}
