// Package testutils provides test data factories for consistent test data
package testutils

import (
	"time"

	"github.com/brewista/catalog/internal/domain/barista"
	"github.com/brewista/catalog/internal/domain/equipment"
	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/domain/tag"
	"github.com/brianvoe/gofakeit/v6"
)

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	params recipe.ReconstructParams
}

// NewRecipeBuilder creates a builder preloaded with plausible fake data.
// The result is a published recipe unless overridden.
func NewRecipeBuilder(id int64) *RecipeBuilder {
	faker := gofakeit.New(id)

	conditions, _ := recipe.NewBrewingConditions(recipe.BrewingConditionsParams{
		RoastLevel: recipe.RoastMedium,
	})

	summary := faker.Sentence(8)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(id) * time.Hour)
	published := created.Add(24 * time.Hour)

	return &RecipeBuilder{
		params: recipe.ReconstructParams{
			ID:          recipe.IDFromInt64(id),
			Title:       faker.ProductName(),
			Summary:     &summary,
			Conditions:  conditions,
			ViewCount:   faker.Number(0, 500),
			IsPublished: true,
			PublishedAt: &published,
			CreatedAt:   created,
			UpdatedAt:   published,
		},
	}
}

// WithTitle sets the recipe title
func (b *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	b.params.Title = title
	return b
}

// WithSummary sets the short summary
func (b *RecipeBuilder) WithSummary(summary string) *RecipeBuilder {
	b.params.Summary = &summary
	return b
}

// WithRemarks sets the free-text remarks
func (b *RecipeBuilder) WithRemarks(remarks string) *RecipeBuilder {
	b.params.Remarks = &remarks
	return b
}

// WithConditions replaces the brewing conditions
func (b *RecipeBuilder) WithConditions(p recipe.BrewingConditionsParams) *RecipeBuilder {
	conditions, err := recipe.NewBrewingConditions(p)
	if err != nil {
		panic(err)
	}
	b.params.Conditions = conditions
	return b
}

// WithViewCount sets the persisted view count
func (b *RecipeBuilder) WithViewCount(count int) *RecipeBuilder {
	b.params.ViewCount = count
	return b
}

// Unpublished marks the recipe as a draft
func (b *RecipeBuilder) Unpublished() *RecipeBuilder {
	b.params.IsPublished = false
	b.params.PublishedAt = nil
	return b
}

// WithPublishedAt sets the publication timestamp
func (b *RecipeBuilder) WithPublishedAt(t time.Time) *RecipeBuilder {
	b.params.PublishedAt = &t
	return b
}

// WithCreatedAt sets the creation timestamp
func (b *RecipeBuilder) WithCreatedAt(t time.Time) *RecipeBuilder {
	b.params.CreatedAt = t
	b.params.UpdatedAt = t
	return b
}

// WithBarista sets the referenced barista id
func (b *RecipeBuilder) WithBarista(id int64) *RecipeBuilder {
	b.params.BaristaID = &id
	return b
}

// WithSteps sets the ordered brewing steps
func (b *RecipeBuilder) WithSteps(steps ...recipe.Step) *RecipeBuilder {
	b.params.Steps = steps
	return b
}

// WithEquipment sets the referenced equipment ids
func (b *RecipeBuilder) WithEquipment(ids ...int64) *RecipeBuilder {
	b.params.EquipmentIDs = ids
	return b
}

// WithTags sets the referenced tag ids
func (b *RecipeBuilder) WithTags(ids ...int64) *RecipeBuilder {
	b.params.TagIDs = ids
	return b
}

// Params returns the reconstruction params, ready for a store
func (b *RecipeBuilder) Params() recipe.ReconstructParams {
	return b.params
}

// Build reconstructs the aggregate
func (b *RecipeBuilder) Build() *recipe.Recipe {
	return recipe.Reconstruct(b.params)
}

// NewEquipment creates an equipment record with an optional type name
func NewEquipment(id int64, name, brand, typeName string) equipment.Equipment {
	e := equipment.Equipment{ID: id, Name: name, Brand: brand}
	if typeName != "" {
		e.Type = &equipment.Type{ID: id * 100, Name: typeName}
	}
	return e
}

// NewTag creates a tag record
func NewTag(id int64, name, slug string) tag.Tag {
	return tag.Tag{ID: id, Name: name, Slug: slug}
}

// NewBarista creates a barista record with one social link
func NewBarista(id int64, name string) barista.Barista {
	faker := gofakeit.New(id)
	return barista.Barista{
		ID:          id,
		Name:        name,
		Affiliation: faker.Company(),
		SocialLinks: []barista.SocialLink{
			{Platform: "instagram", URL: faker.URL()},
		},
	}
}
