package gorm

import (
	"sort"

	"github.com/brewista/catalog/internal/domain/barista"
	"github.com/brewista/catalog/internal/domain/equipment"
	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/domain/tag"
)

// ModelToRecipe converts a loaded row into the domain aggregate. Rows are
// trusted, but the conditions still pass through the value object constructor
// so a corrupt enum column surfaces as an error instead of a bogus aggregate.
func ModelToRecipe(m *RecipeModel) (*recipe.Recipe, error) {
	var grind *recipe.GrindSize
	if m.GrindSize != nil {
		g := recipe.GrindSize(*m.GrindSize)
		grind = &g
	}

	conditions, err := recipe.NewBrewingConditions(recipe.BrewingConditionsParams{
		RoastLevel:  recipe.RoastLevel(m.RoastLevel),
		GrindSize:   grind,
		BeanWeight:  m.BeanWeightGrams,
		WaterTemp:   m.WaterTempCelsius,
		WaterAmount: m.WaterAmountGrams,
		BrewTime:    m.BrewTimeSeconds,
	})
	if err != nil {
		return nil, err
	}

	steps := make([]recipe.Step, len(m.Steps))
	for i, s := range m.Steps {
		steps[i] = recipe.Step{
			Order:       s.StepOrder,
			Description: s.Description,
			DurationSec: s.DurationSeconds,
		}
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })

	equipmentIDs := make([]int64, len(m.Equipment))
	for i, e := range m.Equipment {
		equipmentIDs[i] = e.ID
	}

	tagIDs := make([]int64, len(m.Tags))
	for i, t := range m.Tags {
		tagIDs[i] = t.ID
	}

	return recipe.Reconstruct(recipe.ReconstructParams{
		ID:           recipe.IDFromInt64(m.ID),
		Title:        m.Title,
		Summary:      m.Summary,
		Remarks:      m.Remarks,
		Conditions:   conditions,
		ViewCount:    m.ViewCount,
		IsPublished:  m.IsPublished,
		PublishedAt:  m.PublishedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		BaristaID:    m.BaristaID,
		Steps:        steps,
		EquipmentIDs: equipmentIDs,
		TagIDs:       tagIDs,
	}), nil
}

// ModelToEquipment converts an equipment row with its optional type
func ModelToEquipment(m *EquipmentModel) equipment.Equipment {
	e := equipment.Equipment{
		ID:    m.ID,
		Name:  m.Name,
		Brand: m.Brand,
	}
	if m.Type != nil {
		e.Type = &equipment.Type{
			ID:   m.Type.ID,
			Name: m.Type.Name,
		}
	}
	return e
}

// ModelToTag converts a tag row
func ModelToTag(m *TagModel) tag.Tag {
	return tag.Tag{
		ID:   m.ID,
		Name: m.Name,
		Slug: m.Slug,
	}
}

// ModelToBarista converts a barista row with its social links
func ModelToBarista(m *BaristaModel) barista.Barista {
	links := make([]barista.SocialLink, len(m.SocialLinks))
	for i, l := range m.SocialLinks {
		links[i] = barista.SocialLink{
			Platform: l.Platform,
			URL:      l.URL,
		}
	}
	return barista.Barista{
		ID:          m.ID,
		Name:        m.Name,
		Affiliation: m.Affiliation,
		SocialLinks: links,
	}
}
