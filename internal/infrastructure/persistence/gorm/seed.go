package gorm

import (
	"time"

	"gorm.io/gorm"
)

// SeedDemoData loads a small published catalog for local development.
// It is a no-op when recipes already exist.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&RecipeModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	dripper := EquipmentTypeModel{Name: "dripper"}
	kettle := EquipmentTypeModel{Name: "kettle"}
	grinder := EquipmentTypeModel{Name: "grinder"}
	if err := db.Create(&[]*EquipmentTypeModel{&dripper, &kettle, &grinder}).Error; err != nil {
		return err
	}

	v60 := EquipmentModel{Name: "V60", Brand: "Hario", EquipmentTypeID: &dripper.ID}
	chemex := EquipmentModel{Name: "Chemex", Brand: "Chemex", EquipmentTypeID: &dripper.ID}
	fellow := EquipmentModel{Name: "Stagg EKG", Brand: "Fellow", EquipmentTypeID: &kettle.ID}
	comandante := EquipmentModel{Name: "C40", Brand: "Comandante", EquipmentTypeID: &grinder.ID}
	if err := db.Create(&[]*EquipmentModel{&v60, &chemex, &fellow, &comandante}).Error; err != nil {
		return err
	}

	fruity := TagModel{Name: "Fruity", Slug: "fruity"}
	classic := TagModel{Name: "Classic", Slug: "classic"}
	singleOrigin := TagModel{Name: "Single Origin", Slug: "single-origin"}
	if err := db.Create(&[]*TagModel{&fruity, &classic, &singleOrigin}).Error; err != nil {
		return err
	}

	mika := BaristaModel{
		Name:        "Mika Tanaka",
		Affiliation: "Kanda Coffee Lab",
		SocialLinks: []SocialLinkModel{
			{Platform: "instagram", URL: "https://instagram.com/mika.brews"},
		},
	}
	if err := db.Create(&mika).Error; err != nil {
		return err
	}

	now := time.Now()
	published := now.Add(-72 * time.Hour)

	summary := "A bright, tea-like pour over for washed Ethiopian beans."
	grind := "medium_fine"
	beanWeight := 15.0
	waterTemp := 92.0
	waterAmount := 225.0
	brewTime := 180
	bloom := 30

	etiopia := RecipeModel{
		Title:            "Ethiopian Pour Over",
		Summary:          &summary,
		RoastLevel:       "light",
		GrindSize:        &grind,
		BeanWeightGrams:  &beanWeight,
		WaterTempCelsius: &waterTemp,
		WaterAmountGrams: &waterAmount,
		BrewTimeSeconds:  &brewTime,
		ViewCount:        42,
		IsPublished:      true,
		PublishedAt:      &published,
		BaristaID:        &mika.ID,
		Steps: []RecipeStepModel{
			{StepOrder: 1, Description: "Rinse the filter and preheat the dripper.", DurationSeconds: nil},
			{StepOrder: 2, Description: "Bloom with 45g of water.", DurationSeconds: &bloom},
			{StepOrder: 3, Description: "Pour in slow spirals to 225g.", DurationSeconds: &brewTime},
		},
		Equipment: []EquipmentModel{v60, fellow, comandante},
		Tags:      []TagModel{fruity, singleOrigin},
	}

	coarse := "medium_coarse"
	chemexWeight := 30.0
	chemexWater := 500.0
	houseBlend := RecipeModel{
		Title:            "House Blend Chemex",
		RoastLevel:       "medium",
		GrindSize:        &coarse,
		BeanWeightGrams:  &chemexWeight,
		WaterAmountGrams: &chemexWater,
		ViewCount:        7,
		IsPublished:      true,
		PublishedAt:      &published,
		Steps: []RecipeStepModel{
			{StepOrder: 1, Description: "Grind coarse and load the filter."},
			{StepOrder: 2, Description: "Pour in four pulses of 125g."},
		},
		Equipment: []EquipmentModel{chemex, fellow},
		Tags:      []TagModel{classic},
	}

	draft := RecipeModel{
		Title:       "Experimental Cold Flash Brew",
		RoastLevel:  "french",
		IsPublished: false,
		BaristaID:   &mika.ID,
	}

	return db.Create(&[]*RecipeModel{&etiopia, &houseBlend, &draft}).Error
}
