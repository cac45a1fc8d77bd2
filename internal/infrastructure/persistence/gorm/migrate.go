package gorm

import "gorm.io/gorm"

// AutoMigrate creates or updates the catalog schema. Join tables are created
// implicitly through the many2many associations on RecipeModel.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&EquipmentTypeModel{},
		&EquipmentModel{},
		&TagModel{},
		&BaristaModel{},
		&SocialLinkModel{},
		&RecipeModel{},
		&RecipeStepModel{},
	)
}
