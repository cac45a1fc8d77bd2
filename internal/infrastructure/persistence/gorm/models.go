// Package gorm provides the relational persistence adapter
package gorm

import (
	"time"
)

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID      int64   `gorm:"primaryKey;autoIncrement"`
	Title   string  `gorm:"type:varchar(255);not null;index"`
	Summary *string `gorm:"type:text"`
	Remarks *string `gorm:"type:text"`

	// Brewing conditions; NULL columns mean "not recorded", never zero
	RoastLevel       string   `gorm:"type:varchar(20);not null;index"`
	GrindSize        *string  `gorm:"type:varchar(20)"`
	BeanWeightGrams  *float64 `gorm:"column:bean_weight_grams"`
	WaterTempCelsius *float64 `gorm:"column:water_temp_celsius"`
	WaterAmountGrams *float64 `gorm:"column:water_amount_grams"`
	BrewTimeSeconds  *int     `gorm:"column:brew_time_seconds"`

	ViewCount   int        `gorm:"column:view_count;default:0"`
	IsPublished bool       `gorm:"default:false;index"`
	PublishedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time

	BaristaID *int64 `gorm:"index"`

	// Relationships
	Barista   *BaristaModel     `gorm:"foreignKey:BaristaID"`
	Steps     []RecipeStepModel `gorm:"foreignKey:RecipeID"`
	Equipment []EquipmentModel  `gorm:"many2many:recipe_equipment;joinForeignKey:RecipeID;joinReferences:EquipmentID"`
	Tags      []TagModel        `gorm:"many2many:recipe_tags;joinForeignKey:RecipeID;joinReferences:TagID"`
}

// TableName returns the table name for recipes
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeStepModel represents one ordered brewing instruction
type RecipeStepModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID        int64  `gorm:"not null;index"`
	StepOrder       int    `gorm:"column:step_order;not null"`
	Description     string `gorm:"type:text;not null"`
	DurationSeconds *int   `gorm:"column:duration_seconds"`
}

// TableName returns the table name for recipe steps
func (RecipeStepModel) TableName() string {
	return "recipe_steps"
}

// EquipmentTypeModel represents a category of brewing equipment
type EquipmentTypeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for equipment types
func (EquipmentTypeModel) TableName() string {
	return "equipment_types"
}

// EquipmentModel represents a piece of brewing equipment
type EquipmentModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"type:varchar(255);not null;index"`
	Brand           string `gorm:"type:varchar(255)"`
	EquipmentTypeID *int64 `gorm:"index"`

	Type *EquipmentTypeModel `gorm:"foreignKey:EquipmentTypeID"`
}

// TableName returns the table name for equipment
func (EquipmentModel) TableName() string {
	return "equipment"
}

// TagModel represents a recipe tag
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
	Slug string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for tags
func (TagModel) TableName() string {
	return "tags"
}

// BaristaModel represents a recipe author
type BaristaModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Affiliation string `gorm:"type:varchar(255)"`

	SocialLinks []SocialLinkModel `gorm:"foreignKey:BaristaID"`
}

// TableName returns the table name for baristas
func (BaristaModel) TableName() string {
	return "baristas"
}

// SocialLinkModel represents one of a barista's public profiles
type SocialLinkModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	BaristaID int64  `gorm:"not null;index"`
	Platform  string `gorm:"type:varchar(50);not null"`
	URL       string `gorm:"type:varchar(512);not null"`
}

// TableName returns the table name for barista social links
func (SocialLinkModel) TableName() string {
	return "barista_social_links"
}
