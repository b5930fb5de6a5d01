package model

import (
	"time"
)

// Recipe is a catalog entry. Views only ever grows, one step per detail fetch.
type Recipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	CookingTime int       `gorm:"not null;index:idx_recipes_popularity,priority:2" json:"cooking_time"` // minutes
	Description string    `gorm:"type:text;not null" json:"description"`
	Views       int       `gorm:"not null;default:0;index:idx_recipes_popularity,priority:1,sort:desc" json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// IngredientNames returns the names of the attached ingredients in slice order.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		names = append(names, ingredient.Name)
	}
	return names
}
