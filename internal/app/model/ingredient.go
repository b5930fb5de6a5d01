package model

// Ingredient is shared between recipes and deduplicated by exact name.
type Ingredient struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex:idx_ingredients_name;not null" json:"name"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// RecipeIngredient is the recipe_ingredients join row. It is never written
// directly; gorm maintains it through Recipe.Ingredients.
type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint `gorm:"primaryKey" json:"ingredient_id"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
