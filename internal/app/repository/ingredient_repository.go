package repository

import (
	"errors"

	"github.com/ikkim/recipe-catalog/internal/app/model"
	"github.com/ikkim/recipe-catalog/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IngredientRepository interface {
	WithTx(tx *gorm.DB) IngredientRepository
	FindByName(name string) (*model.Ingredient, error)
	FindOrCreateByName(name string) (*model.Ingredient, error)
	Count() (int64, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *ingredientRepository) WithTx(tx *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: tx}
}

func (r *ingredientRepository) FindByName(name string) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindOrCreateByName returns the ingredient with exactly this name, inserting
// it when absent. A concurrent insert of the same name is absorbed by the
// unique index and the winner's row is returned.
func (r *ingredientRepository) FindOrCreateByName(name string) (*model.Ingredient, error) {
	existing, err := r.FindByName(name)
	if err == nil {
		logger.Debug("Reusing existing ingredient", map[string]interface{}{
			"ingredient_id": existing.ID,
			"name":          name,
		})
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to look up ingredient by name", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	ingredient := &model.Ingredient{Name: name}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(ingredient).Error
	if err != nil {
		logger.Error("Failed to create ingredient in database", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	if ingredient.ID == 0 {
		// Lost the race: another transaction inserted the name first.
		return r.FindByName(name)
	}

	logger.Debug("Ingredient created in database", map[string]interface{}{
		"ingredient_id": ingredient.ID,
		"name":          name,
	})
	return ingredient, nil
}

func (r *ingredientRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Ingredient{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
