package db

import (
	"context"
	"errors"
	"testing"

	"github.com/ikkim/recipe-catalog/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSeedTest(t *testing.T) *gorm.DB {
	testDB, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		CleanupTestDB(testDB)
	})
	return testDB
}

func TestSeed_InsertsSampleRecipes(t *testing.T) {
	testDB := setupSeedTest(t)

	require.NoError(t, Seed(context.Background(), testDB))

	var recipes []model.Recipe
	require.NoError(t, testDB.Preload("Ingredients").Order("id ASC").Find(&recipes).Error)
	require.Len(t, recipes, 3)

	assert.Equal(t, uint(1), recipes[0].ID)
	assert.Equal(t, uint(2), recipes[1].ID)
	assert.Equal(t, uint(3), recipes[2].ID)
	assert.ElementsMatch(t, []string{"Cucumber", "Tomato", "Salt"}, recipes[0].IngredientNames())
	assert.ElementsMatch(t, []string{"Dumplings", "Butter"}, recipes[1].IngredientNames())
	assert.ElementsMatch(t, []string{"Oat flakes", "Milk", "Butter"}, recipes[2].IngredientNames())
	for _, recipe := range recipes {
		assert.Zero(t, recipe.Views)
	}

	// Butter is shared by two recipes but stored once.
	var ingredientCount int64
	require.NoError(t, testDB.Model(&model.Ingredient{}).Count(&ingredientCount).Error)
	assert.Equal(t, int64(7), ingredientCount)

	var linkCount int64
	require.NoError(t, testDB.Model(&model.RecipeIngredient{}).Count(&linkCount).Error)
	assert.Equal(t, int64(8), linkCount)
}

func TestSeed_SkipsWhenRecipesExist(t *testing.T) {
	testDB := setupSeedTest(t)

	require.NoError(t, testDB.Create(&model.Recipe{
		Title:       "Existing",
		CookingTime: 3,
		Description: "Already here",
	}).Error)

	require.NoError(t, Seed(context.Background(), testDB))
	require.NoError(t, Seed(context.Background(), testDB))

	var count int64
	require.NoError(t, testDB.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeed_IsIdempotent(t *testing.T) {
	testDB := setupSeedTest(t)

	require.NoError(t, Seed(context.Background(), testDB))
	require.NoError(t, Seed(context.Background(), testDB))

	var count int64
	require.NoError(t, testDB.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	testDB := setupSeedTest(t)
	errBoom := errors.New("boom")

	err := WithinTransaction(context.Background(), testDB, func(tx *gorm.DB) error {
		if err := tx.Create(&model.Ingredient{Name: "Saffron"}).Error; err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	var count int64
	require.NoError(t, testDB.Model(&model.Ingredient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWithinTransaction_RollsBackOnPanic(t *testing.T) {
	testDB := setupSeedTest(t)

	assert.Panics(t, func() {
		_ = WithinTransaction(context.Background(), testDB, func(tx *gorm.DB) error {
			tx.Create(&model.Ingredient{Name: "Saffron"})
			panic("handler crashed")
		})
	})

	var count int64
	require.NoError(t, testDB.Model(&model.Ingredient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWithinTransaction_Commits(t *testing.T) {
	testDB := setupSeedTest(t)

	err := WithinTransaction(context.Background(), testDB, func(tx *gorm.DB) error {
		return tx.Create(&model.Ingredient{Name: "Saffron"}).Error
	})
	require.NoError(t, err)

	var ingredient model.Ingredient
	require.NoError(t, testDB.Where("name = ?", "Saffron").First(&ingredient).Error)
	assert.NotZero(t, ingredient.ID)
}

func TestTruncateAllTables(t *testing.T) {
	testDB := setupSeedTest(t)
	require.NoError(t, Seed(context.Background(), testDB))

	require.NoError(t, TruncateAllTables(testDB))

	var count int64
	require.NoError(t, testDB.Model(&model.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}
