package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ikkim/recipe-catalog/internal/app/dto"
	"github.com/ikkim/recipe-catalog/internal/app/service"
	"github.com/xuri/excelize/v2"
)

// Column layout of the import sheet. The first row is a header.
const (
	colTitle = iota
	colCookingTime
	colDescription
	colIngredients
	columnCount
)

func readRecipesFromXLSX(filePath string) ([]service.CreateRecipeInput, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	inputs := make([]service.CreateRecipeInput, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// Sheet rows are 1-based and the header occupies row 1.
		rowNum := i + 2
		if isBlankRow(row) {
			continue
		}
		input, err := parseRecipeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		inputs = append(inputs, input)
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}
	return inputs, nil
}

func parseRecipeRow(row []string) (service.CreateRecipeInput, error) {
	cells := make([]string, columnCount)
	copy(cells, row)

	cookingTime, err := strconv.Atoi(strings.TrimSpace(cells[colCookingTime]))
	if err != nil {
		return service.CreateRecipeInput{}, fmt.Errorf("cooking_time %q is not an integer", cells[colCookingTime])
	}

	req := dto.CreateRecipeRequest{
		Title:       strings.TrimSpace(cells[colTitle]),
		CookingTime: cookingTime,
		Description: strings.TrimSpace(cells[colDescription]),
		Ingredients: splitIngredients(cells[colIngredients]),
	}
	if err := dto.Validate(&req); err != nil {
		return service.CreateRecipeInput{}, fmt.Errorf("invalid recipe: %v", dto.FieldErrors(err))
	}

	return service.CreateRecipeInput{
		Title:       req.Title,
		CookingTime: req.CookingTime,
		Description: req.Description,
		Ingredients: req.Ingredients,
	}, nil
}

func splitIngredients(cell string) []string {
	names := []string{}
	for _, part := range strings.Split(cell, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
