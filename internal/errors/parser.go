package errors

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	Code    string // see codes.go
	Message string // safe to show to API clients
	Status  int    // HTTP status the error should be reported with
}

// ParseError classifies a store or service error into a client-safe code,
// message and status. Driver details never leak into the message.
func ParseError(err error, operation string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An internal error occurred",
			Status:  http.StatusInternalServerError,
		}
	}

	errLower := strings.ToLower(err.Error())

	// 1. GORM sentinel errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(operation),
			Message: getNotFoundMessage(operation),
			Status:  http.StatusNotFound,
		}
	}

	// 2. Constraint violations (PostgreSQL and SQLite wording)
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseDuplicateKeyError(errLower)
	}
	if strings.Contains(errLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "The referenced data does not exist",
			Status:  http.StatusConflict,
		}
	}
	if strings.Contains(errLower, "not-null constraint") || strings.Contains(errLower, "not null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
			Status:  http.StatusBadRequest,
		}
	}

	// 3. Cancellation and connectivity
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The request was cancelled before the database answered",
			Status:  http.StatusServiceUnavailable,
		}
	}
	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "database is closed") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The database is unavailable. Please try again later",
			Status:  http.StatusServiceUnavailable,
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(operation),
		Status:  http.StatusInternalServerError,
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "ingredients") || strings.Contains(errLower, "idx_ingredients_name") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "An ingredient with this name already exists",
			Status:  http.StatusConflict,
		}
	}
	if strings.Contains(errLower, "pkey") || strings.Contains(errLower, "recipes.id") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "A recipe with this id already exists",
			Status:  http.StatusConflict,
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "The data already exists",
		Status:  http.StatusConflict,
	}
}

func notFoundCode(operation string) string {
	if strings.Contains(strings.ToLower(operation), "recipe") {
		return RecipeNotFound
	}
	return ResourceNotFound
}

func getNotFoundMessage(operation string) string {
	if strings.Contains(strings.ToLower(operation), "recipe") {
		return "Recipe not found"
	}
	return "The requested data was not found"
}

func getDefaultErrorMessage(operation string) string {
	contextLower := strings.ToLower(operation)

	if strings.Contains(contextLower, "create") || strings.Contains(contextLower, "import") {
		return "Failed to save the recipe. Please try again later"
	}
	if strings.Contains(contextLower, "list") || strings.Contains(contextLower, "view") {
		return "Failed to load recipes. Please try again later"
	}
	return "An internal error occurred. Please try again later"
}

// ParseAndRespond classifies err and writes it as the response body.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, err error, operation string) {
	info := ParseError(err, operation)
	c.JSON(info.Status, ErrorResponse{
		Error:   info.Code,
		Message: info.Message,
	})
}
