package domain

import "errors"

// ============================================================================
// Field Errors
// ============================================================================

var (
	ErrFieldNotFound      = errors.New("field not found")
	ErrFieldAlreadyExists = errors.New("field with this ID already exists")
	ErrInvalidFieldID     = errors.New("field ID is required")
	ErrFieldIDMismatch    = errors.New("field ID does not match the ID to update")
)

// ============================================================================
// Conversion Set Errors
// ============================================================================

// Not found errors
var (
	ErrConversionSetNotFound = errors.New("field cartographic conversion set not found")
)

// Conflict errors
var (
	ErrConversionSetAlreadyExists = errors.New("field cartographic conversion set with this ID already exists")
)

// Validation errors
var (
	ErrInvalidConversionSetID  = errors.New("field cartographic conversion set ID is required")
	ErrConversionSetIDMismatch = errors.New("field cartographic conversion set ID does not match the ID to update")
)

// Dependency errors
var (
	ErrOwningFieldNotFound     = errors.New("owning field of the conversion set not found")
	ErrFieldMissingProjection  = errors.New("owning field has no cartographic projection reference")
	ErrProjectionNotFound      = errors.New("cartographic projection not found")
	ErrConversionJobNotFound   = errors.New("cartographic conversion job not found")
	ErrConversionCountMismatch = errors.New("computed coordinate count does not match the input count")
	ErrProjectionService       = errors.New("cartographic projection service failure")
)

// ============================================================================
// Storage Errors
// ============================================================================

var (
	ErrNoConnection  = errors.New("no database connection available")
	ErrCorruptRecord = errors.New("stored record does not match its ID")
)
