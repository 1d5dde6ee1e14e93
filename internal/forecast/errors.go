package forecast

import (
	"errors"
	"fmt"

	"ledger-analytics/internal/models"
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrUnsupportedModel = errors.New("unsupported model kind")
)

// InsufficientDataError reports that a model was given fewer usable points than it needs.
// It matches ErrInsufficientData with errors.Is.
type InsufficientDataError struct {
	Model    models.ModelKind
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s model needs at least %d data points, got %d", e.Model, e.Required, e.Got)
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

func insufficient(kind models.ModelKind, required, got int) error {
	return &InsufficientDataError{Model: kind, Required: required, Got: got}
}
