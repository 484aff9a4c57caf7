package pdffile

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validate runs a relaxed-mode structural validation on a PDF before
// the batch touches it. Corrupt files fail here and get skipped with a
// log line instead of breaking mid-extraction.
func Validate(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("invalid PDF file %s: %w", path, err)
	}
	return nil
}

// IsValidPDF is the boolean form of Validate.
func IsValidPDF(path string) bool {
	return Validate(path) == nil
}
