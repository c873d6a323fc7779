// Package termfile loads term pools from YAML or JSON files for the quizgen
// CLI. A terms file is a flat mapping of terms to definitions:
//
//	cat: gato
//	dog: perro
package termfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizzable/internal/domain"

	"gopkg.in/yaml.v3"
)

// Load reads a terms file and returns the validated term pool. The format is
// chosen by file extension: .json is decoded as JSON, everything else as
// YAML (which also accepts JSON input).
func Load(path string) (domain.Terms, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read terms file: %w", err)
	}
	return Parse(raw, filepath.Ext(path))
}

// Parse decodes raw terms-file content. ext selects the decoder as in Load.
func Parse(raw []byte, ext string) (domain.Terms, error) {
	var terms domain.Terms
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(raw, &terms); err != nil {
			return nil, domain.NewInvalidTermsError(fmt.Sprintf("terms file is not a valid JSON mapping: %v", err))
		}
	} else {
		if err := yaml.Unmarshal(raw, &terms); err != nil {
			return nil, domain.NewInvalidTermsError(fmt.Sprintf("terms file is not a valid YAML mapping: %v", err))
		}
	}

	if err := terms.Validate(); err != nil {
		return nil, err
	}
	return terms, nil
}
