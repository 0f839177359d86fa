package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/heynenm/snowreport/internal/domain"
)

//go:embed resorts.yaml
var defaultResorts []byte

var validate = validator.New()

// LoadResorts parses the resort registry from path, or from the embedded
// default list when path is empty. The registry is fixed at deployment
// time; every record is validated (coordinate ranges, state code shape)
// so bad configuration fails at startup rather than per request.
func LoadResorts(path string) ([]domain.Resort, error) {
	raw := defaultResorts
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read resorts file: %w", err)
		}
		raw = b
	}

	var doc struct {
		Resorts []domain.Resort `yaml:"resorts"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse resorts yaml: %w", err)
	}
	if len(doc.Resorts) == 0 {
		return nil, fmt.Errorf("resort registry is empty")
	}
	for i, r := range doc.Resorts {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("resort %d (%q): %w", i, r.Name, err)
		}
	}
	return doc.Resorts, nil
}
