package testimonials

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/givefund/give/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed testimonials.yaml
var testimonialsYAML []byte

var all = mustDecode(testimonialsYAML)

func mustDecode(data []byte) []domain.Testimonial {
	items, err := decode(data)
	if err != nil {
		panic(err)
	}
	return items
}

func decode(data []byte) ([]domain.Testimonial, error) {
	var items []domain.Testimonial
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	return items, nil
}

// All returns the fixed testimonials in display order. The result is a
// copy; callers may modify it.
func All() []domain.Testimonial {
	return slices.Clone(all)
}
