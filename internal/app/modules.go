package app

import (
	"github.com/givefund/give/internal/module"
	"github.com/givefund/give/internal/modules/events"
	"github.com/givefund/give/internal/modules/hero"
	"github.com/givefund/give/internal/modules/testimonials"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled. Modules that
// render a home page section appear on the page in this order.
func NewModules() []module.Module {
	return []module.Module{
		hero.New(),
		events.New(),
		testimonials.New(),
	}
}

// Sections returns the modules that contribute to the home page, in order.
func Sections(modules []module.Module) []module.Section {
	var sections []module.Section
	for _, m := range modules {
		if s, ok := m.(module.Section); ok {
			sections = append(sections, s)
		}
	}
	return sections
}
