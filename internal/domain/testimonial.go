package domain

// Testimonial is a supporter quote shown on the landing page.
type Testimonial struct {
	Name    string `yaml:"name"`
	Quote   string `yaml:"quote"`
	Avatar  string `yaml:"avatar"`
	Tagline string `yaml:"tagline"`
}
