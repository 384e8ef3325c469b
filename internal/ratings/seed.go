package ratings

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed mentors.yaml
var mentorsYAML []byte

type mentorSeed struct {
	Mentors []Mentor `yaml:"mentors"`
}

// SeedMentors decodes the embedded mentor table.
func SeedMentors() ([]Mentor, error) {
	var seed mentorSeed
	if err := yaml.Unmarshal(mentorsYAML, &seed); err != nil {
		return nil, fmt.Errorf("decode mentors seed: %w", err)
	}
	return seed.Mentors, nil
}
