package profile

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"object-printer/internal/common"
)

// File is the root of a profile document.
type File struct {
	// Version of the schema. Defaults to "1".
	Version string `yaml:"version"`
	// CycleMarker replaces the line printed for revisited references.
	CycleMarker string `yaml:"cycle_marker,omitempty"`
	// Exclude lists types and members removed from the output.
	Exclude Exclude `yaml:"exclude,omitempty"`
	// Types holds per-type rendering rules.
	Types []TypeRule `yaml:"types,omitempty"`
	// Members holds per-member rendering rules.
	Members []MemberRule `yaml:"members,omitempty"`
}

// Exclude lists the excluded types and members.
type Exclude struct {
	Types   StringOrArray `yaml:"types,omitempty"`
	Members StringOrArray `yaml:"members,omitempty"`
}

// TypeRule configures how values of one type are printed.
type TypeRule struct {
	// Type name, e.g. "float64" or "uuid.UUID".
	Type string `yaml:"type"`
	// Format is a fmt format string receiving the value.
	Format string `yaml:"format,omitempty"`
	// Culture is a BCP 47 language tag, only for numeric types.
	Culture string `yaml:"culture,omitempty"`
}

// MemberRule configures how one struct member is printed.
type MemberRule struct {
	// Member in "Type.Field" form.
	Member string `yaml:"member"`
	// Format is a fmt format string receiving the value.
	Format string `yaml:"format,omitempty"`
	// Trim is the maximum number of characters of a string member.
	Trim *int `yaml:"trim,omitempty"`
}

// StringOrArray is a list of strings written either as a YAML sequence or
// as a single scalar.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return errors.Newf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
