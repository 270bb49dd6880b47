package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Axis is a pair of key sets pulling a value towards +1 and -1.
type Axis struct {
	Pos []ebiten.Key
	Neg []ebiten.Key
}

// Bindings maps host-chosen labels to physical keys.
type Bindings[A comparable] struct {
	Axes    map[A]Axis
	Actions map[A][]ebiten.Key
}

// NewBindings returns an empty binding set.
func NewBindings[A comparable]() Bindings[A] {
	return Bindings[A]{
		Axes:    make(map[A]Axis),
		Actions: make(map[A][]ebiten.Key),
	}
}

// AxisSpec is the yaml form of an Axis.
type AxisSpec struct {
	Pos []string `yaml:"pos"`
	Neg []string `yaml:"neg"`
}

// BindingsSpec is the yaml form of string-labelled Bindings.
type BindingsSpec struct {
	Axes    map[string]AxisSpec `yaml:"axes"`
	Actions map[string][]string `yaml:"actions"`
}

// Resolve turns key names into keys.
func (s BindingsSpec) Resolve() (Bindings[string], error) {
	b := NewBindings[string]()
	for name, spec := range s.Axes {
		pos, err := parseKeys(spec.Pos)
		if err != nil {
			return Bindings[string]{}, fmt.Errorf("input: axis %s: %w", name, err)
		}
		neg, err := parseKeys(spec.Neg)
		if err != nil {
			return Bindings[string]{}, fmt.Errorf("input: axis %s: %w", name, err)
		}
		b.Axes[name] = Axis{Pos: pos, Neg: neg}
	}
	for name, names := range s.Actions {
		keys, err := parseKeys(names)
		if err != nil {
			return Bindings[string]{}, fmt.Errorf("input: action %s: %w", name, err)
		}
		b.Actions[name] = keys
	}
	return b, nil
}

// ParseBindings decodes string-labelled bindings from yaml.
func ParseBindings(data []byte) (Bindings[string], error) {
	var spec BindingsSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Bindings[string]{}, fmt.Errorf("input: unmarshal bindings: %w", err)
	}
	return spec.Resolve()
}
