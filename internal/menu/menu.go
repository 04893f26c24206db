// Package menu holds the shop's signature sandwiches.
package menu

import (
	_ "embed"
	"fmt"
	"os"

	"deli-cious/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed signatures.yaml
var defaultSignatures []byte

// Signature is a preset sandwich on the menu.
type Signature struct {
	Name     string           `yaml:"name"`
	Size     string           `yaml:"size"`
	Bread    string           `yaml:"bread"`
	Toasted  bool             `yaml:"toasted"`
	Toppings []SignatureEntry `yaml:"toppings"`

	template *model.Sandwich
}

// SignatureEntry references a catalog topping.
type SignatureEntry struct {
	Number int  `yaml:"number"`
	Extra  bool `yaml:"extra"`
}

// Menu is the list of signature sandwiches in display order.
type Menu struct {
	Signatures []*Signature `yaml:"signatures"`
}

// Default returns the built-in signature menu.
func Default() (*Menu, error) {
	return Parse(defaultSignatures)
}

// LoadFile reads a signature menu from a YAML file.
func LoadFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a signature menu.
func Parse(data []byte) (*Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	for i, sig := range m.Signatures {
		if sig.Name == "" {
			return nil, fmt.Errorf("signature %d: name is required", i+1)
		}
		if err := sig.build(); err != nil {
			return nil, fmt.Errorf("signature %q: %w", sig.Name, err)
		}
	}

	return &m, nil
}

func (s *Signature) build() error {
	sandwich, err := model.NewSandwich(s.Size, s.Bread)
	if err != nil {
		return err
	}

	for _, entry := range s.Toppings {
		t, err := model.ToppingByNumber(entry.Number)
		if err != nil {
			return err
		}

		if entry.Extra && t.SupportsExtra() {
			if limit := model.ExtraLimit(t.Category); sandwich.ExtraCount(t.Name) >= limit {
				return fmt.Errorf("extra %s limit is %d: %w", t.Name, limit, model.ErrExtraLimitReached)
			}
		}
		sandwich.AddTopping(t, entry.Extra)
	}

	sandwich.SetToasted(s.Toasted)
	sandwich.SetLabel(s.Name)
	s.template = sandwich
	return nil
}

// Price returns the price of the signature as listed.
func (s *Signature) Price() string {
	return model.FormatPrice(s.template.Price())
}

// NewSandwich returns a fresh copy of the signature that can be modified
// without touching the menu.
func (s *Signature) NewSandwich() *model.Sandwich {
	return s.template.Clone()
}

// Get returns the signature at a 1-based menu position.
func (m *Menu) Get(position int) (*Signature, bool) {
	if position < 1 || position > len(m.Signatures) {
		return nil, false
	}
	return m.Signatures[position-1], true
}

// Len returns the number of signatures.
func (m *Menu) Len() int {
	return len(m.Signatures)
}
