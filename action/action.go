// Package action classifies annotation text into a fixed, ordered set of
// match event categories.
package action

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Category names a kind of match event.
type Category string

// Known categories.
const (
	Corner        Category = "corner"
	ShotsOnTarget Category = "shots on target"
	Goal          Category = "goal"
	Clearance     Category = "clearance"
	Foul          Category = "foul"
	FreeKick      Category = "free-kick"
	Substitution  Category = "substitution"
)

// Unknown labels counts from text that matched no category.
// It is never returned by Classify.
const Unknown Category = "unknown"

// defaults is both the match priority and the report order.
var defaults = []Category{
	Corner,
	ShotsOnTarget,
	Goal,
	Clearance,
	Foul,
	FreeKick,
	Substitution,
}

// Defaults returns the built-in categories in priority order.
func Defaults() []Category {
	out := make([]Category, len(defaults))
	copy(out, defaults)
	return out
}

// ErrInvalidCategory indicates an empty, duplicate or reserved category name.
var ErrInvalidCategory = errors.New("action: invalid category")

// Classifier finds the first category named in a piece of text.
type Classifier struct {
	categories []Category
	folded     []string
}

// NewClassifier creates a Classifier over categories, in priority order.
// A nil or empty list selects Defaults.
func NewClassifier(categories []Category) (*Classifier, error) {
	if len(categories) == 0 {
		categories = defaults
	}

	c := &Classifier{
		categories: make([]Category, 0, len(categories)),
		folded:     make([]string, 0, len(categories)),
	}
	seen := make(map[string]bool, len(categories))
	for _, cat := range categories {
		name := strings.TrimSpace(string(cat))
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidCategory)
		}
		if Category(name) == Unknown {
			return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidCategory, name)
		}
		key := fold(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidCategory, name)
		}
		seen[key] = true
		c.categories = append(c.categories, Category(name))
		c.folded = append(c.folded, key)
	}
	return c, nil
}

// Categories returns the classifier's categories in priority order.
func (c *Classifier) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Classify returns the earliest listed category whose name occurs in text,
// ignoring case. ok is false when no category is named.
func (c *Classifier) Classify(text string) (cat Category, ok bool) {
	haystack := fold(text)
	for i, needle := range c.folded {
		if strings.Contains(haystack, needle) {
			return c.categories[i], true
		}
	}
	return "", false
}

func fold(s string) string {
	return cases.Fold().String(s)
}
