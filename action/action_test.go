package action

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	c, err := NewClassifier(nil)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}

	tests := []struct {
		name   string
		input  string
		want   Category
		wantOK bool
	}{
		{"goal", "A spectacular goal was scored", Goal, true},
		{"unrelated", "unrelated text", "", false},
		{"case insensitive", "CORNER kick taken", Corner, true},
		{"multi word", "Two Shots On Target in a row", ShotsOnTarget, true},
		{"hyphenated", "a free-kick from distance", FreeKick, true},
		{"priority beats position", "a foul, then a goal, then a corner", Corner, true},
		{"substring match", "goalkeeper claims it", Goal, true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewClassifier_Custom(t *testing.T) {
	c, err := NewClassifier([]Category{"Offside", Goal})
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}

	if got, ok := c.Classify("offside flag before the goal"); !ok || got != "Offside" {
		t.Errorf("Classify() = %q, %v, want %q, true", got, ok, "Offside")
	}
	if _, ok := c.Classify("a corner"); ok {
		t.Error("expected corner to be unknown to a custom classifier")
	}

	cats := c.Categories()
	if len(cats) != 2 || cats[0] != "Offside" || cats[1] != Goal {
		t.Errorf("Categories() = %v, want [Offside goal]", cats)
	}
}

func TestNewClassifier_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
	}{
		{"empty name", []Category{Goal, "  "}},
		{"duplicate", []Category{Goal, "GOAL"}},
		{"reserved", []Category{Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(tt.categories)
			if !errors.Is(err, ErrInvalidCategory) {
				t.Errorf("NewClassifier(%v) error = %v, want ErrInvalidCategory", tt.categories, err)
			}
		})
	}
}

func TestDefaults_Order(t *testing.T) {
	want := []Category{Corner, ShotsOnTarget, Goal, Clearance, Foul, FreeKick, Substitution}
	got := Defaults()
	if len(got) != len(want) {
		t.Fatalf("Defaults() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Defaults()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Callers must not be able to reorder the built-in list.
	got[0] = Foul
	if Defaults()[0] != Corner {
		t.Error("Defaults() returned shared backing array")
	}
}
