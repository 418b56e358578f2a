package categoriesrepobridge_test

import (
	"testing"

	"github.com/jrazmi/shopkeep/bridge/repositories/categoriesrepobridge"
)

func TestCreateCategoryInput_Validate(t *testing.T) {
	valid := categoriesrepobridge.CreateCategoryInput{Name: "Errands", Color: "#4ECDC4"}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Color is optional; the repository falls back to the default swatch.
	noColor := categoriesrepobridge.CreateCategoryInput{Name: "Errands"}
	if err := noColor.Validate(); err != nil {
		t.Errorf("unexpected error for empty color: %v", err)
	}

	if err := (categoriesrepobridge.CreateCategoryInput{Color: "#4ECDC4"}).Validate(); err == nil {
		t.Errorf("expected error for missing name")
	}

	for _, color := range []string{"4ECDC4", "#4EC", "#GGGGGG", "red", "#4ECDC44"} {
		input := categoriesrepobridge.CreateCategoryInput{Name: "Errands", Color: color}
		if err := input.Validate(); err == nil {
			t.Errorf("expected error for color %q", color)
		}
	}
}
