package prompts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	content := `electrical:
  - Material
  - Voltage
  - Amperage
HVAC:
  - Capacity
  - Refrigerant Type
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tax, err := LoadTaxonomy(path)
	if err != nil {
		t.Fatalf("LoadTaxonomy returned error: %v", err)
	}

	got := tax.DefaultAttributes("Electrical")
	if len(got) != 3 || got[0] != "Material" {
		t.Errorf("DefaultAttributes(Electrical) = %v", got)
	}

	// Category lookup is case-insensitive both ways.
	if got := tax.DefaultAttributes("hvac"); len(got) != 2 {
		t.Errorf("DefaultAttributes(hvac) = %v", got)
	}

	if got := tax.DefaultAttributes("unknown"); got != nil {
		t.Errorf("unknown category should have no defaults, got %v", got)
	}
}

func TestLoadTaxonomy_EmptyPath(t *testing.T) {
	tax, err := LoadTaxonomy("")
	if err != nil {
		t.Fatalf("empty path should be valid: %v", err)
	}
	if got := tax.DefaultAttributes("electrical"); got != nil {
		t.Errorf("empty taxonomy should have no defaults, got %v", got)
	}
}

func TestLoadTaxonomy_MissingFile(t *testing.T) {
	if _, err := LoadTaxonomy("/nonexistent/taxonomy.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
