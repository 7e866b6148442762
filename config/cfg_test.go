package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	if cfg.Fragments.DefaultCallout != "note" {
		t.Errorf("DefaultCallout = %q, want note", cfg.Fragments.DefaultCallout)
	}
	if cfg.Fragments.DefaultAspectRatio != 0.5625 {
		t.Errorf("DefaultAspectRatio = %f, want 0.5625", cfg.Fragments.DefaultAspectRatio)
	}
	if cfg.Document.OutputNameTemplate != "{{.Slug}}" {
		t.Errorf("OutputNameTemplate = %q, want {{.Slug}}", cfg.Document.OutputNameTemplate)
	}
	if cfg.Theme.Palette.Primary == "" {
		t.Error("theme palette should carry defaults")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
document:
  output_name_template: "{{.ID}}-{{.Slug}}"
  file_name_transliterate: true
  check_assets: true
fragments:
  default_callout: tip
  default_aspect_ratio: 0.75
  table_row_cap: 50
  gallery_columns: 4
logging:
  console:
    level: normal
  file:
    level: debug
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if !cfg.Document.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	if cfg.Fragments.DefaultCallout != "tip" {
		t.Errorf("DefaultCallout = %q, want tip", cfg.Fragments.DefaultCallout)
	}
	if cfg.Fragments.GalleryColumns != 4 {
		t.Errorf("GalleryColumns = %d, want 4", cfg.Fragments.GalleryColumns)
	}
	if cfg.Fragments.TableRowCap != 50 {
		t.Errorf("TableRowCap = %d, want 50", cfg.Fragments.TableRowCap)
	}

	// values not present in the file keep template defaults
	if cfg.Theme.Typography.LineHeight != 1.6 {
		t.Errorf("LineHeight = %f, want default 1.6", cfg.Theme.Typography.LineHeight)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
document:
  check_assets: true
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
document:
  check_assets: true
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "wrong version",
			content: "version: 2\n",
		},
		{
			name: "unknown callout flavor",
			content: `version: 1
fragments:
  default_callout: shiny
`,
		},
		{
			name: "gallery columns off grid",
			content: `version: 1
fragments:
  gallery_columns: 5
`,
		},
		{
			name: "bad palette color",
			content: `version: 1
theme:
  palette:
    primary: "not-a-color"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	if _, err = unmarshalConfig(data, cfg, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	if _, err = unmarshalConfig(data, cfg2, false); err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
	if cfg2.Fragments.DefaultCallout != cfg.Fragments.DefaultCallout {
		t.Errorf("DefaultCallout mismatch after dump/load: got %q, want %q", cfg2.Fragments.DefaultCallout, cfg.Fragments.DefaultCallout)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	data := []byte("version: 99\n")
	cfg := &Config{}

	_, err := unmarshalConfig(data, cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "post", "post"},
		{"with separator", "a" + string(os.PathSeparator) + "b", "ab"},
		{"with list separator", "a" + string(os.PathListSeparator) + "b", "ab"},
		{"empty", "", "_bad_file_name_"},
		{"separators only", strings.Repeat(string(os.PathSeparator), 3), "_bad_file_name_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CleanFileName(tt.input)
			if out != tt.want {
				t.Errorf("CleanFileName(%q) = %q, want %q", tt.input, out, tt.want)
			}
		})
	}
}
