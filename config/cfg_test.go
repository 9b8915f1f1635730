package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/rupor-github/gencfg"
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

	g := &cfg.Gallery
	if len(g.SourceExtensions) != 1 || g.SourceExtensions[0] != "png" {
		t.Errorf("Default source extensions = %v, want [png]", g.SourceExtensions)
	}
	if g.SequenceDigits != 4 {
		t.Errorf("Default sequence digits = %d, want 4", g.SequenceDigits)
	}
	if g.Cell.Width != 256 || g.Cell.Height != 144 {
		t.Errorf("Default cell = %dx%d, want 256x144", g.Cell.Width, g.Cell.Height)
	}
	if g.Grid.Columns != 4 || g.Grid.Rows != 4 {
		t.Errorf("Default grid = %dx%d, want 4x4", g.Grid.Columns, g.Grid.Rows)
	}
	if g.Mobile.LongEdgeLimit != 1280 || g.Mobile.Format != MobileFormatPng {
		t.Errorf("Default mobile = %d/%s", g.Mobile.LongEdgeLimit, g.Mobile.Format)
	}
	if g.Padding.Enable {
		t.Error("Padding is enabled by default")
	}
	if g.Padding.TargetCount != 208 || g.Padding.Width != 2048 || g.Padding.Height != 1152 || g.Padding.Color != "#808080" {
		t.Errorf("Default padding = %+v", g.Padding)
	}
	if !g.Manifest.Enable || g.Manifest.Caption != CaptionModeFilename {
		t.Errorf("Default manifest = %+v", g.Manifest)
	}

	// atlas name template field must survive processing unexpanded
	if g.Atlas.NameTemplate != `thumbs_page_{{printf "%04d" .Page}}.jpg` {
		t.Errorf("Atlas name template was expanded during processing: %q", g.Atlas.NameTemplate)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
gallery:
  source_extensions: [png, jpg, jpeg]
  sort_order: natural
  cell:
    width: 320
    height: 180
  grid:
    columns: 5
    rows: 3
  mobile:
    long_edge_limit: 1920
    format: jpeg
    jpeg_quality: 85
  padding:
    enable: true
    target_count: 30
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

	g := &cfg.Gallery
	if len(g.SourceExtensions) != 3 {
		t.Errorf("SourceExtensions = %v, want 3 entries", g.SourceExtensions)
	}
	if g.SortOrder != SortOrderNatural {
		t.Errorf("SortOrder = %s, want natural", g.SortOrder)
	}
	if g.Cell.Width != 320 || g.Cell.Height != 180 {
		t.Errorf("Cell = %dx%d, want 320x180", g.Cell.Width, g.Cell.Height)
	}
	if g.Grid.PageCapacity() != 15 {
		t.Errorf("PageCapacity() = %d, want 15", g.Grid.PageCapacity())
	}
	if g.Mobile.Format != MobileFormatJpeg || g.Mobile.JPEGQuality != 85 {
		t.Errorf("Mobile = %+v", g.Mobile)
	}
	if !g.Padding.Enable || g.Padding.TargetCount != 30 {
		t.Errorf("Padding = %+v", g.Padding)
	}
	// values absent from the file keep template defaults
	if g.Background != "#000000" {
		t.Errorf("Background = %q, want template default", g.Background)
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
gallery:
  rasterize_svg: true
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
gallery:
  rasterize_svg: true
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()

	cases := map[string]string{
		"bad version": `version: 2
`,
		"cell too small": `version: 1
gallery:
  cell:
    width: 8
`,
		"bad color": `version: 1
gallery:
  background: "gray"
`,
		"zero grid": `version: 1
gallery:
  grid:
    columns: 0
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, "invalid_values.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
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
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
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
		t.Fatal("Dump() returned empty data")
	}

	// dumped configuration must load back cleanly
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Dumped config is not valid: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#808080", color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}, false},
		{"#000000", color.NRGBA{A: 0xFF}, false},
		{"#FFFFFF", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false},
		{"#1a2B3c", color.NRGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 0xFF}, false},
		{"#f0a", color.NRGBA{R: 0xFF, G: 0x00, B: 0xAA, A: 0xFF}, false},
		{"808080", color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}, false},
		{"#80808", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) error = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
