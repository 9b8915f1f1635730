package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	CellConfig struct {
		Width  int `yaml:"width" validate:"min=16,max=2048"`
		Height int `yaml:"height" validate:"min=16,max=2048"`
	}

	GridConfig struct {
		Columns int `yaml:"columns" validate:"min=1,max=64"`
		Rows    int `yaml:"rows" validate:"min=1,max=64"`
	}

	MobileConfig struct {
		LongEdgeLimit int          `yaml:"long_edge_limit" validate:"min=16"`
		Format        MobileFormat `yaml:"format" validate:"gte=0"`
		JPEGQuality   int          `yaml:"jpeg_quality" validate:"min=40,max=100"`
	}

	AtlasConfig struct {
		NameTemplate string `yaml:"name_template" validate:"required"`
		JPEGQuality  int    `yaml:"jpeg_quality" validate:"min=40,max=100"`
		MaxPages     int    `yaml:"max_pages" validate:"gte=0"`
	}

	PaddingConfig struct {
		Enable      bool   `yaml:"enable"`
		TargetCount int    `yaml:"target_count" validate:"gte=0"`
		Width       int    `yaml:"width" validate:"min=1"`
		Height      int    `yaml:"height" validate:"min=1"`
		Color       string `yaml:"color" validate:"hexcolor"`
	}

	ManifestConfig struct {
		Enable  bool        `yaml:"enable"`
		Caption CaptionMode `yaml:"caption" validate:"gte=0"`
		BaseURL string      `yaml:"base_url"`
		User    string      `yaml:"user"`
	}

	BundleConfig struct {
		Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	}

	GalleryConfig struct {
		SourceExtensions []string       `yaml:"source_extensions" validate:"min=1,dive,required"`
		RasterizeSVG     bool           `yaml:"rasterize_svg"`
		SortOrder        SortOrder      `yaml:"sort_order" validate:"gte=0"`
		SequenceDigits   int            `yaml:"sequence_digits" validate:"min=2,max=8"`
		Background       string         `yaml:"background" validate:"hexcolor"`
		Cell             CellConfig     `yaml:"cell"`
		Grid             GridConfig     `yaml:"grid"`
		Mobile           MobileConfig   `yaml:"mobile"`
		Atlas            AtlasConfig    `yaml:"atlas"`
		Padding          PaddingConfig  `yaml:"padding"`
		Manifest         ManifestConfig `yaml:"manifest"`
		Bundle           BundleConfig   `yaml:"bundle"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Gallery   GalleryConfig  `yaml:"gallery"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	AtlasNameTemplateFieldName TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(AtlasNameTemplateFieldName)),
)

// PageCapacity returns number of thumbnail cells on a single atlas page.
func (g *GridConfig) PageCapacity() int {
	return g.Columns * g.Rows
}

// ParseColor converts "#RRGGBB" (or "#RGB") string to opaque color. Values are
// pre-validated by configuration processing, still we report errors to cover
// direct calls.
func ParseColor(s string) (color.NRGBA, error) {
	hexstr := strings.TrimPrefix(s, "#")
	switch len(hexstr) {
	case 3:
		hexstr = string([]byte{hexstr[0], hexstr[0], hexstr[1], hexstr[1], hexstr[2], hexstr[2]})
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("malformed color specification: %q", s)
	}
	v, err := strconv.ParseUint(hexstr, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed color specification %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
