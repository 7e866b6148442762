package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PaletteConfig struct {
		Primary   string `yaml:"primary" validate:"required,hexcolor"`
		Secondary string `yaml:"secondary" validate:"required,hexcolor"`
		Success   string `yaml:"success" validate:"required,hexcolor"`
		Info      string `yaml:"info" validate:"required,hexcolor"`
		Warning   string `yaml:"warning" validate:"required,hexcolor"`
		Danger    string `yaml:"danger" validate:"required,hexcolor"`
		Light     string `yaml:"light" validate:"required,hexcolor"`
		Dark      string `yaml:"dark" validate:"required,hexcolor"`
	}

	TypographyConfig struct {
		BaseFont    string  `yaml:"base_font" validate:"required"`
		HeadingFont string  `yaml:"heading_font" validate:"required"`
		CodeFont    string  `yaml:"code_font" validate:"required"`
		BaseSize    string  `yaml:"base_size" validate:"required"`
		LineHeight  float64 `yaml:"line_height" validate:"gt=0"`
	}

	ButtonsConfig struct {
		BorderRadius  string `yaml:"border_radius" validate:"required"`
		ShadowColor   string `yaml:"shadow_color" validate:"required,hexcolor"`
		ShadowBlur    int    `yaml:"shadow_blur" validate:"min=0"`
		ShadowOffsetY int    `yaml:"shadow_offset_y"`
	}

	NavigationConfig struct {
		Background string `yaml:"background" validate:"required,hexcolor"`
		Foreground string `yaml:"foreground" validate:"required,hexcolor"`
		Hover      string `yaml:"hover" validate:"required,hexcolor"`
	}

	// ThemeConfig describes the site theme override emitted by the theme
	// package. It is consumed by the host site generator's style pipeline,
	// not by the fragment constructors.
	ThemeConfig struct {
		Palette    PaletteConfig    `yaml:"palette"`
		Typography TypographyConfig `yaml:"typography"`
		Buttons    ButtonsConfig    `yaml:"buttons"`
		Navigation NavigationConfig `yaml:"navigation"`
	}

	// FragmentsConfig carries rendering defaults applied by the post
	// pipeline when a component spec leaves them out.
	FragmentsConfig struct {
		DefaultCallout     string  `yaml:"default_callout" validate:"required,oneof=note tip warning caution important"`
		DefaultAspectRatio float64 `yaml:"default_aspect_ratio" validate:"gt=0"`
		TableRowCap        int     `yaml:"table_row_cap" validate:"min=0"`
		GalleryColumns     int     `yaml:"gallery_columns" validate:"oneof=1 2 3 4 6 12"`
	}

	DocumentConfig struct {
		OutputNameTemplate    string `yaml:"output_name_template"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
		CheckAssets           bool   `yaml:"check_assets"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig  `yaml:"document"`
		Fragments FragmentsConfig `yaml:"fragments"`
		Theme     ThemeConfig     `yaml:"theme"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

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
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
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
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
