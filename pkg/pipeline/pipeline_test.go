package pipeline

import (
	"math"
	"testing"

	"github.com/matzehuels/polygrid/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"pdf", false},
		{"json", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "pdf"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "png"}); err == nil {
		t.Error("png should be rejected")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.Basename != DefaultBasename || o.OutputDir != DefaultOutputDir {
		t.Errorf("SetDefaults() output = %q in %q", o.Basename, o.OutputDir)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("SetDefaults() formats = %v", o.Formats)
	}
	if o.Width != 0 || o.Rows != 0 {
		t.Error("SetDefaults() should not touch numeric fields")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.Code
	}{
		{"defaults", func(o *Options) {}, ""},
		{"zero width", func(o *Options) { o.Width = 0 }, errors.ErrCodeInvalidDimensions},
		{"negative height", func(o *Options) { o.Height = -1 }, errors.ErrCodeInvalidDimensions},
		{"nan width", func(o *Options) { o.Width = math.NaN() }, errors.ErrCodeInvalidDimensions},
		{"zero rows", func(o *Options) { o.Rows = 0 }, errors.ErrCodeInvalidGrid},
		{"negative columns", func(o *Options) { o.Columns = -2 }, errors.ErrCodeInvalidGrid},
		{"negative polygons", func(o *Options) { o.PolygonsPerPanel = -1 }, errors.ErrCodeInvalidGrid},
		{"zero polygons", func(o *Options) { o.PolygonsPerPanel = 0 }, ""},
		{"negative jitter", func(o *Options) { o.Jitter = -0.1 }, errors.ErrCodeInvalidJitter},
		{"infinite jitter", func(o *Options) { o.Jitter = math.Inf(1) }, errors.ErrCodeInvalidJitter},
		{"raw hex color", func(o *Options) { o.Colors = []string{"A7DBD8"} }, ""},
		{"bad color", func(o *Options) { o.Colors = []string{"#GGGGGG"} }, errors.ErrCodeInvalidColor},
		{"empty color", func(o *Options) { o.Colors = []string{""} }, errors.ErrCodeInvalidColor},
		{"negative n_colors", func(o *Options) { o.NColors = -1 }, errors.ErrCodeInvalidPalette},
		{"basename with slash", func(o *Options) { o.Basename = "a/b" }, errors.ErrCodeInvalidPath},
		{"unknown format", func(o *Options) { o.Formats = []string{"png"} }, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			err := o.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.code)
			}
			if !errors.IsConfig(err) {
				t.Errorf("Validate() error %v should be a configuration error", err)
			}
		})
	}
}
