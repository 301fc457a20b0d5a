package pipeline

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/polygrid/pkg/errors"
)

// LoadOptions reads a TOML config file on top of [DefaultOptions]. Keys
// missing from the file keep their default value; unknown keys are an
// error.
//
//	width = 600
//	rows = 6
//	jitter = 0.02
//	n_colors = 3
//	seed = 7
//	formats = ["svg", "pdf"]
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return opts, nil
}
