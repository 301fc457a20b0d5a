package pipeline

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/polygrid/pkg/errors"
)

// FileName builds the artifact name
//
//	<base>_<n>_colors_<k>_perpanel_jitter_<j>_polygons_<seed|none>[_<ts>].<ext>
//
// where ts is Unix seconds followed by six digits of microseconds.
func FileName(base string, nColors, perPanel int, jitter float64, seed *int64, appendTime bool, now time.Time, ext string) string {
	seedPart := "none"
	if seed != nil {
		seedPart = strconv.FormatInt(*seed, 10)
	}
	name := fmt.Sprintf("%s_%d_colors_%d_perpanel_jitter_%s_polygons_%s",
		base, nColors, perPanel, FormatJitter(jitter), seedPart)
	if appendTime {
		name += "_" + Timestamp(now)
	}
	return name + "." + ext
}

// FormatJitter formats v as a float literal: always with a decimal point
// or an exponent ("0.0", "0.03", "1e-05").
func FormatJitter(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Timestamp formats t as Unix seconds immediately followed by the
// zero-padded microseconds.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%d%06d", t.Unix(), t.Nanosecond()/1000)
}

// WriteAtomic writes data to dir/name through a temporary file in dir that
// is renamed into place. dir is created if missing. On failure the
// temporary file is removed and no partial artifact is left behind.
func WriteAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeOutput, err, "create output directory %s", dir)
	}

	path := filepath.Join(dir, name)
	tmp := filepath.Join(dir, "."+name+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeOutput, err, "create temp file")
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.Wrap(errors.ErrCodeOutput, err, "write %s", path)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.Wrap(errors.ErrCodeOutput, err, "sync %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", errors.Wrap(errors.ErrCodeOutput, err, "close %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", errors.Wrap(errors.ErrCodeOutput, err, "rename into %s", path)
	}
	return path, nil
}
