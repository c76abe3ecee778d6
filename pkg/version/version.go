// Package version defines the rules for wags-tails version tags: the
// normalized calendar-date form, extraction of version values from cached
// filenames, and the comparators used to order versions.
//
// A version tag takes one of two shapes: a vendor-native opaque token, or a
// calendar date normalized to DateLayout. Within one source every persisted
// filename must use the same shape, since local-file discovery assumes "most
// recent" can be computed from filenames alone.
package version

import (
	"regexp"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
)

// DateLayout is the canonical layout for date-stamped version values
// (YYYYMMDD). Lexicographic order over this layout equals chronological
// order.
const DateLayout = "20060102"

// FormatDate renders a time as a canonical date version value.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a raw date string in the given layout and renders it in
// the canonical date version layout.
func ParseDate(raw, layout string) (string, error) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return "", errors.Wrapf(errors.ErrRemoteData, "invalid date value %q", raw)
	}
	return FormatDate(t), nil
}

// ParseFileVersion extracts a version value from a filename using the given
// extraction pattern. The pattern must contain exactly one capture group
// around the version portion, e.g. `^chembl_(\d+)\.db$`.
func ParseFileVersion(filename, pattern string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", errors.Wrapf(err, "invalid version pattern %q", pattern)
	}
	m := re.FindStringSubmatch(filename)
	if len(m) < 2 {
		return "", errors.Wrapf(errors.ErrVersionParse, "filename %q does not match pattern %q", filename, pattern)
	}
	return m[1], nil
}

// Comparator orders two version values. It returns a negative number when
// a < b, zero when equal, and a positive number when a > b.
type Comparator func(a, b string) int

// Lexicographic compares version values as plain strings. Correct only for
// sources whose on-disk version form sorts lexicographically in release
// order (date-stamped or zero-padded numeric values).
func Lexicographic(a, b string) int {
	return strings.Compare(a, b)
}

// DottedNumeric compares dotted numeric versions by their integer
// components, so that "10.0" sorts after "9.0". Values that cannot be parsed
// fall back to lexicographic comparison.
func DottedNumeric(a, b string) int {
	av, aerr := goversion.NewVersion(a)
	bv, berr := goversion.NewVersion(b)
	if aerr != nil || berr != nil {
		return Lexicographic(a, b)
	}
	return av.Compare(bv)
}
