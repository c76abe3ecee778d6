package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "20240307", FormatDate(ts))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		layout      string
		expected    string
		expectError bool
	}{
		{
			name:     "iso date",
			raw:      "2024-03-07",
			layout:   "2006-01-02",
			expected: "20240307",
		},
		{
			name:     "abbreviated month",
			raw:      "07-Mar-2024",
			layout:   "02-Jan-2006",
			expected: "20240307",
		},
		{
			name:     "already canonical",
			raw:      "20240307",
			layout:   DateLayout,
			expected: "20240307",
		},
		{
			name:        "garbage input",
			raw:         "not-a-date",
			layout:      "2006-01-02",
			expectError: true,
		},
		{
			name:        "layout mismatch",
			raw:         "2024/03/07",
			layout:      "2006-01-02",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw, tt.layout)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrRemoteData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseFileVersion(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		pattern     string
		expected    string
		expectError bool
	}{
		{
			name:     "numeric version",
			filename: "chembl_27.db",
			pattern:  `^chembl_(\d+)\.db$`,
			expected: "27",
		},
		{
			name:     "date version",
			filename: "mondo_20240307.owl",
			pattern:  `^mondo_(.+)\.owl$`,
			expected: "20240307",
		},
		{
			name:     "multi part filename",
			filename: "hemonc_concepts_20240307.csv",
			pattern:  `^hemonc_\w+_(.+)\.csv$`,
			expected: "20240307",
		},
		{
			name:        "no match",
			filename:    "random.txt",
			pattern:     `^chembl_(\d+)\.db$`,
			expectError: true,
		},
		{
			name:        "invalid pattern",
			filename:    "chembl_27.db",
			pattern:     `^chembl_((\d+\.db$`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFileVersion(tt.filename, tt.pattern)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseFileVersion_NoMatchError(t *testing.T) {
	_, err := ParseFileVersion("unrelated.bin", `^ncit_(.+)\.owl$`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrVersionParse)
}

func TestLexicographic(t *testing.T) {
	assert.Negative(t, Lexicographic("20240101", "20240307"))
	assert.Positive(t, Lexicographic("20240307", "20240101"))
	assert.Zero(t, Lexicographic("20240307", "20240307"))

	// The known failure mode for unpadded numerics.
	assert.Positive(t, Lexicographic("9.0", "10.0"))
}

func TestDottedNumeric(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		sign int
	}{
		{name: "major rollover", a: "10.0", b: "9.0", sign: 1},
		{name: "minor ordering", a: "5.1.9", b: "5.1.10", sign: -1},
		{name: "equal", a: "5.1.10", b: "5.1.10", sign: 0},
		{name: "unparsable falls back to lexicographic", a: "abc", b: "abd", sign: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DottedNumeric(tt.a, tt.b)
			switch {
			case tt.sign < 0:
				assert.Negative(t, got)
			case tt.sign > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
