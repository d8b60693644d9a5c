package serialcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		name      string
		assetType string
		expected  string
	}{
		{
			name:      "Basic Case",
			assetType: "Laptop",
			expected:  "LA",
		},
		{
			name:      "Already Two Letters",
			assetType: "IO",
			expected:  "IO",
		},
		{
			name:      "Single Letter Padded",
			assetType: "A",
			expected:  "AX",
		},
		{
			name:      "Strips Non Letters",
			assetType: "4K Monitor",
			expected:  "KM",
		},
		{
			name:      "Lowercase Input",
			assetType: "phone",
			expected:  "PH",
		},
		{
			name:      "Digits Only",
			assetType: "42",
			expected:  "XX",
		},
		{
			name:      "Empty",
			assetType: "",
			expected:  "XX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Prefix(tt.assetType))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "LA-2025-001", Format("LA", 2025, 1))
	assert.Equal(t, "LA-2025-042", Format("LA", 2025, 42))
	assert.Equal(t, "AB-2025-999", Format("AB", 2025, 999))
	// Past 999 the width grows, it is never re-padded.
	assert.Equal(t, "AB-2025-1000", Format("AB", 2025, 1000))
}

func TestSequenceNumber(t *testing.T) {
	tests := []struct {
		name     string
		serial   string
		prefix   string
		year     int
		expected int
		ok       bool
	}{
		{
			name:     "Padded Suffix",
			serial:   "LA-2025-007",
			prefix:   "LA",
			year:     2025,
			expected: 7,
			ok:       true,
		},
		{
			name:     "Wide Suffix",
			serial:   "LA-2025-1234",
			prefix:   "LA",
			year:     2025,
			expected: 1234,
			ok:       true,
		},
		{
			name:   "Wrong Prefix",
			serial: "PH-2025-001",
			prefix: "LA",
			year:   2025,
			ok:     false,
		},
		{
			name:   "Wrong Year",
			serial: "LA-2024-001",
			prefix: "LA",
			year:   2025,
			ok:     false,
		},
		{
			name:   "Garbage Suffix",
			serial: "LA-2025-abc",
			prefix: "LA",
			year:   2025,
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := SequenceNumber(tt.serial, tt.prefix, tt.year)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, n)
			}
		})
	}
}
