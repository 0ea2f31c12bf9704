package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{name: "single digit", input: "7", want: 7},
		{name: "leading zeros", input: "007", want: 7},
		{name: "surrounding whitespace", input: " 12 ", want: 12},
		{name: "large number", input: "18446744073709551615", want: 18446744073709551615},
		// Error cases
		{name: "invalid - empty", input: "", wantErr: true},
		{name: "invalid - blank", input: "   ", wantErr: true},
		{name: "invalid - zero", input: "0", wantErr: true},
		{name: "invalid - negative", input: "-1", wantErr: true},
		{name: "invalid - plus sign", input: "+1", wantErr: true},
		{name: "invalid - text", input: "abc", wantErr: true},
		{name: "invalid - trailing text", input: "3a", wantErr: true},
		{name: "invalid - decimal", input: "1.5", wantErr: true},
		{name: "invalid - overflow", input: "18446744073709551616", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTaskID(t *testing.T) {
	assert.Equal(t, "1", FormatTaskID(1))
	assert.Equal(t, "42", FormatTaskID(42))
}
