package users

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "three letters", input: "Ana", want: "Ana"},
		{name: "too short", input: "Al", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "only spaces", input: "     ", wantErr: true},
		{name: "padded short", input: "  Lu  ", wantErr: true},
		{name: "padded valid", input: "  Luis ", want: "Luis"},
		{name: "multibyte", input: "Íñé", want: "Íñé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input)
			if tt.wantErr {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
				assert.Equal(t, "nombre", verr.Field)
				assert.Contains(t, verr.Message, "nombre")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameFromInput(t *testing.T) {
	name, err := NameFromInput("Al")
	require.NoError(t, err, "length is not checked here")
	assert.Equal(t, "Al", name)

	var verr *ValidationError
	_, err = NameFromInput(nil)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "requerido")

	_, err = NameFromInput(42.0)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "cadena")
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("3")
	assert.True(t, ok)
	assert.Equal(t, 3, id)

	for _, raw := range []string{"", "abc", "3abc", "-1", "0", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, "ParseID(%q)", raw)
	}
}
