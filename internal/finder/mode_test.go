package finder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		items  []string
		target string
		mode   Mode
		want   bool
	}{
		{"all present", []string{"a", "b"}, "cab", ModeAll, true},
		{"all one missing", []string{"a", "x"}, "cab", ModeAll, false},
		{"any one present", []string{"a", "x"}, "cab", ModeAny, true},
		{"any none present", []string{"x", "y"}, "cab", ModeAny, false},
		{"empty substring all", []string{""}, "cab", ModeAll, true},
		{"empty substring any", []string{""}, "cab", ModeAny, true},
		{"no items all", nil, "cab", ModeAll, true},
		{"no items any", nil, "cab", ModeAny, false},
		{"case sensitive", []string{"A"}, "cab", ModeAny, false},
		{"whole target", []string{"cab"}, "cab", ModeAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(tt.items, tt.target, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_InvalidMode(t *testing.T) {
	for _, mode := range []Mode{ModeUnset, Mode(42)} {
		got, err := Match([]string{"a"}, "abc", mode)
		require.Error(t, err)
		assert.False(t, got)
		assert.True(t, errors.Is(err, ErrInvalidMode))

		var modeErr *InvalidModeError
		require.ErrorAs(t, err, &modeErr)
		assert.Contains(t, err.Error(), "'all' or 'any'")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"all", ModeAll, false},
		{"any", ModeAny, false},
		{"", ModeUnset, true},
		{"ALL", ModeUnset, true},
		{"some", ModeUnset, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidMode, "ParseMode(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseMode(%q)", tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.String())
	}
}

func TestInvalidModeError_Message(t *testing.T) {
	_, err := ParseMode("")
	assert.EqualError(t, err, "no match mode given: pick 'all' or 'any'")

	_, err = ParseMode("most")
	assert.EqualError(t, err, `unknown match mode "most": pick 'all' or 'any'`)
}

func TestMode_Set(t *testing.T) {
	var m Mode
	require.NoError(t, m.Set(" Any "))
	assert.Equal(t, ModeAny, m)

	err := m.Set("none")
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, ModeAny, m, "failed Set must not change the mode")
	assert.Equal(t, "all|any", m.Type())
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, ModeAll.Valid())
	assert.True(t, ModeAny.Valid())
	assert.False(t, ModeUnset.Valid())
	assert.False(t, Mode(7).Valid())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
