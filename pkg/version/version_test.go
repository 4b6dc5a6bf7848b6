package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr error
	}{
		{in: "1.24.0", want: Version{Major: 1, Minor: 24, Patch: 0, Precision: 3}},
		{in: "v1.24.0", want: Version{Major: 1, Minor: 24, Patch: 0, Precision: 3}},
		{in: "1.24", want: Version{Major: 1, Minor: 24, Precision: 2}},
		{in: "6", want: Version{Major: 6, Precision: 1}},
		{
			in:   "6.8.0-45-generic",
			want: Version{Major: 6, Minor: 8, Patch: 0, Precision: 3, Extras: "-45-generic"},
		},
		{
			in:   "1.28.0+build.7",
			want: Version{Major: 1, Minor: 28, Patch: 0, Precision: 3, Extras: "+build.7"},
		},
		{in: "", wantErr: ErrEmptyVersion},
		{in: "1.2.3.4", wantErr: ErrTooManyComponents},
		{in: "1.x.3", wantErr: ErrNonNumeric},
		{in: "1..3", wantErr: ErrNonNumeric},
	}

	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.24.0", Version{Major: 1, Minor: 24, Precision: 3}.String())
	assert.Equal(t, "1.24", Version{Major: 1, Minor: 24, Precision: 2}.String())
	assert.Equal(t, "6", Version{Major: 6, Precision: 1}.String())

	// extras never round-trip into String
	v, err := Parse("6.8.0-45-generic")
	require.NoError(t, err)
	assert.Equal(t, "6.8.0", v.String())
}

func TestCompare(t *testing.T) {
	mk := func(s string) Version {
		v, err := Parse(s)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, 0, mk("1.24.0").Compare(mk("1.24.0")))
	assert.Equal(t, 1, mk("1.25.0").Compare(mk("1.24.9")))
	assert.Equal(t, -1, mk("1.24.0").Compare(mk("2.0.0")))

	// lower precision wins: 1.24 matches any 1.24.x
	assert.Equal(t, 0, mk("1.24").Compare(mk("1.24.7")))
	assert.Equal(t, 0, mk("1").Compare(mk("1.99.99")))

	// extras are ignored
	assert.Equal(t, 0, mk("6.8.0-45-generic").Compare(mk("6.8.0")))
}

func TestEqualsOrNewer(t *testing.T) {
	mk := func(s string) Version {
		v, err := Parse(s)
		require.NoError(t, err)
		return v
	}

	assert.True(t, mk("1.24.0").EqualsOrNewer(mk("1.22.1")))
	assert.True(t, mk("1.24.0").EqualsOrNewer(mk("1.24.0")))
	assert.False(t, mk("1.22.1").EqualsOrNewer(mk("1.24.0")))
}
