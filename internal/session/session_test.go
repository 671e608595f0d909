package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want Sequence
	}{
		{name: "zero", n: 0, want: Sequence{}},
		{name: "one", n: 1, want: Sequence{1}},
		{name: "five", n: 5, want: Sequence{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_ZeroIsEmptyNotNil(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerate_PositionMapping(t *testing.T) {
	for n := 0; n <= 64; n++ {
		seq, err := Generate(n)
		require.NoError(t, err)
		require.Len(t, seq, n)
		for i, v := range seq {
			assert.Equal(t, i+1, v, "n=%d index=%d", n, i)
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	first, err := Generate(14)
	require.NoError(t, err)
	second, err := Generate(14)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Results do not share backing storage
	first[0] = 99
	assert.Equal(t, 1, second[0])
}

func TestNewCount_Limit(t *testing.T) {
	c, err := NewCount(MaxCount)
	require.NoError(t, err)
	assert.Len(t, c.Sequence(), MaxCount)

	_, err = NewCount(MaxCount + 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGenerate_Negative(t *testing.T) {
	for _, n := range []int{-1, -14} {
		seq, err := Generate(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Nil(t, seq)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input   string
		want    Count
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "12", want: 12},
		{input: " 7 ", want: 7},
		{input: "-1", wantErr: true},
		{input: "65536", want: MaxCount},
		{input: "65537", wantErr: true},
		{input: "9223372036854775807", wantErr: true},
		{input: "2.5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCount_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Count
		wantErr bool
	}{
		{name: "integer", doc: "count: 6", want: 6},
		{name: "zero", doc: "count: 0", want: 0},
		{name: "negative", doc: "count: -3", wantErr: true},
		{name: "over limit", doc: "count: 9223372036854775807", wantErr: true},
		{name: "float", doc: "count: 2.5", wantErr: true},
		{name: "string", doc: "count: six", wantErr: true},
		{name: "quoted integer", doc: `count: "6"`, wantErr: true},
		{name: "sequence", doc: "count: [1, 2]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Count Count `yaml:"count"`
			}
			err := yaml.Unmarshal([]byte(tt.doc), &v)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Count)
		})
	}
}

func TestPaths(t *testing.T) {
	c, err := NewCount(3)
	require.NoError(t, err)

	assert.Equal(t, []string{"js-oop/sesi1", "js-oop/sesi2", "js-oop/sesi3"}, Paths("js-oop", c))
	assert.Empty(t, Paths("js-oop", 0))
}

func TestPaths_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Paths("js-dom", 12) {
		assert.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true
	}
	assert.Len(t, seen, 12)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "js-buildin-library/number/sesi6", Path("js-buildin-library/number", 6))
}
