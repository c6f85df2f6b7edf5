package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "string one", input: `"1"`, want: true},
		{name: "string zero", input: `"0"`, want: false},
		{name: "bare true", input: `true`, want: true},
		{name: "bare false", input: `false`, want: false},
		{name: "bare one", input: `1`, want: true},
		{name: "bare zero", input: `0`, want: false},
		{name: "unexpected string", input: `"2"`, wantErr: true},
		{name: "unexpected number", input: `7`, wantErr: true},
		{name: "wrong type", input: `[]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Bool())
		})
	}
}

func TestBool_MarshalEmitsStringForm(t *testing.T) {
	data, err := json.Marshal(Bool(true))
	require.NoError(t, err)
	assert.Equal(t, `"1"`, string(data))

	data, err = json.Marshal(Bool(false))
	require.NoError(t, err)
	assert.Equal(t, `"0"`, string(data))
}

func TestUint_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{name: "string", input: `"25"`, want: 25},
		{name: "bare number", input: `25`, want: 25},
		{name: "zero", input: `"0"`, want: 0},
		{name: "negative", input: `-1`, wantErr: true},
		{name: "fractional", input: `1.5`, wantErr: true},
		{name: "non-numeric string", input: `"abc"`, wantErr: true},
		{name: "wrong type", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u Uint
			err := json.Unmarshal([]byte(tt.input), &u)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.Uint64())
		})
	}
}

func TestUint_MarshalEmitsStringForm(t *testing.T) {
	data, err := json.Marshal(Uint(25))
	require.NoError(t, err)
	assert.Equal(t, `"25"`, string(data))
}

func TestRoundTripInsideStruct(t *testing.T) {
	type payload struct {
		Enabled Bool `json:"enabled"`
		Rows    Uint `json:"totalrows"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"enabled":"1","totalrows":"25"}`), &p))
	assert.True(t, p.Enabled.Bool())
	assert.Equal(t, uint64(25), p.Rows.Uint64())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled":"1","totalrows":"25"}`, string(out))
}
