/*
SPDX-FileCopyrightText: 2025 Deutsche Telekom AG

SPDX-License-Identifier: Apache-2.0
*/

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "wide", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteObject_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteObject(&buf, FormatJSON, map[string]int{"count": 42}))

	var result map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, 42, result["count"])
	assert.Contains(t, buf.String(), "\n  \"count\"")
}

func TestWriteObject_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteObject(&buf, FormatYAML, Patterns()))

	var result []PatternInfo
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 5)
	assert.Equal(t, "legacy", string(result[0].Name))
}

func TestWriteObject_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteObject(&buf, FormatTable, "x"))
	require.Error(t, WriteObject(&buf, Format("xml"), "x"))
	require.Error(t, WriteObject(&buf, FormatJSON, make(chan int)))
	assert.Empty(t, buf.String())
}
