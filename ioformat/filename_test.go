package ioformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTreeFilenameRoundTrips(t *testing.T) {
	cfg := TreeConfig{Subdivision: "ok", Criterion: "pmr", KT: 64, HasKT: true}
	name := EncodeTreeFilename("mesh", cfg)
	assert.Equal(t, "mesh_ok_pmr_t_64.tree", name)

	got, err := DecodeTreeFilename(name)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDecodeTreeFilenameWithBothThresholds(t *testing.T) {
	cfg := TreeConfig{Subdivision: "kd", Criterion: "pm", KV: 10, HasKV: true, KT: 20, HasKT: true}
	name := EncodeTreeFilename("some_mesh_name", cfg)

	got, err := DecodeTreeFilename(name)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDecodeTreeFilenameRejectsUnknownTokens(t *testing.T) {
	_, err := DecodeTreeFilename("mesh_unknown.tree")
	assert.Error(t, err)
}
