package ioformat

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	f, err := ioutil.TempFile("", "tt-*.cfg")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(f.Name()) })
	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestReadBuildConfigValidPMR(t *testing.T) {
	name := writeTempConfig(t, `
[Build]
Subdivision = ok
Criterion = pmr
TetrahedraPerLeaf = 64
Reindex = true
`)

	con, err := ReadBuildConfig(name)
	require.NoError(t, err)
	assert.Equal(t, "ok", con.Subdivision)
	assert.Equal(t, "pmr", con.Criterion)
	assert.Equal(t, 64, con.TetrahedraPerLeaf)
	assert.True(t, con.Reindex)
}

func TestReadBuildConfigMissingThresholdFails(t *testing.T) {
	name := writeTempConfig(t, `
[Build]
Subdivision = ok
Criterion = pr
`)

	_, err := ReadBuildConfig(name)
	assert.Error(t, err)
}

func TestBuildConfigCheckInitRejectsUnknownCriterion(t *testing.T) {
	con := &BuildConfig{Subdivision: "ok", Criterion: "bogus"}
	assert.Error(t, con.CheckInit())
}
