package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const findData = `{"sectors":[
  {"ID":"PIRATE","name":"Pirate Haven","weapons":[{"Name":"LASER_BURST_1","rarity":2}]},
  {"ID":"ZOLTAN","name":"Zoltan Homeworlds","events":[{"Name":"GIFT","weapons":[{"Name":"LASER_BURST_1"}]}]}
],"blueprints":{"Weapons":[{"Name":"LASER_BURST_1","Title":"Burst Laser I"}]}}`

func withDataFile(t *testing.T, doc string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("FTLVIEW_DATA", "")
	path := filepath.Join(dir, "full-data.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	dataSource = path
	t.Cleanup(func() { dataSource = "" })
}

func TestFindListsOfferingSectors(t *testing.T) {
	withDataFile(t, findData)

	var out bytes.Buffer
	findCmd.SetOut(&out)
	t.Cleanup(func() { findCmd.SetOut(nil) })

	require.NoError(t, runFind(findCmd, []string{"Weapon", "LASER_BURST_1"}))
	text := out.String()
	assert.Contains(t, text, "Burst Laser I (weapon)")
	assert.Regexp(t, `Pirate Haven\s+PIRATE\s+store\s+rarity 2`, text)
	assert.Regexp(t, `Zoltan Homeworlds\s+ZOLTAN\s+event reward`, text)

	out.Reset()
	require.NoError(t, runFind(findCmd, []string{"drone", "NOPE"}))
	assert.Equal(t, "NOPE is not offered in any sector\n", out.String())
}

func TestFindRejectsUnknownCategory(t *testing.T) {
	err := runFind(findCmd, []string{"hat", "X"})
	assert.ErrorContains(t, err, `unknown category "hat"`)
}
