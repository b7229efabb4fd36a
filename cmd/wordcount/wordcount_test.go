package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runForTest(t *testing.T, mode string, args []string,
	stdin string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = run(mode, args, strings.NewReader(stdin),
		&outBuf, &errBuf, false)
	return outBuf.String(), errBuf.String(), code
}

func TestRunCountStdin(t *testing.T) {
	stdout, stderr, code := runForTest(t, countMode, nil,
		"the cat sat on the mat")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "The total number of words is: 6\n", stdout)
}

func TestRunFrequencyStdin(t *testing.T) {
	stdout, _, code := runForTest(t, frequencyMode, nil,
		"the cat sat on the mat")
	assert.Equal(t, 0, code)
	assert.Equal(t, "The frequencies of each word are: \n"+
		"cat 1\nmat 1\non 1\nsat 1\nthe 2\n", stdout)
}

func TestRunCountAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "dog dog")
	second := writeFile(t, dir, "second.txt", "dog cat")

	stdout, _, code := runForTest(t, countMode,
		[]string{first, second}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "The total number of words is: 4\n", stdout)
}

func TestRunFrequencyAccumulatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "dog dog")
	second := writeFile(t, dir, "second.txt", "dog cat")

	stdout, _, code := runForTest(t, frequencyMode,
		[]string{first, second}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "The frequencies of each word are: \n"+
		"cat 1\ndog 3\n", stdout)
}

func TestRunSkipsUnopenableFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "dog dog")
	missing := filepath.Join(dir, "missing.txt")

	stdout, stderr, code := runForTest(t, countMode,
		[]string{first, missing}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "missing.txt")
	assert.Equal(t, "The total number of words is: 2\n", stdout)
}

func TestRunIgnoresStdinWhenFilesGiven(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "hello world")

	stdout, _, code := runForTest(t, countMode,
		[]string{first}, "these stdin words must not count")
	assert.Equal(t, 0, code)
	assert.Equal(t, "The total number of words is: 2\n", stdout)
}

func TestModeFlagLastWins(t *testing.T) {
	mode := countMode
	countFlag := modeFlag{&mode, countMode}
	frequencyFlag := modeFlag{&mode, frequencyMode}

	require.NoError(t, countFlag.Set("true"))
	require.NoError(t, frequencyFlag.Set("true"))
	assert.Equal(t, frequencyMode, mode)

	require.NoError(t, countFlag.Set("true"))
	assert.Equal(t, countMode, mode)
}
