package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hardcore-os/flatdb/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func createDB(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "address.db")
	res := runCLI(t, "", "--no-sync", path, "c")
	require.Equal(t, 0, res.code, res.stderr)
	return path
}

func TestCreateSetGet(t *testing.T) {
	path := createDB(t)
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(utils.TableSize), fi.Size())

	res := runCLI(t, "", path, "s", "0", "Alice", "alice@x.com")
	require.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "", path, "g", "0")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "0 Alice alice@x.com\n", res.stdout)

	res = runCLI(t, "", path, "g", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ERROR: ")
	assert.Contains(t, res.stderr, utils.ErrSlotEmpty.Error())

	res = runCLI(t, "", path, "s", "0", "Bob", "bob@x.com")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, utils.ErrSlotOccupied.Error())
}

func TestDeleteAndList(t *testing.T) {
	path := createDB(t)
	for _, args := range [][]string{
		{"s", "3", "C", "c@x"},
		{"s", "1", "A", "a@x"},
		{"s", "4", "D", "d@x"},
		{"d", "3"},
		{"d", "3"},
	} {
		res := runCLI(t, "", append([]string{path}, args...)...)
		require.Equal(t, 0, res.code, res.stderr)
	}

	res := runCLI(t, "", path, "l")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "1 A a@x\n4 D d@x\n", res.stdout)

	res = runCLI(t, "", path, "i")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "occupied=2 free=98")
}

func TestUsageErrors(t *testing.T) {
	path := createDB(t)
	cases := []struct {
		args []string
		want string
	}{
		{nil, "Usage"},
		{[]string{path}, "Usage"},
		{[]string{path, "g"}, "Need an id to get"},
		{[]string{path, "s", "1", "A"}, "Need id, name, email to set"},
		{[]string{path, "d"}, "Need id to delete"},
		{[]string{path, "x"}, "Invalid action"},
		{[]string{path, "g", "abc"}, "invalid id"},
		{[]string{path, "g", "100"}, utils.ErrInvalidID.Error()},
		{[]string{path, "d", "-1"}, utils.ErrInvalidID.Error()},
		{[]string{"--bogus", path, "l"}, "unknown flag"},
	}
	for _, c := range cases {
		res := runCLI(t, "", c.args...)
		assert.Equal(t, 1, res.code, "%v", c.args)
		assert.Contains(t, res.stderr, c.want, "%v", c.args)
	}
}

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	res := runCLI(t, "", path, "l")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, utils.ErrOpenFailed.Error())
}

func TestHelp(t *testing.T) {
	res := runCLI(t, "", "--help")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, usage)
	assert.Contains(t, res.stdout, "--no-sync")
}

func TestVerbose(t *testing.T) {
	path := createDB(t)
	res := runCLI(t, "", "-v", path, "l")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "database loaded")
}

func TestBatch(t *testing.T) {
	path := createDB(t)
	script := strings.Join([]string{
		"# seed",
		"s 1 'Bob Smith' bob@x.com",
		"",
		`s 3 "Carol" carol@x.com`,
		"g 1",
		"l",
	}, "\n")
	res := runCLI(t, script, path, "b")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "1 Bob Smith bob@x.com\n1 Bob Smith bob@x.com\n3 Carol carol@x.com\n", res.stdout)

	res = runCLI(t, "", path, "g", "3")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "3 Carol carol@x.com\n", res.stdout)
}

func TestBatchStopsOnError(t *testing.T) {
	path := createDB(t)
	res := runCLI(t, "s 5 a b\ns 5 c d\n", path, "b")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "line 2")
	assert.Contains(t, res.stderr, utils.ErrSlotOccupied.Error())

	// 失败的批次不会写盘
	res = runCLI(t, "", path, "g", "5")
	assert.Equal(t, 1, res.code)

	res = runCLI(t, "c\n", path, "b")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not allowed in batch")

	res = runCLI(t, "s 1 'unterminated\n", path, "b")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "line 1")
}

func TestBatchLongLine(t *testing.T) {
	path := createDB(t)
	long := strings.Repeat("n", 100*1024)
	res := runCLI(t, "s 7 "+long+" e@x\n", path, "b")
	require.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "", path, "g", "7")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "7 "+long[:utils.MaxStringLen]+" e@x\n", res.stdout)
}
