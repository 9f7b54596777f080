package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_EmptyMapDefaults(t *testing.T) {
	code, out, _ := runArgs(t, "-map", "empty")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Goal Reached !")
	assert.Contains(t, out, "Path: (6,6) (7,7) (8,8) (9,9) (10,10)")
	assert.Contains(t, out, "Cost to reach Goal Node --> 5.656")
}

func TestRun_InvalidEndpoints(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"start outside", []string{"-start", "0,3"}, "Start Node (0,3) outside Map"},
		{"goal outside", []string{"-goal", "11,3"}, "Goal Node (11,3) outside Map"},
		{"goal on obstacle", []string{"-map", "circles", "-goal", "3,7"}, "Goal Node (3,7) inside obstacle"},
		{"start on obstacle", []string{"-map", "walls", "-start", "2,5"}, "Start Node (2,5) inside obstacle"},
		{"same cell", []string{"-start", "5,5", "-goal", "5,5"}, "Start node is Goal Node!!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, _ := runArgs(t, tc.args...)
			assert.Equal(t, exitInvalid, code)
			assert.Contains(t, out, tc.want)
			assert.NotContains(t, out, "Goal Reached")
		})
	}
}

func TestRun_BadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-map", "nowhere"},
		{"-start", "1"},
		{"-goal", "a,b"},
		{"-relax", "sometimes"},
		{"-log-level", "chatty"},
		{"-workers", "0"},
		{"-bogus"},
	} {
		code, _, _ := runArgs(t, args...)
		assert.Equal(t, exitInvalid, code, "%v", args)
	}
}

func TestRun_UnreachableExitsZero(t *testing.T) {
	code, out, _ := runArgs(t, "-map", "ring")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "No path found after 91 expansions")
}

func TestRun_CustomEndpoints(t *testing.T) {
	code, out, _ := runArgs(t, "-map", "walls", "-start", "1,1", "-goal", "4,3", "-json")
	assert.Equal(t, exitOK, code)

	var report pathReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Found)
	assert.Equal(t, [2]int{1, 1}, report.Path[0])
	assert.Equal(t, [2]int{4, 3}, report.Path[len(report.Path)-1])
	for _, c := range report.Path {
		assert.False(t, c[0] >= 2 && c[0] <= 3 && c[1] >= 3, "path crosses wall at %v", c)
	}
}

func TestRun_JSONReport(t *testing.T) {
	code, out, _ := runArgs(t, "-map", "empty", "-json", "-relax", "decrease-key")
	require.Equal(t, exitOK, code)

	var report pathReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "empty", report.Map)
	assert.True(t, report.Found)
	assert.Equal(t, [][2]int{{6, 6}, {7, 7}, {8, 8}, {9, 9}, {10, 10}}, report.Path)
	assert.Equal(t, []float64{0, 1.414, 2.828, 4.242, 5.656}, report.Costs)
	assert.Equal(t, 5.656, report.TotalCost)
	assert.Equal(t, 5, report.Steps)
}

func TestRun_Trace(t *testing.T) {
	code, out, _ := runArgs(t, "-map", "empty", "-trace")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "expand 1: (6,6)\n")
	assert.Contains(t, out, "expand 5: (10,10)\n")
}

func TestRun_All(t *testing.T) {
	code, out, _ := runArgs(t, "-all", "-json", "-workers", "2")
	require.Equal(t, exitOK, code)

	var reports []pathReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 5)
	names := []string{}
	for _, r := range reports {
		names = append(names, r.Map)
		if r.Map == "ring" {
			assert.False(t, r.Found)
			assert.Equal(t, "no path found", r.Error)
			continue
		}
		assert.True(t, r.Found, r.Map)
		assert.Empty(t, r.Error)
	}
	assert.Equal(t, []string{"circles", "empty", "maze", "ring", "walls"}, names)
	assert.Equal(t, 27.554, reports[2].TotalCost)
}

func TestRun_CopyPath(t *testing.T) {
	var copied string
	saved := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { copyToClipboard = saved }()

	code, _, _ := runArgs(t, "-map", "empty", "-copy")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "[[6, 6], [7, 7], [8, 8], [9, 9], [10, 10]]", copied)
}
