package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/report"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"CTGDX_CATALOG", "CTGDX_LOG_LEVEL", "CTGDX_LOG_FORMAT", "CTGDX_LOG_FILE"} {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func fitAnswers() []string {
	return []string{"match", "-a", "q1=yes", "-a", "q2=yes", "-a", "q3=yes", "-a", "q4=yes", "-a", "q5=no"}
}

func TestMatch_Text(t *testing.T) {
	out, _, err := execute(t, "", fitAnswers()...)
	require.NoError(t, err)

	assert.Contains(t, out, "MOST PROBABLE DIAGNOSIS")
	assert.Contains(t, out, "FIT FOR LABOUR")
	assert.Contains(t, out, "5/5 criteria matched")
	assert.NotContains(t, out, "\x1b[", "plain writers get no escape codes")
}

func TestMatch_JSON(t *testing.T) {
	args := append(fitAnswers(), "--format", "json")
	out, _, err := execute(t, "", args...)
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Winners, 1)
	assert.Equal(t, "fit-for-labour", doc.Winners[0].ID)
	assert.True(t, doc.Perfect)
	assert.False(t, doc.Tied)
	assert.Equal(t, 5, doc.Total)
}

func TestMatch_Tied(t *testing.T) {
	out, _, err := execute(t, "",
		"match", "-a", "q1=higher", "-a", "q2=reduced", "-a", "q3=no", "-a", "q4=no", "-a", "q5=no")
	require.NoError(t, err)

	assert.Contains(t, out, "3 DIAGNOSES IN COMPETITION")
	assert.Contains(t, out, "CHRONIC HYPOXIA")
	assert.Contains(t, out, "SUPRA VENTRICULAR TACHYCARDIA")
}

func TestMatch_FileAndStdin(t *testing.T) {
	doc := `{"q1":"lower","q2":"reduced","q3":"no","q4":"no","q5":"yes"}`

	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	fromFile, _, err := execute(t, "", "match", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, fromFile, "CHRONIC HYPOXIA")

	fromStdin, _, err := execute(t, doc, "match", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromStdin)
}

func TestMatch_Explain(t *testing.T) {
	args := append(fitAnswers(), "--explain")
	out, _, err := execute(t, "", args...)
	require.NoError(t, err)

	assert.Contains(t, out, "RANKING")
	assert.Contains(t, out, "RUPI")
}

func TestMatch_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "illegal code",
			args: []string{"match", "-a", "q1=no", "-a", "q2=yes", "-a", "q3=yes", "-a", "q4=yes", "-a", "q5=no"},
			want: `q1="no"`,
		},
		{
			name: "incomplete vector",
			args: []string{"match", "-a", "q1=yes"},
			want: "q2",
		},
		{
			name: "no answers at all",
			args: []string{"match"},
			want: "answer",
		},
		{
			name: "both sources",
			args: []string{"match", "-a", "q1=yes", "--file", "x.json"},
			want: "file",
		},
		{
			name: "unknown format",
			args: append(fitAnswers(), "--format", "xml"),
			want: "unknown format",
		},
		{
			name: "explain with json",
			args: append(fitAnswers(), "--format", "json", "--explain"),
			want: "--explain",
		},
		{
			name: "bad log level",
			args: append(fitAnswers(), "--log-level", "loud"),
			want: "loud",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMatch_IllegalCodeIsTyped(t *testing.T) {
	_, _, err := execute(t, "", "match", "-a", "q3=maybe")
	require.Error(t, err)
	assert.ErrorIs(t, err, matcher.ErrIllegalCode)
}

func TestCatalogList(t *testing.T) {
	out, _, err := execute(t, "", "catalog", "list")
	require.NoError(t, err)

	for _, s := range catalog.Default().Scenarios() {
		assert.Contains(t, out, s.ID)
	}
	assert.Contains(t, out, "11 scenarios, 5 questions")
}

func TestCatalogShow(t *testing.T) {
	out, _, err := execute(t, "", "catalog", "show", "fit-for-labour")
	require.NoError(t, err)

	assert.Contains(t, out, "FIT FOR LABOUR")
	assert.Contains(t, out, "Accepted answers:")
	assert.Contains(t, out, "Excluded when:")
	assert.Contains(t, out, "Management:")

	_, _, err = execute(t, "", "catalog", "show", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownScenario)
}

func TestCatalogValidate(t *testing.T) {
	out, _, err := execute(t, "", "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog OK: 5 questions, 11 scenarios")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("questions: []\nscenarios: []\n"), 0o644))
	_, _, err = execute(t, "", "catalog", "validate", "--file", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no questions defined")
}

func TestCatalogExport_RoundTrips(t *testing.T) {
	out, _, err := execute(t, "", "catalog", "export")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	listed, _, err := execute(t, "", "--catalog", path, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, listed, "11 scenarios")
}

func TestSchema(t *testing.T) {
	out, _, err := execute(t, "", "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, props, 5)
	assert.Contains(t, props, "q1")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ctgdx "))
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctgdx.log")
	args := append([]string{"--log-file", path, "--log-level", "debug"}, fitAnswers()...)
	_, stderr, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "using built-in catalog")
}
