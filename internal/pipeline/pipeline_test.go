package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"monkey/colors"
	"monkey/internal/phase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietPipeline() *Pipeline {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseInMemory(t *testing.T) {
	res := quietPipeline().Parse("repl", "let x = 1 + 2;")

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "repl", res.Name)
	assert.Equal(t, "let x = 1 + 2;", res.Source)
	assert.Equal(t, phase.PhaseParsed, res.Phase)
	assert.False(t, res.HasErrors())
	assert.Empty(t, res.Errors())
	assert.Equal(t, "let x = (1 + 2);", res.Program.String())
}

func TestParseWithErrors(t *testing.T) {
	res := Parse("repl", "let = 1;")

	assert.True(t, res.HasErrors())
	assert.Equal(t, phase.PhaseParsed, res.Phase)
	require.NotEmpty(t, res.Errors())
	assert.Equal(t, "expected next token to be identifier, got = instead", res.Errors()[0])
	assert.Equal(t, "repl", res.Diagnostics.Diagnostics()[0].FilePath)
}

func TestRunIDsAreUnique(t *testing.T) {
	p := quietPipeline()
	assert.NotEqual(t, p.Parse("a", "1").ID, p.Parse("a", "1").ID)
}

func TestParseAllKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()

	source := func(i int) string {
		return fmt.Sprintf("let %s = %d;", strings.Repeat("v", i+1), i)
	}

	var files []string
	for i := 0; i < 20; i++ {
		files = append(files, writeFile(t, dir, fmt.Sprintf("f%02d.mk", i), source(i)))
	}

	results, err := quietPipeline().ParseAll(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, len(files))

	for i, res := range results {
		assert.Equal(t, files[i], res.Name)
		assert.Empty(t, res.Errors())
		assert.Equal(t, source(i), res.Program.String())
		assert.Equal(t, phase.PhaseParsed, res.Phase)
	}
}

func TestDigitsEndIdentifiers(t *testing.T) {
	res := quietPipeline().Parse("repl", "let v1 = 1;")
	assert.Equal(t, []string{
		"expected next token to be =, got 1 instead",
		"no prefix parse function for = found",
	}, res.Errors())
}

func TestParseAllSharesDuplicatePaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.mk", "a")
	b := writeFile(t, dir, "b.mk", "b")

	results, err := quietPipeline().ParseAll(context.Background(), []string{a, b, a})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Same(t, results[0], results[2])
	assert.NotSame(t, results[0], results[1])
}

func TestParseAllReportsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.mk", "1 + 1")
	missing := filepath.Join(dir, "missing.mk")

	results, err := quietPipeline().ParseAll(context.Background(), []string{missing, good})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "cannot read file "+missing)

	require.Len(t, results, 2)
	assert.Equal(t, phase.PhaseNotStarted, results[0].Phase)
	assert.True(t, results[0].HasErrors())
	assert.Nil(t, results[0].Program)
	assert.False(t, results[1].HasErrors())
}

func TestParseAllHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.mk", "1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := quietPipeline().ParseAll(ctx, []string{path})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, phase.PhaseNotStarted, results[0].Phase)
}

func TestParseLogsRun(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res := New(logger).Parse("main.mk", "let a = 1; @")

	out := buf.String()
	assert.Contains(t, out, "parse finished")
	assert.Contains(t, out, "run="+res.ID.String())
	assert.Contains(t, out, "source=main.mk")
	assert.Contains(t, out, "statements=1")
	assert.Contains(t, out, "errors=1")
}

func TestPrintSummary(t *testing.T) {
	colors.SetEnabled(false)
	t.Cleanup(func() { colors.SetEnabled(true) })

	p := quietPipeline()
	results := []*Result{
		p.Parse("ok.mk", "let a = 1; a"),
		p.Parse("bad.mk", "let = ;"),
		{Name: "gone.mk", Err: os.ErrNotExist},
	}

	var buf bytes.Buffer
	PrintSummary(&buf, results)

	out := buf.String()
	assert.Contains(t, out, "PARSE SUMMARY")
	assert.Contains(t, out, " ✓ ok.mk (2 statements)\n")
	assert.Contains(t, out, " ✗ bad.mk (2 errors)\n")
	assert.Contains(t, out, " ✗ gone.mk: file does not exist\n")
	assert.Contains(t, out, "Sources: 3, failed: 2\n")
}
