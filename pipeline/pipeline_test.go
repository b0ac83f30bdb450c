package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkiriako/trigraph/digraph"
	"github.com/vkiriako/trigraph/pipeline"
	"github.com/vkiriako/trigraph/tsv"
)

// writeTSV materializes one trajectory file for a test run.
func writeTSV(t *testing.T, dir, name string, states []string) string {
	t.Helper()
	content := "time\tsub_cot\n"
	for i, s := range states {
		content += "0." + string(rune('0'+i%10)) + "\t" + s + "\n"
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestRun_EndToEnd runs load -> build -> annotate -> export on a real
// temp file and checks the result surface.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeTSV(t, dir, "run.tsv", []string{"A", "B", "C", "A", "B", "D"})
	out := filepath.Join(dir, "run.gexf")

	res, err := pipeline.Run(context.Background(), pipeline.Config{
		InputPaths: []string{in},
		OutputGEXF: out,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, res.WordCount)
	assert.Equal(t, 6, res.StateCount)
	assert.Equal(t, 5, res.Graph.NodeCount())

	ab, ok := res.Graph.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, int64(2), ab.Weight)
	h, ok := ab.Entropy()
	require.True(t, ok)
	assert.InDelta(t, 1.0, h, 1e-9)

	require.True(t, res.HasStats)
	assert.Positive(t, res.Stats.Count)

	_, err = os.Stat(out)
	assert.NoError(t, err, "GEXF export must exist")
}

// TestRun_MultipleFilesStayIndependent checks that words from
// different files never chain into one trajectory.
func TestRun_MultipleFilesStayIndependent(t *testing.T) {
	dir := t.TempDir()
	a := writeTSV(t, dir, "a.tsv", []string{"A", "B"})
	b := writeTSV(t, dir, "b.tsv", []string{"B", "C"})

	res, err := pipeline.Run(context.Background(), pipeline.Config{
		InputPaths: []string{a, b},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, res.WordCount)
	assert.False(t, res.Graph.HasEdge("B", "B"), "pair must not span files")
	ab, ok := res.Graph.Edge("A", "B")
	require.True(t, ok)
	assert.Empty(t, ab.NextCounts, "triple must not span files")
}

// TestRun_Preprocessing applies duration filtering and run collapsing
// before the build.
func TestRun_Preprocessing(t *testing.T) {
	dir := t.TempDir()
	// Filter(2) drops the lone B; collapsing then removes self-pairs.
	in := writeTSV(t, dir, "run.tsv", []string{"A", "A", "B", "C", "C", "A", "A"})

	res, err := pipeline.Run(context.Background(), pipeline.Config{
		InputPaths:   []string{in},
		MinDuration:  2,
		CollapseRuns: true,
	}, nil)
	require.NoError(t, err)

	// [A A B C C A A] -> filter -> [A A C C A A] -> collapse -> [A C A]
	assert.Equal(t, 3, res.StateCount)
	assert.True(t, res.Graph.HasEdge("A", "C"))
	assert.True(t, res.Graph.HasEdge("C", "A"))
	assert.False(t, res.Graph.HasEdge("A", "A"))
	assert.False(t, res.Graph.HasEdge("A", "B"))
}

// TestRun_CustomColumnAndToken forwards loader options.
func TestRun_CustomColumnAndToken(t *testing.T) {
	dir := t.TempDir()
	content := "time\tsub_cot\tloc_cot\n0.0\tA\tX\n0.1\tB\tskip\n0.2\tC\tY\n"
	path := filepath.Join(dir, "run.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res, err := pipeline.Run(context.Background(), pipeline.Config{
		InputPaths: []string{path},
		Column:     "loc_cot",
		ErrorToken: "skip",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []digraph.State{"X", "Y"}, res.Graph.Nodes())
	assert.True(t, res.Graph.HasEdge("X", "Y"))
}

// TestRun_ParallelMatchesSequential checks that Workers only changes
// the execution strategy, never the result.
func TestRun_ParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	var inputs []string
	seqs := [][]string{
		{"A", "B", "C", "A"},
		{"B", "C", "A", "B"},
		{"C", "A", "B", "C"},
		{"A", "C", "B", "A"},
	}
	for i, s := range seqs {
		inputs = append(inputs, writeTSV(t, dir, "w"+string(rune('0'+i))+".tsv", s))
	}

	seq, err := pipeline.Run(context.Background(), pipeline.Config{InputPaths: inputs}, nil)
	require.NoError(t, err)
	par, err := pipeline.Run(context.Background(), pipeline.Config{InputPaths: inputs, Workers: 4}, nil)
	require.NoError(t, err)

	require.Equal(t, seq.Graph.Nodes(), par.Graph.Nodes())
	require.Equal(t, seq.Graph.EdgeCount(), par.Graph.EdgeCount())
	for _, we := range seq.Graph.Edges() {
		ge, ok := par.Graph.Edge(we.From, we.To)
		require.True(t, ok)
		assert.Equal(t, we.Weight, ge.Weight)
		assert.Equal(t, we.NextCounts, ge.NextCounts)
	}
}

// TestRun_ValidationFailures surfaces config sentinels before any
// file is touched.
func TestRun_ValidationFailures(t *testing.T) {
	_, err := pipeline.Run(context.Background(), pipeline.Config{}, nil)
	assert.ErrorIs(t, err, pipeline.ErrNoInput)

	_, err = pipeline.Run(context.Background(), pipeline.Config{
		InputPaths:  []string{"x.tsv"},
		MinDuration: -1,
	}, nil)
	assert.ErrorIs(t, err, pipeline.ErrBadOption)

	_, err = pipeline.Run(context.Background(), pipeline.Config{
		InputPaths: []string{"x.tsv"},
		Workers:    -2,
	}, nil)
	assert.ErrorIs(t, err, pipeline.ErrBadOption)
}

// TestRun_LoaderErrorsPropagate wraps loader sentinels unchanged.
func TestRun_LoaderErrorsPropagate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(path, []byte("time\tother\n0.0\tA\n"), 0o644))

	_, err := pipeline.Run(context.Background(), pipeline.Config{InputPaths: []string{path}}, nil)
	assert.ErrorIs(t, err, tsv.ErrMissingColumn)
}

// TestRun_CanceledContext stops between phases.
func TestRun_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	in := writeTSV(t, dir, "run.tsv", []string{"A", "B"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Run(ctx, pipeline.Config{InputPaths: []string{in}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_NoAnnotatedEdges reports HasStats=false instead of a zero
// summary.
func TestRun_NoAnnotatedEdges(t *testing.T) {
	dir := t.TempDir()
	in := writeTSV(t, dir, "run.tsv", []string{"A", "B"})

	res, err := pipeline.Run(context.Background(), pipeline.Config{InputPaths: []string{in}}, nil)
	require.NoError(t, err)
	assert.False(t, res.HasStats)
	assert.Equal(t, 1, res.Graph.EdgeCount())
}

// TestLoadConfig parses a YAML run description.
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	content := `inputs:
  - a.tsv
  - b.tsv
column: loc_cot
error_token: skip
min_duration: 3
stride: 2
collapse_runs: true
output_gexf: out.gexf
workers: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := pipeline.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.tsv", "b.tsv"}, cfg.InputPaths)
	assert.Equal(t, "loc_cot", cfg.Column)
	assert.Equal(t, "skip", cfg.ErrorToken)
	assert.Equal(t, 3, cfg.MinDuration)
	assert.Equal(t, 2, cfg.Stride)
	assert.True(t, cfg.CollapseRuns)
	assert.Equal(t, "out.gexf", cfg.OutputGEXF)
	assert.Equal(t, 4, cfg.Workers)
	assert.NoError(t, cfg.Validate())
}

// TestLoadConfig_Failures covers the missing-file and bad-YAML paths.
func TestLoadConfig_Failures(t *testing.T) {
	_, err := pipeline.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs: [unclosed"), 0o644))
	_, err = pipeline.LoadConfig(path)
	assert.Error(t, err)
}
