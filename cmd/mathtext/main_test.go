package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mathtext "github.com/riverfjs/mathtext-go"
)

// run 执行命令并返回 stdout
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_JSON(t *testing.T) {
	out, err := run(t, "", "render", "What is 1/2 + 1/4?")
	require.NoError(t, err)

	var nodes []mathtext.RenderNode
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 3)
	assert.Equal(t, mathtext.KindInlineMath, nodes[1].Kind)
	assert.Equal(t, "½ + ¼", nodes[1].Content)
}

func TestRender_PlainFromStdin(t *testing.T) {
	out, err := run(t, "Solve $2 x 3$\n", "render", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "Solve 2 × 3\n", out)
}

func TestRender_BadStrategy(t *testing.T) {
	_, err := run(t, "", "--strategy", "png", "render", "x")
	assert.Error(t, err)
}

func TestRender_StrategyFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  strategy: ascii\n"), 0o644))

	_, err := run(t, "", "--config", path, "render", "x")
	assert.ErrorContains(t, err, "engine.strategy")

	out, err := run(t, "", "--config", path, "--strategy", "unicode", "render", "--plain", "$1/2$")
	require.NoError(t, err)
	assert.Equal(t, "½\n", out)
}

func TestRender_MacrosFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.yaml")
	require.NoError(t, os.WriteFile(path, []byte("'\\R': ℝ\n"), 0o644))

	out, err := run(t, "", "--macros", path, "render", "--plain", `$x \in \R$`)
	require.NoError(t, err)
	assert.Equal(t, "x ∈ ℝ\n", out)
}

func TestQuiz(t *testing.T) {
	out, err := run(t, "", "quiz", "--id", "fractions", "../../data/quizzes.yaml")
	require.NoError(t, err)

	var quizzes []mathtext.RenderedQuiz
	require.NoError(t, json.Unmarshal([]byte(out), &quizzes))
	require.Len(t, quizzes, 1)
	assert.Equal(t, "fractions", quizzes[0].ID)

	_, err = run(t, "", "quiz", "--id", "nope", "../../data/quizzes.yaml")
	assert.ErrorIs(t, err, mathtext.ErrInvalidQuiz)
}

func TestMarkdown(t *testing.T) {
	out, err := run(t, "Half is $1/2$.\n", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="math inline">½</span>`)
}

func TestPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	_, err := run(t, "", "preview", "--out", path, "--width", "320", "1/2 + 1/4")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())

	_, err = run(t, "", "preview", "x")
	assert.Error(t, err)
}
