package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fxprint/pattern"
	"github.com/calebcase/fxprint/snapshot"
)

const snapshotPath = "../../snapshot/testdata/controller.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose = false
	configPath = ""
	format = ""
	exponent = 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestMatch(t *testing.T) {
	out, err := execute(t, "match",
		"elastic_integer<23, power<-12, 2>>",
		"int",
		"const cnl::scaled_integer<int, cnl::power<-8, 2> >",
	)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"elastic_integer<23, power<-12, 2>>: exponent -12",
		"int: no match",
		"const cnl::scaled_integer<int, cnl::power<-8, 2> >: exponent -8",
	}, "\n")+"\n", out)

	out, err = execute(t, "match", "elastic_integer<23, power<E, 2>>")
	require.Error(t, err)
	require.True(t, pattern.ParseError.Has(err))
	require.Contains(t, out, "parse failure")
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "--exponent=-12", "4096", "84787", "2048")
	require.NoError(t, err)
	require.Equal(t, "1\n20.699951171875\n0.5\n", out)

	out, err = execute(t, "decode", "-e=-30", "--format", "float", "1")
	require.NoError(t, err)
	require.Equal(t, "9.313225746154785e-10\n", out)

	_, err = execute(t, "decode", "-e=-1", "ten")
	require.Error(t, err)

	_, err = execute(t, "decode", "--format", "hex", "1")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", snapshotPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken")

	require.Equal(t, strings.Join([]string{
		"setpoint = 20.699951171875",
		"half = 0.5",
		"offset = -2.5",
		"count = 10",
		"broken = {_rep = 10}",
		"opaque = {value = 4096}",
	}, "\n")+"\n", out)
}

func TestRenderConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := filepath.Join(dir, "fxprint.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("field: m_rep\n"), 0o644))

	snap := filepath.Join(dir, "snapshot.yaml")
	require.NoError(t, os.WriteFile(snap, []byte(`variables:
  - name: a
    value:
      type: "elastic_integer<7, power<-2, 2>>"
      fields:
        m_rep: {type: int, int: "3"}
  - name: b
    value:
      type: "elastic_integer<7, power<-2, 2>>"
      fields:
        _rep: {type: int, int: "3"}
`), 0o644))

	out, err := execute(t, "render", "--config", cfg, snap)
	require.NoError(t, err)
	require.Equal(t, "a = 0.75\nb = {_rep = 3}\n", out)

	_, err = execute(t, "render", "--config", filepath.Join(dir, "missing.yaml"), snap)
	require.Error(t, err)

	_, err = execute(t, "render", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestBrowseModel(t *testing.T) {
	verbose = false
	configPath = ""
	format = ""

	s, v, err := openSnapshot(snapshotPath)
	require.NoError(t, err)

	m := newBrowseModel("controller.yaml", s, v)
	require.Len(t, m.rows, len(s.Variables))
	require.Contains(t, m.View(), "20.699951171875")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)
	require.Equal(t, 1, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.raw)
	require.Contains(t, m.View(), "{_rep = 1}")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.selected)

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, len(m.rows)-1, m.selected)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	empty := newBrowseModel("empty.yaml", &snapshot.Snapshot{}, v)
	require.Contains(t, empty.View(), "No variables.")
}
