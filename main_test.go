package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftlview/internal/eventtree"
)

func TestGraphOutputFormat(t *testing.T) {
	tests := []struct {
		format, out string
		want        eventtree.Format
		wantErr     bool
	}{
		{"", "", eventtree.FormatDOT, false},
		{"", "tree.svg", eventtree.FormatSVG, false},
		{"", "tree.PNG", eventtree.FormatPNG, false},
		{"dot", "tree.png", eventtree.FormatDOT, false},
		{"", "tree.jpg", "", true},
		{"gif", "", "", true},
	}
	for _, tt := range tests {
		got, err := graphOutputFormat(tt.format, tt.out)
		if tt.wantErr {
			assert.Error(t, err, "%q %q", tt.format, tt.out)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FTLVIEW_DATA", "")
	t.Setenv("FTLVIEW_IMAGES", "")

	dataSource, imageRoot, themeName, noSixel = "https://example.com/full-data.json", "/tmp/ftl", "hull", true
	defer func() { dataSource, imageRoot, themeName, noSixel = "", "", "", false }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/full-data.json", cfg.DataSource)
	assert.Equal(t, "/tmp/ftl", cfg.ImageRoot)
	assert.Equal(t, "hull", cfg.Theme)
	assert.False(t, cfg.Sixel)
}

type failingFile struct {
	writeErr, closeErr error
	closed             bool
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *failingFile) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteBufferedReportsFlushAndCloseErrors(t *testing.T) {
	diskFull := errors.New("no space left on device")
	small := func(w io.Writer) error {
		_, err := io.WriteString(w, "digraph {}")
		return err
	}

	f := &failingFile{writeErr: diskFull}
	err := writeBuffered(f, small)
	assert.ErrorIs(t, err, diskFull, "buffered data is only written on flush")
	assert.True(t, f.closed)

	f = &failingFile{closeErr: diskFull}
	assert.ErrorIs(t, writeBuffered(f, small), diskFull)

	renderErr := errors.New("layout failed")
	f = &failingFile{closeErr: diskFull}
	err = writeBuffered(f, func(io.Writer) error { return renderErr })
	assert.ErrorIs(t, err, renderErr)
	assert.True(t, f.closed)
}

func TestWriteGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.dot")
	require.NoError(t, writeGraphFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "digraph {}")
		return err
	}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "digraph {}", string(b))

	assert.Error(t, writeGraphFile(filepath.Join(t.TempDir(), "missing", "tree.dot"), func(io.Writer) error { return nil }))
}
