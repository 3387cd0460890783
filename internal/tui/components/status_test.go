package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ftlview/internal/theme"
)

func TestStatusText(t *testing.T) {
	th := theme.Current()

	loading := StatusText(StateLoading, 0, "", "", "q=Quit", th)
	assert.Contains(t, loading, "Loading sector data...")
	assert.Contains(t, loading, "| q=Quit")

	loaded := StatusText(StateLoaded, 42, "", "Quest event not found: X", "", th)
	assert.Contains(t, loaded, "42 sectors")
	assert.Contains(t, loaded, "Quest event not found: X")

	failed := StatusText(StateFailed, 0, "HTTP 404", "", "", th)
	assert.Contains(t, failed, "Error: HTTP 404")
	assert.Contains(t, failed, th.StatusColors().ErrorBg.String())
}

func TestStatusComponent(t *testing.T) {
	sc := NewStatusComponent()
	assert.Contains(t, sc.Text(), "Loading")

	sc.SetHelp("q=Quit h=Hide common")
	sc.SetLoaded(3)
	assert.Contains(t, sc.Text(), "3 sectors")
	assert.Contains(t, sc.Text(), "h=Hide common")

	sc.SetError(errors.New("boom"))
	assert.Contains(t, sc.Text(), "Error: boom")
}

func TestHeaderBarText(t *testing.T) {
	th := theme.Current()
	off := HeaderBarText(false, th)
	on := HeaderBarText(true, th)

	assert.Contains(t, off, AppTitle)
	assert.Contains(t, off, HideCommonLabel)
	assert.Contains(t, off, "[ []")
	assert.Contains(t, on, "[x[]")

	hc := NewHeaderComponent()
	hc.SetHideCommon(true)
	assert.Contains(t, hc.GetWrapper().GetText(false), "[x[]")
}
