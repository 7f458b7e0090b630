package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marktext/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Blocks())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_SetVerdict(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetVerdict(domain.PasteMarkdown, 3)

	assert.Equal(t, StateAnalysed, bar.State())
	assert.Equal(t, domain.PasteMarkdown, bar.Mode())
	assert.Equal(t, 3, bar.Blocks())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetVerdict(domain.PastePlain, 2)
	bar.SetState(StateError)
	bar.SetMessage("failed")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, domain.PasteMode(""), bar.Mode())
	assert.Equal(t, 0, bar.Blocks())
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Bar)
		contains []string
	}{
		{
			name:     "ready",
			setup:    func(*Bar) {},
			contains: []string{"Ready", "analyse", "quit"},
		},
		{
			name:     "analysing",
			setup:    func(b *Bar) { b.SetState(StateAnalysing) },
			contains: []string{"Analysing"},
		},
		{
			name:     "markdown verdict",
			setup:    func(b *Bar) { b.SetVerdict(domain.PasteMarkdown, 2) },
			contains: []string{"markdown", "2 blocks", "save"},
		},
		{
			name:     "plain verdict",
			setup:    func(b *Bar) { b.SetVerdict(domain.PastePlain, 1) },
			contains: []string{"plain", "1 blocks"},
		},
		{
			name: "saved",
			setup: func(b *Bar) {
				b.SetState(StateSaved)
				b.SetMessage("doc-1")
			},
			contains: []string{"Saved doc-1"},
		},
		{
			name:     "error",
			setup:    func(b *Bar) { b.SetState(StateError) },
			contains: []string{"Error"},
		},
		{
			name: "error with message",
			setup: func(b *Bar) {
				b.SetState(StateError)
				b.SetMessage("conversion failed")
			},
			contains: []string{"Error", "conversion failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(200)
			tt.setup(bar)

			view := bar.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestState_Constants(t *testing.T) {
	assert.Equal(t, State("ready"), StateReady)
	assert.Equal(t, State("analysing"), StateAnalysing)
	assert.Equal(t, State("analysed"), StateAnalysed)
	assert.Equal(t, State("saved"), StateSaved)
	assert.Equal(t, State("error"), StateError)
}
