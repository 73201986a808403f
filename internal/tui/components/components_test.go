package components

import (
	"strings"
	"testing"

	"octofit/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHeader_Render(t *testing.T) {
	out := NewHeader("OctoFit Tracker").
		WithTabs([]string{"Activities", "Teams"}, 1).
		WithRightContent("v1").
		WithWidth(80).
		Render()

	assert.Contains(t, out, "OctoFit Tracker")
	assert.Contains(t, out, "Activities")
	assert.Contains(t, out, "Teams")
	assert.Contains(t, out, "v1")
	assert.LessOrEqual(t, lipgloss.Width(out), 80)
}

func TestHeader_DropsRightContentWhenNarrow(t *testing.T) {
	out := NewHeader("OctoFit Tracker").
		WithTabs([]string{"Activities", "Leaderboard", "Teams"}, 0).
		WithRightContent("http://localhost:8000").
		WithWidth(40).
		Render()
	assert.NotContains(t, out, "localhost")
}

func TestHeader_Spinner(t *testing.T) {
	out := NewHeader("Brand").WithSpinner("*").WithWidth(40).Render()
	assert.Contains(t, out, "*")
}

func TestStatusBar_Render(t *testing.T) {
	tests := []struct {
		name string
		bar  *StatusBar
		want []string
	}{
		{
			name: "left and right",
			bar:  NewStatusBar(80).WithLeftText("Teams: 2/2").WithRightText("http://localhost:8000"),
			want: []string{"Teams: 2/2", "http://localhost:8000"},
		},
		{
			name: "message replaces text",
			bar:  NewStatusBar(80).WithLeftText("left").WithMessage("Loaded 3 teams", model.StatusBarSuccess),
			want: []string{"Loaded 3 teams"},
		},
		{
			name: "empty message is ignored",
			bar:  NewStatusBar(80).WithLeftText("left").WithMessage("", model.StatusBarError),
			want: []string{"left"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.bar.Render()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.LessOrEqual(t, lipgloss.Width(out), 80)
		})
	}
}

func TestStatusBar_TruncatesLongText(t *testing.T) {
	out := NewStatusBar(20).WithLeftText(strings.Repeat("x", 50)).Render()
	assert.LessOrEqual(t, lipgloss.Width(out), 20)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
