package view

import (
	"errors"
	"strings"
	"testing"

	"octofit/internal/api/apitest"
	"octofit/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, client *apitest.Client, route string) *model.Model {
	t.Helper()
	m, err := model.InitializeModel(model.TUIConfig{Client: client, InitialRoute: route}, nil)
	require.NoError(t, err)
	t.Cleanup(m.Shutdown)
	m.Resize(140, 40)
	return m
}

func load(t *testing.T, m *model.Model) {
	t.Helper()
	msg, ok := m.Refresh()().(model.FetchResultMsg)
	require.True(t, ok)
	m.ApplyFetchResult(msg)
}

func TestRender_WaitingForSize(t *testing.T) {
	m, err := model.InitializeModel(model.TUIConfig{Client: apitest.New()}, nil)
	require.NoError(t, err)
	defer m.Shutdown()
	assert.Contains(t, Render(m), "waiting for window size")
}

func TestRender_DashboardWithRows(t *testing.T) {
	m := newModel(t, apitest.New().WithBody("activities", `[{"id":1,"name":"Run"}]`), "")
	load(t, m)

	out := Render(m)
	assert.Contains(t, out, "OctoFit Tracker")
	for _, label := range []string{"Activities", "Leaderboard", "Teams", "Users", "Workouts"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "http://octofit.test/api/activities/")
	assert.Contains(t, out, "Refresh")
	assert.Contains(t, out, "Actions")
	assert.Contains(t, out, "Details")
	assert.Contains(t, out, "Run")
	assert.NotContains(t, out, "Unable to load")
	assert.NotContains(t, out, "No activities available.")
}

func TestRender_HeaderShowsRoute(t *testing.T) {
	m := newModel(t, apitest.New(), "leaderboard")
	header := strings.SplitN(Render(m), "\n", 2)[0]
	assert.Contains(t, header, "/leaderboard")
}

func TestRender_EmptyCollection(t *testing.T) {
	m := newModel(t, apitest.New().WithBody("activities", `{"results":[]}`), "")
	load(t, m)

	out := Render(m)
	assert.Contains(t, out, "No activities available.")
	assert.NotContains(t, out, "Unable to load")
}

func TestRender_ErrorBanner(t *testing.T) {
	m := newModel(t, apitest.New().WithError("leaderboard", errors.New("dial tcp: refused")), "/leaderboard")
	load(t, m)

	out := Render(m)
	assert.Contains(t, out, "Unable to load leaderboard.")
	assert.NotContains(t, out, "No leaderboard entries available.")
}

func TestRender_EmptyLeaderboard(t *testing.T) {
	m := newModel(t, apitest.New().WithBody("leaderboard", `[]`), "/leaderboard")
	load(t, m)

	out := Render(m)
	assert.Contains(t, out, "No leaderboard entries available.")
	assert.Contains(t, out, "Filter entries")
}

func TestRender_RefreshingLabelWhileLoading(t *testing.T) {
	m := newModel(t, apitest.New(), "teams")
	m.Viewer.BeginFetch()
	assert.Contains(t, Render(m), "Refreshing...")
}

func TestRender_DetailsOverlay(t *testing.T) {
	m := newModel(t, apitest.New().WithBody("workouts", `[{"id":1,"name":"Core"}]`), "workouts")
	load(t, m)
	require.NoError(t, m.Viewer.OpenDetails(0))
	m.DetailsViewport.SetContent(m.Viewer.DetailsBody())
	m.CurrentAppMode = model.ModeDetailsOverlay

	out := Render(m)
	assert.Contains(t, out, "Workout Details")
	assert.Contains(t, out, `"name": "Core"`)
	assert.Contains(t, out, "Esc close")
}

func TestRender_HelpOverlay(t *testing.T) {
	m := newModel(t, apitest.New(), "")
	m.CurrentAppMode = model.ModeHelpOverlay
	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "Clear filter")
}

func TestRender_LogOverlay(t *testing.T) {
	m := newModel(t, apitest.New(), "")
	m.CurrentAppMode = model.ModeLogOverlay
	m.ActivityLog = []string{"12:00:00 [INFO] [API] GET /api/activities/", "12:00:01 [ERROR] [API] boom"}
	m.ActivityLogDirty = true

	out := Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "GET /api/activities/")
	assert.False(t, m.ActivityLogDirty)
}

func TestPrepareLogContent(t *testing.T) {
	assert.Contains(t, PrepareLogContent(nil), "No activity yet.")

	out := PrepareLogContent([]string{"a [WARN] w", "b [DEBUG] d"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "w")
	assert.Contains(t, lines[1], "d")
}

func TestRender_StatusBarShowsFilter(t *testing.T) {
	m := newModel(t, apitest.New().WithBody("activities", `[{"t":"a"},{"t":"b"}]`), "")
	load(t, m)
	m.StatusBarMessage = ""
	m.Viewer.SetFilter("a")
	m.SyncTable()

	out := Render(m)
	assert.Contains(t, out, "Activities: 1/2")
	assert.Contains(t, out, `filter "a"`)
}
