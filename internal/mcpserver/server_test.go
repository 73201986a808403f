package mcpserver

import (
	"context"
	"errors"
	"testing"

	"octofit/internal/api/apitest"
	"octofit/internal/resource"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")
	return text.Text
}

func def(t *testing.T, name string) resource.Definition {
	t.Helper()
	d, ok := resource.Lookup(name)
	require.True(t, ok)
	return d
}

func TestNew_RegistersTools(t *testing.T) {
	s := New(apitest.New(), "1.0.0")
	require.NotNil(t, s.MCPServer())

	toolNames := make(map[string]bool)
	for _, tool := range s.Tools() {
		toolNames[tool.Name] = true
	}
	assert.Len(t, toolNames, len(resource.All())+1)
	for _, name := range resource.Names() {
		assert.True(t, toolNames[ToolPrefix+name], name)
	}
	assert.True(t, toolNames[EndpointsTool])
}

func TestListHandler(t *testing.T) {
	client := apitest.New().WithBody("activities", `{"results":[{"id":1,"type":"Run"},{"id":2,"type":"Swim"}]}`)
	s := New(client, "1.0.0")

	result, err := s.handleList(context.Background(), def(t, "activities"), callRequest("list_activities", nil))
	assert.NoError(t, err)
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, `"type": "Run"`)
	assert.Contains(t, text, `"type": "Swim"`)
}

func TestListHandler_KeepsHTMLCharacters(t *testing.T) {
	client := apitest.New().WithBody("users", `[{"name":"Tom & Jerry <R&D>"}]`)
	s := New(client, "1.0.0")

	result, err := s.handleList(context.Background(), def(t, "users"), callRequest("list_users", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), `"name": "Tom & Jerry <R&D>"`)
}

func TestListHandler_Filter(t *testing.T) {
	client := apitest.New().WithBody("teams", `[{"name":"Blue"},{"name":"Red"}]`)
	s := New(client, "1.0.0")

	result, err := s.handleList(context.Background(), def(t, "teams"), callRequest("list_teams", map[string]interface{}{
		"filter": "RED",
	}))
	assert.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Red")
	assert.NotContains(t, text, "Blue")

	result, err = s.handleList(context.Background(), def(t, "teams"), callRequest("list_teams", map[string]interface{}{
		"filter": "green",
	}))
	assert.NoError(t, err)
	assert.Equal(t, "[]", resultText(t, result))
}

func TestListHandler_Empty(t *testing.T) {
	s := New(apitest.New().WithBody("workouts", `[]`), "1.0.0")
	result, err := s.handleList(context.Background(), def(t, "workouts"), callRequest("list_workouts", nil))
	assert.NoError(t, err)
	assert.Equal(t, "No workouts available.", resultText(t, result))
}

func TestListHandler_Error(t *testing.T) {
	s := New(apitest.New().WithError("users", errors.New("connection refused")), "1.0.0")
	result, err := s.handleList(context.Background(), def(t, "users"), callRequest("list_users", nil))
	assert.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Unable to load users.")
}

func TestEndpointsHandler(t *testing.T) {
	s := New(apitest.New(), "1.0.0")
	result, err := s.handleEndpoints(context.Background(), callRequest(EndpointsTool, nil))
	assert.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, `"baseUrl": "http://octofit.test"`)
	assert.Contains(t, text, "http://octofit.test/api/leaderboard/")
}
