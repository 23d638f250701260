package mcpserver

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeleft/timeleft/internal/utils"
	"github.com/timeleft/timeleft/pkg/progress"
	"github.com/timeleft/timeleft/pkg/widget"
)

// connectTestClient wires a client session to the server over in-memory
// transports, pinned at Sunday 2025-06-15 12:00:00 UTC.
func connectTestClient(t *testing.T) *mcp.ClientSession {
	t.Helper()

	clock := &utils.MockClock{FixedNow: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	server := New(progress.NewService(clock), widget.NewStore(""), nil, "https://widgets.example.com")

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.mcp.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

func TestToolIsListedWithWidgetMeta(t *testing.T) {
	session := connectTestClient(t)

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)

	tool := tools.Tools[0]
	assert.Equal(t, "get_time_remaining", tool.Name)
	assert.Equal(t, TemplateURI, tool.Meta["openai/outputTemplate"])
	assert.Equal(t, true, tool.Meta["openai/widgetAccessible"])
	require.NotNil(t, tool.Annotations)
	assert.True(t, tool.Annotations.ReadOnlyHint)
}

func TestCallToolReturnsSnapshot(t *testing.T) {
	session := connectTestClient(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_time_remaining",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "50.0% of today remains")
	assert.Contains(t, text.Text, "2025.")

	structured, ok := result.StructuredContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2025-06-15T12:00:00Z", structured["timestamp"])

	day, ok := structured["day"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Today", day["label"])
	assert.Equal(t, 50.0, day["elapsed"])
	assert.Equal(t, 50.0, day["remaining"])
	assert.Equal(t, "Sunday, June 15", day["detail"])

	for _, key := range []string{"day", "week", "month", "year"} {
		window, ok := structured[key].(map[string]any)
		require.True(t, ok, "missing window %s", key)
		for _, field := range []string{"label", "elapsed", "remaining", "detail"} {
			assert.Contains(t, window, field, "window %s", key)
		}
	}

	assert.Equal(t, TemplateURI, result.Meta["openai/outputTemplate"])
}

func TestReadWidgetResource(t *testing.T) {
	session := connectTestClient(t)

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: TemplateURI})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	contents := result.Contents[0]
	assert.Equal(t, TemplateURI, contents.URI)
	assert.Equal(t, "text/html+skybridge", contents.MIMEType)
	assert.Contains(t, contents.Text, "<!DOCTYPE html>")
	assert.Contains(t, contents.Text, "window.openai")
}

func TestReadUnknownResourceFails(t *testing.T) {
	session := connectTestClient(t)

	_, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: "ui://widget/other.html"})

	assert.Error(t, err)
}

func TestUnknownToolFails(t *testing.T) {
	session := connectTestClient(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_time_elapsed",
		Arguments: map[string]any{},
	})

	// the SDK rejects unknown tools either as a protocol error or as an
	// error result; both are failures visible to the caller
	rejected := err != nil || (result != nil && result.IsError)
	require.True(t, rejected, "unknown tool must be rejected, got result=%+v err=%v", result, err)
}
