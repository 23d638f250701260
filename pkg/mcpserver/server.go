package mcpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timeleft/timeleft/internal/metrics"
	"github.com/timeleft/timeleft/pkg/progress"
	"github.com/timeleft/timeleft/pkg/widget"
)

const (
	serverName    = "time-left"
	serverVersion = "1.0.0"

	toolName        = "get_time_remaining"
	toolDescription = "Use this when the user asks how much time is left in the day, week, month, " +
		"or year, or asks about time remaining, time progress, or similar questions about elapsed time."

	// TemplateURI identifies the widget document rendered by the host.
	TemplateURI = "ui://widget/main.html"

	widgetName        = "Time Left Widget"
	widgetDescription = "Progress bar visualization for time remaining"
	widgetMIMEType    = "text/html+skybridge"
)

// Server exposes the time-window calculator as an MCP tool together with the
// widget resource that renders its output.
type Server struct {
	mcp             *mcp.Server
	progressService progress.Service
	widgetStore     *widget.Store
	metrics         *metrics.Provider
	widgetDomain    string
}

func New(
	progressService progress.Service,
	widgetStore *widget.Store,
	metricsProvider *metrics.Provider,
	widgetDomain string,
) *Server {
	s := &Server{
		progressService: progressService,
		widgetStore:     widgetStore,
		metrics:         metricsProvider,
		widgetDomain:    widgetDomain,
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        toolName,
		Title:       "Get Time Remaining",
		Description: toolDescription,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
		Meta: s.widgetMeta(),
	}, s.getTimeRemaining)

	srv.AddResource(&mcp.Resource{
		Name:        widgetName,
		URI:         TemplateURI,
		Description: widgetDescription,
		MIMEType:    widgetMIMEType,
		Meta:        s.widgetMeta(),
	}, s.readWidgetResource)

	srv.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        widgetName,
		URITemplate: TemplateURI,
		Description: widgetDescription,
		MIMEType:    widgetMIMEType,
		Meta:        s.widgetMeta(),
	}, s.readWidgetResource)

	s.mcp = srv
	return s
}

// HTTPHandler serves the MCP protocol over stateless streamable HTTP,
// answering plain JSON instead of SSE streams.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, &mcp.StreamableHTTPOptions{
		Stateless:    true,
		JSONResponse: true,
	})
}

// RunStdio serves the MCP protocol over stdin/stdout and blocks until the
// client disconnects or ctx is cancelled.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) getTimeRemaining(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	snapshot := s.progressService.CurrentSnapshot()
	s.metrics.RecordToolCall(toolName)

	summary := fmt.Sprintf(
		"Here's your time progress: %.1f%% of today remains, %.1f%% of this week, %.1f%% of this month, and %.1f%% of %s.",
		snapshot.Day.Remaining,
		snapshot.Week.Remaining,
		snapshot.Month.Remaining,
		snapshot.Year.Remaining,
		snapshot.Year.Detail,
	)

	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: summary}},
		StructuredContent: snapshot,
		Meta:              s.widgetMeta(),
	}, nil, nil
}

func (s *Server) readWidgetResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if req.Params.URI != TemplateURI {
		return nil, fmt.Errorf("unknown resource: %s", req.Params.URI)
	}

	html, err := s.widgetStore.HTML()
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      TemplateURI,
				MIMEType: widgetMIMEType,
				Text:     html,
				Meta:     s.widgetMeta(),
			},
		},
	}, nil
}

// widgetMeta carries the host directives that bind the tool output to the
// widget template. The CSP lists are empty: the widget makes no API calls and
// inlines all of its assets.
func (s *Server) widgetMeta() mcp.Meta {
	return mcp.Meta{
		"openai/outputTemplate":   TemplateURI,
		"openai/widgetAccessible": true,
		"openai/widgetCSP": map[string]any{
			"connect_domains":  []string{},
			"resource_domains": []string{},
		},
		"openai/widgetDomain": s.widgetDomain,
	}
}

func boolPtr(b bool) *bool {
	return &b
}
