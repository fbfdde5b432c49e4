package mcp

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hinode/setting-sun/api"
	"github.com/hinode/setting-sun/game/engine"
	"github.com/hinode/setting-sun/game/service"
	"github.com/hinode/setting-sun/game/session"
	"github.com/hinode/setting-sun/transport/websocket"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	hub := websocket.NewHub()
	go hub.Run()
	apiServer := api.NewServer(service.NewGameService(session.NewManager()), hub)
	httpServer := httptest.NewServer(apiServer)
	t.Cleanup(httpServer.Close)

	return NewClient(httpServer.URL)
}

func callTool(t *testing.T, client *Client, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]interface{}) string {
	t.Helper()

	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handler(context.Background(), request)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("handler returned no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

// sessionIDFromCreate extracts the 4-character session ID from the
// create_session tool output.
func sessionIDFromCreate(t *testing.T, text string) string {
	t.Helper()

	const prefix = "Created session: "
	idx := strings.Index(text, prefix)
	if idx < 0 {
		t.Fatalf("create output missing session ID: %q", text)
	}
	rest := text[idx+len(prefix):]
	end := strings.IndexByte(rest, '\n')
	if end < 0 {
		end = len(rest)
	}
	return rest[:end]
}

func TestCreateSessionTool(t *testing.T) {
	client := newTestClient(t)

	text := callTool(t, client, client.handleCreateSession, map[string]interface{}{})
	if !strings.Contains(text, "Created session:") {
		t.Errorf("output = %q", text)
	}
	// The fresh board renders with both exit cells free.
	if !strings.Contains(text, "8..9") {
		t.Errorf("board render missing bottom row, output = %q", text)
	}
	if !strings.Contains(text, "sun: piece 1 at (1,0)") {
		t.Errorf("board render missing sun marker, output = %q", text)
	}
}

func TestMoveTool(t *testing.T) {
	client := newTestClient(t)

	created := callTool(t, client, client.handleCreateSession, map[string]interface{}{})
	id := sessionIDFromCreate(t, created)

	text := callTool(t, client, client.handleMove, map[string]interface{}{
		"session_id": id,
		"piece_id":   float64(6),
		"direction":  "down",
	})
	if !strings.Contains(text, "Moved piece 6 down") {
		t.Errorf("output = %q", text)
	}

	// Blocked slides report rejection rather than erroring.
	text = callTool(t, client, client.handleMove, map[string]interface{}{
		"session_id": id,
		"piece_id":   float64(0),
		"direction":  "up",
	})
	if !strings.Contains(text, "Rejected") {
		t.Errorf("output = %q", text)
	}
}

func TestLegalMovesTool(t *testing.T) {
	client := newTestClient(t)

	created := callTool(t, client, client.handleCreateSession, map[string]interface{}{})
	id := sessionIDFromCreate(t, created)

	text := callTool(t, client, client.handleLegalMoves, map[string]interface{}{
		"session_id": id,
		"piece_id":   float64(8),
	})
	if !strings.Contains(text, "right") {
		t.Errorf("output = %q", text)
	}

	text = callTool(t, client, client.handleLegalMoves, map[string]interface{}{
		"session_id": id,
		"piece_id":   float64(1),
	})
	if !strings.Contains(text, "cannot move") {
		t.Errorf("output = %q", text)
	}
}

func TestResetTool(t *testing.T) {
	client := newTestClient(t)

	created := callTool(t, client, client.handleCreateSession, map[string]interface{}{})
	id := sessionIDFromCreate(t, created)

	callTool(t, client, client.handleMove, map[string]interface{}{
		"session_id": id,
		"piece_id":   float64(6),
		"direction":  "down",
	})

	text := callTool(t, client, client.handleReset, map[string]interface{}{
		"session_id": id,
	})
	if !strings.Contains(text, "reset") {
		t.Errorf("output = %q", text)
	}
}

func TestFormatBoard(t *testing.T) {
	board := &service.BoardView{
		GridWidth:  4,
		GridHeight: 5,
		Exit:       engine.Position{X: 1, Y: 3},
		Pieces: []service.PieceView{
			{ID: 1, Shape: engine.SunSquare, X: 1, Y: 0, Width: 2, Height: 2, Sun: true},
			{ID: 8, Shape: engine.Square, X: 0, Y: 4, Width: 1, Height: 1},
		},
	}

	text := formatBoard(board)
	if !strings.Contains(text, ".11.") {
		t.Errorf("render missing sun rows: %q", text)
	}
	if !strings.Contains(text, "8...") {
		t.Errorf("render missing bottom row: %q", text)
	}
	if !strings.Contains(text, "exit under columns 1-2") {
		t.Errorf("render missing exit note: %q", text)
	}

	if got := formatBoard(nil); got != "no board" {
		t.Errorf("formatBoard(nil) = %q", got)
	}
}
