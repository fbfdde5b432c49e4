package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hinode/setting-sun/game/engine"
	"github.com/hinode/setting-sun/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Setting Sun Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Setting Sun sliding-block puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

PUZZLE OBJECTIVE:
A 4x5 grid holds ten rigid pieces. Slide pieces one cell at a time to free
the 2x2 sun piece, then slide the sun down through the two-cell gap in the
bottom edge to win.

AVAILABLE TOOLS:
- create_session: Start a new puzzle
- get_board: See the current board
- legal_moves: Which directions a piece may slide
- move: Slide a piece one cell (up/down/left/right)
- reset_game: Restore the initial layout
- move_log: Review past moves
- list_sessions: List active puzzles

Pieces are identified by integer IDs shown on the board. A move that would
leave the grid or overlap another piece is rejected with accepted=false.`),
	)

	c.registerTools()
}

// registerTools registers every puzzle tool with the MCP server
func (c *Client) registerTools() {
	sessionProp := map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
	pieceProp := map[string]interface{}{
		"type":        "integer",
		"description": "Piece ID as shown on the board",
	}

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new Setting Sun puzzle session",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_board",
		Description: "Get the current board for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "Report which directions a piece may slide on the current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"piece_id":   pieceProp,
			},
			Required: []string{"session_id", "piece_id"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide a piece one cell in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"piece_id":   pieceProp,
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to slide",
				},
			},
			Required: []string{"session_id", "piece_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the puzzle to the initial layout",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_log",
		Description: "Get the move log for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveLog)
}

// GetMCPServer returns the underlying MCP server for HTTP mounting
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// apiCall performs an HTTP request against the REST API
func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var info service.SessionInfo
	if err := c.apiCall("POST", "/api/sessions", map[string]string{}, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\n\n%s", info.ID, formatBoard(info.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall("GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := "playing"
		if s.Board != nil && s.Board.Won {
			status = "solved"
		}
		result += fmt.Sprintf("- %s (%s, created %s)\n", s.ID, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var board service.BoardView
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/board", sessionID), nil, &board); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBoard(&board)), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	pieceID, _ := args["piece_id"].(float64)

	var moves service.LegalMovesResult
	path := fmt.Sprintf("/api/sessions/%s/pieces/%d/moves", sessionID, int(pieceID))
	if err := c.apiCall("GET", path, nil, &moves); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var legal []string
	for _, d := range engine.Directions {
		if moves.Directions[d] {
			legal = append(legal, string(d))
		}
	}
	if len(legal) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Piece %d cannot move", int(pieceID))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Piece %d can move: %s", int(pieceID), strings.Join(legal, ", "))), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	pieceID, _ := args["piece_id"].(float64)
	direction, _ := args["direction"].(string)

	body := map[string]interface{}{
		"piece_id":  int(pieceID),
		"direction": direction,
	}

	var result service.MoveResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var response string
	switch {
	case result.Won:
		response = fmt.Sprintf("WON! %s\n\n%s", result.Message, formatBoard(result.Board))
	case result.Accepted:
		response = fmt.Sprintf("Moved piece %d %s\n\n%s", int(pieceID), direction, formatBoard(result.Board))
	default:
		response = fmt.Sprintf("Rejected: %s\n\n%s", result.Message, formatBoard(result.Board))
	}
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string             `json:"message"`
		Board   *service.BoardView `json:"board"`
	}

	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatBoard(response.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}
	params = strings.TrimRight(params, "?&")

	var log service.LogResponse
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/log%s", sessionID, params), nil, &log); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Move log (%d total, page %d/%d):\n\n", log.TotalMoves, log.Page, log.TotalPages)
	for _, m := range log.Moves {
		outcome := "ok"
		if !m.Accepted {
			outcome = "rejected"
		}
		if m.Won {
			outcome = "WON"
		}
		result += fmt.Sprintf("%3d. piece %d %s (%d,%d)->(%d,%d) [%s]\n",
			m.MoveNumber, m.PieceID, m.Direction, m.From.X, m.From.Y, m.To.X, m.To.Y, outcome)
	}

	return mcp.NewToolResultText(result), nil
}

// formatBoard renders the board as ASCII art: each cell shows the digit of
// the piece covering it, '.' marks a free cell, and trailing lines note the
// exit span, the sun's position, and whether the puzzle is solved.
func formatBoard(board *service.BoardView) string {
	if board == nil {
		return "no board"
	}

	grid := make([][]byte, board.GridHeight)
	for y := range grid {
		grid[y] = bytes.Repeat([]byte{'.'}, board.GridWidth)
	}

	for _, p := range board.Pieces {
		ch := byte('0' + p.ID%10)
		for dy := 0; dy < p.Height; dy++ {
			for dx := 0; dx < p.Width; dx++ {
				x, y := p.X+dx, p.Y+dy
				if y >= 0 && y < board.GridHeight && x >= 0 && x < board.GridWidth {
					grid[y][x] = ch
				}
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf("exit under columns %d-%d", board.Exit.X, board.Exit.X+1))
	if board.Won {
		sb.WriteString("\nSOLVED: the sun has left the board")
	}
	for _, p := range board.Pieces {
		if p.Sun {
			sb.WriteString(fmt.Sprintf("\nsun: piece %d at (%d,%d)", p.ID, p.X, p.Y))
			break
		}
	}
	return sb.String()
}
