package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/locm/internal/game"
	locmnet "github.com/peterkuimelis/locm/internal/net"
)

// RegisterTools adds all game tools to the MCP server.
func (g *Games) RegisterTools(s *server.MCPServer) {
	s.AddTool(newGameTool(), g.handleNewGame)
	s.AddTool(playTurnTool(), g.handlePlayTurn)
	s.AddTool(scoreCardsTool(), g.handleScoreCards)
	s.AddTool(getSessionTool(), g.handleGetSession)
	s.AddTool(endGameTool(), g.handleEndGame)
}

// --- Tool definitions ---

const snapshotHelp = "Turn snapshot in the host input format: own health mana deck runes, " +
	"opponent health mana deck runes, opponent hand size and card count, then one line per card " +
	"(number id location type cost attack defense abilities myHealth oppHealth draw)."

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Start a new game. The engine drafts for the configured number of turns, then fights. Returns the game id."),
		mcp.WithString("game_id", mcp.Description("Optional id for the game; generated when empty")),
	)
}

func playTurnTool() mcp.Tool {
	return mcp.NewTool("play_turn",
		mcp.WithDescription("Submit one turn snapshot to a running game and get the commands to send back, plus the reasoning events."),
		mcp.WithString("game_id", mcp.Required(), mcp.Description("Game id returned by new_game")),
		mcp.WithString("snapshot", mcp.Required(), mcp.Description(snapshotHelp)),
	)
}

func scoreCardsTool() mcp.Tool {
	return mcp.NewTool("score_cards",
		mcp.WithDescription("Score the hand of a snapshot as draft candidates without affecting any game. Read-only."),
		mcp.WithString("snapshot", mcp.Required(), mcp.Description(snapshotHelp)),
	)
}

func getSessionTool() mcp.Tool {
	return mcp.NewTool("get_session",
		mcp.WithDescription("Get the drafted deck, summoning sickness and phase of a running game. Read-only."),
		mcp.WithString("game_id", mcp.Required(), mcp.Description("Game id returned by new_game")),
	)
}

func endGameTool() mcp.Tool {
	return mcp.NewTool("end_game",
		mcp.WithDescription("Forget a game and return its full event log."),
		mcp.WithString("game_id", mcp.Required(), mcp.Description("Game id returned by new_game")),
	)
}

// --- Tool handlers ---

func (g *Games) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := g.Start(request.GetString("game_id", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(map[string]any{
		"game_id": sess.ID,
		"session": locmnet.BuildSessionView(sess.engine.Snapshot()),
	})), nil
}

func (g *Games) handlePlayTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("game_id", "")
	if id == "" {
		return mcp.NewToolResultError("game_id is required. Use new_game first."), nil
	}
	ts, err := game.ParseTurn(request.GetString("snapshot", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid snapshot: %v", err), nil
	}
	res, err := g.PlayTurn(id, ts)
	if err != nil {
		return mcp.NewToolResultErrorf("%v. Use new_game first.", err), nil
	}
	return mcp.NewToolResultText(respondJSON(res)), nil
}

func (g *Games) handleScoreCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ts, err := game.ParseTurn(request.GetString("snapshot", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid snapshot: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(locmnet.ScoreHand(ts, g.cfg.AbilityBonus))), nil
}

func (g *Games) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sv, err := g.Session(request.GetString("game_id", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(sv)), nil
}

func (g *Games) handleEndGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events, err := g.End(request.GetString("game_id", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(map[string]any{"events": events})), nil
}
