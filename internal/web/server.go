package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/peterkuimelis/locm/internal/game"
	"github.com/peterkuimelis/locm/internal/log"
	locmnet "github.com/peterkuimelis/locm/internal/net"
)

// maxSnapshotBytes bounds a single submitted turn snapshot.
const maxSnapshotBytes = 64 << 10

// Server hosts games over websockets: each socket is one game and each
// text message on it is one turn snapshot.
type Server struct {
	engine locmnet.EngineFactory
	bonus  float64
	logger *slog.Logger
	games  *registry
	mux    *http.ServeMux
}

// NewServer creates a server whose games are built from cfg.
func NewServer(cfg game.EngineConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine: locmnet.NewEngineFactory(cfg),
		bonus:  cfg.AbilityBonus,
		logger: logger,
		games:  newRegistry(),
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.mux.HandleFunc("GET /api/games", s.handleGames)
	s.mux.HandleFunc("POST /api/score", s.handleScore)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts the HTTP server and stops it when ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	stop := context.AfterFunc(ctx, func() { srv.Close() })
	defer stop()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.games.list())
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err))
		return
	}
	ts, err := game.ParseTurn(string(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err))
		return
	}
	writeJSON(w, http.StatusOK, locmnet.ScoreHand(ts, s.bonus))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Error("websocket accept", "error", err)
		return
	}
	defer wsConn.CloseNow()
	wsConn.SetReadLimit(maxSnapshotBytes)

	ctx := r.Context()
	id := newGameID()
	logger := s.logger.With("game", id)
	eng := s.engine(log.NewSlogLogger(logger))
	s.games.put(id, eng.Snapshot())
	defer s.games.remove(id)
	logger.Info("game started", "remote", r.RemoteAddr)

	for {
		typ, data, err := wsConn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				logger.Info("game finished", "turns", eng.Turn())
			} else {
				logger.Info("websocket read ended", "turns", eng.Turn(), "error", err)
			}
			return
		}
		if typ != websocket.MessageText {
			wsConn.Close(websocket.StatusUnsupportedData, "expected text snapshot")
			return
		}

		ts, err := game.ParseTurn(string(data))
		if err != nil {
			logger.Error("bad snapshot", "turn", eng.Turn()+1, "error", err)
			_ = wsjson.Write(ctx, wsConn, errorBody(err))
			wsConn.Close(websocket.StatusPolicyViolation, "malformed snapshot")
			return
		}

		res := locmnet.PlaySnapshot(eng, ts)
		s.games.put(id, eng.Snapshot())
		if err := wsjson.Write(ctx, wsConn, res); err != nil {
			logger.Error("websocket write", "error", err)
			return
		}
	}
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": fmt.Sprint(err)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
