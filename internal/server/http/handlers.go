package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler() *Handler {
	return &Handler{games: game.NewManager()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/move":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleMove(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/legal_moves":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleLegalMoves(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	st := h.games.NewGame()
	writeJSON(w, NewGameResponse{
		GameID:   st.ID,
		Position: st.G.Encode(),
		ToMove:   sideToString(st.G.TurnSide()),
		Hash:     st.G.Hash,
	})
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	st, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	st.Lock()
	defer st.Unlock()

	res, err := st.G.RequestMove(req.From, req.To)
	resp := MoveResponse{
		Position: st.G.Encode(),
		ToMove:   sideToString(st.G.TurnSide()),
		Status:   outcomeToString(st.G.Result()),
		Hash:     st.G.Hash,
	}
	if err != nil {
		// 规则层的拒绝都是提示性的，局面没动，照常返回给前端显示
		resp.Error = err.Error()
		writeJSON(w, resp)
		return
	}

	_ = h.games.Touch(req.GameID)
	resp.Pass = res.Pass
	resp.Captured = kindToString(res.Captured)
	resp.Check = res.Check
	resp.Checkmate = res.Checkmate
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	st, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	st.Lock()
	defer st.Unlock()

	writeJSON(w, StateResponse{
		Position: st.G.Encode(),
		ToMove:   sideToString(st.G.TurnSide()),
		Status:   outcomeToString(st.G.Result()),
		InCheck:  st.G.InCheck(st.G.TurnSide()),
		Hash:     st.G.Hash,
	})
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	st, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	st.Lock()
	defer st.Unlock()

	dests, err := st.G.LegalDestinations(req.Square)
	if err != nil {
		if errors.Is(err, janggi.ErrBadNotation) {
			http.Error(w, "invalid square", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if dests == nil {
		dests = []string{}
	}
	writeJSON(w, LegalMovesResponse{Destinations: dests})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
