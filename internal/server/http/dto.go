package httpserver

import "janggi/internal/janggi"

// NewGame 返回：新开对局的 id 和初始局面
type NewGameResponse struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"` // FEN 字符串
	ToMove   string `json:"to_move"`  // "red" / "blue"
	Hash     uint64 `json:"hash"`
}

// Move 请求：坐标用 "a1".."i10"，from==to 表示停一手
type MoveRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// Move 返回。规则拒绝不是 HTTP 错误：Error 带上原因，前端直接显示
type MoveResponse struct {
	Position  string `json:"position"`
	ToMove    string `json:"to_move"`
	Status    string `json:"status"` // "ongoing" / "red_won" / "blue_won"
	Pass      bool   `json:"pass,omitempty"`
	Captured  string `json:"captured,omitempty"`
	Check     bool   `json:"check,omitempty"`
	Checkmate bool   `json:"checkmate,omitempty"`
	Hash      uint64 `json:"hash"`
	Error     string `json:"error,omitempty"`
}

// State 请求：前端刷新时用 game_id 要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	Position string `json:"position"`
	ToMove   string `json:"to_move"`
	Status   string `json:"status"`
	InCheck  bool   `json:"in_check"` // 轮到走的一方是否被将军
	Hash     uint64 `json:"hash"`
}

// LegalMoves 请求：前端点一个格子，要它能走到哪（画提示点用）
type LegalMovesRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

type LegalMovesResponse struct {
	Destinations []string `json:"destinations"`
}

func sideToString(s janggi.Side) string {
	switch s {
	case janggi.Red:
		return "red"
	case janggi.Blue:
		return "blue"
	default:
		return ""
	}
}

func outcomeToString(o janggi.Outcome) string {
	switch o {
	case janggi.RedWon:
		return "red_won"
	case janggi.BlueWon:
		return "blue_won"
	default:
		return "ongoing"
	}
}

func kindToString(k janggi.PieceKind) string {
	switch k {
	case janggi.KindGeneral:
		return "general"
	case janggi.KindGuard:
		return "guard"
	case janggi.KindHorse:
		return "horse"
	case janggi.KindElephant:
		return "elephant"
	case janggi.KindChariot:
		return "chariot"
	case janggi.KindCannon:
		return "cannon"
	case janggi.KindSoldier:
		return "soldier"
	default:
		return ""
	}
}
