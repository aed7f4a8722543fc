package janggi

import "errors"

// 所有拒绝理由都是可恢复的提示性错误，不会弄脏盘面，调用方换一步重试即可
var (
	ErrNoPieceToMove     = errors.New("no piece to move")
	ErrNotReachable      = errors.New("not a reachable square")
	ErrPathBlocked       = errors.New("path is blocked")
	ErrNoScreenPiece     = errors.New("cannon needs a piece to jump over")
	ErrTooManyScreens    = errors.New("cannon can only jump over one piece")
	ErrCannonScreen      = errors.New("cannon cannot jump over another cannon")
	ErrOwnPieceAtEnd     = errors.New("destination occupied by own piece")
	ErrCannonTakesCannon = errors.New("cannon cannot capture another cannon")
	ErrWrongSide         = errors.New("piece belongs to the other side")
	ErrSelfCheck         = errors.New("move would leave own general in check")
	ErrPassInCheck       = errors.New("cannot pass while general is in check")
	ErrGameOver          = errors.New("game is already over")
)

// findPath 在 from 上棋子的候选路径里找终点等于 to 的那条，
// 再用当前占位过滤：普通子路上必须全空，包必须恰好隔一个非包的炮架。
// 成功时返回整条路径（将军分析还要复用它）。不看轮次，也不管 from==to。
func (b *Board) findPath(from, to int) (Path, error) {
	pc := b.Squares[from]
	if pc == 0 {
		return nil, ErrNoPieceToMove
	}

	// 同一个终点至多只有一条几何路径，找到即停
	var path Path
	for _, p := range generatePaths(pc.Kind(), pc.Side(), from) {
		if p[len(p)-1] == to {
			path = p
			break
		}
	}
	if path == nil {
		return nil, ErrNotReachable
	}

	between := path[:len(path)-1]
	if pc.Kind() == KindCannon {
		screens := 0
		var screen Piece
		for _, sq := range between {
			if b.Squares[sq] != 0 {
				screens++
				screen = b.Squares[sq]
			}
		}
		if screens == 0 {
			return nil, ErrNoScreenPiece
		}
		if screens > 1 {
			return nil, ErrTooManyScreens
		}
		if screen.Kind() == KindCannon {
			return nil, ErrCannonScreen
		}
	} else {
		for _, sq := range between {
			if b.Squares[sq] != 0 {
				return nil, ErrPathBlocked
			}
		}
	}

	dst := b.Squares[to]
	if dst != 0 && dst.Side() == pc.Side() {
		return nil, ErrOwnPieceAtEnd
	}
	if pc.Kind() == KindCannon && dst.Kind() == KindCannon {
		return nil, ErrCannonTakesCannon
	}
	return path, nil
}
