package game

import (
	"sync"
	"time"

	"janggi/internal/janggi"
)

// GameState 一局对局。Manager 的锁只管对局表，
// 对 G 的读写都要先拿这把锁，不然并发 move/state 会看到写了一半的盘面。
type GameState struct {
	sync.Mutex

	ID        string
	G         *janggi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}
