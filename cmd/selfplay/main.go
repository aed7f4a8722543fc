package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"janggi/internal/janggi"
)

type candidate struct{ from, to string }

// 随机选合法步对下，拿来冒烟整条“校验→落子→将军分析”链路
func main() {
	maxMoves := flag.Int("maxmoves", 200, "max moves to play")
	seed := flag.Int64("seed", 1, "rng seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	g := janggi.NewGame()

	for i := 0; i < *maxMoves; i++ {
		moved := false
		// 会送将的步引擎会拒绝，换下一个候选就是
		for _, c := range shuffledCandidates(g, rng) {
			res, err := g.RequestMove(c.from, c.to)
			if err != nil {
				continue
			}
			log.Printf("move %d: %s->%s check=%v", i+1, c.from, c.to, res.Check)
			if res.Checkmate {
				log.Printf("checkmate, winner side %d", res.Winner)
				log.Println("final position:", g.Encode())
				os.Exit(0)
			}
			moved = true
			break
		}
		if !moved {
			log.Printf("no legal move for side %d at move %d", g.TurnSide(), i+1)
			break
		}
	}

	log.Println("final position:", g.Encode())
}

// 把当前一方所有几何上走得通的 (from, to) 收集起来打乱
func shuffledCandidates(g *janggi.Game, rng *rand.Rand) []candidate {
	var out []candidate

	grid := g.Grid()
	for r := 0; r < janggi.Rows; r++ {
		for c := 0; c < janggi.Cols; c++ {
			pc := grid[r][c]
			if pc == 0 || pc.Side() != g.TurnSide() {
				continue
			}
			from := janggi.Notation(r*janggi.Cols + c)
			dests, err := g.LegalDestinations(from)
			if err != nil {
				continue
			}
			for _, to := range dests {
				out = append(out, candidate{from, to})
			}
		}
	}

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
