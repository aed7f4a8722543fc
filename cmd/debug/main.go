package main

import (
	"fmt"

	"janggi/internal/janggi"
)

func main() {
	g := janggi.NewGame()
	fmt.Print(g)
	fmt.Println("FEN:", g.Encode())

	total := 0
	for sq := 0; sq < janggi.NumSquares; sq++ {
		dests, err := g.LegalDestinations(janggi.Notation(sq))
		if err != nil {
			panic(err)
		}
		total += len(dests)
	}
	fmt.Println("Legal destinations (both sides):", total)
}
