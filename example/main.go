package main

import (
	"os"

	"github.com/mgnsk/josephus"
)

func main() {
	roster := os.Args[1:]
	if len(roster) == 0 {
		roster = []string{"Ann", "Bob", "Cid", "Dee", "Eve", "Fay", "Gus"}
	}

	circle, err := josephus.FromSlice(roster)
	if err != nil {
		panic(err)
	}

	winner, err := circle.Eliminate(func(name string) {
		println("eliminated:", name)
	})
	if err != nil {
		panic(err)
	}

	println("winner:", winner)
}
