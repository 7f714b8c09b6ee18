// ChessRules - play the rules engine in the terminal
package main

import (
	"flag"
	"log"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/engine"
	"github.com/hailam/chessrules/internal/storage"
	"github.com/hailam/chessrules/internal/tui"
)

var (
	human = flag.String("human", "", "color the human plays: white or black (default: saved preference)")
	seed  = flag.Int64("seed", 0, "engine random seed (0 = from preferences, then clock)")
)

func main() {
	flag.Parse()

	prefs := storage.DefaultPreferences()
	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: database not available: %v (using default preferences)", err)
	} else {
		defer store.Close()
		if p, err := store.LoadPreferences(); err != nil {
			log.Printf("Failed to load preferences: %v (using defaults)", err)
		} else {
			prefs = p
		}
	}

	if *human != "" {
		c, err := storage.ParsePlayerColor(*human)
		if err != nil {
			log.Fatal(err)
		}
		prefs.HumanColor = c
	}

	engineSeed := *seed
	if engineSeed == 0 {
		engineSeed = prefs.Seed
	}

	color := board.White
	if prefs.HumanColor == storage.ColorBlack {
		color = board.Black
	}

	if err := tui.Run(engine.NewEngine(engineSeed), color); err != nil {
		log.Fatal(err)
	}

	if store != nil {
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
	}
}
