package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessrules/internal/console"
	"github.com/hailam/chessrules/internal/engine"
	"github.com/hailam/chessrules/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	dbDir      = flag.String("db", "", "database directory (default: platform data dir)")
	memDB      = flag.Bool("memdb", false, "keep the database in memory only")
	seed       = flag.Int64("seed", 0, "engine random seed (0 = from preferences, then clock)")
	human      = flag.String("human", "", "color the human plays: white or black")
	noEngine   = flag.Bool("no-engine", false, "do not let the engine reply automatically")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	store, err := openStorage()
	if err != nil {
		log.Printf("Warning: database not available: %v (save/load disabled)", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	prefs := loadPreferences(store)
	if *human != "" {
		c, err := storage.ParsePlayerColor(*human)
		if err != nil {
			log.Fatal(err)
		}
		prefs.HumanColor = c
	}
	if *noEngine {
		prefs.OpponentEnabled = false
	}

	engineSeed := *seed
	if engineSeed == 0 {
		engineSeed = prefs.Seed
	}
	eng := engine.NewEngine(engineSeed)

	c := console.New(eng, store, prefs, os.Stdin, os.Stdout)
	c.Run()

	if store != nil {
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
	}
}

// openStorage opens the database named by the flags.
func openStorage() (*storage.Storage, error) {
	switch {
	case *memDB:
		return storage.OpenInMemory()
	case *dbDir != "":
		return storage.Open(*dbDir)
	default:
		return storage.NewStorage()
	}
}

// loadPreferences returns stored preferences, or defaults without a database.
func loadPreferences(store *storage.Storage) *storage.Preferences {
	if store == nil {
		return storage.DefaultPreferences()
	}
	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Failed to load preferences: %v (using defaults)", err)
		return storage.DefaultPreferences()
	}
	return prefs
}
