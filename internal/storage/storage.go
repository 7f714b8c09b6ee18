package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessrules/internal/game"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	gamePrefix     = "game/"
)

// ErrGameNotFound is returned when no game is saved under a name.
var ErrGameNotFound = errors.New("saved game not found")

// PlayerColor represents which color the human plays
type PlayerColor int

const (
	ColorWhite PlayerColor = iota
	ColorBlack
)

// String returns "white" or "black".
func (c PlayerColor) String() string {
	if c == ColorBlack {
		return "black"
	}
	return "white"
}

// ParsePlayerColor accepts "white"/"w" and "black"/"b".
func ParsePlayerColor(s string) (PlayerColor, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return ColorWhite, nil
	case "black", "b":
		return ColorBlack, nil
	}
	return ColorWhite, fmt.Errorf("invalid color %q", s)
}

// Preferences stores user settings
type Preferences struct {
	Username        string      `json:"username"`
	HumanColor      PlayerColor `json:"human_color"`
	OpponentEnabled bool        `json:"opponent_enabled"`
	Promotion       string      `json:"promotion"` // default answer to the promotion prompt
	Seed            int64       `json:"seed"`      // 0 = seed from the clock
	LastPlayed      time.Time   `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		Username:        "Player",
		HumanColor:      ColorWhite,
		OpponentEnabled: true,
		Promotion:       "q",
		LastPlayed:      time.Now(),
	}
}

// GameStats stores game statistics
type GameStats struct {
	GamesPlayed   int            `json:"games_played"`
	Wins          int            `json:"wins"`
	Losses        int            `json:"losses"`
	Abandoned     int            `json:"abandoned"`
	ChecksGiven   int            `json:"checks_given"`
	WinsByColor   map[string]int `json:"wins_by_color"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByColor: make(map[string]int),
	}
}

// GameResult represents the result of a finished or abandoned game
type GameResult struct {
	Won         bool
	Finished    bool // false if the player quit before the game ended
	HumanColor  PlayerColor
	ChecksGiven int
	Duration    time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	_, err := s.getJSON(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.putJSON(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	_, err := s.getJSON(keyStats, stats)
	return stats, err
}

// RecordGame records a game and updates statistics
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration
	stats.ChecksGiven += result.ChecksGiven

	switch {
	case !result.Finished:
		stats.Abandoned++
	case result.Won:
		stats.Wins++
		stats.WinsByColor[result.HumanColor.String()]++
	default:
		stats.Losses++
	}

	return s.SaveStats(stats)
}

// GetWinRate returns the win rate over finished games as a percentage (0-100)
func (s *GameStats) GetWinRate() float64 {
	finished := s.GamesPlayed - s.Abandoned
	if finished <= 0 {
		return 0
	}
	return float64(s.Wins) / float64(finished) * 100
}

// SaveGame stores a game snapshot under name, replacing any earlier save.
func (s *Storage) SaveGame(name string, snap game.Snapshot) error {
	if name == "" {
		return fmt.Errorf("save game: empty name")
	}
	return s.putJSON(gamePrefix+name, snap)
}

// LoadGame returns the snapshot saved under name.
func (s *Storage) LoadGame(name string) (game.Snapshot, error) {
	var snap game.Snapshot
	found, err := s.getJSON(gamePrefix+name, &snap)
	if err != nil {
		return snap, err
	}
	if !found {
		return snap, fmt.Errorf("%w: %s", ErrGameNotFound, name)
	}
	return snap, nil
}

// DeleteGame removes a saved game. Deleting a missing game is not an error.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gamePrefix + name))
	})
}

// ListGames returns the names of all saved games, sorted.
func (s *Storage) ListGames() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, gamePrefix))
		}
		return nil
	})

	sort.Strings(names)
	return names, err
}

func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON decodes the value under key into v. A missing key leaves v as is
// and reports found=false.
func (s *Storage) getJSON(key string, v any) (found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}
