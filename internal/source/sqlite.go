package source

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomaskoefod/devarticles/pkg/models"
	_ "modernc.org/sqlite"
)

const (
	variantPortrait  = "portrait"
	variantLandscape = "landscape"
)

type DB struct {
	*sql.DB
}

// openSQLite opens an existing snapshot database without creating it
func openSQLite(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dbPath)
	}
	return openDB(dbPath)
}

func openDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// initSchema creates the snapshot tables if they don't exist
func (db *DB) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY,
			author TEXT NOT NULL,
			title TEXT NOT NULL,
			date_added TEXT NOT NULL,
			likes INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS card_images (
			card_id INTEGER NOT NULL,
			variant TEXT NOT NULL CHECK (variant IN ('portrait', 'landscape')),
			position INTEGER NOT NULL,
			url TEXT NOT NULL,
			PRIMARY KEY (card_id, variant, position),
			FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
		);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// LoadSQLite reads every card from a snapshot database, ordered by id
func LoadSQLite(dbPath string) ([]models.Card, error) {
	db, err := openSQLite(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.Cards()
}

// Cards retrieves all cards with their images
func (db *DB) Cards() ([]models.Card, error) {
	rows, err := db.Query("SELECT id, author, title, date_added, likes FROM cards ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	cards := []models.Card{}
	index := map[int64]int{}
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(&card.ID, &card.Author, &card.Title, &card.DateAdded, &card.Likes); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		index[card.ID] = len(cards)
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}

	if err := db.attachImages(cards, index); err != nil {
		return nil, err
	}

	return cards, nil
}

func (db *DB) attachImages(cards []models.Card, index map[int64]int) error {
	rows, err := db.Query("SELECT card_id, variant, url FROM card_images ORDER BY card_id, variant, position")
	if err != nil {
		return fmt.Errorf("querying card images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cardID       int64
			variant, url string
		)
		if err := rows.Scan(&cardID, &variant, &url); err != nil {
			return fmt.Errorf("scanning card image: %w", err)
		}

		i, ok := index[cardID]
		if !ok {
			continue
		}
		switch variant {
		case variantPortrait:
			cards[i].Images.Portrait = append(cards[i].Images.Portrait, url)
		case variantLandscape:
			cards[i].Images.Landscape = append(cards[i].Images.Landscape, url)
		}
	}

	return rows.Err()
}

// WriteSQLiteSnapshot creates a snapshot database at dbPath holding cards.
// An existing file is refused rather than merged into.
func WriteSQLiteSnapshot(dbPath string, cards []models.Card) error {
	if _, err := os.Stat(dbPath); err == nil {
		return fmt.Errorf("snapshot %s already exists", dbPath)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	if err := writeSnapshot(dbPath, cards); err != nil {
		os.Remove(dbPath)
		return err
	}
	return nil
}

func writeSnapshot(dbPath string, cards []models.Card) error {
	db, err := openDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.initSchema(); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range cards {
		if err := addCard(tx, &cards[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// addCard inserts a card and its images
func addCard(tx *sql.Tx, card *models.Card) error {
	_, err := tx.Exec(
		"INSERT INTO cards (id, author, title, date_added, likes) VALUES (?, ?, ?, ?, ?)",
		card.ID, card.Author, card.Title, card.DateAdded, card.Likes,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %d", ErrDuplicateID, card.ID)
		}
		return fmt.Errorf("inserting card: %w", err)
	}

	images := map[string][]string{
		variantPortrait:  card.Images.Portrait,
		variantLandscape: card.Images.Landscape,
	}
	for variant, urls := range images {
		for pos, url := range urls {
			if _, err := tx.Exec(
				"INSERT INTO card_images (card_id, variant, position, url) VALUES (?, ?, ?, ?)",
				card.ID, variant, pos, url,
			); err != nil {
				return fmt.Errorf("inserting card image: %w", err)
			}
		}
	}

	return nil
}
