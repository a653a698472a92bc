// seeder bootstraps the MatPredict schema and loads historical match data
// from CSV exports.
//
//	POSTGRES_URL='postgres://...' ./seeder -data ./data
//
// Expects wrestlers.csv (id,name,dob,hometown,high_school) and matches.csv
// (date,season_start_year,weight_class,wrestler1_id,wrestler2_id,
// wrestler1_score,wrestler2_score,winner_id,result_type,duration_seconds)
// in the data directory. Reference tables are seeded from built-in values.
package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS seasons (
		id BIGSERIAL PRIMARY KEY,
		start_year INT NOT NULL UNIQUE,
		end_year INT NOT NULL,
		start_date DATE,
		end_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS weight_classes (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS result_types (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS wrestlers (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		dob DATE,
		hometown TEXT,
		high_school TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id BIGSERIAL PRIMARY KEY,
		meet_id BIGINT,
		season_id BIGINT NOT NULL REFERENCES seasons(id),
		date DATE NOT NULL,
		weight_class_id BIGINT NOT NULL REFERENCES weight_classes(id),
		wrestler1_id BIGINT NOT NULL REFERENCES wrestlers(id),
		wrestler2_id BIGINT NOT NULL REFERENCES wrestlers(id),
		wrestler1_score INT,
		wrestler2_score INT,
		winner_id BIGINT NOT NULL REFERENCES wrestlers(id),
		result_type_id BIGINT NOT NULL REFERENCES result_types(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_wrestler1 ON matches (wrestler1_id, date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_wrestler2 ON matches (wrestler2_id, date DESC)`,
	`CREATE TABLE IF NOT EXISTS match_stats (
		match_id BIGINT PRIMARY KEY REFERENCES matches(id),
		duration_seconds INT NOT NULL
	)`,
}

var weightClasses = map[string]string{
	"125": "125 lbs", "133": "133 lbs", "141": "141 lbs", "149": "149 lbs",
	"157": "157 lbs", "165": "165 lbs", "174": "174 lbs", "184": "184 lbs",
	"197": "197 lbs", "285": "Heavyweight",
}

var resultTypes = map[string]string{
	"DEC":  "Decision",
	"MD":   "Major decision",
	"MAJ":  "Major decision",
	"TF":   "Technical fall",
	"TECH": "Technical fall",
	"PIN":  "Pin",
	"FALL": "Fall",
	"FF":   "Forfeit",
	"DQ":   "Disqualification",
	"INJ":  "Injury default",
}

func main() {
	dataDir := flag.String("data", "./data", "directory containing wrestlers.csv and matches.csv")
	flag.Parse()

	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Fatal("POSTGRES_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Failed to apply schema: %v", err)
		}
	}
	log.Println("Schema applied")

	for code, desc := range weightClasses {
		if _, err := db.Exec(`INSERT INTO weight_classes (code, description) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`, code, desc); err != nil {
			log.Fatalf("Failed to seed weight class %s: %v", code, err)
		}
	}
	for code, desc := range resultTypes {
		if _, err := db.Exec(`INSERT INTO result_types (code, description) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`, code, desc); err != nil {
			log.Fatalf("Failed to seed result type %s: %v", code, err)
		}
	}
	log.Println("Reference tables seeded")

	if n, err := loadWrestlers(db, filepath.Join(*dataDir, "wrestlers.csv")); err != nil {
		log.Fatalf("Failed to load wrestlers: %v", err)
	} else {
		log.Printf("Loaded %d wrestlers", n)
	}

	if n, err := loadMatches(db, filepath.Join(*dataDir, "matches.csv")); err != nil {
		log.Fatalf("Failed to load matches: %v", err)
	} else {
		log.Printf("Loaded %d matches", n)
	}
}

func loadWrestlers(db *sql.DB, path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, row := range rows {
		if len(row) < 5 {
			return count, fmt.Errorf("row %d: expected 5 columns, got %d", count+1, len(row))
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return count, fmt.Errorf("row %d: invalid id %q", count+1, row[0])
		}
		_, err = db.Exec(`
			INSERT INTO wrestlers (id, name, dob, hometown, high_school)
			VALUES ($1, $2, NULLIF($3, '')::date, NULLIF($4, ''), NULLIF($5, ''))
			ON CONFLICT (id) DO UPDATE SET
				name = $2, dob = NULLIF($3, '')::date,
				hometown = NULLIF($4, ''), high_school = NULLIF($5, '')`,
			id, row[1], row[2], row[3], row[4])
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func loadMatches(db *sql.DB, path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	count := 0
	for _, row := range rows {
		if len(row) < 10 {
			return count, fmt.Errorf("row %d: expected 10 columns, got %d", count+1, len(row))
		}

		startYear, err := strconv.Atoi(row[1])
		if err != nil {
			return count, fmt.Errorf("row %d: invalid season year %q", count+1, row[1])
		}
		var seasonID int64
		err = tx.QueryRow(`
			INSERT INTO seasons (start_year, end_year) VALUES ($1, $1 + 1)
			ON CONFLICT (start_year) DO UPDATE SET end_year = seasons.end_year
			RETURNING id`, startYear).Scan(&seasonID)
		if err != nil {
			return count, err
		}

		var matchID int64
		err = tx.QueryRow(`
			INSERT INTO matches (season_id, date, weight_class_id, wrestler1_id, wrestler2_id,
				wrestler1_score, wrestler2_score, winner_id, result_type_id)
			SELECT $2, $1::date, wc.id, $4, $5, NULLIF($6, '')::int, NULLIF($7, '')::int, $8, rt.id
			FROM weight_classes wc, result_types rt
			WHERE wc.code = $3 AND rt.code = $9
			RETURNING id`,
			row[0], seasonID, row[2], row[3], row[4], row[5], row[6], row[7], row[8],
		).Scan(&matchID)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}

		if row[9] != "" {
			duration, err := strconv.Atoi(row[9])
			if err != nil {
				return count, fmt.Errorf("row %d: invalid duration %q", count+1, row[9])
			}
			if _, err := tx.Exec(`
				INSERT INTO match_stats (match_id, duration_seconds) VALUES ($1, $2)
				ON CONFLICT (match_id) DO UPDATE SET duration_seconds = $2`, matchID, duration); err != nil {
				return count, err
			}
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return count, err
	}
	return count, nil
}

// readCSV reads all data rows, skipping the header.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil && err != io.EOF {
		return nil, err
	}
	return r.ReadAll()
}
