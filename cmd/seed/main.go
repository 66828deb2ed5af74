package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/scaffold/internal/config"
)

// fileSetter is implemented by seeders that accept an external seed file.
type fileSetter interface {
	SetFile(path string)
}

var readFile = os.ReadFile

func main() {
	var (
		dsn       = flag.String("dsn", "", "Database connection string (defaults to the [database] config section)")
		configDir = flag.String("config-dir", ".", "Directory holding config.toml")
		all       = flag.Bool("all", false, "Run all seeders")
		only      = flag.String("seeder", "", "Run a single seeder by name")
		file      = flag.String("file", "", "External seed file for -seeder (overrides embedded)")
		list      = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	var run []Seeder
	switch {
	case *all:
		run = listSeeders()
	case *only != "":
		s, ok := getSeeder(*only)
		if !ok {
			log.Fatalf("seeder not found: %s", *only)
		}
		if fs, ok := s.(fileSetter); ok && *file != "" {
			fs.SetFile(*file)
		}
		run = []Seeder{s}
	default:
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-seeder <name>] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	if *dsn == "" {
		cfg, err := config.LoadFrom(*configDir)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		*dsn = cfg.Database.Dsn()
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := runSeeders(context.Background(), db, run...); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Printf("%d seeder(s) completed successfully\n", len(run))
}
