// Package main provides a tool to seed the database with sample catalog data.
//
// Usage:
//
//	DB_PATH=~/SeenHub/data/db go run ./cmd/seed
//	DB_PATH=~/SeenHub/data/db go run ./cmd/seed --with-user  # Also create a demo user
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/seenhub/seenhub-server/internal/auth"
	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/genre"
	"github.com/seenhub/seenhub-server/internal/id"
	"github.com/seenhub/seenhub-server/internal/store"
)

var withUser = flag.Bool("with-user", false, "Create a demo user (login: demo, password: demo-password)")

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/SeenHub/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *withUser {
		seedUser(ctx, s)
	}

	now := time.Now()

	books := []*domain.Book{
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Publisher: "Ace Books"},
		{Title: "The Dispossessed", Author: "Ursula K. Le Guin", Publisher: "Harper & Row"},
		{Title: "Kafka on the Shore", Author: "Haruki Murakami", Publisher: "Shinchosha"},
	}
	bookGenres := []genre.List{{"SF"}, {"SF"}, {"Novel"}}
	for i, b := range books {
		b.Genre = bookGenres[i]
		create(ctx, s.Books, b, now.Add(time.Duration(i)*time.Millisecond))
	}

	movies := []*domain.Movie{
		{Title: "Alien", Director: "Ridley Scott"},
		{Title: "Parasite", Director: "Bong Joon-ho"},
	}
	movieGenres := []genre.List{{"SF", "Horror"}, {"Drama", "Thriller"}}
	for i, m := range movies {
		m.Genre = movieGenres[i]
		create(ctx, s.Movies, m, now.Add(time.Duration(i)*time.Millisecond))
	}

	albums := []*domain.Music{
		{Title: "OK Computer", Artist: "Radiohead"},
		{Title: "Blue Train", Artist: "John Coltrane"},
	}
	albumGenres := []genre.List{{"Rock"}, {"Jazz"}}
	for i, m := range albums {
		m.Genre = albumGenres[i]
		create(ctx, s.Music, m, now.Add(time.Duration(i)*time.Millisecond))
	}

	series := []*domain.Series{
		{Title: "Breaking Bad", Broadcaster: "AMC"},
		{Title: "Cowboy Bebop", Broadcaster: "TV Tokyo"},
	}
	seriesGenres := []genre.List{{"Drama", "Thriller"}, {"Animation", "SF"}}
	for i, sr := range series {
		sr.Genre = seriesGenres[i]
		create(ctx, s.Series, sr, now.Add(time.Duration(i)*time.Millisecond))
	}

	fmt.Println("Seeding complete")
}

// create stamps an entry with its identity and writes it.
func create[T any, PT interface {
	*T
	domain.Entry
}](ctx context.Context, catalog *store.Catalog[T, PT], entry PT, createdAt time.Time) {
	entryID, err := id.Generate(entry.Kind().IDPrefix())
	if err != nil {
		log.Fatalf("Failed to generate ID: %v", err)
	}
	entry.Meta().Init(entryID, createdAt)

	if err := catalog.Create(ctx, entry); err != nil {
		log.Fatalf("Failed to create %s %q: %v", entry.Kind(), entry.SearchTitle(), err)
	}
	fmt.Printf("  created %s: %s (%s)\n", entry.Kind(), entry.SearchTitle(), entryID)
}

func seedUser(ctx context.Context, s *store.Store) {
	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		log.Fatalf("Failed to generate user ID: %v", err)
	}

	user := &domain.User{
		ID:           userID,
		LoginName:    "demo",
		PasswordHash: hash,
		DisplayName:  "Demo User",
		CreatedAt:    time.Now(),
	}
	if err := s.CreateUser(ctx, user); err != nil {
		log.Printf("Skipping demo user: %v", err)
		return
	}
	fmt.Printf("  created user: demo (%s)\n", userID)
}
