package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueISBN returns an ISBN-like string that does not collide across parallel tests.
func UniqueISBN() string {
	return "ISBN-" + uniqueSuffix()
}

// SeedStudent registers a borrower and returns its id.
func SeedStudent(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO students (name) VALUES ($1) RETURNING student_id`,
		"Test Student "+uniqueSuffix(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedStudent: %v", err)
	}

	return id
}

// SeedBook catalogs a book with the given number of copies, all available.
func SeedBook(t *testing.T, pool *pgxpool.Pool, totalCopies int) domain.Book {
	t.Helper()

	year := 2023
	book := domain.Book{
		Title:           "Test Book " + uniqueSuffix(),
		Author:          "Test Author",
		ISBN:            UniqueISBN(),
		Publisher:       "Test Press",
		YearPublished:   &year,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO books (title, author, isbn, publisher, year_published, total_copies, available_copies)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING book_id`,
		book.Title, book.Author, book.ISBN, book.Publisher, book.YearPublished, book.TotalCopies, book.AvailableCopies,
	).Scan(&book.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return book
}

// AvailableCopies reads the current available count of a book.
func AvailableCopies(t *testing.T, pool *pgxpool.Pool, bookID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT available_copies FROM books WHERE book_id = $1`, bookID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: AvailableCopies: %v", err)
	}

	return n
}
