package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/acazacu/credit-docs/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO doc.users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM doc.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateGeneration stores the audit row for one successful document
// generation. Only identifying metadata is stored, never the case itself.
func (r *Repository) CreateGeneration(rec *models.GenerationRecord) error {
	query := `
		INSERT INTO doc.generations (id, credit_id, client_name, document_type, file_name, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRow(query, rec.ID, rec.CreditID, rec.ClientName, string(rec.DocumentType), rec.FileName).
		Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create generation record: %w", err)
	}
	return nil
}

// ListGenerations returns audit rows newer than the given time, most
// recent first.
func (r *Repository) ListGenerations(since time.Time, limit int) ([]models.GenerationRecord, error) {
	query := `
		SELECT id, credit_id, client_name, document_type, file_name, created_at
		FROM doc.generations
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.db.Query(query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var records []models.GenerationRecord
	for rows.Next() {
		var rec models.GenerationRecord
		var docType string
		if err := rows.Scan(&rec.ID, &rec.CreditID, &rec.ClientName, &docType, &rec.FileName, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation record: %w", err)
		}
		rec.DocumentType = models.DocumentType(docType)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read generation records: %w", err)
	}
	return records, nil
}
