package models

import "time"

// DocumentType identifies which generator renders the case
type DocumentType string

const (
	DocumentTypeContract DocumentType = "contract"
)

// GeneratedDocument is the rendered artifact returned to the caller
type GeneratedDocument struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"-"`
}

// GenerationRecord is the audit row stored for every successful generation.
// The case itself is never stored, only identifying metadata.
type GenerationRecord struct {
	ID           string       `json:"id"`
	CreditID     string       `json:"credit_id"`
	ClientName   string       `json:"client_name"`
	DocumentType DocumentType `json:"document_type"`
	FileName     string       `json:"file_name"`
	CreatedAt    time.Time    `json:"created_at"`
}
