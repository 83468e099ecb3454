package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/acazacu/credit-docs/internal/config"
	"github.com/acazacu/credit-docs/internal/docgen"
	"github.com/acazacu/credit-docs/internal/middleware"
	"github.com/acazacu/credit-docs/internal/models"
	"github.com/acazacu/credit-docs/internal/repository"
	"github.com/acazacu/credit-docs/internal/schedule"
	"github.com/acazacu/credit-docs/internal/utils/email"
	"github.com/acazacu/credit-docs/internal/validation"
)

// Service handles business logic
type Service struct {
	repo     *repository.Repository
	registry *docgen.Registry
	sender   *email.Sender
	log      *logrus.Logger
	config   *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, registry *docgen.Registry, sender *email.Sender, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, registry: registry, sender: sender, log: log, config: cfg}
}

// Register creates a new user with hashed password
func (s *Service) Register(username, email, password string) (*models.User, error) {
	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	// Generate JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// DocumentTypes lists the document types available for generation.
func (s *Service) DocumentTypes() []models.DocumentType {
	return s.registry.Types()
}

// GenerateDocument validates the case, computes the payment schedule and
// renders the requested document type. The document type is an explicit
// argument of the call; no ambient selector exists.
//
// On validation failure the returned error is a validation.Violations
// carrying every field error found; the calculator is never reached.
func (s *Service) GenerateDocument(ctx context.Context, docType models.DocumentType, rec *models.CaseRecord) (*models.GeneratedDocument, error) {
	generator, err := s.registry.Resolve(docType)
	if err != nil {
		return nil, err
	}

	if violations := validation.ValidateCase(rec); len(violations) > 0 {
		s.log.Infof("Case rejected with %d validation error(s)", len(violations))
		return nil, violations
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(rec.Credit.Amount), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid credit amount: %w", err)
	}

	sched, err := schedule.Build(amount, rec.Credit.IssuedDate)
	if err != nil {
		return nil, err
	}

	doc, err := generator.Generate(rec, sched)
	if err != nil {
		return nil, err
	}

	generationID := uuid.NewString()
	if err := s.storeArtifact(doc); err != nil {
		return nil, err
	}

	record := &models.GenerationRecord{
		ID:           generationID,
		CreditID:     rec.Credit.ID,
		ClientName:   rec.PersonalData.FirstName + " " + rec.PersonalData.LastName,
		DocumentType: docType,
		FileName:     doc.FileName,
	}
	if err := s.repo.CreateGeneration(record); err != nil {
		return nil, err
	}

	if s.config.EmailCopy && rec.ContactData.Email != "" {
		// Delivery is best effort: the document is already generated.
		if err := s.sender.SendDocumentCopy(rec.ContactData.Email, record.ClientName, doc.FileName, doc.Content); err != nil {
			s.log.Warnf("Email copy for generation %s failed: %v", generationID, err)
		}
	}

	userID, _ := ctx.Value(middleware.CtxUserID).(string)
	s.log.Infof("Generated %s %s (generation %s, user %s)", docType, doc.FileName, generationID, userID)
	return doc, nil
}

// RecentGenerations returns the audit trail for the last N days.
func (s *Service) RecentGenerations(days, limit int) ([]models.GenerationRecord, error) {
	since := time.Now().AddDate(0, 0, -days)
	return s.repo.ListGenerations(since, limit)
}

func (s *Service) storeArtifact(doc *models.GeneratedDocument) error {
	if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(s.config.OutputDir, doc.FileName)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}
