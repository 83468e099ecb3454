package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/acazacu/credit-docs/internal/models"
)

// ContractGenerator renders the credit contract document type.
type ContractGenerator struct {
	templatePath string
	log          *logrus.Logger

	mu       sync.RWMutex
	template []byte
}

// NewContractGenerator builds a generator reading its template from
// contract.docx under the given directory.
func NewContractGenerator(templateDir string, log *logrus.Logger) *ContractGenerator {
	return &ContractGenerator{
		templatePath: filepath.Join(templateDir, "contract.docx"),
		log:          log,
	}
}

// Generate renders the contract for the given case and schedule.
func (g *ContractGenerator) Generate(rec *models.CaseRecord, sched *models.Schedule) (*models.GeneratedDocument, error) {
	templateBytes, err := g.templateBytes()
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("load template: %w", err)}
	}

	data := BuildTemplateData(rec, sched)
	content, err := RenderDocx(templateBytes, data)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("Contract_%s_%s%s.docx",
		rec.Credit.ID, rec.PersonalData.FirstName, rec.PersonalData.LastName)

	g.log.Debugf("Rendered contract %s (%d bytes)", fileName, len(content))
	return &models.GeneratedDocument{FileName: fileName, Content: content}, nil
}

// templateBytes reads the template once and serves it from memory after.
func (g *ContractGenerator) templateBytes() ([]byte, error) {
	g.mu.RLock()
	if g.template != nil {
		defer g.mu.RUnlock()
		return g.template, nil
	}
	g.mu.RUnlock()

	data, err := os.ReadFile(g.templatePath)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.template = data
	g.mu.Unlock()
	return data, nil
}
