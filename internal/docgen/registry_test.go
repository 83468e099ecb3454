package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acazacu/credit-docs/internal/models"
)

type stubGenerator struct {
	called bool
}

func (g *stubGenerator) Generate(rec *models.CaseRecord, sched *models.Schedule) (*models.GeneratedDocument, error) {
	g.called = true
	return &models.GeneratedDocument{FileName: "stub.docx"}, nil
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	stub := &stubGenerator{}
	r.Register(models.DocumentTypeContract, stub)

	g, err := r.Resolve(models.DocumentTypeContract)
	require.NoError(t, err)

	doc, err := g.Generate(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "stub.docx", doc.FileName)
	assert.True(t, stub.called)
}

func TestRegistry_UnknownType(t *testing.T) {
	r := NewRegistry()
	r.Register(models.DocumentTypeContract, &stubGenerator{})

	_, err := r.Resolve(models.DocumentType("invoice"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document type")
}

func TestRegistry_Types(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Types())

	r.Register(models.DocumentTypeContract, &stubGenerator{})
	assert.Equal(t, []models.DocumentType{models.DocumentTypeContract}, r.Types())
}
