package docgen

import (
	"fmt"
	"sort"

	"github.com/acazacu/credit-docs/internal/models"
)

// Generator renders one document type from a validated case and its
// computed schedule.
type Generator interface {
	Generate(rec *models.CaseRecord, sched *models.Schedule) (*models.GeneratedDocument, error)
}

// Registry maps document types to their generators. Adding a document
// type means registering a generator, not extending a dispatch switch.
type Registry struct {
	generators map[models.DocumentType]Generator
}

func NewRegistry() *Registry {
	return &Registry{generators: make(map[models.DocumentType]Generator)}
}

func (r *Registry) Register(t models.DocumentType, g Generator) {
	r.generators[t] = g
}

// Resolve returns the generator for the given type.
func (r *Registry) Resolve(t models.DocumentType) (Generator, error) {
	g, ok := r.generators[t]
	if !ok {
		return nil, fmt.Errorf("unknown document type: %q", t)
	}
	return g, nil
}

// Types lists the registered document types in stable order.
func (r *Registry) Types() []models.DocumentType {
	types := make([]models.DocumentType, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
