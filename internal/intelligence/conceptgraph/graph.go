package conceptgraph

import (
	"sort"
	"strings"

	"github.com/arthik444/procheck/internal/common/logger"
)

// DefaultMinStrength is the inclusive strength cutoff for traversals that do
// not specify their own.
const DefaultMinStrength = 0.5

// Graph is the process-wide knowledge base. Build it once with New and share
// it; all methods are read-only.
type Graph struct {
	concepts      []*MedicalConcept
	conceptByID   map[string]*MedicalConcept
	relationships []*MedicalRelationship
	logger        logger.Logger
}

func New(log logger.Logger) *Graph {
	concepts := seedConcepts()
	byID := make(map[string]*MedicalConcept, len(concepts))
	for _, c := range concepts {
		byID[c.ID] = c
	}

	g := &Graph{
		concepts:      concepts,
		conceptByID:   byID,
		relationships: seedRelationships(),
		logger:        log.WithFields(map[string]interface{}{"component": "concept-graph"}),
	}

	g.logger.Info("knowledge base loaded", map[string]interface{}{
		"concepts":      len(g.concepts),
		"relationships": len(g.relationships),
	})

	return g
}

// Concept returns the concept with the given id, or nil.
func (g *Graph) Concept(id string) *MedicalConcept {
	return g.conceptByID[id]
}

// FindConcept resolves a free-text name to a concept by case-insensitive
// exact match on the name or any alias. First match in table order wins.
func (g *Graph) FindConcept(name string) *MedicalConcept {
	nameLower := strings.ToLower(strings.TrimSpace(name))

	for _, concept := range g.concepts {
		if strings.ToLower(concept.Name) == nameLower {
			return concept
		}
		for _, alias := range concept.Aliases {
			if strings.ToLower(alias) == nameLower {
				return concept
			}
		}
	}

	return nil
}

// RelatedConcepts returns the neighbors of a concept, treating edges as
// undirected. Edges weaker than minStrength are skipped (the cutoff is
// inclusive); a nil type list means all types. Results are sorted by
// descending strength, ties kept in table order. Edges whose far end has no
// concept entry are silently dropped.
func (g *Graph) RelatedConcepts(conceptID string, types []RelationshipType, minStrength float64) []RelatedConcept {
	var related []RelatedConcept

	for _, rel := range g.relationships {
		if rel.Strength < minStrength {
			continue
		}
		if types != nil && !containsType(types, rel.RelationshipType) {
			continue
		}

		switch conceptID {
		case rel.Source:
			if target := g.conceptByID[rel.Target]; target != nil {
				related = append(related, RelatedConcept{Concept: target, Relationship: rel})
			}
		case rel.Target:
			if source := g.conceptByID[rel.Source]; source != nil {
				related = append(related, RelatedConcept{Concept: source, Relationship: rel})
			}
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Relationship.Strength > related[j].Relationship.Strength
	})

	return related
}

// DifferentialDiagnosis scores candidate conditions for a set of symptom
// names. Strengths accumulate per condition across symptoms, so a condition
// implicated by several symptoms can score above 1.0. Results are sorted by
// descending score, ties kept in accumulation order.
func (g *Graph) DifferentialDiagnosis(symptoms []string) []ScoredDiagnosis {
	scores := map[string]float64{}
	var order []string

	for _, symptom := range symptoms {
		concept := g.FindConcept(symptom)
		if concept == nil {
			continue
		}

		for _, rc := range g.RelatedConcepts(concept.ID, []RelationshipType{SymptomToCondition}, DefaultMinStrength) {
			if rc.Concept.ConceptType != "condition" {
				continue
			}
			if _, seen := scores[rc.Concept.ID]; !seen {
				order = append(order, rc.Concept.ID)
			}
			scores[rc.Concept.ID] += rc.Relationship.Strength
		}
	}

	diagnoses := make([]ScoredDiagnosis, 0, len(order))
	for _, id := range order {
		diagnoses = append(diagnoses, ScoredDiagnosis{Condition: g.conceptByID[id], Score: scores[id]})
	}

	sort.SliceStable(diagnoses, func(i, j int) bool {
		return diagnoses[i].Score > diagnoses[j].Score
	})

	return diagnoses
}

// TreatmentRecommendations returns the treatment and drug edges for a
// condition given by name or alias.
func (g *Graph) TreatmentRecommendations(condition string) []RelatedConcept {
	concept := g.FindConcept(condition)
	if concept == nil {
		return nil
	}

	return g.RelatedConcepts(concept.ID, []RelationshipType{ConditionToTreatment, DrugToCondition}, DefaultMinStrength)
}

// Contraindications returns contraindication neighbors for a drug given by
// name or alias. With the current seed data the contraindication targets have
// no concept entries, so this resolves to an empty list; the edges themselves
// are still consulted by the risk tables.
func (g *Graph) Contraindications(drug string) []RelatedConcept {
	concept := g.FindConcept(drug)
	if concept == nil {
		return nil
	}

	return g.RelatedConcepts(concept.ID, []RelationshipType{Contraindication}, DefaultMinStrength)
}

// IsEmergency reports whether a concept needs emergency handling: critical
// severity, or at least one emergency_protocol edge.
func (g *Graph) IsEmergency(conceptID string) bool {
	concept := g.conceptByID[conceptID]
	if concept == nil {
		return false
	}

	if concept.Severity == SeverityCritical {
		return true
	}

	for _, rel := range g.relationships {
		if rel.RelationshipType != EmergencyProtocol {
			continue
		}
		if rel.Source == conceptID || rel.Target == conceptID {
			return true
		}
	}

	return false
}

// ContextFor buckets the concepts resolved from query entity texts and
// derives the aggregate payload for annotation: emergency indicators,
// contraindication neighbors per drug, related conditions (top 3 per
// condition), and a differential diagnosis (top 5) when symptoms are present.
func (g *Graph) ContextFor(entityTexts []string) *MedicalContext {
	context := &MedicalContext{
		PrimaryConditions:     []*MedicalConcept{},
		Symptoms:              []*MedicalConcept{},
		Treatments:            []*MedicalConcept{},
		Drugs:                 []*MedicalConcept{},
		EmergencyIndicators:   []*MedicalConcept{},
		Contraindications:     []*MedicalConcept{},
		RelatedConditions:     []*MedicalConcept{},
		DifferentialDiagnosis: []ScoredDiagnosis{},
	}

	for _, text := range entityTexts {
		concept := g.FindConcept(strings.ToLower(text))
		if concept == nil {
			continue
		}

		switch concept.ConceptType {
		case "symptom":
			context.Symptoms = append(context.Symptoms, concept)
		case "condition":
			context.PrimaryConditions = append(context.PrimaryConditions, concept)
			if g.IsEmergency(concept.ID) {
				context.EmergencyIndicators = append(context.EmergencyIndicators, concept)
			}
		case "drug":
			context.Drugs = append(context.Drugs, concept)
			for _, rc := range g.Contraindications(concept.Name) {
				context.Contraindications = append(context.Contraindications, rc.Concept)
			}
		case "procedure":
			context.Treatments = append(context.Treatments, concept)
		}
	}

	if len(context.Symptoms) > 0 {
		names := make([]string, len(context.Symptoms))
		for i, s := range context.Symptoms {
			names[i] = s.Name
		}
		differential := g.DifferentialDiagnosis(names)
		if len(differential) > 5 {
			differential = differential[:5]
		}
		context.DifferentialDiagnosis = differential
	}

	for _, condition := range context.PrimaryConditions {
		related := g.RelatedConcepts(condition.ID, []RelationshipType{RelatedCondition}, DefaultMinStrength)
		if len(related) > 3 {
			related = related[:3]
		}
		for _, rc := range related {
			context.RelatedConditions = append(context.RelatedConditions, rc.Concept)
		}
	}

	return context
}

func containsType(types []RelationshipType, t RelationshipType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
