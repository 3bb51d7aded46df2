// Package conceptgraph holds the in-memory medical knowledge base: typed
// concepts connected by weighted, directed relationships. The tables are
// built once at startup and are read-only afterwards, so a single Graph is
// safe for unsynchronized concurrent use.
package conceptgraph

// RelationshipType classifies a directed edge between two concepts.
type RelationshipType string

const (
	SymptomToCondition   RelationshipType = "symptom_to_condition"
	ConditionToTreatment RelationshipType = "condition_to_treatment"
	DrugToCondition      RelationshipType = "drug_to_condition"
	DrugToSideEffect     RelationshipType = "drug_to_side_effect"
	ProcedureToCondition RelationshipType = "procedure_to_condition"
	Contraindication     RelationshipType = "contraindication"
	RelatedCondition     RelationshipType = "related_condition"
	EmergencyProtocol    RelationshipType = "emergency_protocol"
)

// Severity grades a concept's clinical seriousness.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// EvidenceLevel grades how well supported a relationship is.
type EvidenceLevel string

const (
	EvidenceHigh   EvidenceLevel = "high"
	EvidenceMedium EvidenceLevel = "medium"
	EvidenceLow    EvidenceLevel = "low"
)

// MedicalConcept is one node in the graph.
type MedicalConcept struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ConceptType string   `json:"conceptType"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Severity    Severity `json:"severity,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// MedicalRelationship is a directed, weighted edge. Some seed edges point at
// target ids with no concept entry (penicillin_allergy, bleeding_disorder,
// emergency_protocol); lookups against those resolve to a graceful miss.
type MedicalRelationship struct {
	Source           string           `json:"source"`
	Target           string           `json:"target"`
	RelationshipType RelationshipType `json:"relationshipType"`
	Strength         float64          `json:"strength"`
	EvidenceLevel    EvidenceLevel    `json:"evidenceLevel"`
	Description      string           `json:"description,omitempty"`
}

// RelatedConcept pairs a neighboring concept with the edge that reached it.
type RelatedConcept struct {
	Concept      *MedicalConcept      `json:"concept"`
	Relationship *MedicalRelationship `json:"relationship"`
}

// ScoredDiagnosis is one differential-diagnosis candidate. Scores accumulate
// across symptoms and can exceed 1.0.
type ScoredDiagnosis struct {
	Condition *MedicalConcept `json:"condition"`
	Score     float64         `json:"score"`
}

// MedicalContext buckets the concepts resolved from one query's entities.
type MedicalContext struct {
	PrimaryConditions     []*MedicalConcept `json:"primaryConditions"`
	Symptoms              []*MedicalConcept `json:"symptoms"`
	Treatments            []*MedicalConcept `json:"treatments"`
	Drugs                 []*MedicalConcept `json:"drugs"`
	EmergencyIndicators   []*MedicalConcept `json:"emergencyIndicators"`
	Contraindications     []*MedicalConcept `json:"contraindications"`
	RelatedConditions     []*MedicalConcept `json:"relatedConditions"`
	DifferentialDiagnosis []ScoredDiagnosis `json:"differentialDiagnosis"`
}
