// Package resultannotator enriches raw search hits with per-hit medical
// annotations and an aggregate intelligence block. Annotation is a pure
// transform: it never fails, and missing inputs produce default values.
package resultannotator

import (
	"github.com/arthik444/procheck/internal/intelligence/conceptgraph"
	"github.com/arthik444/procheck/internal/intelligence/queryanalyzer"
)

// ClinicalImportance tiers a hit's clinical weight.
type ClinicalImportance string

const (
	ImportanceCritical ClinicalImportance = "critical"
	ImportanceHigh     ClinicalImportance = "high"
	ImportanceMedium   ClinicalImportance = "medium"
	ImportanceLow      ClinicalImportance = "low"
)

// SafetyLevel tiers a hit's safety signal.
type SafetyLevel string

const (
	SafetyHighRisk     SafetyLevel = "high-risk"
	SafetyModerateRisk SafetyLevel = "moderate-risk"
	SafetyLowRisk      SafetyLevel = "low-risk"
)

// UrgencyIndicator tiers how quickly a hit's protocol applies.
type UrgencyIndicator string

const (
	UrgencyImmediate UrgencyIndicator = "immediate"
	UrgencyUrgent    UrgencyIndicator = "urgent"
	UrgencyRoutine   UrgencyIndicator = "routine"
	UrgencyStandard  UrgencyIndicator = "standard"
)

// ProtocolSource is the document payload of one search hit.
type ProtocolSource struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// SearchHit is one raw hit from the search index.
type SearchHit struct {
	ID     string         `json:"id,omitempty"`
	Score  float64        `json:"score"`
	Source ProtocolSource `json:"source"`
}

// MedicalAnnotations is the per-hit enrichment.
type MedicalAnnotations struct {
	RelevanceScore     float64            `json:"relevanceScore"`
	ClinicalImportance ClinicalImportance `json:"clinicalImportance"`
	SafetyLevel        SafetyLevel        `json:"safetyLevel"`
	UrgencyIndicator   UrgencyIndicator   `json:"urgencyIndicator"`
	RelatedConditions  []string           `json:"relatedConditions"`
	Contraindications  []string           `json:"contraindications"`
}

// AnnotatedHit pairs a raw hit with its annotations.
type AnnotatedHit struct {
	SearchHit
	MedicalAnnotations MedicalAnnotations `json:"medicalAnnotations"`
}

// ConceptSummary is the trimmed concept projection carried in the knowledge
// graph excerpt.
type ConceptSummary struct {
	Name     string                `json:"name"`
	Severity conceptgraph.Severity `json:"severity,omitempty"`
	Category string                `json:"category,omitempty"`
	Type     string                `json:"type,omitempty"`
}

// DiagnosisSummary is one differential-diagnosis line in the excerpt.
type DiagnosisSummary struct {
	Name     string                `json:"name"`
	Score    float64               `json:"score"`
	Severity conceptgraph.Severity `json:"severity,omitempty"`
}

// KnowledgeGraphExcerpt is the capped projection of the graph context.
type KnowledgeGraphExcerpt struct {
	PrimaryConditions     []ConceptSummary   `json:"primaryConditions"`
	Symptoms              []ConceptSummary   `json:"symptoms"`
	Treatments            []ConceptSummary   `json:"treatments"`
	Drugs                 []ConceptSummary   `json:"drugs"`
	EmergencyIndicators   []ConceptSummary   `json:"emergencyIndicators"`
	Contraindications     []ConceptSummary   `json:"contraindications"`
	RelatedConditions     []ConceptSummary   `json:"relatedConditions"`
	DifferentialDiagnosis []DiagnosisSummary `json:"differentialDiagnosis"`
}

// MedicalIntelligence is the aggregate metadata attached to one result set.
type MedicalIntelligence struct {
	QueryAnalysis     *queryanalyzer.QueryAnalysis `json:"queryAnalysis"`
	SearchSuggestions []string                     `json:"searchSuggestions"`
	RelatedConcepts   []string                     `json:"relatedConcepts"`
	SafetyAlerts      []string                     `json:"safetyAlerts"`
	ClinicalNotes     []string                     `json:"clinicalNotes"`
	KnowledgeGraph    KnowledgeGraphExcerpt        `json:"knowledgeGraph"`
}

// AnnotatedResults is the full annotation output.
type AnnotatedResults struct {
	Hits                []AnnotatedHit      `json:"hits"`
	MedicalIntelligence MedicalIntelligence `json:"medicalIntelligence"`
}
