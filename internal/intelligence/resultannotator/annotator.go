package resultannotator

import (
	"strings"

	"github.com/arthik444/procheck/internal/common/logger"
	"github.com/arthik444/procheck/internal/intelligence/conceptgraph"
	"github.com/arthik444/procheck/internal/intelligence/queryanalyzer"
)

// Tier tables for the categorical assessments. Evaluated top to bottom,
// first matching tier wins; the zero-keyword entry is the fallback.
var importanceTiers = []struct {
	level    ClinicalImportance
	keywords []string
}{
	{ImportanceCritical, []string{"emergency", "critical", "life-threatening", "immediate"}},
	{ImportanceHigh, []string{"urgent", "important", "priority", "serious"}},
	{ImportanceMedium, []string{"routine", "standard", "common"}},
	{ImportanceLow, nil},
}

var safetyTiers = []struct {
	level    SafetyLevel
	keywords []string
}{
	{SafetyHighRisk, []string{"contraindication", "warning", "danger", "risk", "adverse"}},
	{SafetyModerateRisk, []string{"caution", "careful", "monitor", "supervision"}},
	{SafetyLowRisk, nil},
}

var urgencyTiers = []struct {
	level    UrgencyIndicator
	keywords []string
}{
	{UrgencyImmediate, []string{"immediate", "stat", "emergency", "critical"}},
	{UrgencyUrgent, []string{"urgent", "asap", "priority"}},
	{UrgencyRoutine, []string{"routine", "scheduled", "planned"}},
	{UrgencyStandard, nil},
}

var emergencyBoostKeywords = []string{"emergency", "urgent", "critical", "immediate"}

const (
	relevanceBase          = 0.5
	relevanceEmergencyBump = 0.3
	relevanceEntityBump    = 0.1
	relevanceUrgencyBump   = 0.2
)

// Annotator enriches search hits. Stateless per call and safe for
// concurrent use.
type Annotator struct {
	logger logger.Logger
}

func NewAnnotator(log logger.Logger) *Annotator {
	return &Annotator{
		logger: log.WithFields(map[string]interface{}{"component": "result-annotator"}),
	}
}

// Annotate enriches every hit and derives the aggregate intelligence block.
// The graph context may be nil, in which case the knowledge graph excerpt is
// empty.
func (a *Annotator) Annotate(hits []SearchHit, analysis *queryanalyzer.QueryAnalysis, graphContext *conceptgraph.MedicalContext) *AnnotatedResults {
	annotated := make([]AnnotatedHit, 0, len(hits))
	for _, hit := range hits {
		annotated = append(annotated, a.annotateHit(hit, analysis))
	}

	results := &AnnotatedResults{
		Hits: annotated,
		MedicalIntelligence: MedicalIntelligence{
			QueryAnalysis:     analysis,
			SearchSuggestions: analysis.Suggestions,
			RelatedConcepts:   RelatedConceptsForIntent(analysis.Intent),
			SafetyAlerts:      safetyAlerts(analysis),
			ClinicalNotes:     clinicalNotes(analysis),
			KnowledgeGraph:    knowledgeGraphExcerpt(graphContext),
		},
	}

	a.logger.Debug("search results annotated", map[string]interface{}{
		"hits":   len(annotated),
		"intent": analysis.Intent,
	})

	return results
}

func (a *Annotator) annotateHit(hit SearchHit, analysis *queryanalyzer.QueryAnalysis) AnnotatedHit {
	contentLower := strings.ToLower(hit.Source.Content)

	return AnnotatedHit{
		SearchHit: hit,
		MedicalAnnotations: MedicalAnnotations{
			RelevanceScore:     relevanceScore(contentLower, analysis),
			ClinicalImportance: assessImportance(contentLower),
			SafetyLevel:        assessSafety(contentLower),
			UrgencyIndicator:   assessUrgency(contentLower),
			RelatedConditions:  relatedConditions(contentLower),
			Contraindications:  hitContraindications(contentLower, analysis),
		},
	}
}

// relevanceScore starts at 0.5 and accumulates intent, entity, and urgency
// boosts. Accumulation is unbounded but the final score is clamped to [0,1].
func relevanceScore(contentLower string, analysis *queryanalyzer.QueryAnalysis) float64 {
	score := relevanceBase

	if analysis.Intent == queryanalyzer.IntentEmergency && containsAny(contentLower, emergencyBoostKeywords) {
		score += relevanceEmergencyBump
	}

	for _, entity := range analysis.Entities {
		if strings.Contains(contentLower, strings.ToLower(entity.Text)) {
			score += relevanceEntityBump
		}
	}

	if analysis.MedicalContext.Urgency == queryanalyzer.UrgencyHigh {
		score += relevanceUrgencyBump
	}

	if score > 1.0 {
		return 1.0
	}
	if score < 0.0 {
		return 0.0
	}
	return score
}

func assessImportance(contentLower string) ClinicalImportance {
	for _, tier := range importanceTiers {
		if tier.keywords == nil || containsAny(contentLower, tier.keywords) {
			return tier.level
		}
	}
	return ImportanceLow
}

func assessSafety(contentLower string) SafetyLevel {
	for _, tier := range safetyTiers {
		if tier.keywords == nil || containsAny(contentLower, tier.keywords) {
			return tier.level
		}
	}
	return SafetyLowRisk
}

func assessUrgency(contentLower string) UrgencyIndicator {
	for _, tier := range urgencyTiers {
		if tier.keywords == nil || containsAny(contentLower, tier.keywords) {
			return tier.level
		}
	}
	return UrgencyStandard
}

// relatedConditions applies content heuristics per body system, capped at 3.
func relatedConditions(contentLower string) []string {
	related := []string{}

	if strings.Contains(contentLower, "cardiac") || strings.Contains(contentLower, "heart") {
		related = append(related, "myocardial infarction", "cardiac arrest", "heart failure")
	}
	if strings.Contains(contentLower, "respiratory") || strings.Contains(contentLower, "breathing") {
		related = append(related, "pneumonia", "asthma", "respiratory failure")
	}
	if strings.Contains(contentLower, "diabetes") {
		related = append(related, "diabetic ketoacidosis", "hypoglycemia", "diabetic complications")
	}

	if len(related) > 3 {
		related = related[:3]
	}
	return related
}

func hitContraindications(contentLower string, analysis *queryanalyzer.QueryAnalysis) []string {
	contraindications := []string{}

	if strings.Contains(contentLower, "penicillin") && strings.Contains(strings.ToLower(analysis.OriginalQuery), "allergy") {
		contraindications = append(contraindications, "Penicillin allergy contraindication")
	}
	if strings.Contains(contentLower, "pregnancy") && analysis.MedicalContext.Gender == "female" {
		contraindications = append(contraindications, "Pregnancy considerations")
	}
	if strings.Contains(contentLower, "pediatric") && analysis.MedicalContext.Age != nil && *analysis.MedicalContext.Age > 18 {
		contraindications = append(contraindications, "Adult patient - pediatric protocol")
	}

	return contraindications
}

// RelatedConceptsForIntent returns the static related-concept strings for an
// intent. Shared with the suggestions endpoint.
func RelatedConceptsForIntent(intent queryanalyzer.Intent) []string {
	switch intent {
	case queryanalyzer.IntentSymptomBased:
		return []string{"differential diagnosis", "diagnostic tests", "treatment protocols"}
	case queryanalyzer.IntentProcedureBased:
		return []string{"equipment requirements", "safety precautions", "post-procedure care"}
	case queryanalyzer.IntentEmergency:
		return []string{"emergency response", "critical care", "resuscitation protocols"}
	default:
		return []string{}
	}
}

func safetyAlerts(analysis *queryanalyzer.QueryAnalysis) []string {
	alerts := []string{}

	if analysis.Intent == queryanalyzer.IntentEmergency {
		alerts = append(alerts, "Emergency protocol - ensure immediate medical attention")
	}
	if analysis.MedicalContext.Urgency == queryanalyzer.UrgencyHigh {
		alerts = append(alerts, "High urgency case - prioritize immediate care")
	}
	if analysis.HasEntityType(queryanalyzer.EntityDrug) {
		alerts = append(alerts, "Drug-related query - check for allergies and interactions")
	}

	return alerts
}

func clinicalNotes(analysis *queryanalyzer.QueryAnalysis) []string {
	notes := []string{}

	if age := analysis.MedicalContext.Age; age != nil {
		if *age < 18 {
			notes = append(notes, "Pediatric patient - consider age-appropriate protocols")
		} else if *age > 65 {
			notes = append(notes, "Geriatric patient - consider age-related considerations")
		}
	}

	switch analysis.MedicalContext.Setting {
	case queryanalyzer.SettingHospital:
		notes = append(notes, "Hospital setting - full resources available")
	case queryanalyzer.SettingClinic:
		notes = append(notes, "Clinic setting - limited resources, consider referral")
	}

	return notes
}

// knowledgeGraphExcerpt projects the graph context down to the summary
// shapes, capping emergency indicators and differential diagnoses at 3.
func knowledgeGraphExcerpt(context *conceptgraph.MedicalContext) KnowledgeGraphExcerpt {
	excerpt := KnowledgeGraphExcerpt{
		PrimaryConditions:     []ConceptSummary{},
		Symptoms:              []ConceptSummary{},
		Treatments:            []ConceptSummary{},
		Drugs:                 []ConceptSummary{},
		EmergencyIndicators:   []ConceptSummary{},
		Contraindications:     []ConceptSummary{},
		RelatedConditions:     []ConceptSummary{},
		DifferentialDiagnosis: []DiagnosisSummary{},
	}
	if context == nil {
		return excerpt
	}

	excerpt.PrimaryConditions = summarize(context.PrimaryConditions)
	excerpt.Symptoms = summarize(context.Symptoms)
	excerpt.Treatments = summarize(context.Treatments)
	excerpt.Drugs = summarize(context.Drugs)
	excerpt.RelatedConditions = summarize(context.RelatedConditions)

	emergencies := context.EmergencyIndicators
	if len(emergencies) > 3 {
		emergencies = emergencies[:3]
	}
	for _, c := range emergencies {
		excerpt.EmergencyIndicators = append(excerpt.EmergencyIndicators, ConceptSummary{Name: c.Name, Severity: c.Severity})
	}

	for _, c := range context.Contraindications {
		excerpt.Contraindications = append(excerpt.Contraindications, ConceptSummary{Name: c.Name, Type: c.ConceptType})
	}

	differential := context.DifferentialDiagnosis
	if len(differential) > 3 {
		differential = differential[:3]
	}
	for _, d := range differential {
		excerpt.DifferentialDiagnosis = append(excerpt.DifferentialDiagnosis, DiagnosisSummary{
			Name:     d.Condition.Name,
			Score:    d.Score,
			Severity: d.Condition.Severity,
		})
	}

	return excerpt
}

func summarize(concepts []*conceptgraph.MedicalConcept) []ConceptSummary {
	summaries := make([]ConceptSummary, 0, len(concepts))
	for _, c := range concepts {
		summaries = append(summaries, ConceptSummary{Name: c.Name, Severity: c.Severity, Category: c.Category})
	}
	return summaries
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
