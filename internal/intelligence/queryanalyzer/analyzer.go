// Package queryanalyzer provides pattern-based medical entity recognition,
// intent classification, and query enhancement for free-text clinical
// queries.
package queryanalyzer

import (
	"strconv"
	"strings"

	"github.com/arthik444/procheck/internal/common/logger"
)

// Analyzer extracts medical entities and intent from raw query text. It is
// stateless per call and safe for concurrent use.
type Analyzer struct {
	logger logger.Logger
}

func NewAnalyzer(log logger.Logger) *Analyzer {
	return &Analyzer{
		logger: log.WithFields(map[string]interface{}{"component": "query-analyzer"}),
	}
}

// Analyze runs the full analysis over one query. It is total: unrecognized
// input yields intent "general" with no entities rather than an error.
func (a *Analyzer) Analyze(query string) *QueryAnalysis {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	entities := a.extractEntities(query)
	intent := a.classifyIntent(queryLower, entities)
	enhanced := a.enhanceQuery(queryLower)
	suggestions := a.generateSuggestions(intent)
	context := a.extractMedicalContext(queryLower)

	analysis := &QueryAnalysis{
		OriginalQuery:  query,
		Intent:         intent,
		Entities:       entities,
		EnhancedQuery:  enhanced,
		Suggestions:    suggestions,
		MedicalContext: context,
	}

	a.logger.Debug("query analyzed", map[string]interface{}{
		"intent":      intent,
		"entityCount": len(entities),
	})

	return analysis
}

// extractEntities scans each pattern family over the lower-cased query.
// Matches are not deduplicated across families.
func (a *Analyzer) extractEntities(query string) []MedicalEntity {
	queryLower := strings.ToLower(query)
	entities := []MedicalEntity{}

	for _, family := range entityFamilies {
		for _, pattern := range family.patterns {
			for _, loc := range pattern.FindAllStringIndex(queryLower, -1) {
				entities = append(entities, MedicalEntity{
					Text:       queryLower[loc[0]:loc[1]],
					EntityType: family.entityType,
					Confidence: family.confidence,
					StartPos:   loc[0],
					EndPos:     loc[1],
				})
			}
		}
	}

	return entities
}

// classifyIntent applies the priority chain: emergency keywords first, then
// entity types in the order symptom, procedure, drug, condition. First match
// wins.
func (a *Analyzer) classifyIntent(queryLower string, entities []MedicalEntity) Intent {
	for _, pattern := range emergencyPatterns {
		if pattern.MatchString(queryLower) {
			return IntentEmergency
		}
	}

	entityTypes := make(map[EntityType]bool, len(entities))
	for _, e := range entities {
		entityTypes[e.EntityType] = true
	}

	switch {
	case entityTypes[EntitySymptom]:
		return IntentSymptomBased
	case entityTypes[EntityProcedure]:
		return IntentProcedureBased
	case entityTypes[EntityDrug]:
		return IntentDrugBased
	case entityTypes[EntityCondition]:
		return IntentConditionBased
	default:
		return IntentGeneral
	}
}

// enhanceQuery appends the first two synonyms of every table term found as a
// substring of the query. Appending is cumulative across matching terms and
// never replaces the original text.
func (a *Analyzer) enhanceQuery(queryLower string) string {
	enhanced := queryLower

	for _, entry := range medicalSynonyms {
		if strings.Contains(enhanced, entry.term) {
			limit := 2
			if len(entry.synonyms) < limit {
				limit = len(entry.synonyms)
			}
			enhanced += " " + strings.Join(entry.synonyms[:limit], " ")
		}
	}

	return enhanced
}

func (a *Analyzer) generateSuggestions(intent Intent) []string {
	suggestions := intentSuggestions[intent]
	if len(suggestions) > 4 {
		suggestions = suggestions[:4]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

// extractMedicalContext pulls age, gender, urgency, and setting hints out of
// the query. Urgency defaults to medium and setting to general.
func (a *Analyzer) extractMedicalContext(queryLower string) MedicalContext {
	context := MedicalContext{
		Urgency: UrgencyMedium,
		Setting: SettingGeneral,
	}

	if m := agePattern.FindStringSubmatch(queryLower); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil {
			context.Age = &age
		}
	}

	if containsAny(queryLower, maleKeywords) {
		context.Gender = "male"
	} else if containsAny(queryLower, femaleKeywords) {
		context.Gender = "female"
	}

	if containsAny(queryLower, highUrgencyKeywords) {
		context.Urgency = UrgencyHigh
	} else if containsAny(queryLower, lowUrgencyKeywords) {
		context.Urgency = UrgencyLow
	}

	if containsAny(queryLower, hospitalKeywords) {
		context.Setting = SettingHospital
	} else if containsAny(queryLower, clinicKeywords) {
		context.Setting = SettingClinic
	}

	return context
}

// Synonyms returns the synonym list for a term, or nil if the term is not in
// the table.
func (a *Analyzer) Synonyms(term string) []string {
	termLower := strings.ToLower(term)
	for _, entry := range medicalSynonyms {
		if entry.term == termLower {
			out := make([]string, len(entry.synonyms))
			copy(out, entry.synonyms)
			return out
		}
	}
	return nil
}

// ExpandTerms appends up to three synonyms per matching table term, for
// callers that want broader recall than Analyze's two.
func (a *Analyzer) ExpandTerms(query string) string {
	expanded := query
	for _, entry := range medicalSynonyms {
		if strings.Contains(strings.ToLower(expanded), entry.term) {
			limit := 3
			if len(entry.synonyms) < limit {
				limit = len(entry.synonyms)
			}
			expanded += " " + strings.Join(entry.synonyms[:limit], " ")
		}
	}
	return expanded
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
