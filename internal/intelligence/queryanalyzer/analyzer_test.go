package queryanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthik444/procheck/internal/common/logger"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	return NewAnalyzer(logger.NewTestLogger(t))
}

func TestAnalyze_SymptomQuery(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("patient with chest pain and shortness of breath")

	assert.Equal(t, IntentSymptomBased, analysis.Intent)
	assert.True(t, analysis.HasEntityType(EntitySymptom))

	texts := entityTexts(analysis.Entities, EntitySymptom)
	assert.Contains(t, texts, "chest pain")
	assert.Contains(t, texts, "shortness of breath")
}

func TestAnalyze_EmergencyOverridesSymptoms(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("emergency treatment for chest pain")

	assert.Equal(t, IntentEmergency, analysis.Intent)
	assert.True(t, analysis.HasEntityType(EntitySymptom))
}

func TestAnalyze_IntentPriorityChain(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"emergency wins over everything", "urgent cpr for cardiac arrest", IntentEmergency},
		{"symptom before procedure", "fever and treatment options", IntentSymptomBased},
		{"procedure before drug", "intubation with lidocaine", IntentProcedureBased},
		{"drug before condition", "aspirin for diabetes", IntentDrugBased},
		{"condition alone", "pneumonia guidelines", IntentConditionBased},
		{"nothing recognized", "general wellness information", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := analyzer.Analyze(tt.query)
			assert.Equal(t, tt.want, analysis.Intent)
		})
	}
}

func TestAnalyze_TotalOnEmptyInput(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("")

	assert.Equal(t, IntentGeneral, analysis.Intent)
	assert.Empty(t, analysis.Entities)
	assert.Empty(t, analysis.Suggestions)
	assert.Equal(t, UrgencyMedium, analysis.MedicalContext.Urgency)
	assert.Equal(t, SettingGeneral, analysis.MedicalContext.Setting)
}

func TestAnalyze_EntityConfidenceByType(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("pneumonia with fever treated by amoxicillin injection")

	for _, e := range analysis.Entities {
		switch e.EntityType {
		case EntityCondition:
			assert.Equal(t, 0.9, e.Confidence, "condition %q", e.Text)
		default:
			assert.Equal(t, 0.8, e.Confidence, "%s %q", e.EntityType, e.Text)
		}
	}
}

func TestAnalyze_OverlappingFamiliesNotDeduplicated(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// "iv" appears in both the procedure and drug pattern families.
	analysis := analyzer.Analyze("start an iv line")

	assert.True(t, analysis.HasEntityType(EntityProcedure))
	assert.True(t, analysis.HasEntityType(EntityDrug))
}

func TestAnalyze_EnhancementAppendsTwoSynonyms(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("chest pain")

	assert.Equal(t, "chest pain chest discomfort chest pressure", analysis.EnhancedQuery)
}

func TestAnalyze_EnhancementIsCumulative(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("chest pain after heart attack")

	assert.Contains(t, analysis.EnhancedQuery, "chest pain after heart attack")
	assert.Contains(t, analysis.EnhancedQuery, "chest discomfort")
	assert.Contains(t, analysis.EnhancedQuery, "myocardial infarction")
}

func TestAnalyze_NoSynonymMatchLeavesQueryUnchanged(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("wound dressing change")

	assert.Equal(t, "wound dressing change", analysis.EnhancedQuery)
}

func TestAnalyze_Suggestions(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	symptomAnalysis := analyzer.Analyze("severe headache")
	require.Len(t, symptomAnalysis.Suggestions, 4)
	assert.Equal(t, "Related conditions and differential diagnosis", symptomAnalysis.Suggestions[0])

	generalAnalysis := analyzer.Analyze("hello")
	assert.Empty(t, generalAnalysis.Suggestions)
}

func TestAnalyze_MedicalContext(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("65 year-old male with mild cough seen in clinic")

	require.NotNil(t, analysis.MedicalContext.Age)
	assert.Equal(t, 65, *analysis.MedicalContext.Age)
	assert.Equal(t, "male", analysis.MedicalContext.Gender)
	assert.Equal(t, UrgencyLow, analysis.MedicalContext.Urgency)
	assert.Equal(t, SettingClinic, analysis.MedicalContext.Setting)
}

func TestAnalyze_ContextDefaults(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis := analyzer.Analyze("chest pain protocol")

	assert.Nil(t, analysis.MedicalContext.Age)
	assert.Empty(t, analysis.MedicalContext.Gender)
	assert.Equal(t, UrgencyMedium, analysis.MedicalContext.Urgency)
	assert.Equal(t, SettingGeneral, analysis.MedicalContext.Setting)
}

func TestAnalyze_ContextKeywordsMatchAsSubstrings(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// "fever" contains "er", one of the hospital keywords.
	assert.Equal(t, SettingHospital, analyzer.Analyze("fever for two days").MedicalContext.Setting)

	// "female" contains "male" and the male check runs first.
	assert.Equal(t, "male", analyzer.Analyze("female patient").MedicalContext.Gender)
	assert.Equal(t, "female", analyzer.Analyze("girl with rash").MedicalContext.Gender)
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	query := "emergency cpr for 70 years old female with cardiac arrest and diabetes"

	first := analyzer.Analyze(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, analyzer.Analyze(query))
	}
}

func TestSynonyms(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	assert.Equal(t,
		[]string{"cerebrovascular accident", "cva", "brain attack"},
		analyzer.Synonyms("Stroke"))
	assert.Nil(t, analyzer.Synonyms("unknown term"))
}

func TestExpandTerms(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	expanded := analyzer.ExpandTerms("stroke management")

	assert.Equal(t, "stroke management cerebrovascular accident cva brain attack", expanded)
}

func entityTexts(entities []MedicalEntity, entityType EntityType) []string {
	var texts []string
	for _, e := range entities {
		if e.EntityType == entityType {
			texts = append(texts, e.Text)
		}
	}
	return texts
}
