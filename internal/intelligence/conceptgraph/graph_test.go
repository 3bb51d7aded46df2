package conceptgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthik444/procheck/internal/common/logger"
)

func newTestGraph(t *testing.T) *Graph {
	return New(logger.NewTestLogger(t))
}

func TestFindConcept(t *testing.T) {
	g := newTestGraph(t)

	tests := []struct {
		name   string
		query  string
		wantID string
	}{
		{"by name", "chest pain", "chest_pain"},
		{"by alias", "myocardial infarction", "heart_attack"},
		{"case insensitive alias", "mi", "heart_attack"},
		{"surrounding whitespace", "  Stroke  ", "stroke"},
		{"unknown", "broken leg", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			concept := g.FindConcept(tt.query)
			if tt.wantID == "" {
				assert.Nil(t, concept)
				return
			}
			require.NotNil(t, concept)
			assert.Equal(t, tt.wantID, concept.ID)
		})
	}
}

func TestFindConcept_AliasResolvesToSameConceptAsName(t *testing.T) {
	g := newTestGraph(t)

	byName := g.FindConcept("shortness of breath")
	byAlias := g.FindConcept("dyspnea")

	require.NotNil(t, byName)
	assert.Same(t, byName, byAlias)
}

func TestRelatedConcepts_SortedByDescendingStrength(t *testing.T) {
	g := newTestGraph(t)

	related := g.RelatedConcepts("chest_pain", []RelationshipType{SymptomToCondition}, DefaultMinStrength)

	require.Len(t, related, 2)
	assert.Equal(t, "heart_attack", related[0].Concept.ID)
	assert.Equal(t, 0.9, related[0].Relationship.Strength)
	assert.Equal(t, "asthma", related[1].Concept.ID)
	assert.Equal(t, 0.6, related[1].Relationship.Strength)
}

func TestRelatedConcepts_UndirectedTraversal(t *testing.T) {
	g := newTestGraph(t)

	// heart_attack is the target of the chest_pain edge but must still see
	// chest_pain as a neighbor.
	related := g.RelatedConcepts("heart_attack", []RelationshipType{SymptomToCondition}, DefaultMinStrength)

	ids := relatedIDs(related)
	assert.Contains(t, ids, "chest_pain")
	assert.Contains(t, ids, "shortness_of_breath")
}

func TestRelatedConcepts_MinStrengthIsInclusive(t *testing.T) {
	g := newTestGraph(t)

	// diabetes -> heart_attack has strength exactly 0.5.
	atCutoff := g.RelatedConcepts("diabetes", []RelationshipType{RelatedCondition}, 0.5)
	require.Len(t, atCutoff, 1)
	assert.Equal(t, "heart_attack", atCutoff[0].Concept.ID)

	aboveCutoff := g.RelatedConcepts("diabetes", []RelationshipType{RelatedCondition}, 0.51)
	assert.Empty(t, aboveCutoff)
}

func TestRelatedConcepts_NilTypesMeansAllTypes(t *testing.T) {
	g := newTestGraph(t)

	related := g.RelatedConcepts("heart_attack", nil, DefaultMinStrength)

	types := map[RelationshipType]bool{}
	for _, rc := range related {
		types[rc.Relationship.RelationshipType] = true
	}
	assert.True(t, types[SymptomToCondition])
	assert.True(t, types[ConditionToTreatment])
	assert.True(t, types[RelatedCondition])
}

func TestRelatedConcepts_DanglingTargetsDropped(t *testing.T) {
	g := newTestGraph(t)

	// penicillin's only edge targets penicillin_allergy, which has no concept
	// entry.
	related := g.RelatedConcepts("penicillin", []RelationshipType{Contraindication}, DefaultMinStrength)

	assert.Empty(t, related)
}

func TestDifferentialDiagnosis_AccumulatesAcrossSymptoms(t *testing.T) {
	g := newTestGraph(t)

	diagnoses := g.DifferentialDiagnosis([]string{"chest pain", "shortness of breath"})

	require.Len(t, diagnoses, 3)
	assert.Equal(t, "heart_attack", diagnoses[0].Condition.ID)
	assert.InDelta(t, 1.7, diagnoses[0].Score, 1e-9)
	assert.Equal(t, "asthma", diagnoses[1].Condition.ID)
	assert.InDelta(t, 1.5, diagnoses[1].Score, 1e-9)
	assert.Equal(t, "pneumonia", diagnoses[2].Condition.ID)
	assert.InDelta(t, 0.8, diagnoses[2].Score, 1e-9)
}

func TestDifferentialDiagnosis_UnknownSymptomsIgnored(t *testing.T) {
	g := newTestGraph(t)

	diagnoses := g.DifferentialDiagnosis([]string{"glowing skin", "fever"})

	require.Len(t, diagnoses, 2)
	assert.Equal(t, "sepsis", diagnoses[0].Condition.ID)
	assert.Equal(t, "pneumonia", diagnoses[1].Condition.ID)
}

func TestDifferentialDiagnosis_Deterministic(t *testing.T) {
	g := newTestGraph(t)
	symptoms := []string{"chest pain", "shortness of breath", "fever"}

	first := g.DifferentialDiagnosis(symptoms)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, g.DifferentialDiagnosis(symptoms))
	}
}

func TestTreatmentRecommendations(t *testing.T) {
	g := newTestGraph(t)

	recs := g.TreatmentRecommendations("cardiac arrest")

	require.NotEmpty(t, recs)
	assert.Equal(t, "cpr", recs[0].Concept.ID)
	assert.Equal(t, 1.0, recs[0].Relationship.Strength)

	ids := relatedIDs(recs)
	assert.Contains(t, ids, "defibrillation")
	assert.Contains(t, ids, "epinephrine")
}

func TestTreatmentRecommendations_UnknownCondition(t *testing.T) {
	g := newTestGraph(t)

	assert.Empty(t, g.TreatmentRecommendations("common cold"))
}

func TestContraindications_EmptyForSeedData(t *testing.T) {
	g := newTestGraph(t)

	assert.Empty(t, g.Contraindications("penicillin"))
	assert.Empty(t, g.Contraindications("aspirin"))
}

func TestIsEmergency(t *testing.T) {
	g := newTestGraph(t)

	assert.True(t, g.IsEmergency("cardiac_arrest"), "critical severity")
	assert.True(t, g.IsEmergency("stroke"), "critical severity and protocol edge")
	assert.False(t, g.IsEmergency("hypertension"))
	assert.False(t, g.IsEmergency("asthma"))
	assert.False(t, g.IsEmergency("no_such_concept"))
}

func TestContextFor(t *testing.T) {
	g := newTestGraph(t)

	context := g.ContextFor([]string{"chest pain", "heart attack", "aspirin", "cpr", "unknown thing"})

	require.Len(t, context.Symptoms, 1)
	assert.Equal(t, "chest_pain", context.Symptoms[0].ID)

	require.Len(t, context.PrimaryConditions, 1)
	assert.Equal(t, "heart_attack", context.PrimaryConditions[0].ID)

	require.Len(t, context.EmergencyIndicators, 1)
	assert.Equal(t, "heart_attack", context.EmergencyIndicators[0].ID)

	require.Len(t, context.Drugs, 1)
	assert.Equal(t, "aspirin", context.Drugs[0].ID)

	require.Len(t, context.Treatments, 1)
	assert.Equal(t, "cpr", context.Treatments[0].ID)

	// aspirin's contraindication edge dangles, so nothing resolves.
	assert.Empty(t, context.Contraindications)

	require.NotEmpty(t, context.DifferentialDiagnosis)
	assert.Equal(t, "heart_attack", context.DifferentialDiagnosis[0].Condition.ID)

	relatedIDSet := map[string]bool{}
	for _, c := range context.RelatedConditions {
		relatedIDSet[c.ID] = true
	}
	assert.True(t, relatedIDSet["cardiac_arrest"])
}

func TestContextFor_EmptyEntities(t *testing.T) {
	g := newTestGraph(t)

	context := g.ContextFor(nil)

	assert.Empty(t, context.Symptoms)
	assert.Empty(t, context.PrimaryConditions)
	assert.Empty(t, context.DifferentialDiagnosis)
	assert.Empty(t, context.RelatedConditions)
}

func relatedIDs(related []RelatedConcept) []string {
	ids := make([]string, len(related))
	for i, rc := range related {
		ids[i] = rc.Concept.ID
	}
	return ids
}
