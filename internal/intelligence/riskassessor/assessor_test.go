package riskassessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthik444/procheck/internal/common/logger"
)

func newTestAssessor(t *testing.T) *Assessor {
	return NewAssessor(logger.NewTestLogger(t))
}

func intPtr(v int) *int { return &v }

func TestAssess_EmptyContext(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(PatientContext{}, "administer aspirin 325mg")

	assert.Equal(t, RiskLow, assessment.OverallRisk)
	assert.Empty(t, assessment.RiskFactors)
	assert.Empty(t, assessment.Recommendations)
	assert.Empty(t, assessment.Contraindications)
	assert.Empty(t, assessment.DosageAdjustments)
}

func TestAssess_PenicillinAllergyAgainstAmoxicillin(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(
		PatientContext{Allergies: []string{"penicillin"}},
		"Administer Amoxicillin 500mg three times daily",
	)

	require.Len(t, assessment.Contraindications, 1)
	contra := assessment.Contraindications[0]
	assert.Equal(t, "amoxicillin", contra.Drug)
	assert.Equal(t, "penicillin", contra.Allergy)
	assert.Equal(t, SeverityContraindicated, contra.Severity)
	assert.Equal(t, "Avoid amoxicillin due to penicillin allergy", contra.Recommendation)

	assert.Equal(t, RiskCritical, assessment.OverallRisk)
	assert.Contains(t, assessment.Recommendations,
		"Use alternative to amoxicillin due to penicillin allergy")
}

func TestAssess_AllergyNotInProtocol(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(
		PatientContext{Allergies: []string{"penicillin"}},
		"apply sterile dressing and elevate limb",
	)

	assert.Empty(t, assessment.Contraindications)
	assert.Equal(t, RiskLow, assessment.OverallRisk)
}

func TestAssess_UnknownAllergyIgnored(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(
		PatientContext{Allergies: []string{"latex"}},
		"administer amoxicillin",
	)

	assert.Empty(t, assessment.Contraindications)
}

func TestAssess_PediatricAge(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(PatientContext{Age: intPtr(10)}, "")

	assert.Contains(t, assessment.RiskFactors,
		"Pediatric patient - specialized protocols required")
	assert.Contains(t, assessment.Recommendations, "Use pediatric dosing guidelines")
	require.Len(t, assessment.DosageAdjustments, 1)
	assert.Equal(t, "pediatric_dosing", assessment.DosageAdjustments[0].Type)
	assert.Equal(t, RiskLow, assessment.OverallRisk)
}

func TestAssess_GeriatricAge(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(PatientContext{Age: intPtr(72)}, "")

	assert.Len(t, assessment.RiskFactors, 2)
	assert.Contains(t, assessment.Recommendations, "Monitor kidney function")
	require.Len(t, assessment.DosageAdjustments, 1)
	assert.Equal(t, "renal_adjustment", assessment.DosageAdjustments[0].Type)
}

func TestAssess_AdultAgeNoFindings(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(PatientContext{Age: intPtr(40)}, "")

	assert.Empty(t, assessment.RiskFactors)
	assert.Empty(t, assessment.DosageAdjustments)
}

func TestAssess_MedicalHistoryDiabetes(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(
		PatientContext{MedicalHistory: []string{"Type 2 Diabetes"}},
		"wound care protocol",
	)

	assert.Contains(t, assessment.RiskFactors, "Type 2 Diabetes: delayed wound healing")
	assert.Contains(t, assessment.RiskFactors, "Type 2 Diabetes: infection risk")
	assert.Contains(t, assessment.Recommendations, "Monitor for glucose monitoring")
	require.Len(t, assessment.DosageAdjustments, 1)
	assert.Equal(t, "condition_based", assessment.DosageAdjustments[0].Type)
	assert.Equal(t, "Type 2 Diabetes", assessment.DosageAdjustments[0].Condition)
}

func TestAssess_MedicationInteraction(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(
		PatientContext{CurrentMedications: []string{"Warfarin 5mg"}},
		"give aspirin and start nsaids for pain",
	)

	require.Len(t, assessment.Contraindications, 2)
	first := assessment.Contraindications[0]
	assert.Equal(t, "Warfarin 5mg", first.Medication)
	assert.Equal(t, "aspirin", first.InteractingDrug)
	assert.Equal(t, SeverityModerate, first.Severity)
	assert.Equal(t, "nsaids", assessment.Contraindications[1].InteractingDrug)

	// two moderate findings, no severe or contraindicated
	assert.Equal(t, RiskModerate, assessment.OverallRisk)
}

func TestAssess_PregnancyWithContraindicatedDrug(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(
		PatientContext{PregnancyStatus: "Pregnant"},
		"continue warfarin therapy",
	)

	assert.Contains(t, assessment.RiskFactors,
		"Pregnant patient - fetal safety considerations")
	require.Len(t, assessment.Contraindications, 1)
	contra := assessment.Contraindications[0]
	assert.Equal(t, "warfarin", contra.Drug)
	assert.Equal(t, "pregnancy", contra.Reason)
	assert.Equal(t, SeveritySevere, contra.Severity)

	assert.Equal(t, RiskHigh, assessment.OverallRisk)
}

func TestAssess_NonPregnantStatusIgnored(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment := assessor.Assess(
		PatientContext{PregnancyStatus: "not pregnant"},
		"continue warfarin therapy",
	)

	assert.Empty(t, assessment.RiskFactors)
	assert.Empty(t, assessment.Contraindications)
}

func TestAssess_ModerateFromRiskFactorCount(t *testing.T) {
	assessor := newTestAssessor(t)

	// geriatric (2 factors) + hypertension history (2 factors) = 4 > 3
	assessment := assessor.Assess(
		PatientContext{
			Age:            intPtr(80),
			MedicalHistory: []string{"hypertension"},
		},
		"routine checkup",
	)

	assert.Len(t, assessment.RiskFactors, 4)
	assert.Equal(t, RiskModerate, assessment.OverallRisk)
}

func TestAssess_SeverityLadderPriority(t *testing.T) {
	assessor := newTestAssessor(t)

	// contraindicated allergy finding must win over the severe pregnancy one
	assessment := assessor.Assess(
		PatientContext{
			Allergies:       []string{"penicillin"},
			PregnancyStatus: "pregnant",
		},
		"amoxicillin and warfarin",
	)

	assert.Equal(t, RiskCritical, assessment.OverallRisk)
}

func TestAssess_Deterministic(t *testing.T) {
	assessor := newTestAssessor(t)
	patient := PatientContext{
		Age:                intPtr(70),
		Allergies:          []string{"penicillin", "sulfa"},
		MedicalHistory:     []string{"diabetes", "kidney_disease"},
		CurrentMedications: []string{"warfarin"},
		PregnancyStatus:    "pregnant",
	}
	content := "amoxicillin, sulfamethoxazole, aspirin, nsaids, warfarin"

	first := assessor.Assess(patient, content)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, assessor.Assess(patient, content))
	}
}

func TestPatientSpecificRecommendations(t *testing.T) {
	assessor := newTestAssessor(t)

	recs := assessor.PatientSpecificRecommendations(
		PatientContext{Age: intPtr(5), Allergies: []string{"sulfa"}},
		"fever management",
	)

	assert.Equal(t, "pediatric", recs.AgeGroup)
	assert.Equal(t, "standard", recs.RiskProfile)
	assert.Contains(t, recs.SpecialConsiderations, "Pediatric dosing required")
	assert.Contains(t, recs.MonitoringRequirements, "Weight-based dosing calculations")
	assert.Contains(t, recs.ContraindicationWarnings, "Check for sulfa allergy")
}

func TestPatientSpecificRecommendations_UnknownAge(t *testing.T) {
	assessor := newTestAssessor(t)

	recs := assessor.PatientSpecificRecommendations(PatientContext{}, "")

	assert.Equal(t, "unknown", recs.AgeGroup)
	assert.Empty(t, recs.SpecialConsiderations)
}

func TestAgeGroup(t *testing.T) {
	assert.Equal(t, "unknown", ageGroup(nil))
	assert.Equal(t, "pediatric", ageGroup(intPtr(17)))
	assert.Equal(t, "adult", ageGroup(intPtr(18)))
	assert.Equal(t, "adult", ageGroup(intPtr(64)))
	assert.Equal(t, "geriatric", ageGroup(intPtr(65)))
}
