package riskassessor

import (
	"fmt"
	"strings"

	"github.com/arthik444/procheck/internal/common/logger"
)

// Assessor evaluates patient risk against protocol text. Stateless per call
// and safe for concurrent use.
type Assessor struct {
	logger logger.Logger
}

func NewAssessor(log logger.Logger) *Assessor {
	return &Assessor{
		logger: log.WithFields(map[string]interface{}{"component": "risk-assessor"}),
	}
}

// Assess runs every sub-assessment whose patient field is populated and
// folds the findings into one RiskAssessment. The accumulator order is
// fixed: age, allergies, history, medications, pregnancy.
func (a *Assessor) Assess(patient PatientContext, protocolContent string) *RiskAssessment {
	assessment := &RiskAssessment{
		RiskFactors:       []string{},
		Recommendations:   []string{},
		Contraindications: []Contraindication{},
		DosageAdjustments: []DosageAdjustment{},
	}

	contentLower := strings.ToLower(protocolContent)

	if patient.Age != nil {
		a.assessAge(*patient.Age, assessment)
	}
	if len(patient.Allergies) > 0 {
		a.assessAllergies(patient.Allergies, contentLower, assessment)
	}
	if len(patient.MedicalHistory) > 0 {
		a.assessMedicalHistory(patient.MedicalHistory, assessment)
	}
	if len(patient.CurrentMedications) > 0 {
		a.assessCurrentMedications(patient.CurrentMedications, contentLower, assessment)
	}
	if patient.PregnancyStatus != "" {
		a.assessPregnancy(patient.PregnancyStatus, contentLower, assessment)
	}

	assessment.OverallRisk = determineOverallRisk(assessment.RiskFactors, assessment.Contraindications)

	a.logger.Debug("patient risk assessed", map[string]interface{}{
		"overallRisk":       assessment.OverallRisk,
		"riskFactors":       len(assessment.RiskFactors),
		"contraindications": len(assessment.Contraindications),
	})

	return assessment
}

func (a *Assessor) assessAge(age int, assessment *RiskAssessment) {
	switch {
	case age < 18:
		assessment.RiskFactors = append(assessment.RiskFactors,
			"Pediatric patient - specialized protocols required")
		assessment.Recommendations = append(assessment.Recommendations,
			"Use pediatric dosing guidelines",
			"Consider parental consent requirements")
		assessment.DosageAdjustments = append(assessment.DosageAdjustments, DosageAdjustment{
			Type:        "pediatric_dosing",
			Description: "Adjust dosages based on weight and age",
		})
	case age >= 65:
		assessment.RiskFactors = append(assessment.RiskFactors,
			"Geriatric patient - increased risk profile",
			"Potential for reduced kidney function")
		assessment.Recommendations = append(assessment.Recommendations,
			"Monitor kidney function",
			"Assess for polypharmacy interactions",
			"Consider fall risk and mobility issues")
		assessment.DosageAdjustments = append(assessment.DosageAdjustments, DosageAdjustment{
			Type:        "renal_adjustment",
			Description: "Consider reduced dosing for renal clearance",
		})
	}
}

// assessAllergies resolves each allergy string to its drug class, then flags
// every member drug of that class found in the protocol text.
func (a *Assessor) assessAllergies(allergies []string, contentLower string, assessment *RiskAssessment) {
	for _, allergy := range allergies {
		allergyLower := strings.ToLower(allergy)

		for _, class := range drugAllergyPatterns {
			if !allergyMatchesClass(allergyLower, class) {
				continue
			}
			for _, drug := range class.drugs {
				if !strings.Contains(contentLower, drug) {
					continue
				}
				assessment.Contraindications = append(assessment.Contraindications, Contraindication{
					Drug:           drug,
					Allergy:        allergy,
					Severity:       SeverityContraindicated,
					Recommendation: fmt.Sprintf("Avoid %s due to %s allergy", drug, allergy),
				})
				assessment.Recommendations = append(assessment.Recommendations,
					fmt.Sprintf("Use alternative to %s due to %s allergy", drug, allergy))
			}
		}
	}
}

func allergyMatchesClass(allergyLower string, class drugAllergyClass) bool {
	for _, drug := range class.drugs {
		if strings.Contains(allergyLower, drug) {
			return true
		}
	}
	return false
}

func (a *Assessor) assessMedicalHistory(history []string, assessment *RiskAssessment) {
	for _, condition := range history {
		conditionLower := strings.ToLower(condition)

		for _, interaction := range conditionInteractions {
			if !strings.Contains(conditionLower, interaction.condition) {
				continue
			}
			for _, risk := range interaction.riskFactors {
				assessment.RiskFactors = append(assessment.RiskFactors,
					fmt.Sprintf("%s: %s", condition, risk))
			}
			for _, adjustment := range interaction.drugAdjustments {
				assessment.Recommendations = append(assessment.Recommendations,
					fmt.Sprintf("Monitor for %s", adjustment))
			}
			assessment.DosageAdjustments = append(assessment.DosageAdjustments, DosageAdjustment{
				Type:        "condition_based",
				Condition:   condition,
				Adjustments: interaction.drugAdjustments,
			})
		}
	}
}

func (a *Assessor) assessCurrentMedications(medications []string, contentLower string, assessment *RiskAssessment) {
	for _, medication := range medications {
		medLower := strings.ToLower(medication)

		for _, pattern := range interactionPatterns {
			if !strings.Contains(medLower, pattern.drug) {
				continue
			}
			for _, interacting := range pattern.interactingDrugs {
				if !strings.Contains(contentLower, interacting) {
					continue
				}
				assessment.Contraindications = append(assessment.Contraindications, Contraindication{
					Medication:      medication,
					InteractingDrug: interacting,
					Severity:        SeverityModerate,
					Recommendation:  fmt.Sprintf("Monitor for interaction between %s and %s", medication, interacting),
				})
				assessment.Recommendations = append(assessment.Recommendations,
					fmt.Sprintf("Monitor patient for drug interaction between %s and %s", medication, interacting))
			}
		}
	}
}

func (a *Assessor) assessPregnancy(status string, contentLower string, assessment *RiskAssessment) {
	if !isPregnant(status) {
		return
	}

	assessment.RiskFactors = append(assessment.RiskFactors,
		"Pregnant patient - fetal safety considerations")
	assessment.Recommendations = append(assessment.Recommendations,
		"Consider pregnancy category of all medications",
		"Assess teratogenic risk",
		"Consider fetal monitoring if applicable")

	for _, drug := range pregnancyContraindicatedDrugs {
		if !strings.Contains(contentLower, drug) {
			continue
		}
		assessment.Contraindications = append(assessment.Contraindications, Contraindication{
			Drug:           drug,
			Reason:         "pregnancy",
			Severity:       SeveritySevere,
			Recommendation: fmt.Sprintf("Avoid %s in pregnancy due to teratogenic risk", drug),
		})
	}
}

func isPregnant(status string) bool {
	statusLower := strings.ToLower(status)
	for _, s := range pregnancyStatuses {
		if statusLower == s {
			return true
		}
	}
	return false
}

// determineOverallRisk applies the severity ladder, first match wins:
// contraindicated -> critical, severe -> high, factor or finding count ->
// moderate, otherwise low.
func determineOverallRisk(riskFactors []string, contraindications []Contraindication) RiskLevel {
	for _, c := range contraindications {
		if c.Severity == SeverityContraindicated {
			return RiskCritical
		}
	}

	for _, c := range contraindications {
		if c.Severity == SeveritySevere {
			return RiskHigh
		}
	}

	if len(riskFactors) > 3 || len(contraindications) > 1 {
		return RiskModerate
	}

	return RiskLow
}

// PatientSpecificRecommendations is the secondary entry point: static
// age-group and allergy guidance for a query, independent of any protocol
// text.
func (a *Assessor) PatientSpecificRecommendations(patient PatientContext, query string) *PatientRecommendations {
	recommendations := &PatientRecommendations{
		AgeGroup:                 ageGroup(patient.Age),
		RiskProfile:              "standard",
		SpecialConsiderations:    []string{},
		ProtocolModifications:    []string{},
		MonitoringRequirements:   []string{},
		ContraindicationWarnings: []string{},
	}

	switch recommendations.AgeGroup {
	case "pediatric":
		recommendations.SpecialConsiderations = append(recommendations.SpecialConsiderations,
			"Pediatric dosing required")
		recommendations.MonitoringRequirements = append(recommendations.MonitoringRequirements,
			"Weight-based dosing calculations")
	case "geriatric":
		recommendations.SpecialConsiderations = append(recommendations.SpecialConsiderations,
			"Geriatric considerations")
		recommendations.MonitoringRequirements = append(recommendations.MonitoringRequirements,
			"Renal function monitoring")
	}

	for _, allergy := range patient.Allergies {
		recommendations.ContraindicationWarnings = append(recommendations.ContraindicationWarnings,
			fmt.Sprintf("Check for %s allergy", allergy))
	}

	return recommendations
}

func ageGroup(age *int) string {
	switch {
	case age == nil:
		return "unknown"
	case *age < 18:
		return "pediatric"
	case *age >= 65:
		return "geriatric"
	default:
		return "adult"
	}
}
