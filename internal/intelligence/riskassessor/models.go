// Package riskassessor combines a patient context with protocol text to
// produce risk factors, contraindications, dosage adjustments, and an
// overall risk level. Assessment is a pure function of its inputs: missing
// patient fields contribute nothing, and no input ever produces an error.
package riskassessor

// RiskLevel is the overall risk classification for one assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ContraindicationSeverity grades a single contraindication finding.
type ContraindicationSeverity string

const (
	SeverityMild            ContraindicationSeverity = "mild"
	SeverityModerate        ContraindicationSeverity = "moderate"
	SeveritySevere          ContraindicationSeverity = "severe"
	SeverityContraindicated ContraindicationSeverity = "contraindicated"
)

// PatientContext carries the patient fields supplied by the caller. Every
// field is optional; empty fields are treated as "no contribution".
type PatientContext struct {
	Age                *int     `json:"age,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	Weight             *float64 `json:"weight,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	MedicalHistory     []string `json:"medicalHistory,omitempty"`
	CurrentMedications []string `json:"currentMedications,omitempty"`
	PregnancyStatus    string   `json:"pregnancyStatus,omitempty"`
	Setting            string   `json:"setting,omitempty"`
}

// Contraindication is one finding against the protocol. Allergy findings set
// Drug+Allergy, pregnancy findings set Drug+Reason, and medication
// interactions set Medication+InteractingDrug.
type Contraindication struct {
	Drug            string                   `json:"drug,omitempty"`
	Allergy         string                   `json:"allergy,omitempty"`
	Reason          string                   `json:"reason,omitempty"`
	Medication      string                   `json:"medication,omitempty"`
	InteractingDrug string                   `json:"interactingDrug,omitempty"`
	Severity        ContraindicationSeverity `json:"severity"`
	Recommendation  string                   `json:"recommendation"`
}

// DosageAdjustment is one suggested dosing change.
type DosageAdjustment struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Adjustments []string `json:"adjustments,omitempty"`
}

// RiskAssessment is the full result of one assessment. All list fields are
// non-nil and keep their accumulation order.
type RiskAssessment struct {
	OverallRisk       RiskLevel          `json:"overallRisk"`
	RiskFactors       []string           `json:"riskFactors"`
	Recommendations   []string           `json:"recommendations"`
	Contraindications []Contraindication `json:"contraindications"`
	DosageAdjustments []DosageAdjustment `json:"dosageAdjustments"`
}

// PatientRecommendations is the secondary, query-oriented output of
// PatientSpecificRecommendations.
type PatientRecommendations struct {
	AgeGroup                 string   `json:"ageGroup"`
	RiskProfile              string   `json:"riskProfile"`
	SpecialConsiderations    []string `json:"specialConsiderations"`
	ProtocolModifications    []string `json:"protocolModifications"`
	MonitoringRequirements   []string `json:"monitoringRequirements"`
	ContraindicationWarnings []string `json:"contraindicationWarnings"`
}
