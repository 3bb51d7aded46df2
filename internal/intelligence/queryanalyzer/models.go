package queryanalyzer

// Intent is the coarse category of a query's medical purpose. Downstream
// components branch on it, so the set is closed.
type Intent string

const (
	IntentSymptomBased   Intent = "symptom_based"
	IntentProcedureBased Intent = "procedure_based"
	IntentDrugBased      Intent = "drug_based"
	IntentConditionBased Intent = "condition_based"
	IntentEmergency      Intent = "emergency"
	IntentGeneral        Intent = "general"
)

// EntityType classifies an extracted medical entity.
type EntityType string

const (
	EntitySymptom   EntityType = "symptom"
	EntityCondition EntityType = "condition"
	EntityProcedure EntityType = "procedure"
	EntityDrug      EntityType = "drug"
)

// Urgency level extracted from query context.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Setting is the care setting inferred from the query.
type Setting string

const (
	SettingHospital Setting = "hospital"
	SettingClinic   Setting = "clinic"
	SettingGeneral  Setting = "general"
)

// MedicalEntity is a single tagged span of the source query. Spans may
// overlap across entity types; permissive recall is intentional.
type MedicalEntity struct {
	Text       string     `json:"text"`
	EntityType EntityType `json:"type"`
	Confidence float64    `json:"confidence"`
	StartPos   int        `json:"startPos"`
	EndPos     int        `json:"endPos"`
}

// MedicalContext carries the patient/situation hints found in the query
// itself. Urgency and Setting always hold a value; Age and Gender only when
// the query states them.
type MedicalContext struct {
	Age     *int    `json:"age,omitempty"`
	Gender  string  `json:"gender,omitempty"`
	Urgency Urgency `json:"urgency"`
	Setting Setting `json:"setting"`
}

// QueryAnalysis is the full result of analyzing one query. Immutable after
// construction.
type QueryAnalysis struct {
	OriginalQuery  string          `json:"originalQuery"`
	Intent         Intent          `json:"intent"`
	Entities       []MedicalEntity `json:"entities"`
	EnhancedQuery  string          `json:"enhancedQuery"`
	Suggestions    []string        `json:"suggestions"`
	MedicalContext MedicalContext  `json:"medicalContext"`
}

// HasEntityType reports whether any extracted entity has the given type.
func (qa *QueryAnalysis) HasEntityType(t EntityType) bool {
	for _, e := range qa.Entities {
		if e.EntityType == t {
			return true
		}
	}
	return false
}
