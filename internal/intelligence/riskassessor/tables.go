package riskassessor

// Static clinical tables. Ordered slices rather than maps: findings are
// emitted in table order and must not vary between runs.

// drugAllergyClass maps an allergy class to the member drugs that trigger it.
type drugAllergyClass struct {
	class string
	drugs []string
}

var drugAllergyPatterns = []drugAllergyClass{
	{"penicillin", []string{"penicillin", "amoxicillin", "ampicillin", "benzylpenicillin"}},
	{"sulfa", []string{"sulfamethoxazole", "trimethoprim", "sulfasalazine", "sulfonamides"}},
	{"aspirin", []string{"aspirin", "acetylsalicylic acid", "nsaids", "ibuprofen"}},
	{"opioids", []string{"morphine", "fentanyl", "codeine", "oxycodone", "hydrocodone"}},
	{"contrast", []string{"iodinated contrast", "gadolinium", "contrast dye"}},
}

// conditionInteraction holds the fixed findings for one chronic condition.
type conditionInteraction struct {
	condition       string
	riskFactors     []string
	drugAdjustments []string
}

var conditionInteractions = []conditionInteraction{
	{
		condition:       "diabetes",
		riskFactors:     []string{"delayed wound healing", "infection risk", "cardiovascular complications"},
		drugAdjustments: []string{"insulin requirements", "glucose monitoring"},
	},
	{
		condition:       "hypertension",
		riskFactors:     []string{"cardiovascular events", "stroke risk"},
		drugAdjustments: []string{"blood pressure monitoring", "ace inhibitor considerations"},
	},
	{
		condition:       "kidney_disease",
		riskFactors:     []string{"drug clearance issues", "fluid balance"},
		drugAdjustments: []string{"reduced dosing", "creatinine monitoring"},
	},
	{
		condition:       "liver_disease",
		riskFactors:     []string{"drug metabolism issues", "bleeding risk"},
		drugAdjustments: []string{"hepatic dosing", "liver function monitoring"},
	},
	{
		condition:       "pregnancy",
		riskFactors:     []string{"fetal safety", "maternal complications"},
		drugAdjustments: []string{"pregnancy category", "teratogenic risk"},
	},
}

// interactionPattern maps one medication to the drug classes it interacts
// with when they appear in the protocol text.
type interactionPattern struct {
	drug             string
	interactingDrugs []string
}

var interactionPatterns = []interactionPattern{
	{"warfarin", []string{"aspirin", "nsaids", "antibiotics"}},
	{"digoxin", []string{"diuretics", "calcium channel blockers"}},
	{"insulin", []string{"beta blockers", "thiazides"}},
	{"ace inhibitors", []string{"potassium supplements", "nsaids"}},
	{"beta blockers", []string{"insulin", "calcium channel blockers"}},
}

// Drugs with established teratogenic risk, checked when the patient is
// pregnant.
var pregnancyContraindicatedDrugs = []string{
	"warfarin", "ace inhibitors", "statins", "methotrexate", "isotretinoin",
}

var pregnancyStatuses = []string{"pregnant", "pregnancy", "expecting"}
