package queryanalyzer

import "regexp"

// Pattern families for entity extraction. Each family is scanned in order
// and every non-overlapping match per pattern becomes one entity; the same
// span can be tagged by more than one family.
var (
	symptomPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(chest pain|shortness of breath|difficulty breathing|wheezing|coughing|fever|headache|nausea|vomiting|dizziness|fatigue|weakness|pain|swelling|rash|bleeding|confusion|seizure|unconsciousness)\b`),
		regexp.MustCompile(`(?i)\b(acute|chronic|severe|mild|moderate|sudden|gradual)\s+(pain|symptoms?|condition)\b`),
		regexp.MustCompile(`(?i)\b(cannot|unable to|difficulty|trouble)\s+(breathe|walk|speak|swallow|see|hear)\b`),
	}

	conditionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(heart attack|myocardial infarction|stroke|cerebrovascular accident|pneumonia|asthma|diabetes|hypertension|sepsis|shock|cardiac arrest|respiratory failure|kidney failure|liver failure)\b`),
		regexp.MustCompile(`(?i)\b(covid-19|coronavirus|influenza|flu|tuberculosis|tb|hepatitis|hiv|aids|cancer|tumor|malignancy)\b`),
		regexp.MustCompile(`(?i)\b(emergency|critical|life-threatening|urgent|acute|chronic)\s+(condition|illness|disease)\b`),
	}

	procedurePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(cpr|cardiopulmonary resuscitation|intubation|ventilation|defibrillation|surgery|operation|procedure|treatment|therapy|medication|injection|iv|intravenous)\b`),
		regexp.MustCompile(`(?i)\b(how to|steps to|procedure for|treatment for|management of)\b`),
		regexp.MustCompile(`(?i)\b(emergency|urgent|immediate)\s+(treatment|care|intervention|response)\b`),
	}

	drugPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(aspirin|morphine|epinephrine|adrenaline|insulin|penicillin|amoxicillin|paracetamol|acetaminophen|ibuprofen|fentanyl|naloxone|atropine|lidocaine)\b`),
		regexp.MustCompile(`(?i)\b(medication|drug|medicine|prescription|dose|dosage|mg|mcg|ml|tablet|capsule|injection|iv|oral|topical)\b`),
		regexp.MustCompile(`(?i)\b(contraindication|allergy|adverse effect|side effect|interaction)\b`),
	}

	emergencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(emergency|urgent|critical|life-threatening|immediate|stat|asap|emergency room|er|trauma|cardiac arrest|respiratory arrest|sepsis|shock|stroke|heart attack)\b`),
		regexp.MustCompile(`(?i)\b(911|emergency services|ambulance|paramedic|first aid|emergency response)\b`),
	}

	agePattern = regexp.MustCompile(`(\d+)\s*(years? old|year-old)`)
)

// entityFamily binds one pattern family to the entity type and confidence it
// produces.
type entityFamily struct {
	entityType EntityType
	confidence float64
	patterns   []*regexp.Regexp
}

// Families are scanned in this fixed order so entity lists are deterministic.
var entityFamilies = []entityFamily{
	{EntitySymptom, 0.8, symptomPatterns},
	{EntityCondition, 0.9, conditionPatterns},
	{EntityProcedure, 0.8, procedurePatterns},
	{EntityDrug, 0.8, drugPatterns},
}

// synonymEntry pairs a trigger term with its expansion synonyms. A slice, not
// a map: enhancement appends in table order and must stay deterministic.
type synonymEntry struct {
	term     string
	synonyms []string
}

var medicalSynonyms = []synonymEntry{
	{"chest pain", []string{"chest discomfort", "chest pressure", "angina", "cardiac pain"}},
	{"heart attack", []string{"myocardial infarction", "mi", "acute coronary syndrome", "acs"}},
	{"stroke", []string{"cerebrovascular accident", "cva", "brain attack"}},
	{"cpr", []string{"cardiopulmonary resuscitation", "chest compressions", "rescue breathing"}},
	{"breathing", []string{"respiration", "ventilation", "respiratory"}},
	{"blood pressure", []string{"bp", "hypertension", "hypotension"}},
	{"diabetes", []string{"diabetes mellitus", "dm", "high blood sugar"}},
	{"covid", []string{"coronavirus", "sars-cov-2", "covid-19"}},
	{"flu", []string{"influenza", "seasonal flu"}},
	{"tb", []string{"tuberculosis", "pulmonary tuberculosis"}},
	{"hiv", []string{"human immunodeficiency virus", "aids"}},
	{"cancer", []string{"malignancy", "tumor", "neoplasm"}},
	{"surgery", []string{"operation", "procedure", "surgical intervention"}},
	{"medication", []string{"drug", "medicine", "pharmaceutical"}},
	{"injection", []string{"shot", "injection", "parenteral administration"}},
	{"iv", []string{"intravenous", "intravenous therapy", "iv therapy"}},
}

// Keyword sets for context extraction.
var (
	maleKeywords   = []string{"male", "man", "boy"}
	femaleKeywords = []string{"female", "woman", "girl"}

	highUrgencyKeywords = []string{"emergency", "urgent", "critical", "immediate"}
	lowUrgencyKeywords  = []string{"mild", "routine", "non-urgent"}

	hospitalKeywords = []string{"hospital", "emergency room", "er", "icu"}
	clinicKeywords   = []string{"clinic", "outpatient", "office"}
)

// Static suggestion lists, indexed by intent. Intents not present produce no
// suggestions.
var intentSuggestions = map[Intent][]string{
	IntentSymptomBased: {
		"Related conditions and differential diagnosis",
		"Emergency protocols for severe symptoms",
		"Diagnostic procedures and tests",
		"Treatment protocols and medications",
	},
	IntentProcedureBased: {
		"Step-by-step procedure guide",
		"Required equipment and medications",
		"Contraindications and safety precautions",
		"Post-procedure care and monitoring",
	},
	IntentEmergency: {
		"Immediate emergency response protocols",
		"Critical care procedures",
		"Emergency medications and dosages",
		"Trauma and resuscitation protocols",
	},
}
