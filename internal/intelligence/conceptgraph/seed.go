package conceptgraph

// Seed tables for the knowledge base. Slices, not maps: findConcept and the
// relationship scans resolve ties by table order, which must not vary between
// runs.

func seedConcepts() []*MedicalConcept {
	return []*MedicalConcept{
		// Cardiovascular
		{ID: "chest_pain", Name: "chest pain", ConceptType: "symptom", Severity: SeverityHigh, Category: "cardiovascular", Aliases: []string{"chest discomfort", "chest pressure", "angina"}},
		{ID: "shortness_of_breath", Name: "shortness of breath", ConceptType: "symptom", Severity: SeverityHigh, Category: "respiratory", Aliases: []string{"dyspnea", "difficulty breathing", "breathlessness"}},
		{ID: "heart_attack", Name: "heart attack", ConceptType: "condition", Severity: SeverityCritical, Category: "cardiovascular", Aliases: []string{"myocardial infarction", "MI", "acute coronary syndrome"}},
		{ID: "cardiac_arrest", Name: "cardiac arrest", ConceptType: "condition", Severity: SeverityCritical, Category: "cardiovascular", Aliases: []string{"sudden cardiac arrest", "SCA"}},
		{ID: "hypertension", Name: "hypertension", ConceptType: "condition", Severity: SeverityMedium, Category: "cardiovascular", Aliases: []string{"high blood pressure", "HTN"}},

		// Respiratory
		{ID: "asthma", Name: "asthma", ConceptType: "condition", Severity: SeverityMedium, Category: "respiratory", Aliases: []string{"bronchial asthma", "reactive airway disease"}},
		{ID: "pneumonia", Name: "pneumonia", ConceptType: "condition", Severity: SeverityHigh, Category: "respiratory", Aliases: []string{"lung infection", "pulmonary infection"}},
		{ID: "respiratory_failure", Name: "respiratory failure", ConceptType: "condition", Severity: SeverityCritical, Category: "respiratory", Aliases: []string{"respiratory arrest", "breathing failure"}},

		// Emergency procedures
		{ID: "cpr", Name: "CPR", ConceptType: "procedure", Severity: SeverityCritical, Category: "emergency", Aliases: []string{"cardiopulmonary resuscitation", "chest compressions"}},
		{ID: "defibrillation", Name: "defibrillation", ConceptType: "procedure", Severity: SeverityCritical, Category: "emergency", Aliases: []string{"defibrillator", "shock therapy"}},
		{ID: "intubation", Name: "intubation", ConceptType: "procedure", Severity: SeverityHigh, Category: "respiratory", Aliases: []string{"endotracheal intubation", "ET tube"}},

		// Drugs
		{ID: "aspirin", Name: "aspirin", ConceptType: "drug", Severity: SeverityMedium, Category: "cardiovascular", Aliases: []string{"acetylsalicylic acid", "ASA"}},
		{ID: "epinephrine", Name: "epinephrine", ConceptType: "drug", Severity: SeverityHigh, Category: "emergency", Aliases: []string{"adrenaline", "EpiPen"}},
		{ID: "morphine", Name: "morphine", ConceptType: "drug", Severity: SeverityHigh, Category: "pain_management", Aliases: []string{"morphine sulfate", "opioid"}},
		{ID: "penicillin", Name: "penicillin", ConceptType: "drug", Severity: SeverityMedium, Category: "antibiotic", Aliases: []string{"penicillin G", "benzylpenicillin"}},

		// General
		{ID: "fever", Name: "fever", ConceptType: "symptom", Severity: SeverityMedium, Category: "general", Aliases: []string{"pyrexia", "elevated temperature"}},
		{ID: "diabetes", Name: "diabetes", ConceptType: "condition", Severity: SeverityHigh, Category: "endocrine", Aliases: []string{"diabetes mellitus", "DM", "high blood sugar"}},
		{ID: "sepsis", Name: "sepsis", ConceptType: "condition", Severity: SeverityCritical, Category: "infectious", Aliases: []string{"blood infection", "systemic infection"}},
		{ID: "stroke", Name: "stroke", ConceptType: "condition", Severity: SeverityCritical, Category: "neurological", Aliases: []string{"cerebrovascular accident", "CVA", "brain attack"}},
	}
}

func seedRelationships() []*MedicalRelationship {
	return []*MedicalRelationship{
		// Symptom to condition
		{Source: "chest_pain", Target: "heart_attack", RelationshipType: SymptomToCondition, Strength: 0.9, EvidenceLevel: EvidenceHigh},
		{Source: "chest_pain", Target: "asthma", RelationshipType: SymptomToCondition, Strength: 0.6, EvidenceLevel: EvidenceMedium},
		{Source: "shortness_of_breath", Target: "heart_attack", RelationshipType: SymptomToCondition, Strength: 0.8, EvidenceLevel: EvidenceHigh},
		{Source: "shortness_of_breath", Target: "asthma", RelationshipType: SymptomToCondition, Strength: 0.9, EvidenceLevel: EvidenceHigh},
		{Source: "shortness_of_breath", Target: "pneumonia", RelationshipType: SymptomToCondition, Strength: 0.8, EvidenceLevel: EvidenceHigh},
		{Source: "fever", Target: "pneumonia", RelationshipType: SymptomToCondition, Strength: 0.7, EvidenceLevel: EvidenceMedium},
		{Source: "fever", Target: "sepsis", RelationshipType: SymptomToCondition, Strength: 0.8, EvidenceLevel: EvidenceHigh},

		// Condition to treatment
		{Source: "heart_attack", Target: "aspirin", RelationshipType: ConditionToTreatment, Strength: 0.9, EvidenceLevel: EvidenceHigh},
		{Source: "cardiac_arrest", Target: "cpr", RelationshipType: ConditionToTreatment, Strength: 1.0, EvidenceLevel: EvidenceHigh},
		{Source: "cardiac_arrest", Target: "defibrillation", RelationshipType: ConditionToTreatment, Strength: 0.9, EvidenceLevel: EvidenceHigh},
		{Source: "asthma", Target: "epinephrine", RelationshipType: ConditionToTreatment, Strength: 0.8, EvidenceLevel: EvidenceHigh},
		{Source: "respiratory_failure", Target: "intubation", RelationshipType: ConditionToTreatment, Strength: 0.9, EvidenceLevel: EvidenceHigh},

		// Drug to condition
		{Source: "aspirin", Target: "heart_attack", RelationshipType: DrugToCondition, Strength: 0.9, EvidenceLevel: EvidenceHigh},
		{Source: "epinephrine", Target: "cardiac_arrest", RelationshipType: DrugToCondition, Strength: 0.8, EvidenceLevel: EvidenceHigh},
		{Source: "morphine", Target: "chest_pain", RelationshipType: DrugToCondition, Strength: 0.7, EvidenceLevel: EvidenceMedium},

		// Contraindications. Targets are allergy/disorder ids with no concept
		// entry yet; traversals miss them gracefully.
		{Source: "penicillin", Target: "penicillin_allergy", RelationshipType: Contraindication, Strength: 1.0, EvidenceLevel: EvidenceHigh},
		{Source: "aspirin", Target: "bleeding_disorder", RelationshipType: Contraindication, Strength: 0.8, EvidenceLevel: EvidenceHigh},

		// Related conditions
		{Source: "heart_attack", Target: "cardiac_arrest", RelationshipType: RelatedCondition, Strength: 0.7, EvidenceLevel: EvidenceMedium},
		{Source: "hypertension", Target: "heart_attack", RelationshipType: RelatedCondition, Strength: 0.6, EvidenceLevel: EvidenceMedium},
		{Source: "diabetes", Target: "heart_attack", RelationshipType: RelatedCondition, Strength: 0.5, EvidenceLevel: EvidenceMedium},

		// Emergency protocols
		{Source: "cardiac_arrest", Target: "emergency_protocol", RelationshipType: EmergencyProtocol, Strength: 1.0, EvidenceLevel: EvidenceHigh},
		{Source: "stroke", Target: "emergency_protocol", RelationshipType: EmergencyProtocol, Strength: 1.0, EvidenceLevel: EvidenceHigh},
		{Source: "sepsis", Target: "emergency_protocol", RelationshipType: EmergencyProtocol, Strength: 1.0, EvidenceLevel: EvidenceHigh},
	}
}
