package prompt

// Meta is the catalogue metadata a slice is published under.
type Meta struct {
	Name        string
	Description string
}

// metas carries the exact labels the server registers each resource
// with.
var metas = map[Key]Meta{
	KeySchema: {
		Name:        "Medical Graph Schema",
		Description: "Full Cypher schema prompt for the Neo4j medical graph",
	},
	KeyVitals: {
		Name:        "Vitals – Blood Pressure",
		Description: "Prompt slice for vitals & blood‑pressure queries",
	},
	KeyAppointments: {
		Name:        "Appointments & Billing",
		Description: "Prompt slice for appointment scheduling & billing",
	},
	KeyConsultation: {
		Name:        "Consultation & Clinical Notes",
		Description: "Prompt slice for consultation/clinical‑note queries",
	},
	KeyDiagnoses: {
		Name:        "Diagnoses & Conditions",
		Description: "Prompt slice for diagnosis tracking queries",
	},
	KeyTreatment: {
		Name:        "Treatment Plans & History",
		Description: "Prompt slice for treatment‑plan queries",
	},
	KeyMedications: {
		Name:        "Medications & Prescriptions",
		Description: "Prompt slice for prescription queries",
	},
	KeyLabs: {
		Name:        "Lab / Investigation Results",
		Description: "Prompt slice for lab result & investigation queries",
	},
}

// MetaFor returns the catalogue metadata for a key.
func MetaFor(k Key) Meta {
	return metas[k]
}
