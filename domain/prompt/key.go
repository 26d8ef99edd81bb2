// Package prompt holds the domain prompt slices: a closed enumeration
// of slice keys, their resource locators, the offline fallback texts,
// and the agent's instruction templates. The same constants back both
// the server resources and the client fallbacks, so prompt behavior
// does not depend on whether a remote fetch succeeded.
package prompt

import (
	"fmt"
	"strings"
)

// Key identifies one domain prompt slice.
type Key string

// The fixed slice enumeration.
const (
	KeySchema       Key = "schema"
	KeyVitals       Key = "vitals"
	KeyAppointments Key = "appointments"
	KeyConsultation Key = "consultation"
	KeyDiagnoses    Key = "diagnoses"
	KeyTreatment    Key = "treatment"
	KeyMedications  Key = "medications"
	KeyLabs         Key = "labs"
)

// ErrUnknownKey is returned for selectors outside the enumeration.
var ErrUnknownKey = fmt.Errorf("unknown prompt slice key")

// Keys returns every valid key in a stable order.
func Keys() []Key {
	return []Key{
		KeySchema,
		KeyVitals,
		KeyAppointments,
		KeyConsultation,
		KeyDiagnoses,
		KeyTreatment,
		KeyMedications,
		KeyLabs,
	}
}

// ParseKey validates a user-supplied slice selector.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Keys() {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// uris maps each key to its resource locator on the server.
var uris = map[Key]string{
	KeySchema:       "resource://neo4j-schema",
	KeyVitals:       "resource://prompts/vitals-bp",
	KeyAppointments: "resource://prompts/appointments-billing",
	KeyConsultation: "resource://prompts/consultation-clinical",
	KeyDiagnoses:    "resource://prompts/diagnoses-conditions",
	KeyTreatment:    "resource://prompts/treatment-plans-history",
	KeyMedications:  "resource://prompts/medications-prescriptions",
	KeyLabs:         "resource://prompts/lab-results",
}

// URI returns the resource locator for a key.
func URI(k Key) string {
	return uris[k]
}

// KeyForURI resolves a resource locator back to its key.
func KeyForURI(uri string) (Key, bool) {
	for k, u := range uris {
		if u == uri {
			return k, true
		}
	}
	return "", false
}

// Fallback returns the offline text baked into the client for a key.
func Fallback(k Key) string {
	return fallbacks[k]
}

// Render substitutes the user question into a slice text. Slice texts
// use doubled braces to protect literal Cypher braces, matching the
// stored resource content, so rendering collapses them after the
// question placeholder is filled in.
func Render(text, question string) string {
	const sentinel = "\x00question\x00"
	s := strings.ReplaceAll(text, "{user_question}", sentinel)
	s = strings.ReplaceAll(s, "{{", "{")
	s = strings.ReplaceAll(s, "}}", "}")
	return strings.ReplaceAll(s, sentinel, question)
}
