// Package health flags bills touching health policy by keyword match over title and synopsis.
//
// Matching is a plain case-insensitive substring test. Short keywords like "ems" or "hhs" can
// match inside unrelated words; that false-positive risk is accepted and not special-cased.
package health

import "strings"

// KeywordsVersion identifies the curated keyword set, bump it on any change to keywords
const KeywordsVersion = "2025.1"

var keywords = []string{
	"health", "hospital", "medicaid", "medicare", "physician", "nurse",
	"pharmacy", "pharmaceutical", "drug", "mental health", "behavioral",
	"insurance", "provider", "patient", "medical", "clinical", "care",
	"telehealth", "telemedicine", "opioid", "substance abuse", "vaccine",
	"immunization", "public health", "epidemic", "pandemic", "disease",
	"dental", "optometry", "therapy", "rehabilitation", "emergency",
	"ambulance", "ems", "certificate of need", "con ", "medicaid expansion",
	"340b", "reimbursement", "dhhs", "hhs", "nursing", "assisted living",
	"long-term care", "home health", "hospice", "wellness", "maternal",
	"infant", "prenatal", "behavioral health", "psychiatric", "disability",
	"biotech", "biologics", "generic drug", "prescription", "copay",
	"deductible", "premium", "coverage", "uninsured", "underinsured",
	"workforce shortage", "scope of practice", "licensure", "trauma",
	"cancer", "chronic", "obesity", "diabetes", "cardiovascular",
	"fentanyl", "naloxone", "narcan", "overdose", "addiction",
	"eating disorder", "anorexia", "bulimia", "suicide prevention",
	"child welfare", "foster care", "abuse", "neglect",
	"organ donation", "transplant", "blood bank",
	"health equity", "disparity", "social determinants",
	"community health", "rural health", "critical access",
	"ambulatory", "outpatient", "inpatient", "surgical center",
	"value-based", "fee-for-service", "managed care",
	"prior authorization", "utilization review", "network adequacy",
}

// IsHealthRelated reports whether title or synopsis mention any health keyword
func IsHealthRelated(title, synopsis string) bool {
	text := strings.ToLower(title + " " + synopsis)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Keywords returns a copy of the keyword set
func Keywords() []string {
	res := make([]string, len(keywords))
	copy(res, keywords)
	return res
}
