package models

// DateVerdict is the per-date availability verdict for one candidate
// variation. Dates absent from the map are open.
type DateVerdict struct {
	Blocked bool `json:"blocked"`
}

// AvailabilityMap maps an ISO "YYYY-MM-DD" date string to its verdict.
// Built fresh on every variation selection and discarded with the wizard.
type AvailabilityMap map[string]DateVerdict
