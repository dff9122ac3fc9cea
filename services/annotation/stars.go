package annotation

import "strings"

// MapReviewStatusToStars maps a ClinVar review status onto the 0-4
// star rating scale. Unrecognized statuses map to nil (unrated).
func MapReviewStatusToStars(status string) *int {
	lowered := strings.ToLower(status)

	switch {
	case status == "":
		return starPtr(0)
	case strings.Contains(lowered, "expert panel"):
		return starPtr(4)
	case strings.Contains(lowered, "multiple submitters") && strings.Contains(lowered, "no conflict"):
		return starPtr(3)
	case strings.Contains(lowered, "multiple submitters"):
		return starPtr(2)
	case strings.Contains(lowered, "single submitter"):
		return starPtr(1)
	case strings.Contains(lowered, "no assertion") || strings.Contains(lowered, "no criteria"):
		return starPtr(0)
	default:
		return nil
	}
}

func starPtr(stars int) *int {
	return &stars
}
