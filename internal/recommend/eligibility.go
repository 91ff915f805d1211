package recommend

import "github.com/disha-labs/disha-backend/internal/models"

// Eligibility reasons returned to API callers.
const (
	ReasonEducationMismatch = "Education level does not match"
	ReasonAgeCriteria       = "Age criteria not satisfied"
	ReasonEligible          = "All eligibility criteria satisfied"
)

// IsEligible checks a student against one opportunity. Education level
// must match exactly and age must fall inside the inclusive bounds; the
// first failing check names the reason.
func IsEligible(student *models.StudentProfile, opp *models.Opportunity) (bool, string) {
	if student.EducationLevel != opp.EducationLevel {
		return false, ReasonEducationMismatch
	}
	if student.Age < opp.Eligibility.MinAge || student.Age > opp.Eligibility.MaxAge {
		return false, ReasonAgeCriteria
	}
	return true, ReasonEligible
}
