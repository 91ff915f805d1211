package models

// StudentProfile is the request body of the recommendation API.
type StudentProfile struct {
	Age            int    `json:"age"`
	EducationLevel string `json:"education_level"`
	Category       string `json:"category,omitempty"` // General / OBC / SC / ST
	Gender         string `json:"gender,omitempty"`
	Location       string `json:"location,omitempty"`
}

// Recommendation is one entry of the recommendation API response, in
// deadline order.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Deadline    string `json:"deadline"`
	Link        string `json:"link"`
	Explanation string `json:"explanation"`
}
