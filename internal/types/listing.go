package types

// RawListing is the tuple handed over by the scraping collaborator before any
// inference runs. Title and Company are required; listings missing either are
// dropped by the normalizer.
type RawListing struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	URL        string `json:"url"`
	Source     string `json:"source"`
	PostedDate string `json:"posted_date"`
}

// JobListing is a normalized job posting with inferred attributes.
type JobListing struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	URL            string   `json:"url"`
	Source         string   `json:"source"`
	PostedDate     string   `json:"posted_date"`
	ExperienceBand string   `json:"experience_band"`
	JobType        string   `json:"job_type"`
	InferredSkills []string `json:"inferred_skills"`
	SalaryRange    string   `json:"salary_range"`
	Description    string   `json:"description"`
}
