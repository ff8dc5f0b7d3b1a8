package analyzer

import "fmt"

// FallbackText synthesizes placeholder resume text for uploads whose text
// extraction came back unusably short. This is the only path in the module
// allowed to fabricate input; the pipeline itself never invents text for a
// real document. Callers decide whether to use it or surface the
// insufficient-text condition to the user.
func FallbackText(fileName, contactEmail string) string {
	return fmt.Sprintf(`Resume extracted from %s
Contact: %s
The uploaded document did not yield enough readable text for a reliable
analysis. This placeholder keeps the pipeline total; re-upload a text-based
PDF for a real assessment.
Skills: not detected
Experience: not detected
Education: not detected`, fileName, contactEmail)
}
