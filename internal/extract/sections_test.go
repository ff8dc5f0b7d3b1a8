package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

func TestProjects_ParsesBulletEntries(t *testing.T) {
	norm := mustNormalize(t, `Rahul Sharma
Software Engineer

Projects:
- E-commerce Platform: built a storefront with React and Node.js
- Chat Server: realtime messaging using Go and Redis

Education:
B.Tech in Computer Science`)

	projects := Projects(norm)

	require.Len(t, projects, 2)
	assert.Equal(t, "E-commerce Platform", projects[0].Name)
	assert.Equal(t, "built a storefront with React and Node.js", projects[0].Description)
	assert.Contains(t, projects[0].Technologies, "React")
	assert.Contains(t, projects[0].Technologies, "Node.js")
	assert.Equal(t, "Chat Server", projects[1].Name)
	assert.Contains(t, projects[1].Technologies, "Go")
	assert.Contains(t, projects[1].Technologies, "Redis")
}

func TestProjects_StopsAtNextSectionHeading(t *testing.T) {
	norm := mustNormalize(t, `Projects
- Weather Dashboard: visualizes forecasts with Vue
Skills
- this line belongs to another section entirely`)

	projects := Projects(norm)

	require.Len(t, projects, 1)
	assert.Equal(t, "Weather Dashboard", projects[0].Name)
}

func TestProjects_CapAtFive(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Projects:\n")
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&sb, "- Project Number %d: a sufficiently descriptive summary line\n", i)
	}
	norm := mustNormalize(t, sb.String())

	projects := Projects(norm)

	assert.Len(t, projects, types.MaxProjects)
}

func TestProjects_NoSectionReturnsEmpty(t *testing.T) {
	norm := mustNormalize(t, `a resume body without any recognizable project section heading at all`)

	projects := Projects(norm)

	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestCertifications_DedupedCaseInsensitively(t *testing.T) {
	norm := mustNormalize(t, `Certifications:
- AWS Certified Developer
- aws certified developer
- Google Cloud Associate Engineer

Interests:
hiking and photography`)

	certs := Certifications(norm)

	assert.Equal(t, []string{"AWS Certified Developer", "Google Cloud Associate Engineer"}, certs)
}

func TestCertifications_CapAtTen(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Certifications\n")
	for i := 1; i <= 14; i++ {
		fmt.Fprintf(&sb, "- Certificate of Completion Number %d\n", i)
	}
	norm := mustNormalize(t, sb.String())

	certs := Certifications(norm)

	assert.Len(t, certs, types.MaxCertifications)
}

func TestCertifications_StopsAtBlankLine(t *testing.T) {
	norm := mustNormalize(t, `Certifications:
- Kubernetes Administrator

- This entry sits after a blank line and is outside the section body`)

	certs := Certifications(norm)

	assert.Equal(t, []string{"Kubernetes Administrator"}, certs)
}
