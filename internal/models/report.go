package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	JobDescriptionMarker = "📄 Job Description:"
	SectionDelimiter     = "====="
)

// CombinedReport is the plain-text contract between the analyze endpoint and
// the result parser.
type CombinedReport struct {
	ID             uuid.UUID
	JobDescription string
	Reports        []CandidateReport
}

func SectionHeader(fileName string) string {
	return fmt.Sprintf("%s %s %s", SectionDelimiter, fileName, SectionDelimiter)
}

// String renders the report as:
//
//	📄 Job Description:
//	<job description>
//
//	===== <file name> =====
//	<analysis>
func (r *CombinedReport) String() string {
	var b strings.Builder

	b.WriteString(JobDescriptionMarker)
	b.WriteString("\n")
	b.WriteString(r.JobDescription)
	b.WriteString("\n\n")

	for _, report := range r.Reports {
		b.WriteString(SectionHeader(report.FileName))
		b.WriteString("\n")
		b.WriteString(report.AnalysisText)
		b.WriteString("\n\n")
	}

	return b.String()
}
