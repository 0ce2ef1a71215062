package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitly/cv-assistant/internal/models"
)

func TestExtractMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"score out of 100", "Match Score: 85/100", 85},
		{"no score", "Candidate: Alice\nStrong fit.", 0},
		{"above range clamps", "Match Score: 150/100", 100},
		{"huge digit run clamps", "Match Score: 99999999999999999999999", 100},
		{"negative clamps", "Match Score: -12/100", 0},
		{"lowercase", "match score: 42", 42},
		{"markdown bold", "**Match Score:** 73/100", 73},
		{"range in parentheses", "Match Score (0-100): 64", 64},
		{"bare range", "Match Score 0-100: 72", 72},
		{"dash separator", "Match score - 64/100", 64},
		{"en dash separator", "Match Score – 58/100", 58},
		{"negative without separator", "Match Score -5", 0},
		{"no colon", "Match Score 91", 91},
		{"first occurrence wins", "Match Score: 70\nRevised Match Score: 80", 70},
		{"zero", "Match Score: 0/100", 0},
		{"exactly 100", "Match Score: 100/100", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMatchScore(tt.input))
		})
	}
}

func TestCleanHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"extension stripped", "alice.pdf", "alice"},
		{"underscores to spaces", "Alice_Smith_CV.pdf", "Alice Smith CV"},
		{"delimiters trimmed", "===== bob.docx =====", "bob"},
		{"uppercase extension", "CAROL.PDF", "CAROL"},
		{"plain name kept", "Dave Jones", "Dave Jones"},
		{"whitespace collapsed", "  eve   _  cv.txt ", "eve cv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanHeader(tt.input))
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	jobDescription := "Senior Backend Engineer\nGo, Postgres, Kafka."
	report := &models.CombinedReport{
		JobDescription: jobDescription,
		Reports: []models.CandidateReport{
			{FileName: "alice.pdf", AnalysisText: "Candidate: Alice\nMatch Score: 85/100\n\nSummary\nGood fit."},
			{FileName: "bob.pdf", AnalysisText: "Candidate: Bob\nMatch Score: 40/100\n\nSummary\nWeak fit."},
		},
	}

	parsed := NewResultParser().Parse(report.String(), jobDescription)

	require.Equal(t, 2, parsed.Len())
	assert.Equal(t, []string{"alice", "bob"}, parsed.Order)
	assert.Equal(t, 85, parsed.Candidates["alice"].MatchScore)
	assert.Equal(t, 40, parsed.Candidates["bob"].MatchScore)
	assert.Equal(t, "Candidate: Alice\nMatch Score: 85/100\n\nSummary\nGood fit.", parsed.Candidates["alice"].Body)
	assert.Equal(t, "alice", parsed.Candidates["alice"].DisplayName)
}

func TestParse_UnderscoredFileNames(t *testing.T) {
	report := &models.CombinedReport{
		JobDescription: "Data Engineer",
		Reports: []models.CandidateReport{
			{FileName: "Alice_Smith.pdf", AnalysisText: "Match Score: 77/100"},
		},
	}

	parsed := NewResultParser().Parse(report.String(), "Data Engineer")

	require.Equal(t, []string{"Alice Smith"}, parsed.Order)
	assert.Equal(t, 77, parsed.Candidates["Alice Smith"].MatchScore)
}

func TestParse_StripsJobDescriptionEcho(t *testing.T) {
	report := "📄 Job Description:\nPlatform Engineer\n\nWe run Kubernetes.\nMatch Score: 99\n\n===== alice.pdf =====\nMatch Score: 60/100\n\n"

	parsed := NewResultParser().Parse(report, "Platform Engineer\n\nWe run Kubernetes.\nMatch Score: 99")

	require.Equal(t, []string{"alice"}, parsed.Order)
	assert.Equal(t, 60, parsed.Candidates["alice"].MatchScore)
}

func TestParse_JobDescriptionWithHorizontalRules(t *testing.T) {
	jobDescription := "Senior Backend Engineer\n----------\nRequirements:\n- 5 years Go\n==========\nBenefits: remote"
	report := &models.CombinedReport{
		JobDescription: jobDescription,
		Reports: []models.CandidateReport{
			{FileName: "alice.pdf", AnalysisText: "Match Score: 85/100"},
			{FileName: "bob.pdf", AnalysisText: "Match Score: 40/100"},
		},
	}

	parsed := NewResultParser().Parse(report.String(), jobDescription)

	require.Equal(t, []string{"alice", "bob"}, parsed.Order)
	assert.Equal(t, 85, parsed.Candidates["alice"].MatchScore)
	assert.Equal(t, 40, parsed.Candidates["bob"].MatchScore)
}

func TestParse_JobDescriptionWithCRLF(t *testing.T) {
	jobDescription := "Senior Backend Engineer\r\n----------\r\nRequirements:\r\n- 5 years Go"
	report := &models.CombinedReport{
		JobDescription: jobDescription,
		Reports: []models.CandidateReport{
			{FileName: "alice.pdf", AnalysisText: "Match Score: 85/100"},
		},
	}

	parsed := NewResultParser().Parse(report.String(), jobDescription)

	require.Equal(t, []string{"alice"}, parsed.Order)
}

func TestParse_UnmatchedJobDescriptionFallsBackToBoundaries(t *testing.T) {
	report := "📄 Job Description:\nPlatform Engineer\nKubernetes.\n\n===== alice.pdf =====\nMatch Score: 60/100\n\n"

	parsed := NewResultParser().Parse(report, "Some other role")

	require.Equal(t, []string{"alice"}, parsed.Order)
	assert.Equal(t, 60, parsed.Candidates["alice"].MatchScore)
}

func TestParse_DropsSectionsRestatingTheJob(t *testing.T) {
	jobDescription := "Senior Backend Engineer\nDistributed systems experience required."
	report := "Senior Backend Engineer\nsome restated text\n\n" +
		"===== Job Description =====\nrestated again\n\n" +
		"===== alice.pdf =====\nMatch Score: 55\n"

	parsed := NewResultParser().Parse(report, jobDescription)

	assert.Equal(t, []string{"alice"}, parsed.Order)
}

func TestParse_DropsSectionsRepeatingTheJobPrefix(t *testing.T) {
	jobDescription := "Staff Platform Engineer for our payments infrastructure team"
	report := "===== Staff Platform Engineer for our payments infrastructure team (remote) =====\nx\n\n" +
		"===== bob.pdf =====\nMatch Score: 12\n"

	parsed := NewResultParser().Parse(report, jobDescription)

	require.Equal(t, []string{"bob"}, parsed.Order)
	assert.Equal(t, 12, parsed.Candidates["bob"].MatchScore)
}

func TestParse_FileNameLineStartsSection(t *testing.T) {
	report := "Alice_Smith.pdf\nMatch Score: 81/100\nStrong Go background.\n\nBob.pdf\nMatch Score: 33/100\n"

	parsed := NewResultParser().Parse(report, "Backend Engineer")

	require.Equal(t, []string{"Alice Smith", "Bob"}, parsed.Order)
	assert.Equal(t, 81, parsed.Candidates["Alice Smith"].MatchScore)
	assert.Equal(t, "Match Score: 81/100\nStrong Go background.", parsed.Candidates["Alice Smith"].Body)
	assert.Equal(t, 33, parsed.Candidates["Bob"].MatchScore)
}

func TestParse_BareDelimiterUsesFirstLineAsHeader(t *testing.T) {
	report := "----------\n\nCarol Jones\nMatch Score: 70/100\n==========\nDave\nno score here\n"

	parsed := NewResultParser().Parse(report, "Backend Engineer")

	require.Equal(t, []string{"Carol Jones", "Dave"}, parsed.Order)
	assert.Equal(t, 70, parsed.Candidates["Carol Jones"].MatchScore)
	assert.Equal(t, 0, parsed.Candidates["Dave"].MatchScore)
	assert.Equal(t, "no score here", parsed.Candidates["Dave"].Body)
}

func TestParse_DuplicateNameKeepsFirstPositionAndLastBody(t *testing.T) {
	report := &models.CombinedReport{
		JobDescription: "QA Engineer",
		Reports: []models.CandidateReport{
			{FileName: "alice.pdf", AnalysisText: "Match Score: 10"},
			{FileName: "bob.pdf", AnalysisText: "Match Score: 20"},
			{FileName: "alice.docx", AnalysisText: "Match Score: 30"},
		},
	}

	parsed := NewResultParser().Parse(report.String(), "QA Engineer")

	assert.Equal(t, []string{"alice", "bob"}, parsed.Order)
	assert.Equal(t, 30, parsed.Candidates["alice"].MatchScore)
}

func TestParse_EmptyInput(t *testing.T) {
	parsed := NewResultParser().Parse("", "Backend Engineer")

	assert.Equal(t, 0, parsed.Len())
	assert.Empty(t, parsed.Candidates)
}

func TestParse_MarkerWithoutSections(t *testing.T) {
	parsed := NewResultParser().Parse("📄 Job Description:\nBackend Engineer\n\n", "Backend Engineer")

	assert.Equal(t, 0, parsed.Len())
}
