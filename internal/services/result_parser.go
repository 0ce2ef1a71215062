package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"recruitly/cv-assistant/internal/models"
)

// jobPrefixLength is how much of the job description a header may repeat
// before it is treated as an echo of the job description.
const jobPrefixLength = 30

var (
	// "===== alice.pdf =====" or a bare "----------" run
	delimiterLineRe = regexp.MustCompile(`^\s*[=\-]{5,}\s*(.*?)\s*[=\-]*\s*$`)
	// "Alice_Smith.pdf" alone on a line
	filenameLineRe = regexp.MustCompile(`^[A-Z][\w\-. ]*\.(?i:pdf|docx?|txt)$`)
	extensionRe    = regexp.MustCompile(`(?i)\.(pdf|docx?|txt)$`)
	// "Match Score (0-100): 85", "Match Score 0-100: 72", "Match score - 64/100"
	matchScoreRe = regexp.MustCompile(`(?i)match\s*score\s*(?:\([^)]*\)|0\s*-\s*100\b)?\s*\**\s*(?:[:=]|[-–—]\s)?\s*\**\s*(-?\d+)`)
)

// ResultParser turns a CombinedReport back into per-candidate views. The
// model output is free-form, so parsing is best effort.
type ResultParser interface {
	Parse(combinedReport, jobDescription string) *models.ParsedReport
}

type resultParser struct{}

func NewResultParser() ResultParser {
	return &resultParser{}
}

type reportSection struct {
	header string
	body   []string
}

// Parse implements ResultParser. A later section with the same display name
// replaces the earlier one but keeps its position.
func (p *resultParser) Parse(combinedReport, jobDescription string) *models.ParsedReport {
	result := &models.ParsedReport{
		Order:      []string{},
		Candidates: make(map[string]models.ParsedCandidateView),
	}

	text := strings.ReplaceAll(combinedReport, "\r\n", "\n")

	var lines []string
	if rest, ok := cutJobDescription(text, jobDescription); ok {
		lines = strings.Split(rest, "\n")
	} else {
		lines = stripJobDescriptionEcho(strings.Split(text, "\n"))
	}

	for _, section := range splitSections(lines) {
		name := CleanHeader(section.header)
		if name == "" || restatesJob(name, jobDescription) {
			continue
		}

		body := strings.TrimSpace(strings.Join(section.body, "\n"))
		if _, seen := result.Candidates[name]; !seen {
			result.Order = append(result.Order, name)
		}
		result.Candidates[name] = models.ParsedCandidateView{
			DisplayName: name,
			MatchScore:  ExtractMatchScore(body),
			Body:        body,
		}
	}

	return result
}

// ExtractMatchScore finds "Match Score" followed by an integer and clamps it
// to [0,100]. It returns 0 when no score is present.
func ExtractMatchScore(text string) int {
	m := matchScoreRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	score, err := strconv.Atoi(m[1])
	if err != nil {
		// only overflow gets here
		if strings.HasPrefix(m[1], "-") {
			return 0
		}
		return 100
	}

	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}

// CleanHeader turns a section header into a display name: delimiter runs
// trimmed, file extension stripped, underscores replaced by spaces.
func CleanHeader(header string) string {
	h := strings.Trim(strings.TrimSpace(header), "=- \t")
	h = extensionRe.ReplaceAllString(h, "")
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

func isBoundary(line string) bool {
	return delimiterLineRe.MatchString(line) || filenameLineRe.MatchString(strings.TrimSpace(line))
}

// cutJobDescription removes the marker line and the job description when the
// report echoes exactly that job description. Rules or delimiter runs inside
// the job description are then never mistaken for section boundaries.
func cutJobDescription(text, jobDescription string) (string, bool) {
	jd := strings.ReplaceAll(jobDescription, "\r\n", "\n")
	if strings.TrimSpace(jd) == "" {
		return "", false
	}

	rest, ok := strings.CutPrefix(strings.TrimLeft(text, " \t\n"), models.JobDescriptionMarker)
	if !ok {
		return "", false
	}
	rest = strings.TrimPrefix(strings.TrimLeft(rest, " \t"), "\n")

	return strings.CutPrefix(rest, jd)
}

// stripJobDescriptionEcho drops the leading job description block, from the
// marker line up to the first section boundary.
func stripJobDescriptionEcho(lines []string) []string {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(trimmed), "job description:") {
			return lines[i:]
		}

		for j := i + 1; j < len(lines); j++ {
			if isBoundary(lines[j]) {
				return lines[j:]
			}
		}
		return nil
	}
	return nil
}

func splitSections(lines []string) []reportSection {
	var sections []reportSection
	var current *reportSection

	flush := func() {
		if current != nil && strings.TrimSpace(current.header) != "" {
			sections = append(sections, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if m := delimiterLineRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &reportSection{header: m[1]}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if filenameLineRe.MatchString(trimmed) {
			flush()
			current = &reportSection{header: trimmed}
			continue
		}

		if current == nil {
			current = &reportSection{}
		}
		if current.header == "" {
			// first non-empty line heads a section opened by a bare delimiter
			if trimmed != "" {
				current.header = trimmed
			}
			continue
		}
		current.body = append(current.body, line)
	}
	flush()

	return sections
}

// restatesJob reports whether a header looks like the job description
// rather than a candidate. This can misfire on a candidate whose name
// overlaps the start of the job description.
func restatesJob(header, jobDescription string) bool {
	h := strings.ToLower(header)
	if strings.Contains(h, "job description") {
		return true
	}

	jd := strings.TrimSpace(jobDescription)
	if jd == "" {
		return false
	}

	title := jd
	if idx := strings.Index(jd, "\n"); idx >= 0 {
		title = jd[:idx]
	}
	title = strings.ToLower(strings.TrimSpace(title))
	if title != "" && h == title {
		return true
	}

	prefix := strings.ToLower(leadingRunes(jd, jobPrefixLength))
	return prefix != "" && strings.Contains(h, prefix)
}

func leadingRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
