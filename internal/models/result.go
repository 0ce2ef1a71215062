package models

type ParseRequest struct {
	Report         string `json:"report" validate:"required"`
	JobDescription string `json:"job_description"`
}

type ParsedCandidateView struct {
	DisplayName string `json:"display_name"`
	MatchScore  int    `json:"match_score"`
	Body        string `json:"body"`
}

// ParsedReport maps display names to candidate views. Order keeps the
// position in which each display name first appeared.
type ParsedReport struct {
	Order      []string                       `json:"order"`
	Candidates map[string]ParsedCandidateView `json:"candidates"`
}

func (p *ParsedReport) Len() int {
	return len(p.Order)
}

// Views returns the candidates in report order.
func (p *ParsedReport) Views() []ParsedCandidateView {
	views := make([]ParsedCandidateView, 0, len(p.Order))
	for _, name := range p.Order {
		views = append(views, p.Candidates[name])
	}
	return views
}
