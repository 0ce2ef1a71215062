package models

type ReportStatus string

const (
	StatusAnalyzed         ReportStatus = "analyzed"
	StatusExtractionFailed ReportStatus = "extraction_failed"
	StatusNoResponse       ReportStatus = "no_response"
)

// UploadedFile is one résumé as received from the client.
type UploadedFile struct {
	FileName string
	Content  []byte
}

type AnalysisRequest struct {
	JobDescription string         `validate:"required,notblank"`
	Files          []UploadedFile `validate:"required,min=1"`
}

// ExtractedDocument holds the text pulled out of one file. Empty Text means
// extraction failed.
type ExtractedDocument struct {
	FileName string
	Text     string
}

type CandidateReport struct {
	FileName     string       `json:"file_name"`
	AnalysisText string       `json:"analysis_text"`
	Status       ReportStatus `json:"status"`
}
