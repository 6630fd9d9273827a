package server

// SubmissionData is the payload of a successful submission response.
// Enhanced fields and the voice ID are present only when the
// enhancement stage completed.
type SubmissionData struct {
	RawDownloadURL      string  `json:"rawDownloadUrl"`
	RawFileName         string  `json:"rawFileName"`
	RawFileSize         string  `json:"rawFileSize"`
	EnhancedDownloadURL string  `json:"enhancedDownloadUrl,omitempty"`
	EnhancedFileName    string  `json:"enhancedFileName,omitempty"`
	EnhancedFileSize    string  `json:"enhancedFileSize,omitempty"`
	Duration            float64 `json:"duration"`
	VoiceID             string  `json:"voiceId,omitempty"`
}

type SuccessResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    SubmissionData `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
