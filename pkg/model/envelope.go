package model

// Envelope is the uniform response wrapper applied to every API response.
type Envelope struct {
	Data    interface{} `json:"data"`
	Error   *ErrorInfo  `json:"error"`
	Success bool        `json:"success"`
}

// ErrorInfo carries the normalized error payload inside the envelope.
// ErrorMsg is either a plain string or a map of field-level messages.
type ErrorInfo struct {
	ErrorID    int         `json:"errorId"`
	IsFriendly bool        `json:"isFriendly"`
	ErrorMsg   interface{} `json:"errorMsg"`
}

// PagedData is the list payload carried inside the envelope.
type PagedData struct {
	Total   int         `json:"total"`
	Results interface{} `json:"results"`
}
