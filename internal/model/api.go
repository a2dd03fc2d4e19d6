package model

// ConversionRequest carries the raw, untrusted query values of one conversion.
// Field order matters: shape validation reports the first missing field in
// declaration order, so a missing value always wins.
type ConversionRequest struct {
	Value         string `json:"value" validate:"required"`
	Type          string `json:"type" validate:"required"`
	Format        string `json:"format" validate:"required"`
	Offset        string `json:"gmt,omitempty"`
	Language      string `json:"lang,omitempty"`
	ErrorLanguage string `json:"error,omitempty"`
}

// AllFormats is the composite result of format=all.
type AllFormats struct {
	UTC      string `json:"utc"`
	Readable string `json:"readable"`
	ISO8601  string `json:"iso8601"`
	Unix     int64  `json:"unix"`
}

// DTOResponse is the success envelope.
type DTOResponse struct {
	Result any `json:"result"`
}

// DTOError describes a failure inside DTOErrorResponse.
type DTOError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DTOErrorResponse is the failure envelope.
type DTOErrorResponse struct {
	Error         DTOError `json:"error"`
	Documentation string   `json:"documentation"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string   `json:"status"`
	Languages []string `json:"languages"`
}
