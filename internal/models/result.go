package models

type AnalyzeResponse struct {
	Feedback string `json:"feedback"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type RootResponse struct {
	Message string `json:"message"`
}
