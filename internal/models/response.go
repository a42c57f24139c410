package models

// uniform error payload; success is always false
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// implements the error interface so request Validate() can return one directly
func (e *ErrorResponse) Error() string { return e.Message }

// pagination metadata for list endpoints
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// helper to calculate total pages (ceiling division)
func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = 1
	}
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: (total + limit - 1) / limit,
	}
}

type QuestionResponse struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
}

type QuestionsResponse struct {
	Success    bool       `json:"success"`
	Questions  []Question `json:"questions"`
	Pagination Pagination `json:"pagination"`
}

type ReviewResponse struct {
	Success bool           `json:"success"`
	Data    ReviewQuestion `json:"data"`
}

type ReviewListResponse struct {
	Success bool             `json:"success"`
	Data    []ReviewQuestion `json:"data"`
}

type SuccessResponse struct {
	Success bool     `json:"success"`
	Data    struct{} `json:"data"`
}
