package models

import "strings"

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Question string `json:"question"`
}

// implements the Validator interface used by the validation middleware
func (r *AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return &ErrorResponse{Message: "Question is required"}
	}
	return nil
}

// ReviewCreateRequest is the body of POST /api/reviewQuestions.
type ReviewCreateRequest struct {
	QuestionNo      int    `json:"questionNo"`
	QuestionName    string `json:"questionName"`
	SolvingPlatform string `json:"solvingPlatform"`
	PlatformQsnNo   string `json:"platformQsnNo"`
	Note            string `json:"note"`
}

func (r *ReviewCreateRequest) Validate() error {
	if r.QuestionNo == 0 {
		return &ErrorResponse{Message: "Question number is required"}
	}
	if strings.TrimSpace(r.Note) == "" {
		return &ErrorResponse{Message: "Note is required"}
	}
	return nil
}

// ReviewUpdateRequest is the body of PUT /api/reviewQuestions. The id rides
// in the body as the original client sends it; nil fields are left untouched.
type ReviewUpdateRequest struct {
	ID              string  `json:"id"`
	QuestionNo      *int    `json:"questionNo,omitempty"`
	QuestionName    *string `json:"questionName,omitempty"`
	SolvingPlatform *string `json:"solvingPlatform,omitempty"`
	PlatformQsnNo   *string `json:"platformQsnNo,omitempty"`
	Note            *string `json:"note,omitempty"`
	Reviewed        *bool   `json:"reviewed,omitempty"`
}

func (r *ReviewUpdateRequest) Validate() error {
	if r.ID == "" {
		return &ErrorResponse{Message: "Question ID is required"}
	}
	if r.Note != nil && strings.TrimSpace(*r.Note) == "" {
		return &ErrorResponse{Message: "Note cannot be empty"}
	}
	return nil
}

// QuestionUpdateRequest is the body of PUT /api/questions/{id}. Identity
// fields (sequence number, original text, creation time) are not part of the
// request; they never change after creation.
type QuestionUpdateRequest struct {
	Difficulty            *string            `json:"difficulty,omitempty"`
	Topics                []string           `json:"topics,omitempty"`
	Companies             []string           `json:"companies,omitempty"`
	Description           *string            `json:"description,omitempty"`
	SimplifiedExplanation *string            `json:"simplifiedExplanation,omitempty"`
	Examples              []Example          `json:"examples,omitempty"`
	Approaches            []Approach         `json:"approaches,omitempty"`
	Solutions             []Solution         `json:"solutions,omitempty"`
	Hint                  *string            `json:"hint,omitempty"`
	SimilarQuestions      []SimilarQuestion  `json:"similarQuestions,omitempty"`
}

func (r *QuestionUpdateRequest) Validate() error {
	if r.Difficulty != nil {
		d := strings.ToLower(strings.TrimSpace(*r.Difficulty))
		if d != string(Easy) && d != string(Medium) && d != string(Hard) {
			return &ErrorResponse{Message: "difficulty must be one of: easy, medium, hard"}
		}
		*r.Difficulty = d
	}
	return nil
}
