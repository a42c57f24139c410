package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Question struct {
	ID                    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	QuestionNumber        int                `json:"questionNumber" bson:"questionNumber"` // human-facing, unique
	OriginalQuestion      string             `json:"originalQuestion" bson:"originalQuestion"`
	Difficulty            Difficulty         `json:"difficulty" bson:"difficulty"`
	Topics                []string           `json:"topics" bson:"topics"`
	Companies             []string           `json:"companies" bson:"companies"`
	Description           string             `json:"description" bson:"description"`
	SimplifiedExplanation string             `json:"simplifiedExplanation" bson:"simplifiedExplanation"`
	Examples              []Example          `json:"examples" bson:"examples"`
	Approaches            []Approach         `json:"approaches" bson:"approaches"`
	Solutions             []Solution         `json:"solutions" bson:"solutions"`
	Hint                  string             `json:"hint" bson:"hint"`
	SimilarQuestions      []SimilarQuestion  `json:"similarQuestions" bson:"similarQuestions"`
	CreatedAt             time.Time          `json:"createdAt" bson:"createdAt"`
}

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// single worked example shown on the question page
type Example struct {
	Input       string `json:"input" bson:"input"`
	Output      string `json:"output" bson:"output"`
	Explanation string `json:"explanation" bson:"explanation"`
}

type Approach struct {
	Name                string `json:"name" bson:"name"`
	TimeComplexity      string `json:"timeComplexity" bson:"timeComplexity"`
	SpaceComplexity     string `json:"spaceComplexity" bson:"spaceComplexity"`
	Explanation         string `json:"explanation" bson:"explanation"`
	DetailedExplanation string `json:"detailedExplanation" bson:"detailedExplanation"`
	Code                string `json:"code" bson:"code"`
}

type SimilarQuestion struct {
	Title       string     `json:"title" bson:"title"`
	Difficulty  Difficulty `json:"difficulty" bson:"difficulty"`
	Description string     `json:"description" bson:"description"`
}
