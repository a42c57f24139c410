package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewQuestion is a bookmark the user drops on a question they want to
// come back to. QuestionNo references Question.QuestionNumber but is not
// checked for existence; a review can outlive its question.
type ReviewQuestion struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	QuestionNo      int                `json:"questionNo" bson:"questionNo"`
	QuestionName    string             `json:"questionName" bson:"questionName"`
	SolvingPlatform string             `json:"solvingPlatform" bson:"solvingPlatform"`
	PlatformQsnNo   string             `json:"platformQsnNo" bson:"platformQsnNo"`
	Note            string             `json:"note" bson:"note"`
	Reviewed        bool               `json:"reviewed" bson:"reviewed"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
