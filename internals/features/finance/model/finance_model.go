package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionModel is one finance ledger entry scoped to an academy.
type TransactionModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	AcademyID string             `bson:"academyId" json:"academyId"`

	Type        string    `bson:"type" json:"type"` // income | expense
	Amount      float64   `bson:"amount" json:"amount"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `bson:"date" json:"date"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DocumentModel is an uploaded file stored inline as base64. Retrieval
// decodes it and streams the bytes back with the declared content type.
type DocumentModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	AcademyID string             `bson:"academyId" json:"academyId"`

	Filename    string `bson:"filename" json:"filename"`
	ContentType string `bson:"contentType" json:"contentType"`
	Data        string `bson:"data" json:"-"` // base64 payload, never in JSON
	Size        int    `bson:"size" json:"size"`
	UploadedBy  string `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Summary is the per-academy aggregation result.
type Summary struct {
	TotalIncome  float64 `bson:"totalIncome" json:"totalIncome"`
	TotalExpense float64 `bson:"totalExpense" json:"totalExpense"`
	Balance      float64 `bson:"-" json:"balance"`
}
