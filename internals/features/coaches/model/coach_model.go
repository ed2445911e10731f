package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoachModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	AcademyID string             `bson:"academyId" json:"academyId"`
	UserID    string             `bson:"userId,omitempty" json:"userId,omitempty"`

	Name      string `bson:"name" json:"name"`
	Specialty string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Photo     string `bson:"photo,omitempty" json:"photo,omitempty"`
	About     string `bson:"about,omitempty" json:"about,omitempty"`

	// Ratings are submitted by students and only ever appended.
	Ratings []RatingEntry `bson:"ratings,omitempty" json:"ratings"`

	IsDeleted bool       `bson:"isDeleted,omitempty" json:"-"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"-"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

type RatingEntry struct {
	StudentID string    `bson:"studentId" json:"studentId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Date      time.Time `bson:"date" json:"date"`
}

// AverageRating over all submitted ratings; 0 when none.
func (m *CoachModel) AverageRating() float64 {
	if len(m.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range m.Ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(m.Ratings))
}

func (m *CoachModel) EnsureDefaults() *CoachModel {
	if m.Ratings == nil {
		m.Ratings = []RatingEntry{}
	}
	return m
}
