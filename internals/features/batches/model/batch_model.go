package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BatchModel groups players under one or more coaches within an academy.
type BatchModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	AcademyID string             `bson:"academyId" json:"academyId"`

	Name     string   `bson:"name" json:"name"`
	CoachIDs []string `bson:"coachIds,omitempty" json:"coachIds"`
	Players  []string `bson:"players,omitempty" json:"players"`
	Schedule string   `bson:"schedule,omitempty" json:"schedule,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (b *BatchModel) EnsureDefaults() *BatchModel {
	if b.CoachIDs == nil {
		b.CoachIDs = []string{}
	}
	if b.Players == nil {
		b.Players = []string{}
	}
	return b
}
