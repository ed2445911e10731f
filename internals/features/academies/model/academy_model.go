package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AcademyModel struct {
	ObjectID primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       string             `bson:"id" json:"id"`

	Name         string `bson:"name" json:"name"`
	Location     string `bson:"location,omitempty" json:"location,omitempty"`
	Logo         string `bson:"logo,omitempty" json:"logo,omitempty"`
	ContactEmail string `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
