package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel is an account document. Accounts are never hard-deleted;
// deactivation flips IsActive.
type UserModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	AcademyID string             `bson:"academyId,omitempty" json:"academyId,omitempty"`

	Username string `bson:"username" json:"username"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Password string `bson:"password" json:"-"` // bcrypt hash, never in JSON
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Role     string `bson:"role" json:"role"` // admin | coach | player | coordinator | owner

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserInfoModel is the per-academy profile record keyed by the
// (userId, academyId) pair. Exactly one document exists per pair.
type UserInfoModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	AcademyID string             `bson:"academyId" json:"academyId"`

	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Photo   string `bson:"photo,omitempty" json:"photo,omitempty"`
	Bio     string `bson:"bio,omitempty" json:"bio,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
