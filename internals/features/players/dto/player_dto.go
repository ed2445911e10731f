package dto

import "time"

type CreatePlayerRequest struct {
	AcademyID  string             `json:"academyId" validate:"required"`
	UserID     string             `json:"userId"`
	Name       string             `json:"name" validate:"required"`
	Position   string             `json:"position"`
	Age        int                `json:"age" validate:"omitempty,gte=4,lte=60"`
	Photo      string             `json:"photo"`
	Attributes map[string]float64 `json:"attributes"`
}

// UpdatePlayerRequest patches top-level profile fields. Nil means "leave
// as is"; attributes here are merged shallowly, use the attributes
// endpoint for wholesale replacement.
type UpdatePlayerRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Age      *int    `json:"age" validate:"omitempty,gte=4,lte=60"`
	Photo    *string `json:"photo"`
}

type ReplaceAttributesRequest struct {
	Attributes map[string]float64 `json:"attributes" validate:"required"`
}

type AppendPerformanceRequest struct {
	Date      *time.Time         `json:"date"`
	Type      string             `json:"type" validate:"required,oneof=match training"`
	SessionID string             `json:"sessionId"`
	Stats     map[string]float64 `json:"stats"`
	Rating    float64            `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Notes     string             `json:"notes"`
}
