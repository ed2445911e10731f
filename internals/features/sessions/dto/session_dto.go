package dto

import "time"

type CreateSessionRequest struct {
	AcademyID       string    `json:"academyId" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	Type            string    `json:"type" validate:"omitempty,oneof=training match"`
	CoachID         string    `json:"coachId"`
	AssignedPlayers []string  `json:"assignedPlayers"`
	Start           time.Time `json:"start" validate:"required"`
	End             time.Time `json:"end" validate:"required,gtfield=Start"`

	IsRecurring     bool `json:"isRecurring"`
	RecurrenceDays  int  `json:"recurrenceDays" validate:"omitempty,gte=1,lte=365"`
	RecurrenceCount int  `json:"recurrenceCount" validate:"omitempty,gte=1,lte=52"`
}

type UpdateSessionRequest struct {
	Name            *string    `json:"name"`
	CoachID         *string    `json:"coachId"`
	AssignedPlayers *[]string  `json:"assignedPlayers"`
	Start           *time.Time `json:"start"`
	End             *time.Time `json:"end"`
	// Explicit status pins the lifecycle and stops derivation.
	Status *string `json:"status" validate:"omitempty,oneof=Upcoming On-going Finished"`
}

type AttendanceRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Status   bool   `json:"status"`
}

type PlayerMetricsRequest struct {
	PlayerID string             `json:"playerId" validate:"required"`
	Metrics  map[string]float64 `json:"metrics" validate:"required,min=1"`
	Notes    string             `json:"notes"`
}
