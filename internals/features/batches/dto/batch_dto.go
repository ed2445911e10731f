package dto

type CreateBatchRequest struct {
	AcademyID string   `json:"academyId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	CoachIDs  []string `json:"coachIds"`
	Players   []string `json:"players"`
	Schedule  string   `json:"schedule"`
}

type UpdateBatchRequest struct {
	Name     *string   `json:"name"`
	CoachIDs *[]string `json:"coachIds"`
	Schedule *string   `json:"schedule"`
}

type BatchPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}
