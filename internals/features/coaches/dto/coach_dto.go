package dto

type CreateCoachRequest struct {
	AcademyID string `json:"academyId" validate:"required"`
	UserID    string `json:"userId"`
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty"`
	Photo     string `json:"photo"`
	About     string `json:"about"`
}

type UpdateCoachRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Photo     *string `json:"photo"`
	About     *string `json:"about"`
}

type RateCoachRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}
