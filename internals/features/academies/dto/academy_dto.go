package dto

type CreateAcademyRequest struct {
	Name         string `json:"name" validate:"required"`
	Location     string `json:"location"`
	Logo         string `json:"logo"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Phone        string `json:"phone"`
}

type UpdateAcademyRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Logo         *string `json:"logo"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
}
