package dto

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name"`
	Role      string `json:"role" validate:"required,oneof=admin coach player coordinator owner"`
	AcademyID string `json:"academyId"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// UpsertUserInfoRequest carries the profile fields for the
// (userId, academyId) record. Absent fields keep their stored value.
type UpsertUserInfoRequest struct {
	UserID    string  `json:"userId" validate:"required"`
	AcademyID string  `json:"academyId" validate:"required"`
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Photo     *string `json:"photo"`
	Bio       *string `json:"bio"`
}
