package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"ams_backend/internals/features/users/dto"
	"ams_backend/internals/features/users/repository"
	helper "ams_backend/internals/helpers"
)

type UserController struct {
	Repo      repository.UserRepository
	validator *validator.Validate
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{Repo: repo, validator: validator.New()}
}

/* =========================================================
   GET /users?academyId=
   GET /users/:id
========================================================= */
func (ctrl *UserController) List(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	users, err := ctrl.Repo.FindByAcademy(c.UserContext(), academyID)
	if err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.Success(c, users)
}

func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	user, err := ctrl.Repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Printf("[ERROR] get user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, user)
}

/* =========================================================
   PATCH /users/:id
========================================================= */
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	set := bson.M{}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	user, err := ctrl.Repo.UpdateFields(c.UserContext(), id, set)
	if err != nil {
		log.Printf("[ERROR] update user %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, user)
}

/* =========================================================
   PUT /users/info — upsert the (userId, academyId) profile record
   GET /users/info?userId=&academyId=
========================================================= */
func (ctrl *UserController) UpsertInfo(c *fiber.Ctx) error {
	var req dto.UpsertUserInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Photo != nil {
		set["photo"] = *req.Photo
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}

	info, err := ctrl.Repo.UpsertInfo(c.UserContext(), req.UserID, req.AcademyID, set)
	if err != nil {
		log.Printf("[ERROR] upsert user info: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save profile")
	}
	return helper.Success(c, info)
}

func (ctrl *UserController) GetInfo(c *fiber.Ctx) error {
	userID, err := helper.RequireQuery(c, "userId")
	if err != nil {
		return err
	}
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	info, err := ctrl.Repo.FindInfo(c.UserContext(), userID, academyID)
	if err != nil {
		log.Printf("[ERROR] get user info: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	if info == nil {
		return fiber.NewError(fiber.StatusNotFound, "Profile not found")
	}
	return helper.Success(c, info)
}
