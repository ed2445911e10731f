package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"ams_backend/internals/features/academies/dto"
	"ams_backend/internals/features/academies/model"
	"ams_backend/internals/features/academies/repository"
	helper "ams_backend/internals/helpers"
)

type AcademyController struct {
	Repo      repository.AcademyRepository
	validator *validator.Validate
}

func NewAcademyController(repo repository.AcademyRepository) *AcademyController {
	return &AcademyController{Repo: repo, validator: validator.New()}
}

func (ctrl *AcademyController) List(c *fiber.Ctx) error {
	academies, err := ctrl.Repo.FindAll(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list academies: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch academies")
	}
	return helper.Success(c, academies)
}

func (ctrl *AcademyController) GetByID(c *fiber.Ctx) error {
	academy, err := ctrl.Repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Printf("[ERROR] get academy: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch academy")
	}
	if academy == nil {
		return fiber.NewError(fiber.StatusNotFound, "Academy not found")
	}
	return helper.Success(c, academy)
}

func (ctrl *AcademyController) Create(c *fiber.Ctx) error {
	var req dto.CreateAcademyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	academy := &model.AcademyModel{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Location:     req.Location,
		Logo:         req.Logo,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	}
	if err := ctrl.Repo.Insert(c.UserContext(), academy); err != nil {
		log.Printf("[ERROR] create academy: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create academy")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, academy)
}

func (ctrl *AcademyController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateAcademyRequest
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
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Logo != nil {
		set["logo"] = *req.Logo
	}
	if req.ContactEmail != nil {
		set["contactEmail"] = *req.ContactEmail
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	academy, err := ctrl.Repo.UpdateFields(c.UserContext(), id, set)
	if err != nil {
		log.Printf("[ERROR] update academy %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update academy")
	}
	if academy == nil {
		return fiber.NewError(fiber.StatusNotFound, "Academy not found")
	}
	return helper.Success(c, academy)
}
