package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"ams_backend/internals/features/coaches/dto"
	"ams_backend/internals/features/coaches/model"
	"ams_backend/internals/features/coaches/repository"
	helper "ams_backend/internals/helpers"
)

type CoachController struct {
	Repo      repository.CoachRepository
	validator *validator.Validate
}

func NewCoachController(repo repository.CoachRepository) *CoachController {
	return &CoachController{Repo: repo, validator: validator.New()}
}

// coachView reshapes a coach document with its derived fields.
type coachView struct {
	*model.CoachModel
	AverageRating float64 `json:"averageRating"`
	SessionCount  int64   `json:"sessionCount"`
}

/* =========================================================
   GET /coaches?academyId=
========================================================= */
func (ctrl *CoachController) List(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	coaches, err := ctrl.Repo.FindByAcademy(c.UserContext(), academyID)
	if err != nil {
		log.Printf("[ERROR] list coaches: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch coaches")
	}

	views := make([]coachView, 0, len(coaches))
	for i := range coaches {
		coaches[i].EnsureDefaults()
		views = append(views, coachView{
			CoachModel:    &coaches[i],
			AverageRating: coaches[i].AverageRating(),
		})
	}
	return helper.Success(c, views)
}

/* =========================================================
   GET /coaches/:id — fetch, then aggregate session count
========================================================= */
func (ctrl *CoachController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	coach, err := ctrl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] get coach %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch coach")
	}
	if coach == nil {
		return fiber.NewError(fiber.StatusNotFound, "Coach not found")
	}

	count, err := ctrl.Repo.SessionCount(c.UserContext(), coach.ID)
	if err != nil {
		log.Printf("[ERROR] session count for %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch coach")
	}

	coach.EnsureDefaults()
	return helper.Success(c, coachView{
		CoachModel:    coach,
		AverageRating: coach.AverageRating(),
		SessionCount:  count,
	})
}

/* =========================================================
   POST /coaches
========================================================= */
func (ctrl *CoachController) Create(c *fiber.Ctx) error {
	var req dto.CreateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	coach := &model.CoachModel{
		ID:        uuid.NewString(),
		AcademyID: req.AcademyID,
		UserID:    req.UserID,
		Name:      req.Name,
		Specialty: req.Specialty,
		Photo:     req.Photo,
		About:     req.About,
	}
	if err := ctrl.Repo.Insert(c.UserContext(), coach); err != nil {
		log.Printf("[ERROR] create coach: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create coach")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, coach.EnsureDefaults())
}

/* =========================================================
   PATCH /coaches/:id
========================================================= */
func (ctrl *CoachController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Specialty != nil {
		set["specialty"] = *req.Specialty
	}
	if req.Photo != nil {
		set["photo"] = *req.Photo
	}
	if req.About != nil {
		set["about"] = *req.About
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	coach, err := ctrl.Repo.UpdateFields(c.UserContext(), id, set)
	if err != nil {
		log.Printf("[ERROR] update coach %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update coach")
	}
	if coach == nil {
		return fiber.NewError(fiber.StatusNotFound, "Coach not found")
	}
	return helper.Success(c, coach.EnsureDefaults())
}

/* =========================================================
   POST /coaches/:id/ratings — student feedback, append-only
========================================================= */
func (ctrl *CoachController) Rate(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.RateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rating := model.RatingEntry{
		StudentID: req.StudentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      time.Now(),
	}
	if err := ctrl.Repo.AppendRating(c.UserContext(), id, rating); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Coach not found")
		}
		log.Printf("[ERROR] rate coach %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit rating")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, rating)
}

/* =========================================================
   DELETE /coaches/:id — soft delete
========================================================= */
func (ctrl *CoachController) SoftDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.Repo.SoftDelete(c.UserContext(), id); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Coach not found")
		}
		log.Printf("[ERROR] delete coach %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete coach")
	}
	return helper.Success(c, fiber.Map{"deleted": id})
}
