package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"ams_backend/internals/features/batches/dto"
	"ams_backend/internals/features/batches/model"
	"ams_backend/internals/features/batches/repository"
	helper "ams_backend/internals/helpers"
)

type BatchController struct {
	Repo      repository.BatchRepository
	validator *validator.Validate
}

func NewBatchController(repo repository.BatchRepository) *BatchController {
	return &BatchController{Repo: repo, validator: validator.New()}
}

/* =========================================================
   GET /batches?academyId=
========================================================= */
func (ctrl *BatchController) List(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	batches, err := ctrl.Repo.FindByAcademy(c.UserContext(), academyID)
	if err != nil {
		log.Printf("[ERROR] list batches: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch batches")
	}
	for i := range batches {
		batches[i].EnsureDefaults()
	}
	return helper.Success(c, batches)
}

/* =========================================================
   GET /batches/:id
========================================================= */
func (ctrl *BatchController) GetByID(c *fiber.Ctx) error {
	batch, err := ctrl.Repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Printf("[ERROR] get batch: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch batch")
	}
	if batch == nil {
		return fiber.NewError(fiber.StatusNotFound, "Batch not found")
	}
	return helper.Success(c, batch.EnsureDefaults())
}

/* =========================================================
   POST /batches
========================================================= */
func (ctrl *BatchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	batch := &model.BatchModel{
		ID:        uuid.NewString(),
		AcademyID: req.AcademyID,
		Name:      req.Name,
		CoachIDs:  req.CoachIDs,
		Players:   req.Players,
		Schedule:  req.Schedule,
	}
	if err := ctrl.Repo.Insert(c.UserContext(), batch); err != nil {
		log.Printf("[ERROR] create batch: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create batch")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, batch.EnsureDefaults())
}

/* =========================================================
   PATCH /batches/:id
========================================================= */
func (ctrl *BatchController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.CoachIDs != nil {
		set["coachIds"] = *req.CoachIDs
	}
	if req.Schedule != nil {
		set["schedule"] = *req.Schedule
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	batch, err := ctrl.Repo.UpdateFields(c.UserContext(), id, set)
	if err != nil {
		log.Printf("[ERROR] update batch %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update batch")
	}
	if batch == nil {
		return fiber.NewError(fiber.StatusNotFound, "Batch not found")
	}
	return helper.Success(c, batch.EnsureDefaults())
}

/* =========================================================
   POST /batches/:id/players, DELETE /batches/:id/players/:playerId
========================================================= */
func (ctrl *BatchController) AddPlayer(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.BatchPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Repo.AddPlayer(c.UserContext(), id, req.PlayerID); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		log.Printf("[ERROR] add player to batch %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add player")
	}
	return helper.Success(c, fiber.Map{"playerId": req.PlayerID})
}

func (ctrl *BatchController) RemovePlayer(c *fiber.Ctx) error {
	id := c.Params("id")
	playerID := c.Params("playerId")

	if err := ctrl.Repo.RemovePlayer(c.UserContext(), id, playerID); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		log.Printf("[ERROR] remove player from batch %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove player")
	}
	return helper.Success(c, fiber.Map{"playerId": playerID})
}

/* =========================================================
   DELETE /batches?ids=a,b,c — batch cleanup with exact count
========================================================= */
func (ctrl *BatchController) DeleteByIDs(c *fiber.Ctx) error {
	raw, err := helper.RequireQuery(c, "ids")
	if err != nil {
		return err
	}
	ids := helper.SplitIDList(raw)
	if len(ids) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ids is required")
	}

	count, err := ctrl.Repo.DeleteByIDs(c.UserContext(), ids)
	if err != nil {
		log.Printf("[ERROR] delete batches: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete batches")
	}
	return helper.Success(c, fiber.Map{"deletedCount": count})
}
