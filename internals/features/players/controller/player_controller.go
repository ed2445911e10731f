package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"ams_backend/internals/cache"
	"ams_backend/internals/features/players/dto"
	"ams_backend/internals/features/players/model"
	"ams_backend/internals/features/players/repository"
	helper "ams_backend/internals/helpers"
)

type PlayerController struct {
	Repo      repository.PlayerRepository
	Cache     *cache.Cache
	validator *validator.Validate
}

func NewPlayerController(repo repository.PlayerRepository, c *cache.Cache) *PlayerController {
	return &PlayerController{
		Repo:      repo,
		Cache:     c,
		validator: validator.New(),
	}
}

func cacheKey(id string) string { return "player:" + id }

/* =========================================================
   GET /players?academyId=
========================================================= */
func (ctrl *PlayerController) List(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	players, err := ctrl.Repo.FindByAcademy(c.UserContext(), academyID)
	if err != nil {
		log.Printf("[ERROR] list players: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch players")
	}

	for i := range players {
		players[i].EnsureDefaults()
	}
	return helper.Success(c, players)
}

/* =========================================================
   GET /players/:id
   Cache-first: profile reads dominate traffic, so a short TTL window
   absorbs dashboard refresh bursts.
========================================================= */
func (ctrl *PlayerController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	if cached, ok := ctrl.Cache.Get(cacheKey(id)); ok {
		return helper.Success(c, cached)
	}

	player, err := ctrl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] get player %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch player")
	}
	if player == nil {
		return fiber.NewError(fiber.StatusNotFound, "Player not found")
	}

	player.EnsureDefaults()
	ctrl.Cache.Set(cacheKey(id), player)
	return helper.Success(c, player)
}

/* =========================================================
   GET /players/:id/performance?limit=N
   Last N entries by date descending.
========================================================= */
func (ctrl *PlayerController) Performance(c *fiber.Ctx) error {
	id := c.Params("id")
	limit := helper.QueryLimit(c, 5, 100)

	player, err := ctrl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] get player %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch player")
	}
	if player == nil {
		return fiber.NewError(fiber.StatusNotFound, "Player not found")
	}

	return helper.Success(c, player.RecentHistory(limit))
}

/* =========================================================
   POST /players
========================================================= */
func (ctrl *PlayerController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	player := &model.PlayerModel{
		ID:         uuid.NewString(),
		AcademyID:  req.AcademyID,
		UserID:     req.UserID,
		Name:       req.Name,
		Position:   req.Position,
		Age:        req.Age,
		Photo:      req.Photo,
		Attributes: req.Attributes,
	}
	if err := ctrl.Repo.Insert(c.UserContext(), player); err != nil {
		log.Printf("[ERROR] create player: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create player")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, player.EnsureDefaults())
}

/* =========================================================
   PATCH /players/:id
========================================================= */
func (ctrl *PlayerController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdatePlayerRequest
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
	if req.Position != nil {
		set["position"] = *req.Position
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	if req.Photo != nil {
		set["photo"] = *req.Photo
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	player, err := ctrl.Repo.UpdateFields(c.UserContext(), id, set)
	if err != nil {
		log.Printf("[ERROR] update player %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update player")
	}
	if player == nil {
		return fiber.NewError(fiber.StatusNotFound, "Player not found")
	}

	ctrl.Cache.Invalidate(cacheKey(id))
	return helper.Success(c, player.EnsureDefaults())
}

/* =========================================================
   PUT /players/:id/attributes — wholesale replacement
========================================================= */
func (ctrl *PlayerController) ReplaceAttributes(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.ReplaceAttributesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	player, err := ctrl.Repo.ReplaceAttributes(c.UserContext(), id, req.Attributes)
	if err != nil {
		log.Printf("[ERROR] replace attributes %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update attributes")
	}
	if player == nil {
		return fiber.NewError(fiber.StatusNotFound, "Player not found")
	}

	ctrl.Cache.Invalidate(cacheKey(id))
	return helper.Success(c, player.EnsureDefaults())
}

/* =========================================================
   POST /players/:id/performance — append-only, never rewrites history
========================================================= */
func (ctrl *PlayerController) AppendPerformance(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.AppendPerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := model.PerformanceEntry{
		Date:      time.Now(),
		Type:      req.Type,
		SessionID: req.SessionID,
		Stats:     req.Stats,
		Rating:    req.Rating,
		Notes:     req.Notes,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	if err := ctrl.Repo.AppendPerformance(c.UserContext(), id, entry); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Player not found")
		}
		log.Printf("[ERROR] append performance %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record performance")
	}

	ctrl.Cache.Invalidate(cacheKey(id))
	return helper.SuccessWithCode(c, fiber.StatusCreated, entry)
}

/* =========================================================
   DELETE /players/:id — soft delete
   DELETE /players?ids=a,b,c — permanent batch cleanup
========================================================= */
func (ctrl *PlayerController) SoftDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.Repo.SoftDelete(c.UserContext(), id); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Player not found")
		}
		log.Printf("[ERROR] soft delete player %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete player")
	}

	ctrl.Cache.Invalidate(cacheKey(id))
	return helper.Success(c, fiber.Map{"deleted": id})
}

func (ctrl *PlayerController) HardDelete(c *fiber.Ctx) error {
	raw, err := helper.RequireQuery(c, "ids")
	if err != nil {
		return err
	}
	ids := helper.SplitIDList(raw)
	if len(ids) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ids is required")
	}

	count, err := ctrl.Repo.HardDelete(c.UserContext(), ids)
	if err != nil {
		log.Printf("[ERROR] hard delete players: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete players")
	}

	for _, id := range ids {
		ctrl.Cache.Invalidate(cacheKey(id))
	}
	return helper.Success(c, fiber.Map{"deletedCount": count})
}
