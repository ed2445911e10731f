package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"ams_backend/internals/constants"
	playerModel "ams_backend/internals/features/players/model"
	playerRepo "ams_backend/internals/features/players/repository"
	"ams_backend/internals/features/sessions/dto"
	"ams_backend/internals/features/sessions/model"
	"ams_backend/internals/features/sessions/repository"
	helper "ams_backend/internals/helpers"
)

type SessionController struct {
	Repo      repository.SessionRepository
	Players   playerRepo.PlayerRepository
	validator *validator.Validate
}

func NewSessionController(repo repository.SessionRepository, players playerRepo.PlayerRepository) *SessionController {
	return &SessionController{
		Repo:      repo,
		Players:   players,
		validator: validator.New(),
	}
}

/* =========================================================
   GET /sessions?academyId=&coachId=&status=&playerId=
========================================================= */
func (ctrl *SessionController) List(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	sessions, err := ctrl.Repo.FindByFilter(c.UserContext(), repository.SessionFilter{
		AcademyID: academyID,
		CoachID:   c.Query("coachId"),
		Status:    c.Query("status"),
		PlayerID:  c.Query("playerId"),
	})
	if err != nil {
		log.Printf("[ERROR] list sessions: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	// Status is derived from the clock on every read; stored values go
	// stale the moment a session starts.
	now := time.Now()
	for i := range sessions {
		sessions[i].Status = sessions[i].ComputeStatus(now)
		sessions[i].EnsureDefaults()
	}
	return helper.Success(c, sessions)
}

/* =========================================================
   GET /sessions/:id
========================================================= */
func (ctrl *SessionController) GetByID(c *fiber.Ctx) error {
	session, err := ctrl.Repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Printf("[ERROR] get session: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch session")
	}
	if session == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	session.Status = session.ComputeStatus(time.Now())
	return helper.Success(c, session.EnsureDefaults())
}

/* =========================================================
   GET /sessions/:id/occurrences
========================================================= */
func (ctrl *SessionController) Occurrences(c *fiber.Ctx) error {
	occ, err := ctrl.Repo.FindOccurrences(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Printf("[ERROR] list occurrences: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch occurrences")
	}

	now := time.Now()
	for i := range occ {
		occ[i].Status = occ[i].ComputeStatus(now)
		occ[i].EnsureDefaults()
	}
	return helper.Success(c, occ)
}

/* =========================================================
   POST /sessions
   A recurring request inserts the template plus its expanded occurrences.
========================================================= */
func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	session := &model.SessionModel{
		ID:              uuid.NewString(),
		AcademyID:       req.AcademyID,
		Name:            req.Name,
		Type:            req.Type,
		CoachID:         req.CoachID,
		AssignedPlayers: req.AssignedPlayers,
		Start:           req.Start,
		End:             req.End,
		IsRecurring:     req.IsRecurring,
		RecurrenceDays:  req.RecurrenceDays,
		RecurrenceCount: req.RecurrenceCount,
	}
	session.Status = session.ComputeStatus(time.Now())

	if err := ctrl.Repo.Insert(c.UserContext(), session); err != nil {
		log.Printf("[ERROR] create session: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}

	if occ := session.ExpandOccurrences(uuid.NewString); len(occ) > 0 {
		if err := ctrl.Repo.InsertMany(c.UserContext(), occ); err != nil {
			// Template exists but children failed; surface the error, the
			// series can be re-expanded by recreating it.
			log.Printf("[ERROR] expand occurrences for %s: %v", session.ID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session occurrences")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, session.EnsureDefaults())
}

/* =========================================================
   PATCH /sessions/:id
========================================================= */
func (ctrl *SessionController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateSessionRequest
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
	if req.CoachID != nil {
		set["coachId"] = *req.CoachID
	}
	if req.AssignedPlayers != nil {
		set["assignedPlayers"] = *req.AssignedPlayers
	}
	if req.Start != nil {
		set["start"] = *req.Start
	}
	if req.End != nil {
		set["end"] = *req.End
	}
	if req.Status != nil {
		set["status"] = *req.Status
		set["statusOverride"] = true
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	session, err := ctrl.Repo.UpdateFields(c.UserContext(), id, set)
	if err != nil {
		log.Printf("[ERROR] update session %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update session")
	}
	if session == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return helper.Success(c, session.EnsureDefaults())
}

/* =========================================================
   PATCH /sessions/:id/attendance {playerId, status}
   status=true maps to "Present", false to "Absent".
========================================================= */
func (ctrl *SessionController) MarkAttendance(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	status := constants.AttendanceAbsent
	if req.Status {
		status = constants.AttendancePresent
	}
	rec := model.AttendanceRecord{
		Status:   status,
		MarkedAt: time.Now(),
	}
	if markedBy, err := helper.GetUserIDFromLocals(c); err == nil {
		rec.MarkedBy = markedBy
	}

	if err := ctrl.Repo.SetAttendance(c.UserContext(), id, req.PlayerID, rec); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		log.Printf("[ERROR] mark attendance %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return helper.Success(c, fiber.Map{"playerId": req.PlayerID, "status": status})
}

/* =========================================================
   PATCH /sessions/:id/metrics {playerId, metrics}
   Two-collection write: session metrics first, then a performance entry
   on the player. The pair is not atomic; a failure between the writes
   leaves the session updated without the history entry.
========================================================= */
func (ctrl *SessionController) RecordPlayerMetrics(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.PlayerMetricsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	session, err := ctrl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] get session %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch session")
	}
	if session == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	if err := ctrl.Repo.SetPlayerMetrics(c.UserContext(), id, req.PlayerID, req.Metrics); err != nil {
		log.Printf("[ERROR] set metrics %s/%s: %v", id, req.PlayerID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record metrics")
	}

	entryType := constants.HistoryTraining
	if session.Type == "match" {
		entryType = constants.HistoryMatch
	}
	entry := playerModel.PerformanceEntry{
		Date:      time.Now(),
		Type:      entryType,
		SessionID: session.ID,
		Stats:     req.Metrics,
		Notes:     req.Notes,
	}
	if err := ctrl.Players.AppendPerformance(c.UserContext(), req.PlayerID, entry); err != nil {
		log.Printf("[ERROR] append history for %s after session %s: %v", req.PlayerID, id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Metrics saved but player history update failed")
	}

	return helper.Success(c, fiber.Map{"playerId": req.PlayerID, "metrics": req.Metrics})
}

/* =========================================================
   DELETE /sessions/:id — soft delete
   DELETE /sessions/:id/occurrences — permanent series cleanup
========================================================= */
func (ctrl *SessionController) SoftDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.Repo.SoftDelete(c.UserContext(), id); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		log.Printf("[ERROR] delete session %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete session")
	}
	return helper.Success(c, fiber.Map{"deleted": id})
}

func (ctrl *SessionController) DeleteOccurrences(c *fiber.Ctx) error {
	id := c.Params("id")
	count, err := ctrl.Repo.HardDeleteOccurrences(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] delete occurrences %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete occurrences")
	}
	return helper.Success(c, fiber.Map{"deletedCount": count})
}
