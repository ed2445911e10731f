package controller

import (
	"encoding/base64"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ams_backend/internals/features/finance/dto"
	"ams_backend/internals/features/finance/model"
	"ams_backend/internals/features/finance/repository"
	helper "ams_backend/internals/helpers"
)

type FinanceController struct {
	Repo      repository.FinanceRepository
	validator *validator.Validate
}

func NewFinanceController(repo repository.FinanceRepository) *FinanceController {
	return &FinanceController{Repo: repo, validator: validator.New()}
}

/* =========================================================
   GET /finance/transactions?academyId=
   GET /finance/summary?academyId=
========================================================= */
func (ctrl *FinanceController) ListTransactions(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	txs, err := ctrl.Repo.FindTransactions(c.UserContext(), academyID)
	if err != nil {
		log.Printf("[ERROR] list transactions: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transactions")
	}
	return helper.Success(c, txs)
}

func (ctrl *FinanceController) Summary(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	summary, err := ctrl.Repo.Summary(c.UserContext(), academyID)
	if err != nil {
		log.Printf("[ERROR] finance summary: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute summary")
	}
	return helper.Success(c, summary)
}

/* =========================================================
   POST /finance/transactions, DELETE /finance/transactions/:id
========================================================= */
func (ctrl *FinanceController) CreateTransaction(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tx := &model.TransactionModel{
		ID:          uuid.NewString(),
		AcademyID:   req.AcademyID,
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        time.Now(),
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}

	if err := ctrl.Repo.InsertTransaction(c.UserContext(), tx); err != nil {
		log.Printf("[ERROR] create transaction: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record transaction")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, tx)
}

func (ctrl *FinanceController) DeleteTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.Repo.DeleteTransaction(c.UserContext(), id); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		log.Printf("[ERROR] delete transaction %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete transaction")
	}
	return helper.Success(c, fiber.Map{"deleted": id})
}

/* =========================================================
   Documents: list / upload / raw file retrieval / delete
========================================================= */
func (ctrl *FinanceController) ListDocuments(c *fiber.Ctx) error {
	academyID, err := helper.RequireQuery(c, "academyId")
	if err != nil {
		return err
	}

	docs, err := ctrl.Repo.FindDocuments(c.UserContext(), academyID)
	if err != nil {
		log.Printf("[ERROR] list documents: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch documents")
	}
	return helper.Success(c, docs)
}

func (ctrl *FinanceController) UploadDocument(c *fiber.Ctx) error {
	var req dto.UploadDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	raw, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "data is not valid base64")
	}

	doc := &model.DocumentModel{
		ID:          uuid.NewString(),
		AcademyID:   req.AcademyID,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Data:        req.Data,
		Size:        len(raw),
	}
	if uploadedBy, err := helper.GetUserIDFromLocals(c); err == nil {
		doc.UploadedBy = uploadedBy
	}

	if err := ctrl.Repo.InsertDocument(c.UserContext(), doc); err != nil {
		log.Printf("[ERROR] upload document: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store document")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, doc)
}

// File streams the decoded payload with the uploader-declared content type
// for inline rendering in the dashboard.
func (ctrl *FinanceController) File(c *fiber.Ctx) error {
	id := c.Params("id")

	doc, err := ctrl.Repo.FindDocumentByID(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] get document %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch document")
	}
	if doc == nil {
		return fiber.NewError(fiber.StatusNotFound, "Document not found")
	}

	raw, err := base64.StdEncoding.DecodeString(doc.Data)
	if err != nil {
		log.Printf("[ERROR] document %s payload corrupt: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Stored document is corrupt")
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+doc.Filename+`"`)
	return c.Send(raw)
}

func (ctrl *FinanceController) DeleteDocument(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.Repo.DeleteDocument(c.UserContext(), id); err != nil {
		if helper.IsNoDocuments(err) {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		log.Printf("[ERROR] delete document %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete document")
	}
	return helper.Success(c, fiber.Map{"deleted": id})
}
