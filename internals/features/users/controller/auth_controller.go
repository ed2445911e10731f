package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ams_backend/internals/configs"
	"ams_backend/internals/features/users/dto"
	"ams_backend/internals/features/users/model"
	"ams_backend/internals/features/users/repository"
	helper "ams_backend/internals/helpers"
)

const tokenLifetime = 24 * time.Hour

type AuthController struct {
	Repo      repository.UserRepository
	validator *validator.Validate
}

func NewAuthController(repo repository.UserRepository) *AuthController {
	return &AuthController{Repo: repo, validator: validator.New()}
}

/* =========================================================
   POST /auth/register
========================================================= */
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	existing, err := ctrl.Repo.FindByUsername(c.UserContext(), req.Username)
	if err != nil {
		log.Printf("[ERROR] register lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Registration failed")
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusConflict, "Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Registration failed")
	}

	user := &model.UserModel{
		ID:        uuid.NewString(),
		AcademyID: req.AcademyID,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Name:      req.Name,
		Role:      req.Role,
		IsActive:  true,
	}
	if err := ctrl.Repo.Insert(c.UserContext(), user); err != nil {
		log.Printf("[ERROR] register insert: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, user)
}

/* =========================================================
   POST /auth/login
========================================================= */
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Repo.FindByUsername(c.UserContext(), req.Username)
	if err != nil {
		log.Printf("[ERROR] login lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		// Same message either way; do not reveal which half was wrong.
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	token, err := signToken(user)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(tokenLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, fiber.Map{
		"token": token,
		"user":  user,
	})
}

/* =========================================================
   POST /auth/logout, GET /auth/me
========================================================= */
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, fiber.Map{"loggedOut": true})
}

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	user, err := ctrl.Repo.FindByID(c.UserContext(), userID)
	if err != nil {
		log.Printf("[ERROR] me lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, user)
}

func signToken(user *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"role":       user.Role,
		"academy_id": user.AcademyID,
		"exp":        time.Now().Add(tokenLifetime).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
