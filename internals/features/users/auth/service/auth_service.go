package service

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/configs"
	"coursehub_backend/internals/features/users/auth/dto"
	"coursehub_backend/internals/features/users/auth/model"
	helper "coursehub_backend/internals/helpers"
	"coursehub_backend/internals/repository"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// One combined existence check over both unique fields. The message
	// deliberately does not say which one collided.
	var existing model.UserModel
	err := db.WithContext(c.UserContext()).
		Where("user_name = ? OR email = ?", body.UserName, body.Email).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User name or user email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] register existence check:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during registration")
	}

	hashed, err := HashPassword(body.Password)
	if err != nil {
		log.Println("[ERROR] register hash:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during registration")
	}

	user := model.UserModel{
		UserName: body.UserName,
		Email:    body.Email,
		Password: hashed,
		Role:     body.Role,
	}
	if err := db.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		// The unique indexes on users are authoritative; a concurrent
		// register that beat the pre-check lands here.
		if repository.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "User name or user email already exists")
		}
		log.Println("[ERROR] register insert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during registration")
	}

	return helper.JsonCreated(c, "User registered successfully!", nil)
}

// ========================== LOGIN ==========================
// POST /auth/login
func Login(db *gorm.DB, cfg *configs.Config, c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	err := db.WithContext(c.UserContext()).
		Where("email = ?", body.Email).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] login lookup:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during login")
		}
		// Unknown email and wrong password answer identically.
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := CheckPasswordHash(user.Password, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	accessToken, err := IssueAccessToken(cfg, &user)
	if err != nil {
		log.Println("[ERROR] login token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during login")
	}

	return helper.JsonOK(c, "Logged in successfully", dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.ToUserResponse(&user),
	})
}

// ========================== ME ==========================
// GET /auth/me
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := db.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] me lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return helper.JsonOK(c, "", dto.ToUserResponse(&user))
}
