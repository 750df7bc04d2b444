package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

var validate = validator.New()

/* =========================================================
   REGISTER
========================================================= */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hash),
		Role:     constants.RoleStudent,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	user.Password = ""
	return helper.JsonCreated(c, "account created", user)
}

/* =========================================================
   LOGIN
========================================================= */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(input.Email))).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "email or password incorrect")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "email or password incorrect")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is disabled")
	}

	return issueToken(c, user)
}

/* =========================================================
   LOGIN GOOGLE
========================================================= */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if input.IDToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid google id token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to decode id token")
	}

	var user userModel.UserModel
	err = db.First(&user, "google_id = ?", claimSet.Sub).Error
	if err != nil {
		// first google sign-in, provision a student account
		googleID := claimSet.Sub
		dummy, herr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to provision account")
		}
		user = userModel.UserModel{
			UserName: claimSet.Name,
			Email:    strings.ToLower(claimSet.Email),
			Password: string(dummy),
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if cerr := db.Create(&user).Error; cerr != nil {
			low := strings.ToLower(cerr.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create google user")
		}
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is disabled")
	}

	return issueToken(c, user)
}

/* =========================================================
   LOGOUT
========================================================= */

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "logged out", nil)
}

/* =========================================================
   Token issuance
========================================================= */

func issueToken(c *fiber.Ctx, user userModel.UserModel) error {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"role":      user.Role,
		"user_name": user.UserName,
		"email":     user.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTL),
	})

	return helper.JsonOK(c, "login success", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}
