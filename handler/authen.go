package handler

import (
	"errors"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func authenticate(c *fiber.Ctx) (*model.Account, error) {
	input := new(loginInput)

	if err := c.BodyParser(input); err != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if input.Email == "" || input.Password == "" {
		return nil, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	account, err := helper.GetAccountByEmail(strings.ToLower(input.Email))
	if err != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return nil, utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return nil, utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	if !account.Active {
		return nil, utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account inactive"))
	}

	return account, nil
}

func issueTokens(c *fiber.Ctx, account *model.Account) error {
	tokenClaim := model.TokenClaim{
		UserId: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	}

	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false, // set true behind HTTPS
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":    account.ID,
			"name":  account.Name,
			"email": account.Email,
			"role":  account.Role,
		},
		"tokens": model.TokenData{AccessToken: token, RefreshToken: refreshToken},
	})
}

// LoginStaff authenticates receptionists and administrators.
func LoginStaff(c *fiber.Ctx) error {
	account, err := authenticate(c)
	if account == nil {
		return err
	}

	if account.Role != constants.ROLE_RECEPTIONIST && account.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("guest account on staff login"))
	}

	return issueTokens(c, account)
}

// LoginGuest authenticates guest accounts for the public booking widget.
func LoginGuest(c *fiber.Ctx) error {
	account, err := authenticate(c)
	if account == nil {
		return err
	}

	if account.Role != constants.ROLE_GUEST {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Use the staff login", errors.New("staff account on guest login"))
	}

	return issueTokens(c, account)
}

// RegisterGuest creates a guest account.
func RegisterGuest(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, errors.New("missing input"))
	}

	email := strings.ToLower(input.Email)
	existing, err := helper.GetAccountByEmail(email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_IN_USE, errors.New("duplicate email"))
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Name:     input.Name,
		Email:    email,
		Password: hashed,
		Role:     constants.ROLE_GUEST,
		Active:   true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

// RefreshToken issues a fresh access token from a valid refresh token.
func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		type refreshRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req refreshRequest
		if err := c.BodyParser(&req); err == nil {
			refresh = req.RefreshToken
		}
	}
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no token"))
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	c.Locals("user", token)
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("missing claims"))
	}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: accessToken, RefreshToken: refresh})
}

// Logout clears both token cookies.
func Logout(c *fiber.Ctx) error {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			MaxAge:   -1,
			HTTPOnly: true,
			SameSite: "None",
			Path:     "/",
		})
	}
	return c.JSON(fiber.Map{"message": "logout success"})
}

// Me returns the account behind the current token.
func Me(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("missing claims"))
	}

	var account model.Account
	if err := database.DB.First(&account, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
