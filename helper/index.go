package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetAccountByEmail(e string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Email: e}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoUserFromToken reads the claim stashed by middleware.Protected.
// Returns a zero claim when the route was mounted without the middleware.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, false
	}

	tokenClaim := model.TokenClaim{}
	if v, ok := claims["userId"].(float64); ok {
		tokenClaim.UserId = uint(v)
	}
	if v, ok := claims["email"].(string); ok {
		tokenClaim.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		tokenClaim.Role = v
	}

	isAdmin := tokenClaim.Role == constants.ROLE_ADMIN
	isStaff := isAdmin || tokenClaim.Role == constants.ROLE_RECEPTIONIST
	return tokenClaim, isAdmin, isStaff
}
