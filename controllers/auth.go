package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"SantaChat/middleware"
	"SantaChat/models"
	"SantaChat/pkg/config"
	tokenstore "SantaChat/pkg/token"
	utils "SantaChat/pkg/utills"
)

const tokenLifetime = 24 * time.Hour

// Register handler. A child account may name its parent's username to link
// the two; the named account must exist and be flagged as a parent.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username        string `json:"username"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirm_password"`
			IsParent        bool   `json:"is_parent"`
			ParentUsername  string `json:"parent_username"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		username := strings.TrimSpace(body.Username)
		password := body.Password
		confirm := body.ConfirmPassword

		if username == "" || password == "" || confirm == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Username, password, and confirm password are required"})
			return
		}

		if password != confirm {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Passwords do not match"})
			return
		}

		// password validation: at least one letter and one number
		if !utils.HasLetter(password) || !utils.HasNumber(password) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Password must contain at least one letter and one number"})
			return
		}

		if body.IsParent && body.ParentUsername != "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "A parent account cannot name a parent of its own"})
			return
		}

		var exists models.User
		if err := db.Where("username = ?", username).First(&exists).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"msg": "Username already exists"})
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "db error"})
			return
		}

		var parentID *uint
		if pu := strings.TrimSpace(body.ParentUsername); pu != "" {
			var parent models.User
			if err := db.Where("username = ?", pu).First(&parent).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"msg": "Parent account not found"})
				return
			}
			if !parent.IsParent {
				c.JSON(http.StatusBadRequest, gin.H{"msg": "Named account is not a parent"})
				return
			}
			parentID = &parent.ID
		}

		user := models.User{
			Username: username,
			IsParent: body.IsParent,
			ParentID: parentID,
		}
		if err := user.SetPassword(password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to set password"})
			return
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"msg": "User created", "username": user.Username, "is_parent": user.IsParent})
	}
}

// Login handler
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}
		username := strings.TrimSpace(body.Username)
		password := body.Password

		if username == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Username and password are required"})
			return
		}

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}

		if !user.CheckPassword(password) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}

		jti := uuid.NewString()
		claims := jwt.MapClaims{
			"sub": strconv.Itoa(int(user.ID)),
			"exp": time.Now().Add(tokenLifetime).Unix(),
			"jti": jti,
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenStr, err := token.SignedString([]byte(config.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create token"})
			return
		}

		// web client rides on the HTTP-only session cookie; the token in the
		// body serves API callers using the bearer header
		c.SetCookie(middleware.SessionCookieName, tokenStr, int(tokenLifetime.Seconds()), "/", "", config.IsProduction, true)
		c.JSON(http.StatusOK, gin.H{"access_token": tokenStr, "username": user.Username, "is_parent": user.IsParent})
	}
}

// Logout handler
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		jti, _ := c.Get(middleware.ContextJTIKey)
		if s, ok := jti.(string); ok && s != "" {
			tokenstore.RevokeToken(s, tokenLifetime)
		}
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", config.IsProduction, true)
		c.JSON(http.StatusOK, gin.H{"msg": "logged out"})
	}
}
