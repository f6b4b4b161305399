package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gauravmindaptix26/hot-Barcelona-sub000/database"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/middleware"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Gender   string `json:"gender" binding:"required,oneof=female male"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func issueToken(user *models.User) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &middleware.Claims{
		UserID:  user.ID.Hex(),
		Email:   user.Email,
		Gender:  user.Gender,
		IsAdmin: middleware.IsAdminEmail(user.Email, middleware.AdminEmails()),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, password (8+ characters) and gender are required."})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := requestContext()
	defer cancel()

	var existing models.User
	err := database.Users.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	}
	if err != mongo.ErrNoDocuments {
		internalError(c, "Register", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "Register", err)
		return
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Gender:       req.Gender,
		CreatedAt:    time.Now().Unix(),
	}

	if _, err := database.Users.InsertOne(ctx, user); err != nil {
		internalError(c, "Register", err)
		return
	}

	tokenString, err := issueToken(&user)
	if err != nil {
		internalError(c, "Register", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID.Hex(),
		"token": tokenString,
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := requestContext()
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		internalError(c, "Login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	tokenString, err := issueToken(&user)
	if err != nil {
		internalError(c, "Login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  tokenString,
		"userId": user.ID.Hex(),
	})
}
