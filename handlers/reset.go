package handlers

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gauravmindaptix26/hot-Barcelona-sub000/database"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

var webhookClient = &http.Client{Timeout: 10 * time.Second}

// generateResetToken returns the raw token handed to the user. Only its hash
// is persisted.
func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// tokenRedeemable reports whether a reset token can still be redeemed: it
// must be unused and unexpired. Redemption sets usedAt, so a second attempt
// with the same token fails here.
func tokenRedeemable(t *models.PasswordResetToken, now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}

func resetLinkFor(token string) string {
	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return strings.TrimRight(base, "/") + "/reset-password?token=" + token
}

// dispatchResetLink posts the link to the configured delivery webhook.
// Delivery failure is logged, never surfaced: the response must not reveal
// whether an account exists.
func dispatchResetLink(email, link string) {
	webhookURL := os.Getenv("RESET_WEBHOOK_URL")
	if webhookURL == "" {
		log.Printf("[ForgotPassword] RESET_WEBHOOK_URL not set, link not dispatched")
		return
	}

	payload, err := json.Marshal(gin.H{"email": email, "resetLink": link})
	if err != nil {
		log.Printf("[ForgotPassword] marshal failed: %v", err)
		return
	}

	resp, err := webhookClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("[ForgotPassword] webhook dispatch failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[ForgotPassword] webhook returned %d", resp.StatusCode)
	}
}

const forgotPasswordMessage = "If an account exists for that email, a reset link has been sent."

// ForgotPassword always answers with the same message whether or not the
// account exists. Issuing a new token deletes the user's older unused ones,
// so at most one unused token is live per user.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required."})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := requestContext()
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{"message": forgotPasswordMessage})
		return
	}
	if err != nil {
		internalError(c, "ForgotPassword", err)
		return
	}

	if _, err := database.ResetTokens.DeleteMany(ctx, bson.M{"userId": user.ID, "usedAt": nil}); err != nil {
		internalError(c, "ForgotPassword", err)
		return
	}

	raw, err := generateResetToken()
	if err != nil {
		internalError(c, "ForgotPassword", err)
		return
	}

	record := models.PasswordResetToken{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Email:     email,
		TokenHash: hashResetToken(raw),
		ExpiresAt: time.Now().Add(resetTokenTTL),
		CreatedAt: time.Now(),
	}
	if _, err := database.ResetTokens.InsertOne(ctx, record); err != nil {
		internalError(c, "ForgotPassword", err)
		return
	}

	link := resetLinkFor(raw)
	go dispatchResetLink(email, link)

	response := gin.H{"message": forgotPasswordMessage}
	if gin.Mode() != gin.ReleaseMode {
		// debug convenience only; never returned in release mode
		response["resetLink"] = link
	}
	c.JSON(http.StatusOK, response)
}

// ResetPassword redeems a token exactly once. Redemption marks it used and
// deletes the user's other unused tokens.
func ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token and a new password of 8+ characters are required."})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	var record models.PasswordResetToken
	err := database.ResetTokens.FindOne(ctx, bson.M{
		"tokenHash": hashResetToken(req.Token),
	}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset link."})
		return
	}
	if err != nil {
		internalError(c, "ResetPassword", err)
		return
	}

	if !tokenRedeemable(&record, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset link."})
		return
	}

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": record.UserID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset link."})
			return
		}
		internalError(c, "ResetPassword", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.NewPassword)) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be different from your current password."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "ResetPassword", err)
		return
	}

	if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"passwordHash": string(hashed)}}); err != nil {
		internalError(c, "ResetPassword", err)
		return
	}

	now := time.Now()
	if _, err := database.ResetTokens.UpdateOne(ctx, bson.M{"_id": record.ID}, bson.M{"$set": bson.M{"usedAt": now}}); err != nil {
		log.Printf("[ResetPassword] failed to mark token used: %v", err)
	}
	if _, err := database.ResetTokens.DeleteMany(ctx, bson.M{"userId": user.ID, "usedAt": nil, "_id": bson.M{"$ne": record.ID}}); err != nil {
		log.Printf("[ResetPassword] failed to delete sibling tokens: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
