package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"SantaChat/middleware"
	"SantaChat/models"
	"SantaChat/pkg/config"
	svc "SantaChat/pkg/services"
)

// PostChat runs one chat turn: persist the child's message, gather context,
// generate the Santa reply, persist and return it. A generator failure is
// replaced by an in-character fallback; the turn never fails for that cause.
func PostChat(db *gorm.DB, gen svc.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)
		uidStr := strconv.Itoa(int(uid))

		var body struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "message is required"})
			return
		}

		if !middleware.DuplicateGuard(uidStr, body.Message) {
			c.JSON(http.StatusTooManyRequests, gin.H{"msg": "you just sent that message"})
			return
		}
		release := middleware.AcquireUserSlot(uidStr)
		defer release()

		userMsg := models.ChatMessage{
			UserID:      uid,
			Message:     body.Message,
			IsFromSanta: false,
		}
		if err := db.Create(&userMsg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to save message"})
			return
		}

		reply := generateReply(c, db, gen, uid, body.Message)

		santaMsg := models.ChatMessage{
			UserID:      uid,
			Message:     reply.Message,
			IsFromSanta: true,
			Tone:        string(reply.Tone),
			Suggestions: reply.Suggestions,
		}
		if err := db.Create(&santaMsg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to save reply"})
			return
		}

		c.JSON(http.StatusOK, santaMsg)
	}
}

func generateReply(c *gin.Context, db *gorm.DB, gen svc.Generator, uid uint, message string) svc.Reply {
	req := svc.GenerateRequest{Message: message}

	// context for the generator: recent turns plus the wishlist. Both reads
	// are best-effort; a reply without context beats no reply.
	var recent []models.ChatMessage
	if err := db.Where("user_id = ?", uid).
		Order("created_at desc, id desc").
		Limit(config.ChatHistoryLimit).
		Find(&recent).Error; err == nil {
		for i := len(recent) - 1; i >= 0; i-- {
			m := recent[i]
			if m.Message == message && !m.IsFromSanta {
				continue // the turn being answered is already in req.Message
			}
			req.History = append(req.History, svc.HistoryMessage{FromSanta: m.IsFromSanta, Text: m.Message})
		}
	}

	var items []models.WishlistItem
	if err := db.Where("user_id = ?", uid).Order("priority asc").Find(&items).Error; err == nil {
		for _, it := range items {
			req.WishlistItems = append(req.WishlistItems, it.Item)
		}
	}

	reply, err := gen.Generate(c.Request.Context(), req)
	if err != nil || strings.TrimSpace(reply.Message) == "" {
		if err != nil {
			zap.L().Warn("santa generator failed, using fallback", zap.Uint("user_id", uid), zap.Error(err))
		}
		reply = svc.FallbackReply(message)
	}
	return reply
}

// ListChats returns the caller's full transcript, oldest first.
func ListChats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)

		chats := make([]models.ChatMessage, 0)
		if err := db.Where("user_id = ?", uid).Order("created_at asc, id asc").Find(&chats).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "db error"})
			return
		}

		c.JSON(http.StatusOK, chats)
	}
}
