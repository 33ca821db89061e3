package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ITECH-Group8/WellLog/middlewares"
	"github.com/ITECH-Group8/WellLog/services"

	"github.com/gin-gonic/gin"
)

const adviceTimeLayout = "2006-01-02 15:04:05"

// Fallback texts shown when generation fails. The real error detail
// stays in the server log.
const (
	adviceTimeoutFallback    = "The advice service took too long to respond. Please try again in a moment."
	adviceAPIErrorFallback   = "The advice service is temporarily unavailable. Please try again later."
	adviceUnexpectedFallback = "Something went wrong while generating your advice. Please try again later."
)

type AdviceController struct {
	advice *services.AdviceService
}

func NewAdviceController(advice *services.AdviceService) *AdviceController {
	return &AdviceController{advice: advice}
}

// Generate runs the advice pipeline. Every outcome renders as HTTP 200;
// the client distinguishes success by the absence of "error".
func (ac *AdviceController) Generate(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	result := ac.advice.Generate(c.Request.Context(), user)
	now := time.Now().Format(adviceTimeLayout)

	switch result.Outcome {
	case services.AdviceOK:
		c.JSON(http.StatusOK, gin.H{
			"advice":         result.Advice,
			"generated_time": now,
		})
	case services.AdviceTimedOut:
		slog.Warn("advice generation timed out", "user", user.ID, "detail", result.Detail)
		c.JSON(http.StatusOK, gin.H{
			"error":          "advice generation timed out",
			"advice":         adviceTimeoutFallback,
			"generated_time": now,
		})
	case services.AdviceAPIError:
		slog.Error("advice API call failed", "user", user.ID, "detail", result.Detail)
		c.JSON(http.StatusOK, gin.H{
			"error":          "advice service unavailable",
			"advice":         adviceAPIErrorFallback,
			"generated_time": now,
		})
	default:
		slog.Error("advice generation failed", "user", user.ID, "detail", result.Detail)
		c.JSON(http.StatusOK, gin.H{
			"error":          "advice generation failed",
			"advice":         adviceUnexpectedFallback,
			"generated_time": now,
		})
	}
}

// Latest returns the newest stored advice, if any.
func (ac *AdviceController) Latest(c *gin.Context) {
	advice, err := ac.advice.Latest(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if advice == nil {
		c.JSON(http.StatusOK, gin.H{"advice": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"advice":         advice.Content,
		"generated_time": advice.CreatedAt.Format(adviceTimeLayout),
	})
}
