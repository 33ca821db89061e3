package controllers

import (
	"net/http"
	"time"

	"github.com/ITECH-Group8/WellLog/services"

	"github.com/gin-gonic/gin"
)

const dashboardWindowDays = 30

type DashboardController struct {
	records *services.RecordService
	advice  *services.AdviceService
}

func NewDashboardController(records *services.RecordService, advice *services.AdviceService) *DashboardController {
	return &DashboardController{records: records, advice: advice}
}

// Overview returns the last 30 days of every metric plus the goal and
// the newest stored advice in one payload.
func (dc *DashboardController) Overview(c *gin.Context) {
	userID := c.GetUint("userID")
	since := services.Day(time.Now().AddDate(0, 0, -dashboardWindowDays))

	steps, err := dc.records.StepsSince(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sleep, err := dc.records.SleepSince(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	diet, err := dc.records.DietSince(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	running, err := dc.records.RunningSince(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	training, err := dc.records.TrainingSince(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	mood, err := dc.records.MoodSince(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	weight, err := dc.records.WeightSince(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	goal, err := dc.records.Goal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	latest, err := dc.advice.Latest(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stepsOut := make([]gin.H, 0, len(steps))
	for _, r := range steps {
		stepsOut = append(stepsOut, stepsJSON(r))
	}
	sleepOut := make([]gin.H, 0, len(sleep))
	for _, r := range sleep {
		sleepOut = append(sleepOut, sleepJSON(r))
	}
	dietOut := make([]gin.H, 0, len(diet))
	for _, r := range diet {
		dietOut = append(dietOut, dietJSON(r))
	}
	runningOut := make([]gin.H, 0, len(running))
	for _, r := range running {
		runningOut = append(runningOut, runningJSON(r))
	}
	trainingOut := make([]gin.H, 0, len(training))
	for _, r := range training {
		trainingOut = append(trainingOut, trainingJSON(r))
	}
	moodOut := make([]gin.H, 0, len(mood))
	for _, r := range mood {
		moodOut = append(moodOut, moodJSON(r))
	}
	weightOut := make([]gin.H, 0, len(weight))
	for _, r := range weight {
		weightOut = append(weightOut, weightJSON(r))
	}

	var adviceOut gin.H
	if latest != nil {
		adviceOut = gin.H{
			"advice":         latest.Content,
			"generated_time": latest.CreatedAt.Format(adviceTimeLayout),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"steps":    stepsOut,
		"sleep":    sleepOut,
		"diet":     dietOut,
		"running":  runningOut,
		"training": trainingOut,
		"mood":     moodOut,
		"weight":   weightOut,
		"goal":     goalJSON(goal),
		"advice":   adviceOut,
	})
}
