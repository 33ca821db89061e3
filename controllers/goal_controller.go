package controllers

import (
	"net/http"

	"github.com/ITECH-Group8/WellLog/models"
	"github.com/ITECH-Group8/WellLog/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	records *services.RecordService
}

func NewGoalController(records *services.RecordService) *GoalController {
	return &GoalController{records: records}
}

type GoalInput struct {
	TargetWeight               *float64 `json:"target_weight" binding:"omitempty,gt=0"`
	DailyStepsGoal             *int     `json:"daily_steps_goal" binding:"omitempty,gt=0"`
	DailySleepHoursGoal        *int     `json:"daily_sleep_hours_goal" binding:"omitempty,min=0,max=24"`
	DailySleepMinutesGoal      *int     `json:"daily_sleep_minutes_goal" binding:"omitempty,min=0,max=59"`
	WeeklyRunningDistanceGoal  *float64 `json:"weekly_running_distance_goal" binding:"omitempty,gt=0"`
	WeeklyRunningSessionsGoal  *int     `json:"weekly_running_sessions_goal" binding:"omitempty,gt=0"`
	WeeklyTrainingSessionsGoal *int     `json:"weekly_training_sessions_goal" binding:"omitempty,gt=0"`
	DailyCaloriesGoal          *int     `json:"daily_calories_goal" binding:"omitempty,gt=0"`
	DailyProteinGoal           *float64 `json:"daily_protein_goal" binding:"omitempty,gt=0"`
}

func goalJSON(g *models.HealthGoal) gin.H {
	if g == nil {
		return gin.H{}
	}
	return gin.H{
		"target_weight":                 g.TargetWeight,
		"daily_steps_goal":              g.DailyStepsGoal,
		"daily_sleep_hours_goal":        g.DailySleepHoursGoal,
		"daily_sleep_minutes_goal":      g.DailySleepMinutesGoal,
		"weekly_running_distance_goal":  g.WeeklyRunningDistanceGoal,
		"weekly_running_sessions_goal":  g.WeeklyRunningSessionsGoal,
		"weekly_training_sessions_goal": g.WeeklyTrainingSessionsGoal,
		"daily_calories_goal":           g.DailyCaloriesGoal,
		"daily_protein_goal":            g.DailyProteinGoal,
	}
}

func (gc *GoalController) GetGoal(c *gin.Context) {
	goal, err := gc.records.Goal(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goalJSON(goal)})
}

func (gc *GoalController) PutGoal(c *gin.Context) {
	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := models.HealthGoal{
		TargetWeight:               input.TargetWeight,
		DailyStepsGoal:             input.DailyStepsGoal,
		DailySleepHoursGoal:        input.DailySleepHoursGoal,
		DailySleepMinutesGoal:      input.DailySleepMinutesGoal,
		WeeklyRunningDistanceGoal:  input.WeeklyRunningDistanceGoal,
		WeeklyRunningSessionsGoal:  input.WeeklyRunningSessionsGoal,
		WeeklyTrainingSessionsGoal: input.WeeklyTrainingSessionsGoal,
		DailyCaloriesGoal:          input.DailyCaloriesGoal,
		DailyProteinGoal:           input.DailyProteinGoal,
	}
	if err := gc.records.UpsertGoal(c.GetUint("userID"), &goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal saved", "goal": goalJSON(&goal)})
}
