package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ITECH-Group8/WellLog/models"
	"github.com/ITECH-Group8/WellLog/services"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type RecordController struct {
	records *services.RecordService
}

func NewRecordController(records *services.RecordService) *RecordController {
	return &RecordController{records: records}
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return 0, false
	}
	return uint(id), true
}

func (rc *RecordController) respondWriteErr(c *gin.Context, err error) {
	if err == services.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ---------- Steps ----------

type StepsInput struct {
	Date       string `json:"date" binding:"required"`
	StepsCount int    `json:"steps_count" binding:"min=0"`
}

func stepsJSON(r models.StepsRecord) gin.H {
	return gin.H{
		"id":          r.ID,
		"date":        r.Date.Format(dateLayout),
		"steps_count": r.StepsCount,
	}
}

func (rc *RecordController) AddSteps(c *gin.Context) {
	var input StepsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.StepsRecord{UserID: c.GetUint("userID"), Date: date, StepsCount: input.StepsCount}
	if err := rc.records.AddSteps(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, stepsJSON(record))
}

func (rc *RecordController) UpdateSteps(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input StepsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.StepsRecord{Date: date, StepsCount: input.StepsCount}
	if err := rc.records.UpdateSteps(c.GetUint("userID"), id, &record); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated"})
}

func (rc *RecordController) DeleteSteps(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.records.DeleteSteps(c.GetUint("userID"), id); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func (rc *RecordController) StepsHistory(c *gin.Context) {
	records, err := rc.records.StepsHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, stepsJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// ---------- Sleep ----------

type SleepInput struct {
	Date    string `json:"date" binding:"required"`
	Hours   int    `json:"hours" binding:"min=0,max=24"`
	Minutes int    `json:"minutes" binding:"min=0,max=59"`
	Quality string `json:"quality" binding:"omitempty,oneof=poor fair good excellent"`
}

func sleepJSON(r models.SleepRecord) gin.H {
	return gin.H{
		"id":          r.ID,
		"date":        r.Date.Format(dateLayout),
		"hours":       r.Hours,
		"minutes":     r.Minutes,
		"quality":     r.Quality,
		"total_hours": r.TotalHours(),
	}
}

func (rc *RecordController) AddSleep(c *gin.Context) {
	var input SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.SleepRecord{
		UserID: c.GetUint("userID"), Date: date,
		Hours: input.Hours, Minutes: input.Minutes, Quality: input.Quality,
	}
	if err := rc.records.AddSleep(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sleepJSON(record))
}

func (rc *RecordController) UpdateSleep(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.SleepRecord{Date: date, Hours: input.Hours, Minutes: input.Minutes, Quality: input.Quality}
	if err := rc.records.UpdateSleep(c.GetUint("userID"), id, &record); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated"})
}

func (rc *RecordController) DeleteSleep(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.records.DeleteSleep(c.GetUint("userID"), id); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func (rc *RecordController) SleepHistory(c *gin.Context) {
	records, err := rc.records.SleepHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, sleepJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// ---------- Diet ----------

type DietInput struct {
	Date     string   `json:"date" binding:"required"`
	Calories int      `json:"calories" binding:"min=0"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Notes    string   `json:"notes"`
}

func dietJSON(r models.DietRecord) gin.H {
	return gin.H{
		"id":       r.ID,
		"date":     r.Date.Format(dateLayout),
		"calories": r.Calories,
		"protein":  r.Protein,
		"carbs":    r.Carbs,
		"fat":      r.Fat,
		"notes":    r.Notes,
	}
}

func (rc *RecordController) AddDiet(c *gin.Context) {
	var input DietInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.DietRecord{
		UserID: c.GetUint("userID"), Date: date,
		Calories: input.Calories, Protein: input.Protein, Carbs: input.Carbs, Fat: input.Fat,
		Notes: input.Notes,
	}
	if err := rc.records.AddDiet(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dietJSON(record))
}

func (rc *RecordController) UpdateDiet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input DietInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.DietRecord{
		Date: date, Calories: input.Calories,
		Protein: input.Protein, Carbs: input.Carbs, Fat: input.Fat, Notes: input.Notes,
	}
	if err := rc.records.UpdateDiet(c.GetUint("userID"), id, &record); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated"})
}

func (rc *RecordController) DeleteDiet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.records.DeleteDiet(c.GetUint("userID"), id); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func (rc *RecordController) DietHistory(c *gin.Context) {
	records, err := rc.records.DietHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, dietJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// ---------- Running ----------

type RunningInput struct {
	Date            string  `json:"date" binding:"required"`
	Distance        float64 `json:"distance" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	CaloriesBurned  *int    `json:"calories_burned"`
}

func runningJSON(r models.RunningRecord) gin.H {
	return gin.H{
		"id":               r.ID,
		"date":             r.Date.Format(dateLayout),
		"distance":         r.Distance,
		"duration_minutes": r.DurationMinutes,
		"calories_burned":  r.CaloriesBurned,
		"pace":             r.Pace(),
	}
}

func (rc *RecordController) AddRunning(c *gin.Context) {
	var input RunningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.RunningRecord{
		UserID: c.GetUint("userID"), Date: date,
		Distance: input.Distance, DurationMinutes: input.DurationMinutes, CaloriesBurned: input.CaloriesBurned,
	}
	if err := rc.records.AddRunning(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, runningJSON(record))
}

func (rc *RecordController) UpdateRunning(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input RunningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.RunningRecord{
		Date: date, Distance: input.Distance,
		DurationMinutes: input.DurationMinutes, CaloriesBurned: input.CaloriesBurned,
	}
	if err := rc.records.UpdateRunning(c.GetUint("userID"), id, &record); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated"})
}

func (rc *RecordController) DeleteRunning(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.records.DeleteRunning(c.GetUint("userID"), id); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func (rc *RecordController) RunningHistory(c *gin.Context) {
	records, err := rc.records.RunningHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, runningJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// ---------- Training ----------

type TrainingInput struct {
	Date            string   `json:"date" binding:"required"`
	ExerciseType    string   `json:"exercise_type" binding:"required"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Weight          *float64 `json:"weight"`
	DurationMinutes *int     `json:"duration_minutes"`
	CaloriesBurned  *int     `json:"calories_burned"`
	Notes           string   `json:"notes"`
}

func trainingJSON(r models.TrainingRecord) gin.H {
	return gin.H{
		"id":               r.ID,
		"date":             r.Date.Format(dateLayout),
		"exercise_type":    r.ExerciseType,
		"sets":             r.Sets,
		"reps":             r.Reps,
		"weight":           r.Weight,
		"duration_minutes": r.DurationMinutes,
		"calories_burned":  r.CaloriesBurned,
		"notes":            r.Notes,
	}
}

func (rc *RecordController) AddTraining(c *gin.Context) {
	var input TrainingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.TrainingRecord{
		UserID: c.GetUint("userID"), Date: date,
		ExerciseType: input.ExerciseType, Sets: input.Sets, Reps: input.Reps,
		Weight: input.Weight, DurationMinutes: input.DurationMinutes,
		CaloriesBurned: input.CaloriesBurned, Notes: input.Notes,
	}
	if err := rc.records.AddTraining(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, trainingJSON(record))
}

func (rc *RecordController) UpdateTraining(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input TrainingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.TrainingRecord{
		Date: date, ExerciseType: input.ExerciseType, Sets: input.Sets, Reps: input.Reps,
		Weight: input.Weight, DurationMinutes: input.DurationMinutes,
		CaloriesBurned: input.CaloriesBurned, Notes: input.Notes,
	}
	if err := rc.records.UpdateTraining(c.GetUint("userID"), id, &record); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated"})
}

func (rc *RecordController) DeleteTraining(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.records.DeleteTraining(c.GetUint("userID"), id); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func (rc *RecordController) TrainingHistory(c *gin.Context) {
	records, err := rc.records.TrainingHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, trainingJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// ---------- Mood ----------

type MoodInput struct {
	Date        string `json:"date" binding:"required"`
	Mood        string `json:"mood" binding:"required,oneof=terrible bad neutral good excellent"`
	StressLevel *int   `json:"stress_level" binding:"omitempty,min=1,max=10"`
	Notes       string `json:"notes"`
}

func moodJSON(r models.MoodRecord) gin.H {
	return gin.H{
		"id":           r.ID,
		"date":         r.Date.Format(dateLayout),
		"mood":         r.Mood,
		"stress_level": r.StressLevel,
		"notes":        r.Notes,
	}
}

func (rc *RecordController) AddMood(c *gin.Context) {
	var input MoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.MoodRecord{
		UserID: c.GetUint("userID"), Date: date,
		Mood: input.Mood, StressLevel: input.StressLevel, Notes: input.Notes,
	}
	if err := rc.records.AddMood(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, moodJSON(record))
}

func (rc *RecordController) UpdateMood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input MoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.MoodRecord{Date: date, Mood: input.Mood, StressLevel: input.StressLevel, Notes: input.Notes}
	if err := rc.records.UpdateMood(c.GetUint("userID"), id, &record); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated"})
}

func (rc *RecordController) DeleteMood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.records.DeleteMood(c.GetUint("userID"), id); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func (rc *RecordController) MoodHistory(c *gin.Context) {
	records, err := rc.records.MoodHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, moodJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// ---------- Weight ----------

type WeightInput struct {
	Date   string  `json:"date" binding:"required"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Notes  string  `json:"notes"`
}

func weightJSON(r models.WeightRecord) gin.H {
	return gin.H{
		"id":           r.ID,
		"date":         r.Date.Format(dateLayout),
		"weight":       r.Weight,
		"height":       r.Height,
		"bmi":          r.BMI(),
		"bmi_category": r.BMICategory(),
		"notes":        r.Notes,
	}
}

func (rc *RecordController) AddWeight(c *gin.Context) {
	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.WeightRecord{
		UserID: c.GetUint("userID"), Date: date,
		Weight: input.Weight, Height: input.Height, Notes: input.Notes,
	}
	if err := rc.records.AddWeight(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, weightJSON(record))
}

func (rc *RecordController) UpdateWeight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record := models.WeightRecord{Date: date, Weight: input.Weight, Height: input.Height, Notes: input.Notes}
	if err := rc.records.UpdateWeight(c.GetUint("userID"), id, &record); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated"})
}

func (rc *RecordController) DeleteWeight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.records.DeleteWeight(c.GetUint("userID"), id); err != nil {
		rc.respondWriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func (rc *RecordController) WeightHistory(c *gin.Context) {
	records, err := rc.records.WeightHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, weightJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}
