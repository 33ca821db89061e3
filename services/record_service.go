package services

import (
	"errors"
	"time"

	"github.com/ITECH-Group8/WellLog/models"

	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordService owns the typed health-metric rows and the per-user goal.
type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

// DB exposes the handle for collaborators built on the same store.
func (s *RecordService) DB() *gorm.DB { return s.db }

// Day truncates t to local midnight. All record dates are stored this way
// so that (user, date) upserts and date-window queries line up.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *RecordService) updateOwned(userID, id uint, record any) error {
	var n int64
	if err := s.db.Model(record).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return s.db.Model(record).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(record).Error
}

func (s *RecordService) deleteOwned(userID, id uint, model any) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ---------- Steps ----------

func (s *RecordService) AddSteps(r *models.StepsRecord) error {
	r.Date = Day(r.Date)
	return s.db.
		Where("user_id = ? AND date = ?", r.UserID, r.Date).
		Assign(*r).
		FirstOrCreate(r).Error
}

func (s *RecordService) UpdateSteps(userID, id uint, r *models.StepsRecord) error {
	r.Date = Day(r.Date)
	return s.updateOwned(userID, id, r)
}

func (s *RecordService) DeleteSteps(userID, id uint) error {
	return s.deleteOwned(userID, id, &models.StepsRecord{})
}

func (s *RecordService) StepsHistory(userID uint) ([]models.StepsRecord, error) {
	var out []models.StepsRecord
	err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&out).Error
	return out, err
}

// StepsSince returns the user's steps records with date >= since, newest first.
func (s *RecordService) StepsSince(userID uint, since time.Time) ([]models.StepsRecord, error) {
	var out []models.StepsRecord
	err := s.db.Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date desc").Find(&out).Error
	return out, err
}

// ---------- Sleep ----------

func (s *RecordService) AddSleep(r *models.SleepRecord) error {
	r.Date = Day(r.Date)
	return s.db.
		Where("user_id = ? AND date = ?", r.UserID, r.Date).
		Assign(*r).
		FirstOrCreate(r).Error
}

func (s *RecordService) UpdateSleep(userID, id uint, r *models.SleepRecord) error {
	r.Date = Day(r.Date)
	return s.updateOwned(userID, id, r)
}

func (s *RecordService) DeleteSleep(userID, id uint) error {
	return s.deleteOwned(userID, id, &models.SleepRecord{})
}

func (s *RecordService) SleepHistory(userID uint) ([]models.SleepRecord, error) {
	var out []models.SleepRecord
	err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&out).Error
	return out, err
}

func (s *RecordService) SleepSince(userID uint, since time.Time) ([]models.SleepRecord, error) {
	var out []models.SleepRecord
	err := s.db.Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date desc").Find(&out).Error
	return out, err
}

// ---------- Diet ----------

func (s *RecordService) AddDiet(r *models.DietRecord) error {
	r.Date = Day(r.Date)
	return s.db.
		Where("user_id = ? AND date = ?", r.UserID, r.Date).
		Assign(*r).
		FirstOrCreate(r).Error
}

func (s *RecordService) UpdateDiet(userID, id uint, r *models.DietRecord) error {
	r.Date = Day(r.Date)
	return s.updateOwned(userID, id, r)
}

func (s *RecordService) DeleteDiet(userID, id uint) error {
	return s.deleteOwned(userID, id, &models.DietRecord{})
}

func (s *RecordService) DietHistory(userID uint) ([]models.DietRecord, error) {
	var out []models.DietRecord
	err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&out).Error
	return out, err
}

func (s *RecordService) DietSince(userID uint, since time.Time) ([]models.DietRecord, error) {
	var out []models.DietRecord
	err := s.db.Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date desc").Find(&out).Error
	return out, err
}

// ---------- Running ----------

func (s *RecordService) AddRunning(r *models.RunningRecord) error {
	r.Date = Day(r.Date)
	return s.db.
		Where("user_id = ? AND date = ?", r.UserID, r.Date).
		Assign(*r).
		FirstOrCreate(r).Error
}

func (s *RecordService) UpdateRunning(userID, id uint, r *models.RunningRecord) error {
	r.Date = Day(r.Date)
	return s.updateOwned(userID, id, r)
}

func (s *RecordService) DeleteRunning(userID, id uint) error {
	return s.deleteOwned(userID, id, &models.RunningRecord{})
}

func (s *RecordService) RunningHistory(userID uint) ([]models.RunningRecord, error) {
	var out []models.RunningRecord
	err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&out).Error
	return out, err
}

func (s *RecordService) RunningSince(userID uint, since time.Time) ([]models.RunningRecord, error) {
	var out []models.RunningRecord
	err := s.db.Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date desc").Find(&out).Error
	return out, err
}

// ---------- Training (multiple entries per day allowed) ----------

func (s *RecordService) AddTraining(r *models.TrainingRecord) error {
	r.Date = Day(r.Date)
	return s.db.Create(r).Error
}

func (s *RecordService) UpdateTraining(userID, id uint, r *models.TrainingRecord) error {
	r.Date = Day(r.Date)
	return s.updateOwned(userID, id, r)
}

func (s *RecordService) DeleteTraining(userID, id uint) error {
	return s.deleteOwned(userID, id, &models.TrainingRecord{})
}

func (s *RecordService) TrainingHistory(userID uint) ([]models.TrainingRecord, error) {
	var out []models.TrainingRecord
	err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&out).Error
	return out, err
}

func (s *RecordService) TrainingSince(userID uint, since time.Time) ([]models.TrainingRecord, error) {
	var out []models.TrainingRecord
	err := s.db.Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date desc").Find(&out).Error
	return out, err
}

// ---------- Mood ----------

func (s *RecordService) AddMood(r *models.MoodRecord) error {
	r.Date = Day(r.Date)
	return s.db.
		Where("user_id = ? AND date = ?", r.UserID, r.Date).
		Assign(*r).
		FirstOrCreate(r).Error
}

func (s *RecordService) UpdateMood(userID, id uint, r *models.MoodRecord) error {
	r.Date = Day(r.Date)
	return s.updateOwned(userID, id, r)
}

func (s *RecordService) DeleteMood(userID, id uint) error {
	return s.deleteOwned(userID, id, &models.MoodRecord{})
}

func (s *RecordService) MoodHistory(userID uint) ([]models.MoodRecord, error) {
	var out []models.MoodRecord
	err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&out).Error
	return out, err
}

func (s *RecordService) MoodSince(userID uint, since time.Time) ([]models.MoodRecord, error) {
	var out []models.MoodRecord
	err := s.db.Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date desc").Find(&out).Error
	return out, err
}

// ---------- Weight ----------

func (s *RecordService) AddWeight(r *models.WeightRecord) error {
	r.Date = Day(r.Date)
	return s.db.
		Where("user_id = ? AND date = ?", r.UserID, r.Date).
		Assign(*r).
		FirstOrCreate(r).Error
}

func (s *RecordService) UpdateWeight(userID, id uint, r *models.WeightRecord) error {
	r.Date = Day(r.Date)
	return s.updateOwned(userID, id, r)
}

func (s *RecordService) DeleteWeight(userID, id uint) error {
	return s.deleteOwned(userID, id, &models.WeightRecord{})
}

func (s *RecordService) WeightHistory(userID uint) ([]models.WeightRecord, error) {
	var out []models.WeightRecord
	err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&out).Error
	return out, err
}

func (s *RecordService) WeightSince(userID uint, since time.Time) ([]models.WeightRecord, error) {
	var out []models.WeightRecord
	err := s.db.Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date desc").Find(&out).Error
	return out, err
}

// ---------- Goals ----------

// Goal returns the user's goal, or nil when none is set.
func (s *RecordService) Goal(userID uint) (*models.HealthGoal, error) {
	var g models.HealthGoal
	if err := s.db.Where("user_id = ?", userID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

// UpsertGoal creates or replaces the single goal row for the user.
func (s *RecordService) UpsertGoal(userID uint, g *models.HealthGoal) error {
	var existing models.HealthGoal
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g.UserID = userID
		return s.db.Create(g).Error
	}
	if err != nil {
		return err
	}

	g.ID = existing.ID
	g.UserID = userID
	g.CreatedAt = existing.CreatedAt
	return s.db.Save(g).Error
}
