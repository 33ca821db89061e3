package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ITECH-Group8/WellLog/models"

	"gorm.io/gorm"
)

// Section titles of the health-data dump, in export order.
const (
	sectionSteps    = "STEPS RECORDS"
	sectionSleep    = "SLEEP RECORDS"
	sectionDiet     = "DIET RECORDS"
	sectionRunning  = "RUNNING RECORDS"
	sectionTraining = "TRAINING RECORDS"
	sectionMood     = "MOOD RECORDS"
	sectionWeight   = "WEIGHT RECORDS"
)

var sectionHeaders = map[string][]string{
	sectionSteps:    {"date", "steps_count"},
	sectionSleep:    {"date", "hours", "minutes", "quality"},
	sectionDiet:     {"date", "calories", "protein", "carbs", "fat", "notes"},
	sectionRunning:  {"date", "distance", "duration_minutes", "calories_burned"},
	sectionTraining: {"date", "exercise_type", "sets", "reps", "weight", "duration_minutes", "calories_burned", "notes"},
	sectionMood:     {"date", "mood", "stress_level", "notes"},
	sectionWeight:   {"date", "weight", "height", "notes"},
}

// ExportService dumps and restores a user's health data as one CSV-ish
// text file: per-metric sections, each a title line, a header row, data
// rows and a blank separator line.
type ExportService struct {
	db      *gorm.DB
	records *RecordService
}

func NewExportService(db *gorm.DB, records *RecordService) *ExportService {
	return &ExportService{db: db, records: records}
}

// Export writes the full dump for one user.
func (s *ExportService) Export(userID uint, w io.Writer) error {
	cw := csv.NewWriter(w)

	writeSection := func(title string, rows [][]string) error {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
		if err := cw.Write(sectionHeaders[title]); err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	steps, err := s.records.StepsHistory(userID)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(steps))
	for _, r := range steps {
		rows = append(rows, []string{day(r.Date), strconv.Itoa(r.StepsCount)})
	}
	if err := writeSection(sectionSteps, rows); err != nil {
		return err
	}

	sleep, err := s.records.SleepHistory(userID)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, r := range sleep {
		rows = append(rows, []string{day(r.Date), strconv.Itoa(r.Hours), strconv.Itoa(r.Minutes), r.Quality})
	}
	if err := writeSection(sectionSleep, rows); err != nil {
		return err
	}

	diet, err := s.records.DietHistory(userID)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, r := range diet {
		rows = append(rows, []string{
			day(r.Date), strconv.Itoa(r.Calories),
			floatPtr(r.Protein), floatPtr(r.Carbs), floatPtr(r.Fat), r.Notes,
		})
	}
	if err := writeSection(sectionDiet, rows); err != nil {
		return err
	}

	running, err := s.records.RunningHistory(userID)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, r := range running {
		rows = append(rows, []string{
			day(r.Date), formatFloat(r.Distance), strconv.Itoa(r.DurationMinutes), intPtr(r.CaloriesBurned),
		})
	}
	if err := writeSection(sectionRunning, rows); err != nil {
		return err
	}

	training, err := s.records.TrainingHistory(userID)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, r := range training {
		rows = append(rows, []string{
			day(r.Date), r.ExerciseType, intPtr(r.Sets), intPtr(r.Reps),
			floatPtr(r.Weight), intPtr(r.DurationMinutes), intPtr(r.CaloriesBurned), r.Notes,
		})
	}
	if err := writeSection(sectionTraining, rows); err != nil {
		return err
	}

	mood, err := s.records.MoodHistory(userID)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, r := range mood {
		rows = append(rows, []string{day(r.Date), r.Mood, intPtr(r.StressLevel), r.Notes})
	}
	if err := writeSection(sectionMood, rows); err != nil {
		return err
	}

	weight, err := s.records.WeightHistory(userID)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, r := range weight {
		rows = append(rows, []string{day(r.Date), formatFloat(r.Weight), formatFloat(r.Height), r.Notes})
	}
	return writeSection(sectionWeight, rows)
}

// ImportStats reports how many rows each section contributed.
type ImportStats struct {
	Imported map[string]int `json:"imported"`
	Skipped  int            `json:"skipped"`
}

// Import re-parses an export dump. Single-per-day metrics upsert by
// (user, date); training rows are insert-only since several per day are
// legal. Unparseable rows are counted and skipped, not fatal. One CSV
// reader consumes the whole stream so quoted fields spanning physical
// lines (multi-line notes) stay intact.
func (s *ExportService) Import(userID uint, r io.Reader) (*ImportStats, error) {
	stats := &ImportStats{Imported: map[string]int{}}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	section := ""
	expectHeader := false
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				stats.Skipped++
				continue
			}
			return nil, err
		}

		if len(fields) == 1 {
			if _, ok := sectionHeaders[fields[0]]; ok {
				section = fields[0]
				expectHeader = true
				continue
			}
		}
		if section == "" {
			stats.Skipped++
			continue
		}
		if expectHeader {
			// header row of the current section
			expectHeader = false
			continue
		}

		if err := s.importRow(userID, section, fields); err != nil {
			stats.Skipped++
			continue
		}
		stats.Imported[section]++
	}
	return stats, nil
}

func (s *ExportService) importRow(userID uint, section string, f []string) error {
	if len(f) != len(sectionHeaders[section]) {
		return fmt.Errorf("expected %d fields, got %d", len(sectionHeaders[section]), len(f))
	}
	date, err := time.ParseInLocation("2006-01-02", f[0], time.Local)
	if err != nil {
		return err
	}

	switch section {
	case sectionSteps:
		count, err := strconv.Atoi(f[1])
		if err != nil {
			return err
		}
		return s.records.AddSteps(&models.StepsRecord{UserID: userID, Date: date, StepsCount: count})

	case sectionSleep:
		hours, err := strconv.Atoi(f[1])
		if err != nil {
			return err
		}
		minutes, err := strconv.Atoi(f[2])
		if err != nil {
			return err
		}
		return s.records.AddSleep(&models.SleepRecord{
			UserID: userID, Date: date, Hours: hours, Minutes: minutes, Quality: f[3],
		})

	case sectionDiet:
		calories, err := strconv.Atoi(f[1])
		if err != nil {
			return err
		}
		return s.records.AddDiet(&models.DietRecord{
			UserID: userID, Date: date, Calories: calories,
			Protein: parseFloatPtr(f[2]), Carbs: parseFloatPtr(f[3]), Fat: parseFloatPtr(f[4]),
			Notes: f[5],
		})

	case sectionRunning:
		distance, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return err
		}
		duration, err := strconv.Atoi(f[2])
		if err != nil {
			return err
		}
		return s.records.AddRunning(&models.RunningRecord{
			UserID: userID, Date: date, Distance: distance,
			DurationMinutes: duration, CaloriesBurned: parseIntPtr(f[3]),
		})

	case sectionTraining:
		return s.records.AddTraining(&models.TrainingRecord{
			UserID: userID, Date: date, ExerciseType: f[1],
			Sets: parseIntPtr(f[2]), Reps: parseIntPtr(f[3]), Weight: parseFloatPtr(f[4]),
			DurationMinutes: parseIntPtr(f[5]), CaloriesBurned: parseIntPtr(f[6]),
			Notes: f[7],
		})

	case sectionMood:
		return s.records.AddMood(&models.MoodRecord{
			UserID: userID, Date: date, Mood: f[1],
			StressLevel: parseIntPtr(f[2]), Notes: f[3],
		})

	case sectionWeight:
		weight, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return err
		}
		height, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return err
		}
		return s.records.AddWeight(&models.WeightRecord{
			UserID: userID, Date: date, Weight: weight, Height: height, Notes: f[3],
		})
	}
	return fmt.Errorf("unknown section %q", section)
}

func day(t time.Time) string { return t.Format("2006-01-02") }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func floatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func intPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}
	return nil
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	return nil
}
