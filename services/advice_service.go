package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ITECH-Group8/WellLog/config"
	"github.com/ITECH-Group8/WellLog/models"

	"gorm.io/gorm"
)

// adviceWindowDays is the trailing aggregation window.
const adviceWindowDays = 30

// maxAdvicePerUser rows are retained; older rows are pruned on insert.
const maxAdvicePerUser = 5

// AdviceOutcome is the terminal state of one generation request.
type AdviceOutcome int

const (
	AdviceOK AdviceOutcome = iota
	AdviceTimedOut
	AdviceAPIError
	AdviceUnexpected
)

// AdviceResult is what the endpoint renders. Detail is for the server
// log only; it never reaches the client.
type AdviceResult struct {
	Outcome AdviceOutcome
	Advice  string
	Detail  string
}

type AdviceService struct {
	db      *gorm.DB
	records *RecordService
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewAdviceService(db *gorm.DB, records *RecordService, cfg config.AIConfig) *AdviceService {
	return &AdviceService{
		db:      db,
		records: records,
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// Generate runs the full pipeline: aggregate the last 30 days, build the
// prompt, call the chat-completion API and persist the result. Every
// failure collapses into a non-OK outcome; it never returns an error.
func (s *AdviceService) Generate(ctx context.Context, user models.User) AdviceResult {
	since := Day(time.Now().AddDate(0, 0, -adviceWindowDays))

	running, err := s.records.RunningSince(user.ID, since)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch running: %v", err)}
	}
	sleep, err := s.records.SleepSince(user.ID, since)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch sleep: %v", err)}
	}
	steps, err := s.records.StepsSince(user.ID, since)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch steps: %v", err)}
	}
	diet, err := s.records.DietSince(user.ID, since)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch diet: %v", err)}
	}
	mood, err := s.records.MoodSince(user.ID, since)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch mood: %v", err)}
	}
	training, err := s.records.TrainingSince(user.ID, since)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch training: %v", err)}
	}
	weight, err := s.records.WeightSince(user.ID, since)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch weight: %v", err)}
	}

	goal, err := s.records.Goal(user.ID)
	if err != nil {
		return AdviceResult{Outcome: AdviceUnexpected, Detail: fmt.Sprintf("fetch goal: %v", err)}
	}

	stats := ComputeStats(running, sleep, steps, diet, mood, training, weight)
	achievements := Achievements(stats, goal)
	prompt := BuildAdvicePrompt(stats, goal, achievements, user)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		var netErr net.Error
		switch {
		case errors.As(err, &netErr) && netErr.Timeout(),
			errors.Is(err, context.DeadlineExceeded):
			return AdviceResult{Outcome: AdviceTimedOut, Detail: err.Error()}
		default:
			return AdviceResult{Outcome: AdviceAPIError, Detail: err.Error()}
		}
	}

	formatted := formatParagraphs(text)

	// Persistence failure must not cost the user their advice.
	if err := s.SaveAdvice(user.ID, formatted); err != nil {
		slog.Error("failed to save advice", "user", user.ID, "err", err)
	}

	return AdviceResult{Outcome: AdviceOK, Advice: formatted}
}

// complete calls the chat-completion endpoint with the fixed system
// message and returns the raw generated text.
func (s *AdviceService) complete(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": adviceSystemMessage},
			{"role": "user", "content": prompt},
		},
		"temperature": 1.0,
		"max_tokens":  2000,
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion call: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", errors.New("empty chat completion response")
	}
	return result.Choices[0].Message.Content, nil
}

// formatParagraphs splits the generated text on blank lines and wraps
// each paragraph in <p> tags for direct rendering.
func formatParagraphs(text string) string {
	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(para)
		b.WriteString("</p>")
	}
	return b.String()
}

// SaveAdvice inserts the advice row, then prunes everything beyond the
// five most recent for that user.
func (s *AdviceService) SaveAdvice(userID uint, content string) error {
	advice := models.HealthAdvice{UserID: userID, Content: content}
	if err := s.db.Create(&advice).Error; err != nil {
		return err
	}

	var keep []uint
	if err := s.db.Model(&models.HealthAdvice{}).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(maxAdvicePerUser).
		Pluck("id", &keep).Error; err != nil {
		return err
	}

	return s.db.
		Where("user_id = ? AND id NOT IN ?", userID, keep).
		Delete(&models.HealthAdvice{}).Error
}

// Latest returns the newest stored advice, or nil when none exists.
func (s *AdviceService) Latest(userID uint) (*models.HealthAdvice, error) {
	var advice models.HealthAdvice
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		First(&advice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &advice, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
