package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dig-it-all-from-digital/Plauntie/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrReminderNotFound is returned when no reminder matches the given
// (id, user id) pair. A reminder belonging to another user is treated the
// same as a missing one.
var ErrReminderNotFound = errors.New("reminder not found")

// DefaultReminderHorizonDays is the look-ahead window for listing upcoming
// reminders.
const DefaultReminderHorizonDays = 7

// Notifier delivers a best-effort notification to all of a user's
// registered channels. Implementations must not block the caller.
type Notifier interface {
	NotifyUser(userID, title, body string)
}

var reminderVerbs = map[string]string{
	models.ReminderWatering:    "water",
	models.ReminderFertilizing: "fertilize",
	models.ReminderRepotting:   "repot",
}

// ReminderService owns the reminder lifecycle: the initial pair created with
// a plant, completion, and chained rescheduling. It holds no state of its
// own between calls; everything lives in the store.
type ReminderService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewReminderService(db *gorm.DB, notifier Notifier) *ReminderService {
	return &ReminderService{db: db, notifier: notifier}
}

// CreateInitialReminders schedules the watering and fertilizing reminders
// for a newly added plant. Due dates count from now, using the plant's
// configured intervals. Repotting has no schedule and gets no reminder.
func (s *ReminderService) CreateInitialReminders(plant *models.UserPlant) (*models.Reminder, *models.Reminder, error) {
	now := time.Now().UTC()

	watering := &models.Reminder{
		ID:            uuid.NewString(),
		UserID:        plant.UserID,
		PlantID:       plant.ID,
		PlantNickname: plant.Nickname,
		ReminderType:  models.ReminderWatering,
		DueDate:       now.AddDate(0, 0, plant.WateringFrequencyDays),
		CreatedAt:     now,
	}
	fertilizing := &models.Reminder{
		ID:            uuid.NewString(),
		UserID:        plant.UserID,
		PlantID:       plant.ID,
		PlantNickname: plant.Nickname,
		ReminderType:  models.ReminderFertilizing,
		DueDate:       now.AddDate(0, 0, plant.FertilizingFrequencyDays),
		CreatedAt:     now,
	}

	if err := s.db.Create([]*models.Reminder{watering, fertilizing}).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create reminders: %w", err)
	}

	s.notifyScheduled(watering)
	s.notifyScheduled(fertilizing)

	return watering, fertilizing, nil
}

// CompleteReminder marks the reminder as done, stamps the plant's matching
// last-care timestamp and schedules the successor reminder of the same type.
// The steps after the completion update are not transactional: a failure
// partway leaves the reminder completed without the cascade applied.
func (s *ReminderService) CompleteReminder(userID, reminderID string) error {
	res := s.db.Model(&models.Reminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Update("completed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReminderNotFound
	}

	var reminder models.Reminder
	if err := s.db.Where("id = ?", reminderID).First(&reminder).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	if field := careField(reminder.ReminderType); field != "" {
		if err := s.db.Model(&models.UserPlant{}).
			Where("id = ?", reminder.PlantID).
			Update(field, now).Error; err != nil {
			return err
		}
	}

	var plant models.UserPlant
	err := s.db.Where("id = ?", reminder.PlantID).First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Plant is gone; the reminder stays completed and no successor is
		// scheduled.
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.CreateNextReminder(&plant, reminder.ReminderType)
	return err
}

// CreateNextReminder schedules the follow-up reminder after a completion.
// The due date counts from now, not from the missed due date, so late
// completions do not compound. Repotting and unknown types are a no-op.
func (s *ReminderService) CreateNextReminder(plant *models.UserPlant, reminderType string) (*models.Reminder, error) {
	now := time.Now().UTC()

	var due time.Time
	switch reminderType {
	case models.ReminderWatering:
		due = now.AddDate(0, 0, plant.WateringFrequencyDays)
	case models.ReminderFertilizing:
		due = now.AddDate(0, 0, plant.FertilizingFrequencyDays)
	default:
		return nil, nil
	}

	reminder := &models.Reminder{
		ID:            uuid.NewString(),
		UserID:        plant.UserID,
		PlantID:       plant.ID,
		PlantNickname: plant.Nickname,
		ReminderType:  reminderType,
		DueDate:       due,
		CreatedAt:     now,
	}
	if err := s.db.Create(reminder).Error; err != nil {
		return nil, fmt.Errorf("failed to create next reminder: %w", err)
	}

	s.notifyScheduled(reminder)

	return reminder, nil
}

// ListActiveReminders returns the user's uncompleted reminders due within
// the horizon. Order follows the store default.
func (s *ReminderService) ListActiveReminders(userID string, horizonDays int) ([]models.Reminder, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultReminderHorizonDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, horizonDays)

	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ? AND completed = ? AND due_date <= ?", userID, false, cutoff).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// careField maps a reminder type to the UserPlant column it stamps on
// completion. The mapping covers repotting even though nothing schedules
// repotting reminders.
func careField(reminderType string) string {
	switch reminderType {
	case models.ReminderWatering:
		return "last_watered"
	case models.ReminderFertilizing:
		return "last_fertilized"
	case models.ReminderRepotting:
		return "last_repotted"
	}
	return ""
}

func (s *ReminderService) notifyScheduled(r *models.Reminder) {
	if s.notifier == nil {
		return
	}
	verb := reminderVerbs[r.ReminderType]
	body := fmt.Sprintf("Time to %s %s on %s", verb, r.PlantNickname, r.DueDate.Format("Jan 2"))
	s.notifier.NotifyUser(r.UserID, "Plauntie", body)
}
