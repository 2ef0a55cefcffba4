package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one logged meal. OccurredOn and OccurredAt are whatever the owner
// typed; RecordedAt is assigned by the server on insert and drives the
// adherence statistics.
type Meal struct {
	ID          string    `gorm:"type:text;primaryKey" json:"id"`
	UserID      string    `gorm:"type:text;index;not null" json:"userId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	OccurredOn  string    `gorm:"column:occurred_on" json:"date"`
	OccurredAt  string    `gorm:"column:occurred_at" json:"time"`
	InDiet      bool      `gorm:"column:in_diet;not null" json:"isInDiet"`
	RecordedAt  time.Time `gorm:"column:recorded_at;not null" json:"recordedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.RecordedAt.IsZero() {
		m.RecordedAt = time.Now().UTC()
	}
	return nil
}

// MealFields are the owner-editable columns of a meal. The owner itself is
// not among them.
type MealFields struct {
	Name        string
	Description string
	OccurredOn  string
	OccurredAt  string
	InDiet      bool
}

// Columns maps the fields onto their column names for a conditional update.
// in_diet is always present so that false is written too.
func (f MealFields) Columns() map[string]interface{} {
	return map[string]interface{}{
		"name":        f.Name,
		"description": f.Description,
		"occurred_on": f.OccurredOn,
		"occurred_at": f.OccurredAt,
		"in_diet":     f.InDiet,
		"updated_at":  time.Now().UTC(),
	}
}
