package table

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Weekday names used by routines, indexed like time.Weekday.
var WeekdayNames = [7]string{"domingo", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}

// ValidWeekdayName reports whether name is one of WeekdayNames.
func ValidWeekdayName(name string) bool {
	for _, n := range WeekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// Routine is an activity scheduled on one weekday.
type Routine struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"titulo" db:"title"`
	Description string    `json:"descripcion,omitempty" db:"description"`
	Day         string    `json:"dia" db:"day"`
	Time        string    `json:"hora" db:"time_of_day"`
	Icon        string    `json:"icono" db:"icon"`
	ImageURL    string    `json:"imagenUrl,omitempty" db:"image_url"`
	Completed   bool      `json:"completada" db:"completed"`
	CreatedAt   time.Time `json:"fechaCreacion" db:"created_at"`
}

type RoutineWrite struct {
	Title       string
	Description string
	Day         string
	Time        string
	Icon        string
	ImageURL    string
	Completed   bool
}

// IRoutineTable defines the storage operations for routines.
type IRoutineTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Routine, error)
	// List returns routines ordered by time of day. An empty day returns all of them.
	List(ctx context.Context, day string) ([]*Routine, error)
	Insert(ctx context.Context, write *RoutineWrite) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, write *RoutineWrite) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
