package routine

import (
	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

// Routine is the API response model for a routine activity.
type Routine struct {
	ID          string `json:"id" doc:"Routine UUID"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Day         string `json:"day" doc:"Weekday name, domingo..sabado"`
	Time        string `json:"time" doc:"HH:MM"`
	Icon        string `json:"icon,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Completed   bool   `json:"completed"`
}

// RoutineBody is the request body for creating or updating a routine.
type RoutineBody struct {
	Title            string   `json:"title" minLength:"1"`
	Description      string   `json:"description,omitempty"`
	Days             []string `json:"days" minItems:"1" enum:"domingo,lunes,martes,miercoles,jueves,viernes,sabado" doc:"Weekdays, one routine is stored per day"`
	Time             string   `json:"time" pattern:"^[0-2][0-9]:[0-5][0-9]$" doc:"Time of day, HH:MM"`
	Icon             string   `json:"icon,omitempty"`
	Image            []byte   `json:"image,omitempty" doc:"Optional base64 encoded image"`
	ImageName        string   `json:"imageName,omitempty"`
	ImageContentType string   `json:"imageContentType,omitempty"`
}

func parseRoutineBody(body RoutineBody) service.RoutineInput {
	return service.RoutineInput{
		Title:       body.Title,
		Description: body.Description,
		Days:        body.Days,
		Time:        body.Time,
		Icon:        body.Icon,
		Image:       params.Image(body.Image, body.ImageName, body.ImageContentType),
	}
}

func fromService(routine service.Routine) Routine {
	return Routine{
		ID:          routine.ID.String(),
		Title:       routine.Title,
		Description: routine.Description,
		Day:         routine.Day,
		Time:        routine.Time,
		Icon:        routine.Icon,
		ImageURL:    routine.ImageURL,
		Completed:   routine.Completed,
	}
}
