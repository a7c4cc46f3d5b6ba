// Package entry serves incomes, expenses and investments. The kind path
// segment selects which of the three collections a request works on.
package entry

import (
	"time"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

// Entry is the API response model for an entry.
type Entry struct {
	ID          string `json:"id" doc:"Entry UUID"`
	Kind        string `json:"kind" doc:"income, expense or investment"`
	Amount      string `json:"amount" doc:"Amount as a positive whole number"`
	Description string `json:"description,omitempty"`
	Account     string `json:"account" doc:"Name of the account the entry is booked against"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date" doc:"Day of the entry (YYYY-MM-DD)"`
	ImageURL    string `json:"imageUrl,omitempty" doc:"Public URL of the attached image"`
	CreatedAt   string `json:"createdAt" doc:"Creation time (RFC 3339)"`
}

// EntryBody is the request body for creating or updating an entry.
type EntryBody struct {
	Amount           string `json:"amount" minLength:"1" doc:"Amount as a positive whole number, e.g. '1500'"`
	Description      string `json:"description,omitempty"`
	Account          string `json:"account" minLength:"1" doc:"Account name"`
	Category         string `json:"category,omitempty"`
	Date             string `json:"date" format:"date" doc:"Day of the entry (YYYY-MM-DD)"`
	Image            []byte `json:"image,omitempty" doc:"Optional base64 encoded image"`
	ImageName        string `json:"imageName,omitempty" doc:"File name of the image"`
	ImageContentType string `json:"imageContentType,omitempty" doc:"MIME type of the image"`
}

func parseEntryBody(body EntryBody) (service.EntryInput, error) {
	amount, err := params.Amount("amount", body.Amount)
	if err != nil {
		return service.EntryInput{}, err
	}
	date, err := params.Date("date", body.Date)
	if err != nil {
		return service.EntryInput{}, err
	}
	return service.EntryInput{
		Amount:      amount,
		Description: body.Description,
		AccountName: body.Account,
		Category:    body.Category,
		Date:        date,
		Image:       params.Image(body.Image, body.ImageName, body.ImageContentType),
	}, nil
}

func fromService(entry service.Entry) Entry {
	return Entry{
		ID:          entry.ID.String(),
		Kind:        string(entry.Kind),
		Amount:      params.FormatAmount(entry.Amount),
		Description: entry.Description,
		Account:     entry.AccountName,
		Category:    entry.Category,
		Date:        params.FormatDate(entry.Date),
		ImageURL:    entry.ImageURL,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
}
