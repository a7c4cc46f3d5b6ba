package transfer

import (
	"time"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

// Transfer is the API response model for a transfer between two accounts.
type Transfer struct {
	ID                   string `json:"id" doc:"Transfer UUID"`
	Amount               string `json:"amount" doc:"Amount moved"`
	SourceAccountID      string `json:"sourceAccountId"`
	SourceName           string `json:"sourceName" doc:"Source account name, or 'Cuenta eliminada' when it no longer exists"`
	DestinationAccountID string `json:"destinationAccountId"`
	DestinationName      string `json:"destinationName" doc:"Destination account name, or 'Cuenta eliminada' when it no longer exists"`
	Description          string `json:"description,omitempty"`
	Date                 string `json:"date" doc:"Day of the transfer (YYYY-MM-DD)"`
	CreatedAt            string `json:"createdAt" doc:"Creation time (RFC 3339)"`
}

// TransferBody is the request body for creating or updating a transfer.
type TransferBody struct {
	Amount               string `json:"amount" minLength:"1" doc:"Amount as a positive whole number"`
	SourceAccountID      string `json:"sourceAccountId" format:"uuid" doc:"Account debited"`
	DestinationAccountID string `json:"destinationAccountId" format:"uuid" doc:"Account credited"`
	Description          string `json:"description,omitempty"`
	Date                 string `json:"date" format:"date" doc:"Day of the transfer (YYYY-MM-DD)"`
}

func parseTransferBody(body TransferBody) (service.TransferInput, error) {
	amount, err := params.Amount("amount", body.Amount)
	if err != nil {
		return service.TransferInput{}, err
	}
	source, err := params.ID(body.SourceAccountID)
	if err != nil {
		return service.TransferInput{}, err
	}
	destination, err := params.ID(body.DestinationAccountID)
	if err != nil {
		return service.TransferInput{}, err
	}
	date, err := params.Date("date", body.Date)
	if err != nil {
		return service.TransferInput{}, err
	}
	return service.TransferInput{
		Amount:               amount,
		SourceAccountID:      source,
		DestinationAccountID: destination,
		Description:          body.Description,
		Date:                 date,
	}, nil
}

func fromService(transfer service.Transfer) Transfer {
	return Transfer{
		ID:                   transfer.ID.String(),
		Amount:               params.FormatAmount(transfer.Amount),
		SourceAccountID:      transfer.SourceAccountID.String(),
		SourceName:           transfer.SourceAccountName,
		DestinationAccountID: transfer.DestinationAccountID.String(),
		DestinationName:      transfer.DestinationAccountName,
		Description:          transfer.Description,
		Date:                 params.FormatDate(transfer.Date),
		CreatedAt:            transfer.CreatedAt.Format(time.RFC3339),
	}
}
