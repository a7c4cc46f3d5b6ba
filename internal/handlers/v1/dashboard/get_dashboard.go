package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

// RecentEntry is one of the latest incomes or expenses.
type RecentEntry struct {
	ID          string `json:"id"`
	Kind        string `json:"kind" doc:"income or expense"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	Account     string `json:"account"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

// DashboardResponseBody summarizes the ledger.
type DashboardResponseBody struct {
	TotalBalance  string        `json:"totalBalance" doc:"Sum of every account balance"`
	TotalIncome   string        `json:"totalIncome" doc:"Sum of every income"`
	TotalExpenses string        `json:"totalExpenses" doc:"Sum of every expense"`
	Recent        []RecentEntry `json:"recent" doc:"Latest incomes and expenses, newest first"`
}

type GetDashboardInput struct{}

type GetDashboardOutput struct {
	Body DashboardResponseBody
}

type dashboardGetter interface {
	GetDashboard(ctx context.Context) (*service.Dashboard, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardGetter
}

func NewGetDashboardHandler(svc dashboardGetter) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Get the dashboard",
		Description: "Returns the total balance, income and expenses and the five most recent entries.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, _ *GetDashboardInput) (*GetDashboardOutput, error) {
	var dashboard *service.Dashboard
	err := logging.Timed(logging.GetLogData(ctx), "getDashboardMs", func() error {
		var err error
		dashboard, err = h.DashboardService.GetDashboard(ctx)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to build dashboard")
	}

	resp := DashboardResponseBody{
		TotalBalance:  params.FormatAmount(dashboard.TotalBalance),
		TotalIncome:   params.FormatAmount(dashboard.TotalIncome),
		TotalExpenses: params.FormatAmount(dashboard.TotalExpenses),
		Recent:        make([]RecentEntry, len(dashboard.Recent)),
	}
	for i, entry := range dashboard.Recent {
		resp.Recent[i] = RecentEntry{
			ID:          entry.ID.String(),
			Kind:        string(entry.Kind),
			Amount:      params.FormatAmount(entry.Amount),
			Description: entry.Description,
			Account:     entry.AccountName,
			Category:    entry.Category,
			Date:        params.FormatDate(entry.Date),
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		}
	}
	return &GetDashboardOutput{Body: resp}, nil
}
