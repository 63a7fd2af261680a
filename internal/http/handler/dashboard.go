package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/emerice12-oss/Exit-Dapp/internal/core"
)

//go:embed templates/*.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type dashboardData struct {
	State    core.DashboardState
	Activity []core.ActivityEntry
}

// HandleDashboard renders the single-page vault dashboard with the
// current session state and activity log.
func (h *VaultHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	data := dashboardData{
		State:    h.vault.Snapshot(),
		Activity: h.vault.Activity(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		h.logs.Errorw("failed to render dashboard",
			"error", err,
			"handler", Dashboard,
			"request_id", requestId)
	}
}
