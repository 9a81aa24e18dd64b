package dashboard

import (
	"github.com/siteguard/api/internal/directory"
	"github.com/siteguard/api/internal/geofence"
	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/report"
	"github.com/siteguard/api/internal/session"
	"github.com/siteguard/api/internal/site"
)

// KPI é um indicador exibido no painel.
type KPI struct {
	Title string `json:"title"`
	Value int    `json:"value"`
}

// Overview é o painel único, parametrizado pelo conjunto de capacidades
// do perfil em vez de uma variante por papel.
type Overview struct {
	Role          string          `json:"role"`
	Capabilities  []policy.Action `json:"capabilities"`
	KPIs          []KPI           `json:"kpis"`
	RecentReports []report.Report `json:"recent_reports,omitempty"`
	TodaySites    []site.Site     `json:"today_sites,omitempty"`
}

// Service computa o painel a partir dos registros vivos.
type Service struct {
	catalog   *site.Catalog
	geofences *geofence.Registry
	reports   *report.Store
	users     *directory.Directory
}

// NewService cria o serviço do painel.
func NewService(catalog *site.Catalog, geofences *geofence.Registry, reports *report.Store, users *directory.Directory) *Service {
	return &Service{catalog: catalog, geofences: geofences, reports: reports, users: users}
}

// Overview monta o painel para o perfil informado.
func (s *Service) Overview(role session.Role) Overview {
	out := Overview{
		Role:         string(role),
		Capabilities: policy.Capabilities(role),
	}

	completed := 0
	openIssues := 0
	for _, r := range s.reports.List() {
		if r.Status == report.StatusCompleted {
			completed++
		}
		for _, issue := range r.Issues {
			if issue.Status == "Open" {
				openIssues++
			}
		}
	}

	out.KPIs = []KPI{
		{Title: "Active Sites", Value: s.catalog.Count()},
		{Title: "Completed Checks", Value: completed},
		{Title: "Open Issues", Value: openIssues},
	}
	if policy.Allows(role, policy.ManageUsers) {
		out.KPIs = append(out.KPIs, KPI{Title: "Active Users", Value: s.users.Count()})
	}

	if policy.Allows(role, policy.ViewAllReports) {
		out.RecentReports = recent(s.reports.List(), 5)
	}
	if policy.Allows(role, policy.SubmitInspection) {
		out.TodaySites = s.catalog.List()
	}

	return out
}

// recent devolve os últimos n relatórios, do mais novo para o mais velho.
func recent(reports []report.Report, n int) []report.Report {
	out := make([]report.Report, 0, n)
	for i := len(reports) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, reports[i])
	}
	return out
}
