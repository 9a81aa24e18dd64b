// Package fixture concentra as listas estáticas carregadas uma única vez
// na inicialização. Nenhum outro pacote define dados sintéticos.
package fixture

import (
	"time"

	"github.com/siteguard/api/internal/directory"
	"github.com/siteguard/api/internal/geofence"
	"github.com/siteguard/api/internal/report"
	"github.com/siteguard/api/internal/session"
	"github.com/siteguard/api/internal/site"
)

// Geofences devolve as cercas cadastradas de fábrica.
func Geofences() []geofence.Geofence {
	return []geofence.Geofence{
		{ID: 1, Name: "Downtown Tower - Phase 2", Center: geofence.Point{Lat: 40.7589, Lng: -73.9851}, RadiusMeters: 200, Address: "350 5th Ave, New York, NY"},
		{ID: 2, Name: "Harbor Bridge Extension", Center: geofence.Point{Lat: 40.7489, Lng: -73.9680}, RadiusMeters: 300, Address: "Brooklyn Bridge, New York, NY"},
		{ID: 3, Name: "Riverside Complex", Center: geofence.Point{Lat: 40.7689, Lng: -73.9920}, RadiusMeters: 250, Address: "Riverside Dr, New York, NY"},
	}
}

// Sites devolve o catálogo de canteiros inspecionáveis. As geofences são
// copiadas por valor; o catálogo não acompanha o registro mutável.
func Sites() []site.Site {
	return []site.Site{
		{
			ID:      1,
			Name:    "Downtown Tower - Phase 2",
			Address: "350 5th Ave, New York, NY",
			Geofence: geofence.Geofence{
				ID: 1, Name: "Downtown Tower - Phase 2",
				Center: geofence.Point{Lat: 40.7589, Lng: -73.9851}, RadiusMeters: 200,
				Address: "350 5th Ave, New York, NY",
			},
		},
		{
			ID:      2,
			Name:    "Harbor Bridge Extension",
			Address: "Brooklyn Bridge, New York, NY",
			Geofence: geofence.Geofence{
				ID: 2, Name: "Harbor Bridge Extension",
				Center: geofence.Point{Lat: 40.7489, Lng: -73.9680}, RadiusMeters: 300,
				Address: "Brooklyn Bridge, New York, NY",
			},
		},
		{
			ID:      3,
			Name:    "Riverside Complex",
			Address: "Riverside Dr, New York, NY",
			Geofence: geofence.Geofence{
				ID: 3, Name: "Riverside Complex",
				Center: geofence.Point{Lat: 40.7689, Lng: -73.9920}, RadiusMeters: 250,
				Address: "Riverside Dr, New York, NY",
			},
		},
		{
			ID:      4,
			Name:    "Airport Expansion Wing C",
			Address: "JFK Airport Access Rd, NY",
			Geofence: geofence.Geofence{
				ID: 4, Name: "Airport Expansion Wing C",
				Center: geofence.Point{Lat: 40.7389, Lng: -73.9750}, RadiusMeters: 400,
				Address: "JFK Airport Access Rd, NY",
			},
		},
	}
}

// Users devolve a equipe cadastrada de fábrica.
func Users() []directory.User {
	return []directory.User{
		{ID: 1, Name: "John Smith", Email: "john.smith@siteguard.com", Role: session.RoleRepresentative, Status: "active"},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.j@siteguard.com", Role: session.RoleRepresentative, Status: "active"},
		{ID: 3, Name: "Mike Chen", Email: "mike.chen@siteguard.com", Role: session.RoleRepresentative, Status: "active"},
		{ID: 4, Name: "Emily Davis", Email: "emily.d@siteguard.com", Role: session.RoleManager, Status: "active"},
		{ID: 5, Name: "Robert Wilson", Email: "robert.w@siteguard.com", Role: session.RoleManager, Status: "active"},
		{ID: 6, Name: "Admin User", Email: "admin@siteguard.com", Role: session.RoleAdmin, Status: "active"},
	}
}

// Reports devolve o histórico inicial de inspeções.
func Reports() []report.Report {
	return []report.Report{
		{
			ID:        1,
			Site:      "Downtown Tower - Phase 2",
			Location:  "350 5th Ave, New York, NY",
			Date:      day(2025, time.September, 28),
			Inspector: "John Smith",
			Status:    report.StatusCompleted,
			Checklist: []report.ChecklistEntry{
				{Item: "Safety Equipment Present", Passed: true},
				{Item: "Site Properly Secured", Passed: true},
				{Item: "Materials Properly Stored", Passed: true},
				{Item: "Waste Management", Passed: true},
				{Item: "Equipment Operational", Passed: true},
			},
			Issues: []report.Issue{
				{Priority: "Medium", Description: "Damaged safety barrier near east entrance", Status: "Open"},
				{Priority: "Low", Description: "Missing signage on floor 3", Status: "In Progress"},
			},
			PhotoCount: 5,
			Notes:      "All major safety protocols are being followed. Minor maintenance issues have been logged and assigned to relevant teams.",
		},
		{ID: 2, Site: "Harbor Bridge Extension", Location: "Brooklyn Bridge, New York, NY", Date: day(2025, time.September, 27), Inspector: "Sarah Johnson", Status: report.StatusInProgress},
		{ID: 3, Site: "Riverside Complex", Location: "Riverside Dr, New York, NY", Date: day(2025, time.September, 27), Inspector: "Mike Chen", Status: report.StatusPending},
		{ID: 4, Site: "Airport Expansion Wing C", Location: "JFK Airport Access Rd, NY", Date: day(2025, time.September, 26), Inspector: "Emily Davis", Status: report.StatusOverdue},
		{ID: 5, Site: "Central Park Site A", Date: day(2025, time.September, 25), Inspector: "John Smith", Status: report.StatusCompleted},
		{ID: 6, Site: "Marina Bay Development", Date: day(2025, time.September, 24), Inspector: "Sarah Johnson", Status: report.StatusCompleted},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
