package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/siteguard/api/internal/config"
	"github.com/siteguard/api/internal/dashboard"
	"github.com/siteguard/api/internal/directory"
	"github.com/siteguard/api/internal/fixture"
	"github.com/siteguard/api/internal/geofence"
	httpmiddleware "github.com/siteguard/api/internal/http/middleware"
	"github.com/siteguard/api/internal/inspection"
	"github.com/siteguard/api/internal/notify"
	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/report"
	"github.com/siteguard/api/internal/session"
	"github.com/siteguard/api/internal/site"
)

// Handler agrega as dependências das rotas.
type Handler struct {
	cfg           *config.Config
	redis         *redis.Client
	sessions      *session.Store
	catalog       *site.Catalog
	geofences     *geofence.Registry
	inspections   *inspection.Service
	reports       *report.Store
	users         *directory.Directory
	dashboard     *dashboard.Service
	notifier      notify.Notifier
	publicLimiter *httpmiddleware.RateLimiter
}

// NewRouter monta os registros a partir das fixtures e devolve o
// roteador configurado.
func NewRouter(cfg *config.Config, redisClient *redis.Client) http.Handler {
	catalog := site.NewCatalog(fixture.Sites())
	geofences := geofence.NewRegistry(fixture.Geofences())
	reports := report.NewStore(fixture.Reports())
	users := directory.NewDirectory(fixture.Users())

	var notifier notify.Notifier = notify.LogNotifier{}
	if webhook := notify.NewWebhookNotifier(cfg.NotifyWebhookURL); webhook != nil {
		notifier = webhook
	}

	h := &Handler{
		cfg:           cfg,
		redis:         redisClient,
		sessions:      session.NewStore(session.NewRedisSlot(redisClient, cfg.RoleSlotKey)),
		catalog:       catalog,
		geofences:     geofences,
		inspections:   inspection.NewService(catalog, reports),
		reports:       reports,
		users:         users,
		dashboard:     dashboard.NewService(catalog, geofences, reports, users),
		notifier:      notifier,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
	}

	return h.routes()
}

func (h *Handler) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(h.cfg.AllowOrigins))
	r.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/login", h.Login)
		auth.Post("/logout", h.Logout)
		auth.With(httpmiddleware.Role(h.sessions)).Get("/session", h.Session)
	})

	r.Group(func(private chi.Router) {
		private.Use(httpmiddleware.Role(h.sessions))

		private.With(httpmiddleware.RequireRole).Get("/dashboard", h.Dashboard)

		private.Route("/sites", func(sr chi.Router) {
			sr.Get("/", h.ListSites)
			sr.Get("/{siteID}", h.GetSite)
			sr.Post("/{siteID}/verify-location", h.VerifyLocation)
		})

		private.Route("/geofences", func(gr chi.Router) {
			gr.Get("/", h.ListGeofences)
			gr.Post("/", h.CreateGeofence)
			gr.Delete("/{geofenceID}", h.DeleteGeofence)
		})

		private.Route("/inspections", func(ir chi.Router) {
			ir.Post("/", h.StartInspection)
			ir.Route("/{draftID}", func(dr chi.Router) {
				dr.Get("/", h.GetInspection)
				dr.Delete("/", h.DiscardInspection)
				dr.Post("/site", h.SelectInspectionSite)
				dr.Post("/checklist/{itemKey}", h.ToggleChecklistItem)
				dr.Post("/photos", h.AddInspectionPhoto)
				dr.Delete("/photos/{index}", h.RemoveInspectionPhoto)
				dr.Post("/issues", h.AddInspectionIssue)
				dr.Delete("/issues/{index}", h.RemoveInspectionIssue)
				dr.Post("/submit", h.SubmitInspection)
			})
		})

		private.Route("/reports", func(rr chi.Router) {
			rr.Use(httpmiddleware.RequireAction(policy.ViewAllReports))
			rr.Get("/", h.ListReports)
			rr.Get("/{reportID}", h.GetReport)
		})

		private.Route("/users", func(ur chi.Router) {
			ur.With(httpmiddleware.RequireAction(policy.ManageUsers)).Get("/", h.ListUsers)
			ur.Post("/", h.CreateUser)
			ur.Patch("/{userID}", h.UpdateUser)
			ur.Delete("/{userID}", h.DeleteUser)
		})
	})

	return r
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida a conexão com o Redis (slot de perfil).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "dependências indisponíveis", map[string]any{
				"redis": err.Error(),
			})
			return
		}
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

// Login seleciona o perfil ativo e grava o slot durável.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	role, ok := session.ParseRole(payload.Role)
	if !ok || !role.IsSet() {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "perfil desconhecido", nil)
		return
	}

	if err := h.sessions.Set(r.Context(), role); err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível gravar o perfil", nil)
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "Logged in",
		"You are signed in as "+role.Title()+".")

	WriteJSON(w, http.StatusOK, map[string]any{
		"role":         role,
		"capabilities": policy.Capabilities(role),
	})
}

// Logout limpa o perfil ativo e o slot durável.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context()); err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível limpar o perfil", nil)
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "Logged out successfully",
		"You have been logged out of your account.")

	WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Session devolve o perfil resolvido para a requisição.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	role := httpmiddleware.GetRole(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"role":         role,
		"title":        role.Title(),
		"capabilities": policy.Capabilities(role),
	})
}

// Dashboard devolve o painel parametrizado pelas capacidades do perfil.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	role := httpmiddleware.GetRole(r.Context())
	WriteJSON(w, http.StatusOK, h.dashboard.Overview(role))
}

// notify entrega a notificação sem consumir o resultado.
func (h *Handler) notify(ctx context.Context, kind, title, description string) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.Notify(ctx, notify.Message{Kind: kind, Title: title, Description: description}); err != nil {
		log.Warn().Err(err).Str("title", title).Msg("notificação não entregue")
	}
}
