package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"devsa-hub/backend/internal/authctx"
	"devsa-hub/backend/internal/config"
	"devsa-hub/backend/internal/domain/accessrequest"
	"devsa-hub/backend/internal/domain/community"
	"devsa-hub/backend/internal/domain/event"
	"devsa-hub/backend/internal/domain/newsletter"
	"devsa-hub/backend/internal/domain/principal"
	"devsa-hub/backend/internal/domain/rsvp"
	"devsa-hub/backend/internal/domain/speaker"
	"devsa-hub/backend/internal/domain/stats"
	"devsa-hub/backend/internal/handlers"
	"devsa-hub/backend/internal/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Cfg              config.Config
	AuthClient       *auth.Client
	EventSvc         *event.Service
	CommunitySvc     *community.Service
	PrincipalSvc     *principal.Service
	RSVPSvc          *rsvp.Service
	NewsletterSvc    *newsletter.Service
	AccessRequestSvc *accessrequest.Service
	SpeakerSvc       *speaker.Service
	StatsSvc         *stats.Service
	Uploads          *handlers.Uploads
}

// publicEventView decorates an event with its derived phase and resolved
// hosts for the public pages.
type publicEventView struct {
	event.Event
	Phase event.Phase  `json:"phase"`
	Hosts []event.Host `json:"hosts"`
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// ===== Public site =====

	r.Get("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		events, err := d.EventSvc.ListPublic(r.Context())
		if err != nil {
			status, msg := mapEventError(err)
			Fail(w, status, msg)
			return
		}

		names, err := d.CommunitySvc.NamesByID(r.Context())
		if err != nil {
			status, msg := mapCommunityError(err)
			Fail(w, status, msg)
			return
		}

		now := time.Now().UTC()
		out := make([]publicEventView, 0, len(events))
		for _, e := range events {
			out = append(out, publicEventView{
				Event: e,
				Phase: e.PhaseAt(now),
				Hosts: event.ResolveHosts(e.CommunityIDs, names, e.CommunityName),
			})
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/events/{idOrSlug}", func(w http.ResponseWriter, r *http.Request) {
		e, err := d.EventSvc.GetPublic(r.Context(), chi.URLParam(r, "idOrSlug"))
		if err != nil {
			status, msg := mapEventError(err)
			Fail(w, status, msg)
			return
		}

		names, err := d.CommunitySvc.NamesByID(r.Context())
		if err != nil {
			status, msg := mapCommunityError(err)
			Fail(w, status, msg)
			return
		}

		now := time.Now().UTC()
		WriteJSON(w, 200, publicEventView{
			Event: *e,
			Phase: e.PhaseAt(now),
			Hosts: event.ResolveHosts(e.CommunityIDs, names, e.CommunityName),
		})
	})

	r.Get("/v1/communities", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.CommunitySvc.List(r.Context())
		if err != nil {
			status, msg := mapCommunityError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/communities/{communityId}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.CommunitySvc.Get(r.Context(), chi.URLParam(r, "communityId"))
		if err != nil {
			status, msg := mapCommunityError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Post("/v1/events/{idOrSlug}/rsvps", func(w http.ResponseWriter, r *http.Request) {
		var in rsvp.SubmitRSVPInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		in.Trim()

		out, err := d.RSVPSvc.Submit(r.Context(), chi.URLParam(r, "idOrSlug"), in, clientIP(r))
		if err != nil {
			status, msg := mapRSVPError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 201, out)
	})

	r.Post("/v1/newsletter/subscribe", func(w http.ResponseWriter, r *http.Request) {
		var in newsletter.SubscribeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}

		out, err := d.NewsletterSvc.Subscribe(r.Context(), in)
		if err != nil {
			status, msg := mapNewsletterError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 201, out)
	})

	r.Post("/v1/speakers", func(w http.ResponseWriter, r *http.Request) {
		var in speaker.SubmitInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		in.Trim()

		out, err := d.SpeakerSvc.Submit(r.Context(), in)
		if err != nil {
			status, msg := mapSpeakerError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 201, out)
	})

	r.Post("/v1/accessRequests", func(w http.ResponseWriter, r *http.Request) {
		var in accessrequest.SubmitRequestInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		in.Trim()

		out, err := d.AccessRequestSvc.Submit(r.Context(), in)
		if err != nil {
			status, msg := mapAccessRequestError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 201, out)
	})

	// ===== Dashboard (auth required) =====

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))
		pr.Use(middleware.WithPrincipal(d.PrincipalSvc))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())
			WriteJSON(w, 200, map[string]any{
				"email":       actor.Email,
				"role":        actor.Role,
				"communityId": actor.CommunityID,
			})
		})

		// ===== Events =====

		pr.Get("/v1/admin/events", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			p, err := d.EventSvc.Partition(r.Context(), actor, time.Now().UTC())
			if err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, p)
		})

		pr.Post("/v1/admin/events", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in event.CreateEventInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.EventSvc.Create(r.Context(), actor, in)
			if err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Put("/v1/admin/events/{eventId}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in event.UpdateEventInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.EventSvc.Update(r.Context(), actor, chi.URLParam(r, "eventId"), in)
			if err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/admin/events/{eventId}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			if err := d.EventSvc.Delete(r.Context(), actor, chi.URLParam(r, "eventId")); err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		// ===== RSVPs =====

		pr.Get("/v1/admin/rsvps", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())
			eventID := strings.TrimSpace(r.URL.Query().Get("eventId"))

			out, err := d.RSVPSvc.ListScoped(r.Context(), actor, eventID)
			if err != nil {
				status, msg := mapRSVPError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/admin/rsvps/{rsvpId}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			if err := d.RSVPSvc.Remove(r.Context(), actor, chi.URLParam(r, "rsvpId")); err != nil {
				status, msg := mapRSVPError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		// ===== Communities =====

		pr.Get("/v1/admin/communities", func(w http.ResponseWriter, r *http.Request) {
			mode, err := d.CommunitySvc.StoreMode(r.Context())
			if err != nil {
				status, msg := mapCommunityError(err)
				Fail(w, status, msg)
				return
			}

			out, err := d.CommunitySvc.List(r.Context())
			if err != nil {
				status, msg := mapCommunityError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"mode": mode, "communities": out})
		})

		pr.Post("/v1/admin/communities", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in community.CreateCommunityInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.CommunitySvc.Create(r.Context(), actor, in)
			if err != nil {
				status, msg := mapCommunityError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Put("/v1/admin/communities/{communityId}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in community.UpdateCommunityInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.CommunitySvc.Update(r.Context(), actor, chi.URLParam(r, "communityId"), in)
			if err != nil {
				status, msg := mapCommunityError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/admin/communities/{communityId}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			if err := d.CommunitySvc.Delete(r.Context(), actor, chi.URLParam(r, "communityId")); err != nil {
				status, msg := mapCommunityError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Post("/v1/admin/communities/migrate", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			migrated, err := d.CommunitySvc.MigrateStatic(r.Context(), actor)
			if err != nil {
				status, msg := mapCommunityError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "migrated": migrated})
		})

		// ===== Admins =====

		pr.Get("/v1/admin/admins", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			out, err := d.PrincipalSvc.List(r.Context(), actor)
			if err != nil {
				status, msg := mapPrincipalError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/admin/admins", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in principal.GrantInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.PrincipalSvc.Grant(r.Context(), actor, in)
			if err != nil {
				status, msg := mapPrincipalError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Put("/v1/admin/admins/{email}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in principal.UpdateInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.PrincipalSvc.Update(r.Context(), actor, chi.URLParam(r, "email"), in)
			if err != nil {
				status, msg := mapPrincipalError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/admin/admins/{email}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			if err := d.PrincipalSvc.Remove(r.Context(), actor, chi.URLParam(r, "email")); err != nil {
				status, msg := mapPrincipalError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		// ===== Access requests =====

		pr.Get("/v1/admin/accessRequests", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			out, err := d.AccessRequestSvc.List(r.Context(), actor)
			if err != nil {
				status, msg := mapAccessRequestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/admin/accessRequests/{requestId}/approve", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in accessrequest.ApproveInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.AccessRequestSvc.Approve(r.Context(), actor, chi.URLParam(r, "requestId"), in)
			if err != nil {
				status, msg := mapAccessRequestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/admin/accessRequests/{requestId}/reject", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			if err := d.AccessRequestSvc.Reject(r.Context(), actor, chi.URLParam(r, "requestId")); err != nil {
				status, msg := mapAccessRequestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		// ===== Newsletter =====

		pr.Get("/v1/admin/newsletter", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			out, err := d.NewsletterSvc.List(r.Context(), actor)
			if err != nil {
				status, msg := mapNewsletterError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/admin/newsletter/{email}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			if err := d.NewsletterSvc.Remove(r.Context(), actor, chi.URLParam(r, "email")); err != nil {
				status, msg := mapNewsletterError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Get("/v1/admin/devsaSubscribers", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			out, err := d.NewsletterSvc.ListDevSASubscribers(r.Context(), actor)
			if err != nil {
				status, msg := mapNewsletterError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Speakers =====

		pr.Get("/v1/admin/speakers", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			out, err := d.SpeakerSvc.List(r.Context(), actor)
			if err != nil {
				status, msg := mapSpeakerError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/admin/speakers/{submissionId}/status", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			var in struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.SpeakerSvc.SetStatus(r.Context(), actor, chi.URLParam(r, "submissionId"), strings.TrimSpace(in.Status))
			if err != nil {
				status, msg := mapSpeakerError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/admin/speakers/{submissionId}", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			if err := d.SpeakerSvc.Remove(r.Context(), actor, chi.URLParam(r, "submissionId")); err != nil {
				status, msg := mapSpeakerError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		// ===== Stats =====

		pr.Get("/v1/admin/stats", func(w http.ResponseWriter, r *http.Request) {
			actor := authctx.Actor(r.Context())

			out, err := d.StatsSvc.GetDashboardStats(r.Context(), actor, time.Now().UTC())
			if err != nil {
				status, msg := mapStatsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Uploads =====

		if d.Uploads != nil {
			pr.Post("/v1/uploads/signed-url", d.Uploads.CreateSignedUploadURL)
		}
	})

	return r
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func mapEventError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case event.IsErrUnauthorized(err):
		return 403, err.Error()
	case event.IsErrStatic(err):
		return 403, err.Error()
	case event.IsErrNotFound(err):
		return 404, err.Error()
	case event.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapCommunityError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case community.IsErrUnauthorized(err):
		return 403, err.Error()
	case community.IsErrStatic(err):
		return 403, err.Error()
	case community.IsErrNotFound(err):
		return 404, err.Error()
	case community.IsErrAlreadyExists(err):
		return 409, err.Error()
	case community.IsErrStoreReadOnly(err):
		return 409, err.Error()
	case community.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapPrincipalError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case principal.IsErrProtected(err):
		return 403, err.Error()
	case principal.IsErrForbidden(err):
		return 403, err.Error()
	case principal.IsErrUnauthorized(err):
		return 403, err.Error()
	case principal.IsErrNotFound(err):
		return 404, err.Error()
	case principal.IsErrAlreadyExists(err):
		return 409, err.Error()
	case principal.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapRSVPError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case rsvp.IsErrRegistrationClosed(err):
		return 409, err.Error()
	case rsvp.IsErrUnauthorized(err):
		return 403, err.Error()
	case rsvp.IsErrNotFound(err):
		return 404, err.Error()
	case rsvp.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapNewsletterError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case newsletter.IsErrUnauthorized(err):
		return 403, err.Error()
	case newsletter.IsErrNotFound(err):
		return 404, err.Error()
	case newsletter.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapAccessRequestError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case accessrequest.IsErrAlreadyResolved(err):
		return 409, err.Error()
	case accessrequest.IsErrUnauthorized(err):
		return 403, err.Error()
	case accessrequest.IsErrNotFound(err):
		return 404, err.Error()
	case accessrequest.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapSpeakerError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case speaker.IsErrUnauthorized(err):
		return 403, err.Error()
	case speaker.IsErrNotFound(err):
		return 404, err.Error()
	case speaker.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapStatsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case stats.IsErrUnauthorized(err):
		return 403, err.Error()
	case stats.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}
