package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/service"
)

// registerCatalog mounts the shared catalog routes for one kind. Create and
// update handlers are kind-specific since their field sets differ; list, get
// and both delete variants are generic.
func registerCatalog[T any, PT interface {
	*T
	domain.Entry
}](r chi.Router, s *Server, path string, svc *service.CatalogService[T, PT], create, update http.HandlerFunc) {
	r.Route("/"+path, func(r chi.Router) {
		r.Get("/", handleListCatalog(s, svc))
		r.Get("/{id}", handleGetCatalog(s, svc))
		r.With(s.requireAuth).Post("/", create)
		r.With(s.requireAuth).Patch("/{id}", update)
		r.With(s.requireAuth).Delete("/{id}", handleDeleteCatalog(s, svc))
		// Legacy delete variant used by older clients: PUT with {id} body.
		r.With(s.requireAuth).Put("/", handleLegacyDeleteCatalog(s, svc))
	})
}

// handleListCatalog returns all live entries, or one page when the caller
// sends page/size parameters.
func handleListCatalog[T any, PT interface {
	*T
	domain.Entry
}](s *Server, svc *service.CatalogService[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parsePageParams(r)
		if err != nil {
			response.HandleError(w, err, s.logger)
			return
		}

		if !params.Paged {
			entries, err := svc.List(r.Context())
			if err != nil {
				response.HandleError(w, err, s.logger)
				return
			}
			response.Success(w, entries, s.logger)
			return
		}

		page, err := svc.ListPage(r.Context(), params.Page, params.Size)
		if err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
		response.Success(w, page, s.logger)
	}
}

// handleGetCatalog returns a single live entry by ID.
func handleGetCatalog[T any, PT interface {
	*T
	domain.Entry
}](s *Server, svc *service.CatalogService[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
		response.Success(w, entry, s.logger)
	}
}

// handleDeleteCatalog soft-deletes an entry and returns the updated record.
func handleDeleteCatalog[T any, PT interface {
	*T
	domain.Entry
}](s *Server, svc *service.CatalogService[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
		response.WithMessage(w, deletedMessage(svc.Kind()), entry, s.logger)
	}
}

// legacyDeleteRequest is the body of the PUT delete variant.
type legacyDeleteRequest struct {
	ID string `json:"id" validate:"required"`
}

// handleLegacyDeleteCatalog soft-deletes the entry named in the request body.
func handleLegacyDeleteCatalog[T any, PT interface {
	*T
	domain.Entry
}](s *Server, svc *service.CatalogService[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req legacyDeleteRequest
		if err := decodeBody(r, &req); err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
		if err := service.ValidateStruct(&req); err != nil {
			response.HandleError(w, err, s.logger)
			return
		}

		entry, err := svc.Delete(r.Context(), req.ID)
		if err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
		response.WithMessage(w, deletedMessage(svc.Kind()), entry, s.logger)
	}
}

func updatedMessage(kind domain.Kind) string {
	return fmt.Sprintf("%s updated", kind)
}

func deletedMessage(kind domain.Kind) string {
	return fmt.Sprintf("%s deleted", kind)
}
