package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/genre"
	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/service"
)

// createBookRequest is the POST /api/book body.
type createBookRequest struct {
	Title         string     `json:"title" validate:"required,max=512"`
	Author        string     `json:"author" validate:"required,max=256"`
	Publisher     string     `json:"publisher" validate:"max=256"`
	Thumbnail     string     `json:"thumbnail" validate:"max=1024"`
	Genre         genre.List `json:"genre"`
	CommentID     string     `json:"commentId"`
	IsMasterpiece bool       `json:"isMasterpiece"`
}

// updateBookRequest is the PATCH /api/book/{id} body. Pointer fields separate
// "absent" from "set to zero": only fields present in the request overwrite
// stored values.
type updateBookRequest struct {
	Title         *string     `json:"title"`
	Author        *string     `json:"author"`
	Publisher     *string     `json:"publisher"`
	Thumbnail     *string     `json:"thumbnail"`
	Genre         *genre.List `json:"genre"`
	CommentID     *string     `json:"commentId"`
	IsMasterpiece *bool       `json:"isMasterpiece"`
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := service.ValidateStruct(&req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	book := &domain.Book{
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		Thumbnail: req.Thumbnail,
	}
	book.Genre = req.Genre
	book.CommentID = req.CommentID
	book.IsMasterpiece = req.IsMasterpiece

	created, err := s.bookService.Create(r.Context(), book)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, created, s.logger)
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var req updateBookRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	updated, err := s.bookService.Update(r.Context(), chi.URLParam(r, "id"), func(b *domain.Book) {
		if req.Title != nil {
			b.Title = *req.Title
		}
		if req.Author != nil {
			b.Author = *req.Author
		}
		if req.Publisher != nil {
			b.Publisher = *req.Publisher
		}
		if req.Thumbnail != nil {
			b.Thumbnail = *req.Thumbnail
		}
		if req.Genre != nil {
			b.Genre = *req.Genre
		}
		if req.CommentID != nil {
			b.CommentID = *req.CommentID
		}
		if req.IsMasterpiece != nil {
			b.IsMasterpiece = *req.IsMasterpiece
		}
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.WithMessage(w, updatedMessage(domain.KindBook), updated, s.logger)
}
