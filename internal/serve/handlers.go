package serve

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	domainerr "implantsite/internal/domain/errors"
	"net/http"
	"strings"
	"time"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/healthz", s.handleHealth)
	r.Get("/dev/events", s.handleSSE)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/blog/", http.StatusFound)
	})
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{slug}", s.handlePost)
		r.Get("/{slug}/", s.handlePost)
	})

	r.NotFound(s.handleNotFound)
	return r
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		if r.URL.Path == "/dev/events" {
			return
		}
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"dur", time.Since(start),
			"req_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.List(time.Now())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	data, err := s.tpl.RenderList(r.Context(), page)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, data)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	page, err := s.pages.Post(slug)
	if errors.Is(err, domainerr.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	data, err := s.tpl.RenderPost(r.Context(), page)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, data)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.NotFound(r.URL.Path)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	data, err := s.tpl.RenderNotFound(r.Context(), page)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeHTML(w, http.StatusNotFound, data)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("render failed", "path", r.URL.Path, "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
