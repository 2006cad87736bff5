package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"op3d/internal/catalog"
	"op3d/internal/convert"
	"op3d/internal/profile"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog unavailable: "+err.Error())
		return
	}
	total := 0
	for _, count := range stats {
		total += count
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"profiles": total,
		"by_kind":  stats,
	})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := catalog.Filter{
		Brand:         query.Get("brand"),
		Material:      query.Get("material"),
		Intent:        query.Get("intent"),
		Query:         query.Get("q"),
		FavoritesOnly: query.Get("favorites") == "true",
		Sort:          query.Get("sort"),
	}
	if kindValue := query.Get("kind"); kindValue != "" {
		kind, err := profile.ParseKind(kindValue)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Kind = kind
	}

	entries, err := s.store.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profiles": entries,
		"count":    len(entries),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc.Value())
}

func (s *Server) handleConvertProfile(w http.ResponseWriter, r *http.Request) {
	format, err := convert.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	doc, ok := s.lookupProfile(w, r)
	if !ok {
		return
	}

	rendered, err := convert.Convert(doc, format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+convert.FileName(doc, format)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rendered))
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context(), catalog.Filter{FavoritesOnly: true})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": entries,
		"count":     len(entries),
	})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := profileParams(w, r)
	if !ok {
		return
	}
	if err := s.store.AddFavorite(r.Context(), kind, id); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"kind": string(kind), "id": id, "favorite": "added"})
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := profileParams(w, r)
	if !ok {
		return
	}
	removed, err := s.store.RemoveFavorite(r.Context(), kind, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "not a favorite: "+string(kind)+"/"+id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"kind": string(kind), "id": id, "favorite": "removed"})
}

// profileParams extracts the kind and the slash-bearing profile id from the
// route. Profile ids look like "Prusament/PLA-Galaxy-Black", so the id is a
// wildcard segment.
func profileParams(w http.ResponseWriter, r *http.Request) (profile.Kind, string, bool) {
	kind, err := profile.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	id := chi.URLParam(r, "*")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing profile id")
		return "", "", false
	}
	return kind, id, true
}

func (s *Server) lookupProfile(w http.ResponseWriter, r *http.Request) (*profile.Document, bool) {
	kind, id, ok := profileParams(w, r)
	if !ok {
		return nil, false
	}
	doc, err := s.library.Find(kind, id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return doc, true
}

func contentTypeFor(format convert.Format) string {
	switch format {
	case convert.FormatOrca, convert.FormatJSON:
		return "application/json"
	case convert.FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}
