package server

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
)

// categoryView is a category with its keywords also joined for a single-line editor
type categoryView struct {
	Name         string   `json:"name"`
	Keywords     []string `json:"keywords"`
	KeywordsText string   `json:"keywords_text"`
	Enabled      bool     `json:"enabled"`
}

// categoryRequest is the body of add and update category calls, keywords are comma or line separated
type categoryRequest struct {
	Name     string  `json:"name"`
	Keywords *string `json:"keywords"`
	Enabled  *bool   `json:"enabled"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	st := s.settings.Settings()
	status := map[string]any{
		"status":     "ok",
		"version":    s.version,
		"time":       time.Now().UTC(),
		"enabled":    st.Enabled,
		"categories": len(s.settings.Catalog().Categories),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// classifyHandler explains which expression a text gets with the live catalog
func (s *Server) classifyHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.processor.Classify(req.Text))
}

// getCatalogHandler lists categories in match order
func (s *Server) getCatalogHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, catalogView(s.settings.Catalog()))
}

// addCategoryHandler appends a new category
func (s *Server) addCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	cat := expression.Category{Name: req.Name, Enabled: true}
	if req.Keywords != nil {
		cat.Keywords = expression.ParseKeywords(*req.Keywords)
	}
	if req.Enabled != nil {
		cat.Enabled = *req.Enabled
	}

	catalog, err := s.settings.UpdateCatalog(func(c *expression.Catalog) error { return c.AddCategory(cat) })
	if err != nil {
		renderError(w, r, err, catalogErrorCode(err))
		return
	}
	log.Printf("[INFO] category %q added", expression.NormalizeName(req.Name))
	renderJSON(w, r, http.StatusCreated, catalogView(catalog))
}

// updateCategoryHandler replaces keywords and/or the enabled flag of a category
func (s *Server) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.Keywords == nil && req.Enabled == nil {
		renderError(w, r, errors.New("nothing to update"), http.StatusBadRequest)
		return
	}

	catalog, err := s.settings.UpdateCatalog(func(c *expression.Catalog) error {
		if req.Keywords != nil {
			if err := c.SetKeywords(name, expression.ParseKeywords(*req.Keywords)); err != nil {
				return err
			}
		}
		if req.Enabled != nil {
			return c.SetEnabled(name, *req.Enabled)
		}
		return nil
	})
	if err != nil {
		renderError(w, r, err, catalogErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, catalogView(catalog))
}

// deleteCategoryHandler removes a category
func (s *Server) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	catalog, err := s.settings.UpdateCatalog(func(c *expression.Catalog) error { return c.RemoveCategory(name) })
	if err != nil {
		renderError(w, r, err, catalogErrorCode(err))
		return
	}
	log.Printf("[INFO] category %q removed", name)
	renderJSON(w, r, http.StatusOK, catalogView(catalog))
}

// addKeywordHandler appends a keyword to a category
func (s *Server) addKeywordHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req struct {
		Keyword string `json:"keyword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	catalog, err := s.settings.UpdateCatalog(func(c *expression.Catalog) error { return c.AddKeyword(name, req.Keyword) })
	if err != nil {
		renderError(w, r, err, catalogErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, catalogView(catalog))
}

// deleteKeywordHandler removes a keyword from a category
func (s *Server) deleteKeywordHandler(w http.ResponseWriter, r *http.Request) {
	name, keyword := r.PathValue("name"), r.PathValue("keyword")
	catalog, err := s.settings.UpdateCatalog(func(c *expression.Catalog) error { return c.RemoveKeyword(name, keyword) })
	if err != nil {
		renderError(w, r, err, catalogErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, catalogView(catalog))
}

// reorderHandler sets the category match order
func (s *Server) reorderHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Names []string `json:"names"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	catalog, err := s.settings.UpdateCatalog(func(c *expression.Catalog) error { return c.Reorder(req.Names) })
	if err != nil {
		renderError(w, r, err, catalogErrorCode(err))
		return
	}
	log.Printf("[INFO] categories reordered: %s", strings.Join(catalog.Names(), ", "))
	renderJSON(w, r, http.StatusOK, catalogView(catalog))
}

// getSettingsHandler returns current plugin settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.settings.Settings())
}

// updateSettingsHandler applies a partial settings update, omitted fields keep current values
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	st := s.settings.Settings()
	if err := decodeJSON(r, &st); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.settings.UpdateSettings(st))
}

// eventHandler processes a host event, responds with the presentation or 204 if nothing changes
func (s *Server) eventHandler(w http.ResponseWriter, r *http.Request) {
	var ev domain.Event
	if err := decodeJSON(r, &ev); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	res, err := s.processor.Handle(r.Context(), ev)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEvent) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to process %s event: %v", ev.Type, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// presentationHandler rebuilds a message overlay with current settings
func (s *Server) presentationHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.processor.Presentation(r.Context(), r.PathValue("chat"), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// assignmentsHandler lists expressions stored for a chat
func (s *Server) assignmentsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.processor.Assignments(r.Context(), r.PathValue("chat"))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// clearChatHandler drops expressions stored for a chat
func (s *Server) clearChatHandler(w http.ResponseWriter, r *http.Request) {
	n, err := s.processor.ClearChat(r.Context(), r.PathValue("chat"))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int64{"deleted": n})
}

func catalogView(c *expression.Catalog) []categoryView {
	if c == nil {
		return []categoryView{}
	}
	res := make([]categoryView, 0, len(c.Categories))
	for _, cat := range c.Categories {
		res = append(res, categoryView{
			Name:         cat.Name,
			Keywords:     append([]string{}, cat.Keywords...),
			KeywordsText: expression.FormatKeywords(cat.Keywords),
			Enabled:      cat.Enabled,
		})
	}
	return res
}

// catalogErrorCode maps catalog edit errors to http status
func catalogErrorCode(err error) int {
	if errors.Is(err, expression.ErrCategoryNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

