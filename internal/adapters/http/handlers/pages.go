package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jaimeman84/daily-quotes-app/internal/app"
	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
	"github.com/Jaimeman84/daily-quotes-app/internal/platform/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// PagesHandler renders the HTML pages of the app.
//
// Page handlers never fail the whole page on a dependency error: source or
// store failures are rendered as an inline message and the rest of the page
// stays usable.
type PagesHandler struct {
	quotes    *app.QuoteService
	favorites *app.FavoritesService
	templates *template.Template
}

// NewPagesHandler creates a pages handler with the embedded templates.
func NewPagesHandler(quotes *app.QuoteService, favorites *app.FavoritesService) (*PagesHandler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PagesHandler{
		quotes:    quotes,
		favorites: favorites,
		templates: templates,
	}, nil
}

// pageLink is one entry in the pagination strip.
type pageLink struct {
	Number  int
	URL     string
	Current bool
}

// homePage is the view model for the daily quote page.
type homePage struct {
	Quote        *domain.Quote
	ErrorMessage string
	FlashMessage string
}

// searchCategories are the quick search links shown on the search page.
var searchCategories = []string{
	"happiness", "inspirational", "life", "love", "philosophy", "success", "wisdom",
}

// searchPage is the view model for the search page.
type searchPage struct {
	Term         string
	Author       string
	Authors      []string
	Categories   []string
	Quotes       []domain.Quote
	TotalCount   int
	Pages        []pageLink
	Searched     bool
	ErrorMessage string
	FlashMessage string
}

// savedPage is the view model for the saved quotes page.
type savedPage struct {
	Saved        []domain.SavedQuote
	ErrorMessage string
	FlashMessage string
}

// Home handles GET /
// Shows one random quote with a save form; reloading fetches a new one.
func (h *PagesHandler) Home(c *gin.Context) {
	page := homePage{FlashMessage: flashMessage(c)}

	quote, err := h.quotes.Random(c.Request.Context())
	if err != nil {
		page.ErrorMessage = userMessage(err)
	} else {
		page.Quote = quote
	}

	h.render(c, "home.html", page)
}

// Search handles GET /search
// Renders the search form and, when a term or author is present, the
// matching quotes with save buttons and page links.
func (h *PagesHandler) Search(c *gin.Context) {
	term := c.Query("q")
	author := c.Query("author")

	page := searchPage{
		Term:         term,
		Author:       author,
		Categories:   searchCategories,
		FlashMessage: flashMessage(c),
	}

	// Author dropdown is best-effort: a failure leaves it empty
	// without blocking the search form.
	authors, err := h.quotes.Authors(c.Request.Context())
	if err != nil {
		logging.FromContext(c.Request.Context()).Warn("author list unavailable", "error", err)
	} else {
		page.Authors = authors
	}

	if term != "" || author != "" {
		page.Searched = true

		pageNumber, err := strconv.Atoi(c.Query("page"))
		if err != nil || pageNumber < 1 {
			pageNumber = 1
		}

		result, err := h.quotes.Search(c.Request.Context(), app.SearchParams{
			Term:   term,
			Author: author,
			Page:   pageNumber,
		})
		if err != nil {
			page.ErrorMessage = userMessage(err)
		} else {
			page.Quotes = result.Quotes
			page.TotalCount = result.TotalCount
			page.Pages = buildPageLinks(term, author, result.Page, result.TotalPages)
		}
	}

	h.render(c, "search.html", page)
}

// Saved handles GET /saved
// Lists every saved quote with its saved-at timestamp.
func (h *PagesHandler) Saved(c *gin.Context) {
	page := savedPage{FlashMessage: flashMessage(c)}

	saved, err := h.favorites.List(c.Request.Context())
	if err != nil {
		page.ErrorMessage = userMessage(err)
	} else {
		page.Saved = saved
	}

	h.render(c, "saved.html", page)
}

// SaveFromForm handles POST /favorites (HTML form).
// Saves the submitted quote and redirects back to the originating page with
// a status message; duplicates redirect with "already saved".
func (h *PagesHandler) SaveFromForm(c *gin.Context) {
	quote := &domain.Quote{
		ID:      c.PostForm("source_id"),
		Content: c.PostForm("content"),
		Author:  c.PostForm("author"),
	}

	target := safeRedirectTarget(c.PostForm("from"))

	alreadySaved, err := h.favorites.Save(c.Request.Context(), quote)

	var msg string

	switch {
	case err != nil:
		msg = userMessage(err)
	case alreadySaved:
		msg = "Quote already saved."
	default:
		msg = "Quote saved."
	}

	c.Redirect(http.StatusSeeOther, withFlash(target, msg))
}

// RegisterPageRoutes registers the HTML page routes on the engine.
func (h *PagesHandler) RegisterPageRoutes(engine *gin.Engine) {
	engine.GET("/", h.Home)
	engine.GET("/search", h.Search)
	engine.GET("/saved", h.Saved)
	engine.POST("/favorites", h.SaveFromForm)
}

// render executes the named template; a template failure is a plain 500
// since there is nothing left to render into.
func (h *PagesHandler) render(c *gin.Context, name string, data any) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")

	if err := h.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		logging.FromContext(c.Request.Context()).Error("rendering page", "template", name, "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// userMessage converts a domain error into page-friendly wording.
func userMessage(err error) string {
	switch {
	case domain.IsUnavailable(err):
		return "The quote source is unreachable right now. Please try again."
	case domain.IsBadResponse(err):
		return "The quote source returned something unexpected. Please try again."
	case domain.IsStorage(err):
		return "Saved quotes are unavailable right now. Please try again."
	case domain.IsValidation(err):
		return err.Error()
	default:
		return "Something went wrong. Please try again."
	}
}

// buildPageLinks produces the pagination strip for search results.
func buildPageLinks(term, author string, current, total int) []pageLink {
	if total <= 1 {
		return nil
	}

	links := make([]pageLink, 0, total)

	for n := 1; n <= total; n++ {
		q := url.Values{}
		if term != "" {
			q.Set("q", term)
		}
		if author != "" {
			q.Set("author", author)
		}
		q.Set("page", strconv.Itoa(n))

		links = append(links, pageLink{
			Number:  n,
			URL:     "/search?" + q.Encode(),
			Current: n == current,
		})
	}

	return links
}

// flashMessage reads the one-shot status message from the query string.
func flashMessage(c *gin.Context) string {
	return c.Query("msg")
}

// withFlash appends a status message to a redirect target.
func withFlash(target, msg string) string {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}

	q := u.Query()
	q.Set("msg", msg)
	u.RawQuery = q.Encode()

	return u.String()
}

// safeRedirectTarget keeps form redirects on-site.
func safeRedirectTarget(target string) string {
	if target == "" {
		return "/"
	}

	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}

	return u.String()
}
