package browse

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/fragments"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/viewmodels"
	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/kinetsulist/kinetsulist/pkg/services"
)

type BrowseHandlers interface {
	BrowsePage(w http.ResponseWriter, r *http.Request)
	Row(w http.ResponseWriter, r *http.Request)
}

type BrowseControllerConfig struct {
	BrowseService   services.BrowseServicer
	FavoriteService services.FavoriteServicer
	Fragments       fragments.FragmentRenderer
	PrerenderRows   bool
	Renderer        rendering.TemplateRenderer
}

type BrowseController struct {
	browseService   services.BrowseServicer
	favoriteService services.FavoriteServicer
	fragments       fragments.FragmentRenderer
	prerenderRows   bool
	renderer        rendering.TemplateRenderer
}

func NewBrowseController(config BrowseControllerConfig) BrowseController {
	return BrowseController{
		browseService:   config.BrowseService,
		favoriteService: config.FavoriteService,
		fragments:       config.Fragments,
		prerenderRows:   config.PrerenderRows,
		renderer:        config.Renderer,
	}
}

/*
GET /
*/
func (c BrowseController) BrowsePage(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		markup template.HTML
	)

	pageName := "pages/browse"

	viewData := viewmodels.BrowsePage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/browse.js"},
			},
		},
		UserID: viewmodels.GetUserID(r),
		Rows:   []template.HTML{},
	}

	rows := c.buildRows(r, viewData.UserID)

	for _, row := range rows {
		fragmentName := "row-skeleton"

		if row.Loaded {
			fragmentName = "row"
		}

		if markup, err = c.fragments.RenderHTML(fragmentName, row); err != nil {
			slog.Error("error rendering gallery row", "section", row.Section.ID, "error", err)
			viewData.IsError = true
			viewData.Message = "There was a problem rendering this page."
			continue
		}

		viewData.Rows = append(viewData.Rows, markup)
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
GET /rows/{id}
*/
func (c BrowseController) Row(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	userID := viewmodels.GetUserID(r)

	section, ok := catalog.FindGallery(id)

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "gallery not found")
		return
	}

	result := c.browseService.LoadRow(r.Context(), section, userID)

	if r.Context().Err() != nil {
		slog.Debug("row request went away before the backend answered", "section", section.ID)
		return
	}

	saved := c.savedKeys(r, result.Payload.Animes)
	row := viewmodels.NewLoadedRow(section, result.Payload.Animes, result.Err, saved, userID)

	c.fragments.Write(w, http.StatusOK, "row-content", row)
}

func (c BrowseController) buildRows(r *http.Request, userID string) []viewmodels.Row {
	galleries := catalog.Galleries()
	result := make([]viewmodels.Row, 0, len(galleries))

	if !c.prerenderRows {
		for _, section := range galleries {
			result = append(result, viewmodels.NewSkeletonRow(section, userID))
		}

		return result
	}

	for _, loaded := range c.browseService.LoadRows(r.Context(), galleries, userID) {
		saved := c.savedKeys(r, loaded.Payload.Animes)
		result = append(result, viewmodels.NewLoadedRow(loaded.Section, loaded.Payload.Animes, loaded.Err, saved, userID))
	}

	return result
}

func (c BrowseController) savedKeys(r *http.Request, animes []models.Anime) map[string]bool {
	visitor := viewmodels.GetVisitorFromContext(r)

	if visitor.IsAnonymous() || len(animes) == 0 {
		return map[string]bool{}
	}

	saved, err := c.favoriteService.Contains(visitor.ID, viewmodels.ListKeys(animes))

	if err != nil {
		slog.Error("error looking up saved animes", "visitorID", visitor.ID, "error", err)
		return map[string]bool{}
	}

	return saved
}
