package sections

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/fragments"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/viewmodels"
	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/services"
)

type SectionsHandlers interface {
	SectionsPage(w http.ResponseWriter, r *http.Request)
	SectionDetail(w http.ResponseWriter, r *http.Request)
}

type SectionsControllerConfig struct {
	BrowseService   services.BrowseServicer
	FavoriteService services.FavoriteServicer
	Fragments       fragments.FragmentRenderer
	Renderer        rendering.TemplateRenderer
}

type SectionsController struct {
	browseService   services.BrowseServicer
	favoriteService services.FavoriteServicer
	fragments       fragments.FragmentRenderer
	renderer        rendering.TemplateRenderer
}

func NewSectionsController(config SectionsControllerConfig) SectionsController {
	return SectionsController{
		browseService:   config.BrowseService,
		favoriteService: config.FavoriteService,
		fragments:       config.Fragments,
		renderer:        config.Renderer,
	}
}

/*
GET /secciones
*/
func (c SectionsController) SectionsPage(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		markup template.HTML
	)

	viewData := viewmodels.SectionsPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/sections.js"},
			},
		},
		UserID: viewmodels.GetUserID(r),
		Cards:  []template.HTML{},
	}

	for _, card := range viewmodels.NewSectionCards(catalog.Categories(), viewData.UserID) {
		if markup, err = c.fragments.RenderHTML("section-card", card); err != nil {
			slog.Error("error rendering section card", "section", card.Section.ID, "error", err)
			viewData.IsError = true
			viewData.Message = "There was a problem rendering this page."
			continue
		}

		viewData.Cards = append(viewData.Cards, markup)
	}

	c.renderer.Render("pages/sections", viewData, w)
}

/*
GET /secciones/{id}
*/
func (c SectionsController) SectionDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	userID := viewmodels.GetUserID(r)
	genre := httphelpers.GetFromRequest[string](r, "genero")

	section, ok := catalog.FindCategory(id)

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "section not found")
		return
	}

	result := c.browseService.LoadRow(r.Context(), section, userID)

	/*
	 * A newer click replaced this request. Its response would never be
	 * swapped in, so don't bother rendering it.
	 */
	if r.Context().Err() != nil {
		slog.Debug("section request replaced before the backend answered", "section", section.ID)
		return
	}

	saved := map[string]bool{}
	visitor := viewmodels.GetVisitorFromContext(r)

	if !visitor.IsAnonymous() && len(result.Payload.Animes) > 0 {
		var err error

		if saved, err = c.favoriteService.Contains(visitor.ID, viewmodels.ListKeys(result.Payload.Animes)); err != nil {
			slog.Error("error looking up saved animes", "visitorID", visitor.ID, "error", err)
			saved = map[string]bool{}
		}
	}

	detail := viewmodels.NewSectionDetail(section, result.Payload, result.Err, saved, userID, genre)
	c.fragments.Write(w, http.StatusOK, "section-detail", detail)
}
