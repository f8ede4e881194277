package mylist

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/fragments"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/viewmodels"
	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/kinetsulist/kinetsulist/pkg/services"
)

type MyListHandlers interface {
	AddAction(w http.ResponseWriter, r *http.Request)
	MyListPage(w http.ResponseWriter, r *http.Request)
	ExportAction(w http.ResponseWriter, r *http.Request)
}

type MyListControllerConfig struct {
	ExportService   services.ExportServicer
	FavoriteService services.FavoriteServicer
	Fragments       fragments.FragmentRenderer
	Renderer        rendering.TemplateRenderer
}

type MyListController struct {
	exportService   services.ExportServicer
	favoriteService services.FavoriteServicer
	fragments       fragments.FragmentRenderer
	renderer        rendering.TemplateRenderer
}

func NewMyListController(config MyListControllerConfig) MyListController {
	return MyListController{
		exportService:   config.ExportService,
		favoriteService: config.FavoriteService,
		fragments:       config.Fragments,
		renderer:        config.Renderer,
	}
}

/*
POST /mi-lista
*/
func (c MyListController) AddAction(w http.ResponseWriter, r *http.Request) {
	var (
		err   error
		added bool
	)

	visitor := viewmodels.GetVisitorFromContext(r)
	animeID := httphelpers.GetFromRequest[string](r, "id")
	title := httphelpers.GetFromRequest[string](r, "titulo")

	if animeID == "" {
		animeID = title
	}

	if animeID == "" {
		httphelpers.WriteText(w, http.StatusBadRequest, "anime ID is required")
		return
	}

	if visitor.IsAnonymous() {
		httphelpers.WriteText(w, http.StatusUnauthorized, "no visitor session")
		return
	}

	if added, err = c.favoriteService.Add(visitor.ID, animeID, title); err != nil {
		slog.Error("error saving anime to list", "visitorID", visitor.ID, "animeID", animeID, "error", err)
		httphelpers.TextInternalServerError(w, "Error saving to your list")
		return
	}

	slog.Info("anime saved to list", "visitorID", visitor.ID, "animeID", animeID, "added", added)
	c.fragments.Write(w, http.StatusOK, "saved-button", nil)
}

/*
GET /mi-lista
*/
func (c MyListController) MyListPage(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		favorites []models.Favorite
	)

	pageName := "pages/my-list"
	visitor := viewmodels.GetVisitorFromContext(r)

	viewData := viewmodels.MyListPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		Favorites: []models.Favorite{},
	}

	if favorites, err = c.favoriteService.List(visitor.ID); err != nil {
		slog.Error("error listing saved animes", "visitorID", visitor.ID, "error", err)
		viewData.IsError = true
		viewData.Message = "No pudimos cargar tu lista."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	viewData.Favorites = favorites
	c.renderer.Render(pageName, viewData, w)
}

/*
GET /mi-lista/exportar
*/
func (c MyListController) ExportAction(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		favorites []models.Favorite
	)

	visitor := viewmodels.GetVisitorFromContext(r)

	if favorites, err = c.favoriteService.List(visitor.ID); err != nil {
		slog.Error("error listing saved animes for export", "visitorID", visitor.ID, "error", err)
		httphelpers.TextInternalServerError(w, "Error exporting your list")
		return
	}

	fileName := fmt.Sprintf("mi-lista-%s.xlsx", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))

	if err = c.exportService.WriteFavorites(w, favorites); err != nil {
		slog.Error("error writing list export", "visitorID", visitor.ID, "error", err)
		return
	}

	slog.Info("list exported", "visitorID", visitor.ID, "count", len(favorites))
}
