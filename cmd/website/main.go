package main

import (
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/browse"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/configuration"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/fragments"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/mylist"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/prediction"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/sections"
	"github.com/kinetsulist/kinetsulist/pkg/backend"
	"github.com/kinetsulist/kinetsulist/pkg/database"
	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/kinetsulist/kinetsulist/pkg/services"
	"github.com/rfberaldo/sqlz"
)

var (
	Version string = "development"
	appName string = "kinetsulist"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	backendClient    backend.BackendClient
	browseService    services.BrowseServicer
	db               *sqlz.DB
	exportService    services.ExportServicer
	favoriteService  services.FavoriteServicer
	fragmentRenderer fragments.FragmentRenderer
	renderer         rendering.TemplateRenderer
	sessionService   sessions.Session[*models.Visitor]

	/* Controllers */
	browseController     browse.BrowseHandlers
	myListController     mylist.MyListHandlers
	predictionController prediction.PredictionHandlers
	sectionsController   sections.SectionsHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("backendURL", config.BackendURL),
		slog.Bool("prerenderRows", config.PrerenderRows),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services
	 */
	retrier.Retry(func() error {
		if db, err = database.Connect(config.DSN); err != nil {
			slog.Error("failed to connect to the database. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	if err = database.Migrate(db); err != nil {
		panic(err)
	}

	sessionService = newSessionService(config.CookieSecret, time.Duration(config.CookieMaxAgeDays)*24*time.Hour)

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	if fragmentRenderer, err = fragments.NewFragmentRenderer(); err != nil {
		panic(err)
	}

	backendClient = backend.NewClient(backend.ClientConfig{
		BaseURL: config.BackendURL,
		Timeout: time.Duration(config.BackendTimeoutSeconds) * time.Second,
	})

	browseService = services.NewBrowseService(services.BrowseServiceConfig{
		BackendClient:   backendClient,
		MaxFetchWorkers: config.MaxFetchWorkers,
	})

	favoriteService = services.NewFavoriteService(services.FavoriteServiceConfig{
		DB: db,
	})

	exportService = services.NewExportService()

	/*
	 * Setup controllers
	 */
	browseController = browse.NewBrowseController(browse.BrowseControllerConfig{
		BrowseService:   browseService,
		FavoriteService: favoriteService,
		Fragments:       fragmentRenderer,
		PrerenderRows:   config.PrerenderRows,
		Renderer:        renderer,
	})

	sectionsController = sections.NewSectionsController(sections.SectionsControllerConfig{
		BrowseService:   browseService,
		FavoriteService: favoriteService,
		Fragments:       fragmentRenderer,
		Renderer:        renderer,
	})

	predictionController = prediction.NewPredictionController(prediction.PredictionControllerConfig{
		BackendClient: backendClient,
		Fragments:     fragmentRenderer,
	})

	myListController = mylist.NewMyListController(mylist.MyListControllerConfig{
		ExportService:   exportService,
		FavoriteService: favoriteService,
		Fragments:       fragmentRenderer,
		Renderer:        renderer,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	visitorMiddleware := newVisitorMiddleware(
		sessionService,
		[]string{
			"/static",
			"/heartbeat",
		},
	)

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /", HandlerFunc: browseController.BrowsePage, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "GET /rows/{id}", HandlerFunc: browseController.Row, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "GET /secciones", HandlerFunc: sectionsController.SectionsPage, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "GET /secciones/{id}", HandlerFunc: sectionsController.SectionDetail, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "GET /predecir/{id}", HandlerFunc: predictionController.Predict, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "GET /mi-lista", HandlerFunc: myListController.MyListPage, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "POST /mi-lista", HandlerFunc: myListController.AddAction, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "GET /mi-lista/exportar", HandlerFunc: myListController.ExportAction, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}
