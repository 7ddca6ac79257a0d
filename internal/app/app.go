package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/slts2025/subhalaxmiteleservices/config"
	"github.com/slts2025/subhalaxmiteleservices/internal/adapter/catalogsource"
	"github.com/slts2025/subhalaxmiteleservices/internal/adapter/httphandler"
	"github.com/slts2025/subhalaxmiteleservices/internal/adapter/kafka"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/service"
	"github.com/slts2025/subhalaxmiteleservices/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	cartSerde  schema.Serde
	cartEvents kafka.CartEventsProducer
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	cartEventsSS := app.cfg.Broker.Topics.CartEvents + "-value"
	cartSerde, err := schema.NewSerdeCartEventV1(
		ctx,
		schema.SubjectOpt(cartEventsSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.cartSerde = cartSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	cartEvents, err := kafka.NewCartEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.CartEvents,
		),
		kafka.ProducerEncoderOpt(app.cartSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.cartEvents = cartEvents
}

func (app *App) initCoreService() {
	src := catalogsource.New(
		app.cfg.Catalog.SourceURL, app.cfg.Catalog.FetchTimeout,
	)
	store := service.NewCatalogStore(src)
	renderer := service.NewRenderer(app.cfg.Catalog.PlaceholderImage)

	app.service = service.New(
		store,
		app.cartEvents,
		renderer,
		app.cfg.Featured.TopPerBrand,
		app.cfg.Featured.SlideSize,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterStorefront(
		mux, app.service, app.service, app.service, app.cfg.Filter.MaxPrice,
	)

	handler := httphandler.AllowJSON(mux)
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.cartEvents.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
