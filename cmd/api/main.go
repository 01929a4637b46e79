package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pos-ledger/internal/application/auth"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	infraexcel "github.com/jhoicas/pos-ledger/internal/infrastructure/excel"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/legacy"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/pos-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/pos-ledger/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/pos-ledger/internal/interfaces/http"
	"github.com/jhoicas/pos-ledger/pkg/config"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// backend fuente del snapshot, destino de las escrituras y feed de cambios.
type backend struct {
	snapshots repository.SnapshotRepository
	applier   repository.IntentApplier
	feed      repository.ChangeFeed
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Str("carts", cfg.Store.CartBackend).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("backend de persistencia")
	}
	defer be.close()

	carts, closeCarts, err := openCarts(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de carritos")
	}
	defer closeCarts()

	// Snapshot: carga inicial y refresco en cada cambio notificado
	holder := pos.NewSnapshotHolder(be.snapshots, log.Component("snapshot"))
	if err := holder.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del snapshot")
	}
	go func() {
		if err := holder.Watch(ctx, be.feed); err != nil {
			log.Error().Err(err).Msg("watcher de cambios finalizado")
		}
	}()

	core := pos.Core{
		Snapshots: holder,
		Applier:   be.applier,
		Log:       log.Component("pos"),
		Clock:     time.Now,
		IDs:       ledger.NewID,
		Region:    cfg.Shop.Region,
	}

	// PDF: recibos, tickets y reporte del período
	var logo []byte
	if cfg.Shop.LogoPath != "" {
		if logo, err = infrapdf.LoadLogo(cfg.Shop.LogoPath); err != nil {
			log.Warn().Err(err).Str("path", cfg.Shop.LogoPath).Msg("logo no disponible, se imprime sin logo")
		}
	}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Shop{
		Name:     cfg.Shop.Name,
		Address:  cfg.Shop.Address,
		Phone:    cfg.Shop.Phone,
		Currency: cfg.Shop.Currency,
		Footer:   cfg.Shop.Footer,
		Locale:   cfg.Shop.Locale,
	}, logo)
	workbook := infraexcel.NewWorkbookExporter(cfg.Shop.RTL)

	authUC, err := auth.NewAuthUseCase([]auth.Passcode{
		{Code: cfg.Auth.AdminPasscode, Name: cfg.Auth.AdminName, Role: entity.RoleAdmin},
		{Code: cfg.Auth.CashierPasscode, Name: cfg.Auth.CashierName, Role: entity.RoleCashier},
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar AUTH_ADMIN_PASSCODE y/o AUTH_CASHIER_PASSCODE")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs (requiere `swag init` previo)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     cfg.App.Name,
			"snapshot_at": holder.Current().TakenAt,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  pos.NewProductUseCase(core),
		POSUC:      pos.NewPOSUseCase(core, carts, pdfGenerator),
		PurchaseUC: pos.NewPurchaseUseCase(core, carts),
		RepairUC:   pos.NewRepairUseCase(core, pdfGenerator),
		ExpenseUC:  pos.NewExpenseUseCase(core),
		ReportUC:   pos.NewReportUseCase(core, pdfGenerator, workbook),
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openBackend postgres (LISTEN/NOTIFY entre terminales) o memoria (una sola terminal, demo).
func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	if cfg.Store.Backend == config.StoreMemory {
		store := memory.NewStore()
		if cfg.Store.SeedFile != "" {
			f, err := os.Open(cfg.Store.SeedFile)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			snap, err := legacy.ParseExport(f)
			if err != nil {
				return nil, err
			}
			store = memory.NewStoreFromSnapshot(snap)
			log.Info().Str("file", cfg.Store.SeedFile).Int("products", len(snap.Products)).Msg("datos iniciales cargados")
		}
		return &backend{snapshots: store, applier: store, feed: store, close: func() {}}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &backend{
		snapshots: postgres.NewSnapshotLoader(postgres.NewTxRunner(pool)),
		applier:   postgres.NewIntentApplier(pool, log.Component("postgres")),
		feed:      postgres.NewWatcher(pool, log.Component("watcher")),
		close:     pool.Close,
	}, nil
}

// openCarts memoria (por proceso) o Redis (compartido entre instancias de la API).
func openCarts(ctx context.Context, cfg *config.Config) (repository.CartStore, func(), error) {
	if strings.EqualFold(cfg.Store.CartBackend, config.CartRedis) {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return infraredis.NewCartStore(rdb, cfg.Redis.CartTTL), func() { _ = rdb.Close() }, nil
	}
	return memory.NewCartStore(), func() {}, nil
}
