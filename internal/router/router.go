package router

import (
	"database/sql"
	"net/http"
	"os"

	"adopet-backend/internal/adapters/mediastore"
	mem "adopet-backend/internal/adapters/storage/memory"
	pg "adopet-backend/internal/adapters/storage/postgres"
	"adopet-backend/internal/domain/animals"
	"adopet-backend/internal/middleware"
	"adopet-backend/internal/platform/logger"
	"adopet-backend/internal/platform/metrics"
	"adopet-backend/internal/ports/auth"
	"adopet-backend/internal/ports/media"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	// Opcional: si viene, se usa ese media store. Si no, STORAGE_TYPE decide.
	Media media.Store

	// Opcionales: instancias propias para tests.
	Metrics *metrics.Metrics
	Logger  logger.Logger
}

func NewRouter(opts Options) http.Handler {
	lg := opts.Logger
	if lg == nil {
		lg = logger.NewFromEnv()
	}

	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Repositorio: Postgres si hay DB (explícita o por env), si no in-memory.
	var animalRepo animals.Repository

	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				lg.Warn("postgres unavailable, falling back to in-memory repo", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		animalRepo = pg.NewAnimalsRepo(db)
		lg.Info("animal repository: postgres", nil)
	} else {
		animalRepo = mem.NewAnimalRepo()
		lg.Info("animal repository: in-memory", nil)
	}

	// Media store: explícito, o armado desde env (local por defecto).
	store := opts.Media
	if store == nil {
		built, err := mediastore.NewFromEnv()
		if err != nil {
			lg.Warn("media store unavailable, falling back to in-memory store", map[string]any{"error": err.Error()})
			built = mediastore.NewMemory()
		}
		store = built
	}

	animalsSvc := animals.NewService(animalRepo, store)
	animals.RegisterRoutes(r, animalsSvc, m)

	return r
}
