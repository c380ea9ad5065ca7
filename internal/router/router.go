package router

import (
	"database/sql"
	"net/http"

	mem "vetcare360/internal/adapters/storage/memory"
	pg "vetcare360/internal/adapters/storage/postgres"
	"vetcare360/internal/domain/animals"
	"vetcare360/internal/domain/owners"
	"vetcare360/internal/domain/vets"
	"vetcare360/internal/domain/visits"
	"vetcare360/internal/middleware"
	"vetcare360/internal/platform/logger"
	"vetcare360/internal/web"

	_ "vetcare360/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log *logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{App: "vetcare360"})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	// El frontend corre en el browser; mismo CORS abierto que el original.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		ownersRepo  owners.Repository
		animalsRepo animals.Repository
		vetsRepo    vets.Repository
		visitsRepo  visits.Repository
	)

	if opts.DB != nil {
		ownersRepo = pg.NewOwnersRepo(opts.DB)
		animalsRepo = pg.NewAnimalsRepo(opts.DB)
		vetsRepo = pg.NewVetsRepo(opts.DB)
		visitsRepo = pg.NewVisitsRepo(opts.DB)
	} else {
		ownersRepo = mem.NewOwnersRepo()
		animalsRepo = mem.NewAnimalsRepo()
		vetsRepo = mem.NewVetsRepo()
		visitsRepo = mem.NewVisitsRepo()
	}

	// Services por módulo. owners implementa animals.OwnerLink y
	// animals implementa visits.AnimalLink: el service layer mantiene
	// los dos lados de cada relación.
	ownersSvc := owners.NewService(ownersRepo)
	vetsSvc := vets.NewService(vetsRepo)
	animalsSvc := animals.NewService(animalsRepo, ownersSvc)
	visitsSvc := visits.NewService(visitsRepo, animalsSvc)

	owners.RegisterRoutes(r, ownersSvc, animalsSvc)
	animals.RegisterRoutes(r, animalsSvc, visitsSvc, vetsSvc)
	vets.RegisterRoutes(r, vetsSvc)
	visits.RegisterRoutes(r, visitsSvc, vetsSvc)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Frontend embebido para todo lo que no sea API.
	r.Handle("/*", web.Handler())

	return r
}
