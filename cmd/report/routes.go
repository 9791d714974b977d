package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "poppys-backend/http-server/admin/get"
	saveadmin "poppys-backend/http-server/admin/save"
	upadmin "poppys-backend/http-server/admin/update"
	getconsolidated "poppys-backend/http-server/consolidated/get"
	exporthandler "poppys-backend/http-server/export"
	getline "poppys-backend/http-server/line/get"
	getmachine "poppys-backend/http-server/machine/get"
	getoperator "poppys-backend/http-server/operator/get"
	getoperators "poppys-backend/http-server/operators/get"
	"poppys-backend/internal/config"
	"poppys-backend/internal/middleware/auth"
	exportservice "poppys-backend/internal/service/export"
	"poppys-backend/internal/service/summary"
	"poppys-backend/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, reports *summary.Service, exports *exportservice.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// machine report + raw-data toggle
	router.Get("/api/poppys-machine-logs/", getmachine.GetMachineLogs(log, reports))
	router.Get("/api/poppys-machine-logs/raw/", getmachine.GetMachineRawLogs(log, reports))

	// operator report, raw data, single-operator drill-down
	router.Get("/api/operator-report/", getoperator.GetOperatorReport(log, reports))
	router.Get("/api/operator-report/raw/", getoperator.GetOperatorRawLogs(log, reports))
	router.Get("/api/operator_report_by_name/{name}/", getoperator.GetOperatorReportByName(log, reports))

	// line report
	router.Get("/api/line-report/", getline.GetLineReport(log, reports))
	router.Get("/api/line-report/raw/", getline.GetLineRawLogs(log, reports))

	// combined machine/line/operator view
	router.Get("/api/get_consolidated_logs/", getconsolidated.GetConsolidatedLogs(log, reports))

	// RFID -> operator-name directory
	router.Get("/api/operators/", getoperators.GetOperators(log, storage))

	// report downloads
	router.Get("/api/report/csv", exporthandler.DownloadCSV(log, exports))
	router.Get("/api/report/html", exporthandler.DownloadHTML(log, exports))
	router.Get("/api/report/excel", exporthandler.DownloadExcel(log, exports))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/operators", getadmin.GetAllOperatorsAdmin(log, storage))
	adminRouter.Post("/operators/save", saveadmin.SaveOperatorAdmin(log, storage))
	adminRouter.Put("/operators/update", upadmin.UpdateOperatorAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	// dashboard static files, when the build is deployed next to the binary
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend build not found, serving API only", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: unknown paths get index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
