package main

import (
	"database/sql"
	"net/http"
	"os"
	"path"

	"github.com/joho/godotenv"

	"github.com/yumyai/alignview/internal/util"
	"github.com/yumyai/alignview/logger"
	mydb "github.com/yumyai/alignview/pkg/db"
	"github.com/yumyai/alignview/pkg/handler"
	"github.com/yumyai/alignview/pkg/middle"
	"github.com/yumyai/alignview/pkg/uniprot"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

func main() {

	// Establish logger
	VERSION := "0.1.0"

	if err := logger.InitLogger(logger.ParseLevel(os.Getenv("ALIGNVIEW_LOG_LEVEL"))); err != nil {
		panic(err)
	}

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	dataDir := util.EnvOr("ALIGNVIEW_DATA", "./data")
	addr := util.EnvOr("ALIGNVIEW_ADDR", "0.0.0.0:8080")

	if !util.DirExists(dataDir) {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			logger.Fatal("Cannot create data directory", zap.String("dir", dataDir), zap.Error(err))
		}
	}

	cachePath := path.Join(dataDir, "sequence_cache.db")

	// Connect to db
	conn, err := sql.Open("sqlite", cachePath)
	if err != nil {
		logger.Fatal("Cannot open sequence cache", zap.String("path", cachePath), zap.Error(err))
	}

	store, err := mydb.NewSequenceStore(conn)
	if err != nil {
		logger.Fatal("Cannot prepare sequence cache", zap.Error(err))
	}

	sctx := &handler.ServiceContext{
		Store:   store,
		UniProt: uniprot.NewClient(store),
		Jobs:    handler.NewAlignJobManager(),
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Sequence cache on", zap.String("DB_LOC", cachePath))

	mux := NewRouter(sctx)

	// Apply middleware
	wrapped := middle.RequestIDMiddleware()(middle.LoggingMiddleware(logger.L())(mux))

	logger.Info("Server starting", zap.String("addr", addr))
	httpErr := http.ListenAndServe(addr, wrapped)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

func NewRouter(sctx *handler.ServiceContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Alignment
	mux.HandleFunc("POST /api/align", sctx.AlignHandler)
	mux.HandleFunc("POST /api/align/async", sctx.AlignAsyncHandler)
	mux.HandleFunc("GET /api/align/jobs/{job_id}", sctx.AlignJobHandler)

	// Search
	mux.HandleFunc("GET /api/search", sctx.SearchHandler)

	// Sequences
	mux.HandleFunc("GET /api/uniprot/{accession}", sctx.UniProtHandler)
	mux.HandleFunc("POST /api/parse-text", sctx.ParseTextHandler)
	mux.HandleFunc("GET /api/detect-type", sctx.DetectTypeHandler)

	// Misc
	mux.HandleFunc("GET /api/v1/health", handler.HealthCheck)

	return mux
}
