package main

import (
	"context"
	"net/http"
	"os"

	_ "jp-address-api/docs"
	"jp-address-api/internal/config"
	"jp-address-api/internal/gazetteer"
	"jp-address-api/internal/handler"
	"jp-address-api/internal/parser"
	"jp-address-api/internal/repository"
	"jp-address-api/internal/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Japanese Address Parser API
//	@version		1.0
//	@description	Decomposes Japanese addresses into prefecture, city, town and the remainder.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel, config.LogFormat)

	var source gazetteer.Source
	switch config.GazetteerBackend {
	case "postgres":
		// Database connection
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()
		source = repository.NewRepository(conn, config.GazetteerTable)
	case "csv":
		rows, err := gazetteer.LoadLocations(config.GazetteerCSV, config.GazetteerCSVEncoding)
		if err != nil {
			log.Fatal().Err(err).Str("file", config.GazetteerCSV).Msg("cannot load gazetteer csv")
		}
		log.Info().Int("rows", len(rows)).Str("file", config.GazetteerCSV).Msg("loaded gazetteer csv")
		source = gazetteer.NewSnapshot(rows)
	default:
		source = gazetteer.NewHTTPClient(config.GazetteerBaseURL, config.GazetteerTimeout, config.GazetteerRateInterval)
	}
	if config.GazetteerCache && config.GazetteerBackend != "csv" {
		source = gazetteer.NewCache(source)
	}
	log.Info().Str("backend", config.GazetteerBackend).Bool("cache", config.GazetteerCache).Msg("gazetteer ready")

	// Initialize layers
	addressParser := parser.New(source,
		parser.WithCountyNameCompletion(config.CorrectIncompleteCityNames),
		parser.WithVerbose(config.ParserVerbose),
	)
	addressService := service.NewAddressService(addressParser, config.BatchConcurrency)
	parseHandler := handler.NewParseHandler(addressService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(), gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/parse", parseHandler.Parse)
	r.POST("/parse/batch", parseHandler.ParseBatch)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
