package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_document_similarity/internal/config"
	"github.com/baditaflorin/go_document_similarity/pkg/document"
	"github.com/baditaflorin/go_document_similarity/pkg/sentence"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

var (
	// Document-level analyzer (JSON API)
	docAnalyzer *document.Analyzer

	// Sentence-level analyzer (file upload API)
	sentAnalyzer *sentence.Analyzer

	// Server configuration shared by the handlers
	serverConfig config.ServerConfig

	// Logger instance
	logger l.Logger
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to a YAML config file (empty = built-in defaults)")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	readTimeout := flag.Duration("read-timeout", 0, "HTTP read timeout (overrides config)")
	writeTimeout := flag.Duration("write-timeout", 0, "HTTP write timeout (overrides config)")
	warmUp := flag.Bool("warm-up", true, "Perform analyzer warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout, overrides config)")
	flag.Parse()

	// Load configuration, then let flags override it
	serverConfig = config.Default()
	if *configPath != "" {
		var err error
		serverConfig, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *port != 0 {
		serverConfig.Port = *port
	}
	if *readTimeout != 0 {
		serverConfig.ReadTimeoutSeconds = int(readTimeout.Seconds())
	}
	if *writeTimeout != 0 {
		serverConfig.WriteTimeoutSeconds = int(writeTimeout.Seconds())
	}
	if *logFile != "" {
		serverConfig.LogFile = *logFile
	}

	// Set up logger
	var err error
	logger, err = createLogger(serverConfig.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting document similarity HTTP server",
		"port", serverConfig.Port,
		"read_timeout_seconds", serverConfig.ReadTimeoutSeconds,
		"write_timeout_seconds", serverConfig.WriteTimeoutSeconds,
		"max_file_size", serverConfig.MaxFileSize,
		"max_total_size", serverConfig.MaxTotalSize,
		"default_threshold", serverConfig.DefaultThreshold,
	)

	// Initialize the analyzers
	initAnalyzers(*warmUp)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           time.Duration(serverConfig.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:          time.Duration(serverConfig.WriteTimeoutSeconds) * time.Second,
		MaxRequestBodySize:    serverConfig.MaxTotalSize,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // we'll handle logging ourselves
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", serverConfig.Port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", serverConfig.Port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initAnalyzers initializes the document and sentence analyzers
func initAnalyzers(warmUp bool) {
	var err error

	docOpts := []document.Option{
		document.WithLogger(logger),
	}
	if warmUp {
		docOpts = append(docOpts, document.WithWarmUp(true))
	}
	docAnalyzer, err = document.New(docOpts...)
	if err != nil {
		logger.Error("Failed to initialize document analyzer", "error", err)
		os.Exit(1)
	}

	sentOpts := []sentence.Option{
		sentence.WithLogger(logger),
	}
	if warmUp {
		sentOpts = append(sentOpts, sentence.WithWarmUp(true))
	}
	sentAnalyzer, err = sentence.New(sentOpts...)
	if err != nil {
		logger.Error("Failed to initialize sentence analyzer", "error", err)
		os.Exit(1)
	}

	logger.Info("Analyzers initialized successfully",
		"warm_up", warmUp,
		"cpus", runtime.NumCPU(),
	)
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	// Create a logger factory
	factory := l.NewStandardFactory()

	// Configure the logger
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	// Create the logger
	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
