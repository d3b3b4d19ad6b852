package main

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// Validation error codes returned to API clients
const (
	codeNoDocuments        = "NO_DOCUMENTS"
	codeNotEnoughDocuments = "NOT_ENOUGH_DOCUMENTS"
	codeTooManyDocuments   = "TOO_MANY_DOCUMENTS"
	codeEmptyDocument      = "EMPTY_DOCUMENT"
	codeDocumentTooLong    = "DOCUMENT_TOO_LONG"
	codeInvalidRequest     = "INVALID_REQUEST"
	codeInvalidThreshold   = "INVALID_THRESHOLD"
	codeFileTooLarge       = "FILE_TOO_LARGE"
	codeTooFewFiles        = "TOO_FEW_FILES"
	codeTooManyFiles       = "TOO_MANY_FILES"
	codeUnsupportedFormat  = "UNSUPPORTED_FORMAT"
	codeExtractionFailed   = "EXTRACTION_FAILED"
	codeNoSentences        = "NO_SENTENCES"
	codeInternalError      = "INTERNAL_ERROR"
)

// DocumentsRequest is a document-level similarity request
type DocumentsRequest struct {
	Documents []string `json:"documents"`
}

// DocumentsResponse is a document-level similarity response
type DocumentsResponse struct {
	SimilarityMatrix [][]float64 `json:"similarity_matrix"`
	Index            []string    `json:"index"`
}

// ErrorResponse represents an error response with a machine-readable code
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	requestID := uuid.NewString()

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "DocumentSimilarityServer")
	ctx.Response.Header.Set("X-Request-ID", requestID)

	// Permissive CORS for browser clients
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")

	if string(ctx.Method()) == fasthttp.MethodOptions {
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/api/documents":
		handleDocuments(ctx)
	case "/api/analyze":
		handleAnalyze(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found", codeInvalidRequest)
	}

	// Log request
	duration := time.Since(startTime)
	logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleDocuments handles document-level similarity requests
func handleDocuments(ctx *fasthttp.RequestCtx) {
	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed", codeInvalidRequest)
		return
	}

	// Parse request
	var req DocumentsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error(), codeInvalidRequest)
		return
	}

	// Validate request
	if message, code := validateDocuments(req.Documents); code != "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, message, code)
		return
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Compute the similarity matrix
	result := docAnalyzer.Analyze(c, req.Documents)

	// Write response
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, DocumentsResponse{
		SimilarityMatrix: result.Matrix,
		Index:            result.Index,
	})
}

// validateDocuments checks document-level request constraints. An empty
// code means the documents are acceptable.
func validateDocuments(documents []string) (message, code string) {
	if len(documents) == 0 {
		return "No documents provided", codeNoDocuments
	}
	if len(documents) < serverConfig.MinDocuments {
		return "At least 2 documents are required for comparison", codeNotEnoughDocuments
	}
	if len(documents) > serverConfig.MaxDocuments {
		return "Too many documents provided", codeTooManyDocuments
	}
	for i, doc := range documents {
		if strings.TrimSpace(doc) == "" {
			return "Document at index " + strconv.Itoa(i) + " is empty", codeEmptyDocument
		}
		if len([]rune(doc)) > serverConfig.MaxDocumentLength {
			return "Document at index " + strconv.Itoa(i) + " exceeds the maximum length", codeDocumentTooLong
		}
	}
	return "", ""
}

// Helper functions

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error", codeInternalError)
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, message, code string) {
	errResponse := ErrorResponse{
		Error: message,
		Code:  code,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error","code":"INTERNAL_ERROR"}`)
		return
	}

	ctx.SetBody(response)
}
