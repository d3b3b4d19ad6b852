package main

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"
	"time"

	"github.com/baditaflorin/go_document_similarity/internal/extraction"
	"github.com/baditaflorin/go_document_similarity/pkg/sentence"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// AnalyzeMetadata summarizes one sentence-level analysis run
type AnalyzeMetadata struct {
	DocumentsCount   int     `json:"documents_count"`
	TotalSentences   int     `json:"total_sentences"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
	Threshold        float64 `json:"threshold"`
}

// MatchResponse is one cross-document sentence match
type MatchResponse struct {
	SourceDoc           string  `json:"source_doc"`
	SourceSentenceIndex int     `json:"source_sentence_index"`
	SourceSentence      string  `json:"source_sentence"`
	TargetDoc           string  `json:"target_doc"`
	TargetSentenceIndex int     `json:"target_sentence_index"`
	TargetSentence      string  `json:"target_sentence"`
	Similarity          float64 `json:"similarity"`
}

// GlobalSimilarityResponse is the mean similarity of one document pair
type GlobalSimilarityResponse struct {
	DocA  string  `json:"docA"`
	DocB  string  `json:"docB"`
	Score float64 `json:"score"`
}

// AnalyzeResponse is the full sentence-level analysis envelope
type AnalyzeResponse struct {
	Metadata         AnalyzeMetadata            `json:"metadata"`
	Matches          []MatchResponse            `json:"matches"`
	GlobalSimilarity []GlobalSimilarityResponse `json:"global_similarity"`
}

// handleAnalyze handles multipart file upload analysis requests
func handleAnalyze(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed", codeInvalidRequest)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid multipart form: "+err.Error(), codeInvalidRequest)
		return
	}

	// Parse the optional threshold field
	threshold := serverConfig.DefaultThreshold
	if values := form.Value["threshold"]; len(values) > 0 {
		threshold, err = strconv.ParseFloat(values[0], 64)
		if err != nil || threshold < 0 || threshold > 1 {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, "Threshold must be a number between 0.0 and 1.0", codeInvalidThreshold)
			return
		}
	}

	// Collect file headers in a deterministic order
	headers := collectFileHeaders(form)
	if len(headers) < serverConfig.MinFiles {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, fmt.Sprintf("At least %d files are required for comparison", serverConfig.MinFiles), codeTooFewFiles)
		return
	}
	if len(headers) > serverConfig.MaxFiles {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, fmt.Sprintf("At most %d files may be analyzed at once", serverConfig.MaxFiles), codeTooManyFiles)
		return
	}

	// Extract text and split sentences per file
	documents := make([]sentence.Document, 0, len(headers))
	totalSize := 0
	for _, header := range headers {
		if header.Size > int64(serverConfig.MaxFileSize) {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, fmt.Sprintf("File %q exceeds the per-file size limit", header.Filename), codeFileTooLarge)
			return
		}
		totalSize += int(header.Size)
		if totalSize > serverConfig.MaxTotalSize {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, "Combined upload size exceeds the total limit", codeFileTooLarge)
			return
		}

		fileType, ok := extraction.DetectFileType(header.Filename)
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, fmt.Sprintf("File %q has an unsupported format", header.Filename), codeUnsupportedFormat)
			return
		}

		data, err := readFileHeader(header)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, fmt.Sprintf("Failed to read file %q: %v", header.Filename, err), codeInvalidRequest)
			return
		}

		text, err := extraction.ExtractText(data, fileType)
		if err != nil {
			logger.Warn("Text extraction failed",
				"filename", header.Filename,
				"file_type", fileType.String(),
				"error", err,
			)
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, fmt.Sprintf("Failed to extract text from %q", header.Filename), codeExtractionFailed)
			return
		}

		sentences := sentAnalyzer.SplitSentences(text)
		if len(sentences) == 0 {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, fmt.Sprintf("File %q contains no sentences", header.Filename), codeNoSentences)
			return
		}

		documents = append(documents, sentence.Document{
			Filename:  header.Filename,
			Sentences: sentences,
		})
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Run the sentence-level analysis
	analysis := sentAnalyzer.Analyze(c, documents, threshold)

	// Build the response envelope
	response := AnalyzeResponse{
		Metadata: AnalyzeMetadata{
			DocumentsCount:   len(documents),
			TotalSentences:   totalSentences(documents),
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
			Threshold:        threshold,
		},
		Matches:          make([]MatchResponse, 0, len(analysis.Matches)),
		GlobalSimilarity: make([]GlobalSimilarityResponse, 0, len(analysis.GlobalSimilarities)),
	}
	for _, m := range analysis.Matches {
		response.Matches = append(response.Matches, MatchResponse{
			SourceDoc:           m.SourceDoc,
			SourceSentenceIndex: m.SourceSentenceIndex,
			SourceSentence:      m.SourceSentence,
			TargetDoc:           m.TargetDoc,
			TargetSentenceIndex: m.TargetSentenceIndex,
			TargetSentence:      m.TargetSentence,
			Similarity:          m.Similarity,
		})
	}
	for _, g := range analysis.GlobalSimilarities {
		response.GlobalSimilarity = append(response.GlobalSimilarity, GlobalSimilarityResponse{
			DocA:  g.DocA,
			DocB:  g.DocB,
			Score: g.Score,
		})
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// collectFileHeaders flattens the multipart file map, sorted by field
// name so repeated requests see files in the same order.
func collectFileHeaders(form *multipart.Form) []*multipart.FileHeader {
	keys := make([]string, 0, len(form.File))
	for key := range form.File {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var headers []*multipart.FileHeader
	for _, key := range keys {
		headers = append(headers, form.File[key]...)
	}
	return headers
}

// readFileHeader drains one uploaded file into memory through a pooled
// buffer.
func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(file); err != nil {
		return nil, err
	}

	// Copy out: the pooled buffer is reused after Put.
	data := make([]byte, len(buf.B))
	copy(data, buf.B)
	return data, nil
}

// totalSentences counts sentences across all uploaded documents
func totalSentences(documents []sentence.Document) int {
	total := 0
	for _, doc := range documents {
		total += len(doc.Sentences)
	}
	return total
}
