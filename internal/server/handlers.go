package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-listings/internal/export"
	"github.com/jonathan/job-listings/internal/types"
)

// excelContentType is the OOXML workbook MIME type.
const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleIndex describes the available endpoints.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service": "job-listings",
		"endpoints": map[string]string{
			"POST /api/search":                "search job boards for listings",
			"POST /api/search-to-spreadsheet": "search and export results to a new Google Sheets document",
			"POST /api/search-to-excel":       "search and download results as an XLSX workbook",
			"GET /health":                     "server health",
		},
	})
}

// handleSearch runs a search and returns the listings as JSON.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	listings, err := s.searcher.Run(r.Context(), req.Params())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"results": listings})
}

// handleSearchToSpreadsheet runs a search and writes the listings into a new
// Google Sheets document.
func (s *Server) handleSearchToSpreadsheet(w http.ResponseWriter, r *http.Request) {
	var req types.SpreadsheetSearchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	listings, err := s.searcher.Run(r.Context(), req.Params())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	title := req.SpreadsheetTitle
	if title == "" {
		title = defaultSpreadsheetTitle(req.JobTitle, req.Location)
	}

	result, err := s.sheets.Export(r.Context(), title, listings)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":        "Results exported to Google Sheets",
		"jobTitle":       req.JobTitle,
		"location":       req.Location,
		"totalResults":   len(listings),
		"spreadsheetId":  result.SpreadsheetID,
		"spreadsheetUrl": result.SpreadsheetURL,
	})
}

// handleSearchToExcel runs a search and returns the listings as a
// downloadable XLSX workbook.
func (s *Server) handleSearchToExcel(w http.ResponseWriter, r *http.Request) {
	var req types.ExcelSearchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	listings, err := s.searcher.Run(r.Context(), req.Params())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	workbook, err := export.Excel(listings)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = defaultFilename(req.JobTitle)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		filename += ".xlsx"
	}

	w.Header().Set("Content-Type", excelContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(workbook)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		log.Printf("Error writing workbook response: %v", err)
	}
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		verr := asValidationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return false
	}
	return true
}

// asValidationError converts the first validator failure into an ErrValidation.
func asValidationError(err error) *ErrValidation {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		if fe.Tag() == "required" {
			return &ErrValidation{Field: fe.Field(), Message: "is required"}
		}
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed %s validation", fe.Tag())}
	}
	return &ErrValidation{Field: "request", Message: "is invalid"}
}

// defaultSpreadsheetTitle names the document after the search parameters.
func defaultSpreadsheetTitle(jobTitle, location string) string {
	if location != "" {
		return fmt.Sprintf("Job Search Results - %s (%s)", jobTitle, location)
	}
	return fmt.Sprintf("Job Search Results - %s", jobTitle)
}

// defaultFilename derives a download name from the job title.
func defaultFilename(jobTitle string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(jobTitle)), "_")
	if slug == "" {
		return "job_listings.xlsx"
	}
	return slug + "_jobs.xlsx"
}
