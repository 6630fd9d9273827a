package server

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/VoiceBooth-AI/voicebooth-go/booth"
)

func (s *Server) enhanceHandler(c fiber.Ctx) error {
	submission, err := parseSubmission(c)
	if err != nil {
		return s.errorResponse(c, err)
	}

	result, err := s.orchestrator.ProcessEnhancement(submission)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(buildSuccessResponse(result))
}

func (s *Server) uploadHandler(c fiber.Ctx) error {
	submission, err := parseSubmission(c)
	if err != nil {
		return s.errorResponse(c, err)
	}

	result, err := s.orchestrator.ProcessUpload(submission)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(buildSuccessResponse(result))
}

func parseSubmission(c fiber.Ctx) (booth.Submission, error) {
	submission := booth.Submission{
		DisplayName:  c.FormValue("name"),
		ContactEmail: c.FormValue("email"),
	}

	// An unparsable duration falls through as zero and is rejected by
	// the validator as too short.
	if duration, err := strconv.ParseFloat(c.FormValue("duration"), 64); err == nil {
		submission.ClientDuration = duration
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return submission, &booth.ValidationError{
			Code:    booth.CodeMissingField,
			Message: "audio file is required",
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return submission, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return submission, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	submission.Audio = booth.Audio{
		Data:     data,
		MimeType: fileHeader.Header.Get("Content-Type"),
		FileName: fileHeader.Filename,
	}

	return submission, nil
}

func (s *Server) errorResponse(c fiber.Ctx, err error) error {
	var validationErr *booth.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: validationErr.Message,
		})
	}

	var storageErr *booth.StorageError
	if errors.As(err, &storageErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Failed to store your recording, please try again",
			Details: storageErr.Error(),
		})
	}

	log.Error().Err(err).Msg("Unexpected error processing submission")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}

func buildSuccessResponse(result *booth.Result) SuccessResponse {
	message := "Your recording was saved"
	if result.Enhanced != nil {
		message = "Your recording was saved and enhanced"
	}

	data := SubmissionData{
		RawDownloadURL: result.Raw.DownloadURL,
		RawFileName:    result.Raw.FileName,
		RawFileSize:    result.Raw.SizeMiB(),
		Duration:       result.Raw.DurationSeconds,
		VoiceID:        result.VoiceID,
	}

	if result.Enhanced != nil {
		data.EnhancedDownloadURL = result.Enhanced.DownloadURL
		data.EnhancedFileName = result.Enhanced.FileName
		data.EnhancedFileSize = result.Enhanced.SizeMiB()
	}

	return SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}
