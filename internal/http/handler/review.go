package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lintora.co/server/internal/http/dto"
	"lintora.co/server/internal/http/middleware"
	"lintora.co/server/internal/review"
	"lintora.co/server/internal/service"
)

type ReviewHandler struct {
	reviewService  service.ReviewService
	historyService service.HistoryService
	maxFileSize    int64
}

func NewReviewHandler(reviewService service.ReviewService, historyService service.HistoryService, maxFileSize int64) *ReviewHandler {
	return &ReviewHandler{
		reviewService:  reviewService,
		historyService: historyService,
		maxFileSize:    maxFileSize,
	}
}

func (h *ReviewHandler) ReviewCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReviewCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.GetUser(ctx)
	result, err := h.reviewService.AnalyzeCode(ctx, user, req.ToRequest())
	if err != nil {
		h.renderReviewError(c, err, "failed to analyze code")
		return
	}

	c.JSON(http.StatusOK, dto.ReviewResponse{
		AnalysisResult: result,
		Subscription:   dto.ToSubscriptionResponse(user.Subscription),
	})
}

// ReviewFile accepts a multipart upload and reviews its contents. Language
// comes from the extension unless the form overrides it.
func (h *ReviewHandler) ReviewFile(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	if !review.AllowedUpload(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.ErrorContext(ctx, "failed to open upload", "error", err, "filename", fileHeader.Filename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	code, err := io.ReadAll(io.LimitReader(file, h.maxFileSize))
	if err != nil {
		slog.ErrorContext(ctx, "failed to read upload", "error", err, "filename", fileHeader.Filename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	language := c.PostForm("language")
	if language == "" {
		language = review.DetectLanguage(fileHeader.Filename)
	}

	user := middleware.GetUser(ctx)
	result, err := h.reviewService.AnalyzeCode(ctx, user, review.Request{
		Code:     string(code),
		Language: language,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		h.renderReviewError(c, err, "failed to analyze file")
		return
	}

	c.JSON(http.StatusOK, dto.ReviewResponse{
		AnalysisResult: result,
		Subscription:   dto.ToSubscriptionResponse(user.Subscription),
	})
}

func (h *ReviewHandler) ReviewIncremental(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.IncrementalReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.GetUser(ctx)
	result, err := h.reviewService.AnalyzeIncremental(ctx, user, req.ToRequest())
	if err != nil {
		h.renderReviewError(c, err, "failed to analyze changes")
		return
	}

	c.JSON(http.StatusOK, dto.ReviewResponse{
		AnalysisResult: result,
		Subscription:   dto.ToSubscriptionResponse(user.Subscription),
	})
}

func (h *ReviewHandler) Fix(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.FixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fixed, err := h.reviewService.GenerateFix(ctx, req.Code, req.Finding, req.Language)
	if err != nil {
		h.renderReviewError(c, err, "failed to generate fix")
		return
	}

	c.JSON(http.StatusOK, dto.FixResponse{FixedCode: fixed})
}

func (h *ReviewHandler) CompleteFix(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CompleteFixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fixed, err := h.reviewService.GenerateCompleteFix(ctx, req.Code, req.Language, req.Findings)
	if err != nil {
		h.renderReviewError(c, err, "failed to generate fixes")
		return
	}

	c.JSON(http.StatusOK, dto.FixResponse{FixedCode: fixed})
}

func (h *ReviewHandler) History(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	records, err := h.historyService.ListReviews(ctx, user.ID, 0)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list reviews", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	c.JSON(http.StatusOK, dto.ReviewHistoryResponse{Reviews: records})
}

func (h *ReviewHandler) renderReviewError(c *gin.Context, err error, fallback string) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, service.ErrEmptyCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
	case errors.Is(err, service.ErrInvalidAnalysisType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProvider):
		slog.ErrorContext(ctx, fallback, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis provider unavailable"})
	default:
		slog.ErrorContext(ctx, fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
