package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/rustyreel/internal/models"
	"github.com/denisAlshanov/rustyreel/internal/services/dearrow"
	"github.com/denisAlshanov/rustyreel/internal/services/youtube"
	"github.com/denisAlshanov/rustyreel/internal/utils"
)

type BrandingHandler struct {
	branding dearrow.BrandingClient
}

func NewBrandingHandler(branding dearrow.BrandingClient) *BrandingHandler {
	return &BrandingHandler{
		branding: branding,
	}
}

// GetBranding godoc
// @Summary Look up DeArrow branding for a YouTube video
// @Description Accepts a full youtube.com watch URL, a youtu.be short URL or a bare 11 character video ID and returns the community submitted titles and thumbnails.
// @Tags branding
// @Produce json
// @Param video query string true "YouTube URL or video ID"
// @Success 200 {object} models.BrandingLookupResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/branding [get]
// @Security ApiKeyAuth
func (h *BrandingHandler) GetBranding(c *gin.Context) {
	ctx := c.Request.Context()

	raw := strings.TrimSpace(c.Query("video"))
	if raw == "" {
		errorResponse(c, utils.NewValidationError("Missing video query parameter", map[string]interface{}{
			"parameter": "video",
		}))
		return
	}

	id, res, err := h.branding.Lookup(ctx, raw)
	if err != nil {
		var parseErr *youtube.VideoIDParseError
		if errors.As(err, &parseErr) {
			errorResponse(c, utils.NewInvalidVideoIDError(parseErr.Input))
			return
		}
		utils.LogError(ctx, "DeArrow branding request failed", err, utils.Fields{"video_id": id.String()})
		errorResponse(c, utils.NewBrandingLookupError(id.String()))
		return
	}

	c.JSON(http.StatusOK, toBrandingLookupResponse(id, res))
}

func toBrandingLookupResponse(id youtube.VideoID, res *dearrow.BrandingResponse) models.BrandingLookupResponse {
	out := models.BrandingLookupResponse{
		VideoID:       id.String(),
		Titles:        make([]models.TitleItem, 0, len(res.Titles)),
		Thumbnails:    make([]models.ThumbnailItem, 0, len(res.Thumbnails)),
		RandomTime:    res.RandomTime,
		VideoDuration: res.VideoDuration,
	}

	for _, t := range res.Titles {
		out.Titles = append(out.Titles, models.TitleItem{
			Title:    t.Title,
			Original: t.Original,
			Votes:    t.Votes,
			Locked:   t.Locked,
			UUID:     t.UUID,
		})
	}

	for _, t := range res.Thumbnails {
		out.Thumbnails = append(out.Thumbnails, models.ThumbnailItem{
			Timestamp: t.Timestamp,
			Original:  t.Original,
			Votes:     t.Votes,
			Locked:    t.Locked,
			UUID:      t.UUID,
		})
	}

	return out
}

func errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, models.ErrorResponse{
		Error:     err,
		RequestID: c.GetString("request_id"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
