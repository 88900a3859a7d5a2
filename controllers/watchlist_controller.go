package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/narbehner/Movie-Watchlist/models"
	"github.com/narbehner/Movie-Watchlist/services"
)

type WatchlistController struct {
	watchlistService *services.WatchlistService
}

func NewWatchlistController(watchlistService *services.WatchlistService) *WatchlistController {
	return &WatchlistController{
		watchlistService: watchlistService,
	}
}

func (c *WatchlistController) ListMovies(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	movies, err := c.watchlistService.ListMovies(ctx.Request.Context(), userID)
	if err != nil {
		writeServiceError(ctx, err, "Failed to load watchlist")
		return
	}

	ctx.JSON(http.StatusOK, models.ListMoviesResponse{Movies: movies})
}

func (c *WatchlistController) AddMovie(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	var req models.AddMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	movie, err := c.watchlistService.AddMovie(ctx.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(ctx, err, "Failed to add movie")
		return
	}

	ctx.JSON(http.StatusCreated, movie)
}

func (c *WatchlistController) GetMovie(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	movie, err := c.watchlistService.GetMovie(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		writeServiceError(ctx, err, "Failed to load movie")
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *WatchlistController) RateMovie(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	// Rating arrives as a query parameter so a plain star link works,
	// mirroring the rendered movie page.
	rating, err := strconv.Atoi(ctx.Query("rating"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be a number"})
		return
	}

	if err := c.watchlistService.RateMovie(ctx.Request.Context(), userID, ctx.Param("id"), rating); err != nil {
		writeServiceError(ctx, err, "Failed to rate movie")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Rating saved"})
}

func (c *WatchlistController) WatchToday(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	if err := c.watchlistService.WatchToday(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		writeServiceError(ctx, err, "Failed to mark movie watched")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Marked as watched"})
}

func (c *WatchlistController) EditMovie(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	var update models.MovieDetailsUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.watchlistService.EditDetails(ctx.Request.Context(), userID, ctx.Param("id"), update); err != nil {
		writeServiceError(ctx, err, "Failed to update movie")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Movie updated"})
}

func (c *WatchlistController) LookupMovie(ctx *gin.Context) {
	if currentUserID(ctx) == "" {
		return
	}

	title := ctx.Query("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	result, err := c.watchlistService.LookupMovie(ctx.Request.Context(), title)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Movie lookup failed"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// currentUserID pulls the identity set by the auth middleware. An
// empty return means the response has already been written.
func currentUserID(ctx *gin.Context) string {
	userID := ctx.GetString("user_id")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	}
	return userID
}

// writeServiceError maps domain errors onto HTTP responses. Validation
// failures return the field errors in declared order; anything
// unrecognized collapses to a 500 with a generic message so store
// errors never leak.
func writeServiceError(ctx *gin.Context, err error, fallback string) {
	if ve, ok := services.AsValidationErrors(err); ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return
	}
	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	case errors.Is(err, services.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
