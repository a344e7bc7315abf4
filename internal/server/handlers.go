package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matchcolab/matchmaker/internal/matching"
)

// matchRequest is the wire shape of POST /match. top_n and min_similarity
// are pointers so that "absent" and "zero" can be told apart; absent fields
// fall back to the service defaults.
type matchRequest struct {
	Tags           string   `json:"tags"`
	PersistArtist  bool     `json:"persist_artist"`
	ArtistName     string   `json:"artist_name"`
	TopN           *int     `json:"top_n"`
	MinSimilarity  *float64 `json:"min_similarity"`
	OnlySuccessful bool     `json:"only_successful"`
}

func (s *Server) handleMatch(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	q := matching.MatchQuery{
		Tags:           req.Tags,
		TopN:           matching.DefaultTopN,
		MinSimilarity:  matching.DefaultMinSimilarity,
		OnlySuccessful: req.OnlySuccessful,
		ArtistName:     req.ArtistName,
		PersistArtist:  req.PersistArtist,
	}
	if req.TopN != nil {
		q.TopN = *req.TopN
	}
	if req.MinSimilarity != nil {
		q.MinSimilarity = *req.MinSimilarity
	}

	resp, err := s.matcher.Match(c.Request.Context(), q)
	if err != nil {
		var verr *matching.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}

		s.logger.Error("match request failed", err, map[string]interface{}{
			"tags": req.Tags,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveMatchesReturned(resp.TotalMatches)
	}
	c.JSON(http.StatusOK, resp)
}

// handleHealth reports "ok" when every dependency responds, "degraded" when
// one is unreachable, and "error" when probing itself blows up.
func (s *Server) handleHealth(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("health probe panicked", nil, map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "error",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		}
	}()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := gin.H{
		"server": "ok",
		// The service refuses to start without an embedding API key, so a
		// responding server implies a configured provider.
		"openai": "configured",
	}
	healthy := true

	if err := s.index.Health(ctx); err != nil {
		checks["qdrant"] = "unreachable: " + err.Error()
		healthy = false
	} else {
		checks["qdrant"] = "ok"
	}

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = "unreachable: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	status := http.StatusOK
	label := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		label = "degraded"
	}
	c.JSON(status, gin.H{
		"status":    label,
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Artist Collaboration Matchmaker",
		"endpoints": gin.H{
			"POST /match": "find collaboration partners by tags",
			"GET /health": "dependency health report",
		},
	})
}
