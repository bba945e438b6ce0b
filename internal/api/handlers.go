package api

import (
	"net/http"
	"time"

	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// solveRequest mirrors the presentation layer's input: a target and
// the three tail constraints. Omitted constraints mean "any".
type solveRequest struct {
	Target *int `json:"target" binding:"required"`
	sequence.Tail
}

type alphabetResponse struct {
	Numbers []int `json:"numbers"`
	Hits    []int `json:"hits"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.rejected.Inc()
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	res := s.solver.Solve(*req.Target, req.Tail)
	elapsed := time.Since(start)
	s.metrics.observe(res, elapsed)

	s.logger.Debug("solve",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Int("target", *req.Target),
		zap.Stringer("third_last", req.ThirdLast),
		zap.Stringer("second_last", req.SecondLast),
		zap.Stringer("last", req.Last),
		zap.Bool("found", res.Found),
		zap.Int("length", res.TotalLength),
		zap.Duration("elapsed", elapsed))

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleAlphabet(c *gin.Context) {
	a := s.solver.Alphabet()
	c.JSON(http.StatusOK, alphabetResponse{Numbers: a.Values(), Hits: a.HitGroup()})
}
