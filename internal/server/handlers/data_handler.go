package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/dataset"
	"github.com/adiouf/finsight/internal/domain/models"
)

// DataHandler exposes the dataset vocabulary and raw figures over HTTP.
type DataHandler struct {
	store  *dataset.Store
	logger *zap.Logger
}

// NewDataHandler constructs the dataset handler.
func NewDataHandler(store *dataset.Store, logger *zap.Logger) *DataHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataHandler{store: store, logger: logger}
}

// ListCompanies returns the companies covered by the dataset.
func (h *DataHandler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": h.store.Companies()})
}

// ListMetrics returns the tracked metric names.
func (h *DataHandler) ListMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metrics": models.Metrics()})
}

type recordResponse struct {
	Metric string `json:"metric"`
	Year   int    `json:"fiscal_year"`
	Value  string `json:"value"`
}

// ListRecords returns a company's figures for one fiscal year (the latest
// when no year query parameter is given).
func (h *DataHandler) ListRecords(c *gin.Context) {
	company, ok := models.ParseCompany(c.Param("company"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown company"})
		return
	}

	year, ok := h.store.LatestYear(company)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for company"})
		return
	}
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	records, err := h.store.Snapshot(company, year)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for the requested year"})
		return
	}

	out := make([]recordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, recordResponse{
			Metric: string(r.Metric),
			Year:   r.Year,
			Value:  r.Value.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"company":     company,
		"fiscal_year": year,
		"records":     out,
	})
}
