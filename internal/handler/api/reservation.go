package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "flex-reservations/internal/handler/dto/response"
	"flex-reservations/internal/infra"
	"flex-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const csvFilename = "reservations.csv"

type ReservationHandler struct {
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationQueries: reservationQueries,
	}
}

// @Summary List reservations
// @Description List reservations for an asset and market, values in MW
// @Tags reservations
// @Produce json
// @Param assetId path string true "Asset ID"
// @Param marketId path string true "Market ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400
// @Failure 404
// @Router /api/v1/flexibility/reservations/{assetId}/market/{marketId} [get]
func (h *ReservationHandler) ListByAssetAndMarket(c *gin.Context) {
	assetID, marketID, ok := pathIDs(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	rows, err := h.reservationQueries.ListByAssetAndMarket(c.Request.Context(), assetID, marketID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// An empty result is not an error in the service; the boundary maps it
	if len(rows) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	response := make([]*resdto.ReservationResponse, len(rows))
	for i, rm := range rows {
		response[i] = resdto.FromReservationRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Export reservations to CSV
// @Description Export reservations in a time range as a CSV attachment
// @Tags reservations
// @Produce plain
// @Param assetId path string true "Asset ID"
// @Param marketId path string true "Market ID"
// @Param from query string true "Range start (ISO-8601 date-time)"
// @Param to query string true "Range end (ISO-8601 date-time)"
// @Param total query bool false "Aggregate positive/negative values per timestamp"
// @Success 200 {string} string "CSV body"
// @Failure 400 {string} string
// @Failure 404
// @Failure 500 {string} string
// @Router /api/v1/flexibility/reservations/{assetId}/market/{marketId}/export [get]
func (h *ReservationHandler) ExportCSV(c *gin.Context) {
	assetID, marketID, ok := pathIDs(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid date-time for 'from'")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid date-time for 'to'")
		return
	}
	total, err := strconv.ParseBool(c.DefaultQuery("total", "false"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid boolean for 'total'")
		return
	}

	// Validated before storage is touched
	if from.After(to) {
		c.String(http.StatusBadRequest, "Invalid date range: 'from' cannot be after 'to'")
		return
	}

	csvData, err := h.reservationQueries.ExportCSV(c.Request.Context(), assetID, marketID, from, to, total)
	if err != nil {
		var repoErr infra.RepositoryError
		if errors.As(err, &repoErr) {
			c.String(http.StatusInternalServerError, "An unexpected error occurred: "+err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "Error occurred while exporting reservations: "+err.Error())
		return
	}

	if csvData == "" {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+csvFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}

// pathIDs parses both identifiers; the nil UUID counts as missing.
func pathIDs(c *gin.Context) (assetID, marketID uuid.UUID, ok bool) {
	assetID, err := uuid.Parse(c.Param("assetId"))
	if err != nil || assetID == uuid.Nil {
		return uuid.Nil, uuid.Nil, false
	}
	marketID, err = uuid.Parse(c.Param("marketId"))
	if err != nil || marketID == uuid.Nil {
		return uuid.Nil, uuid.Nil, false
	}
	return assetID, marketID, true
}
