package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdewolf/cfadmin/internal/api/models"
	"github.com/mdewolf/cfadmin/internal/cloudflare"
	"github.com/mdewolf/cfadmin/internal/metrics"
)

// ListRecords godoc
// @Summary List DNS records
// @Description Returns all DNS records in a zone, fully paginated
// @Tags records
// @Produce json
// @Security ApiKeyAuth
// @Param zoneID path string true "Zone ID"
// @Success 200 {object} models.RecordListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	client, ok := h.requireClient(c)
	if !ok {
		return
	}

	records, err := client.ListDnsRecords(c.Request.Context(), c.Param("zoneID"))
	metrics.ObserveCloudflare("list_records", err)
	if err != nil {
		h.writeCloudflareError(c, "list_records", err)
		return
	}

	resp := models.RecordListResponse{
		Records: make([]models.DNSRecord, 0, len(records)),
		Count:   len(records),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, recordToModel(r))
	}

	c.JSON(http.StatusOK, resp)
}

// CreateRecord godoc
// @Summary Create a DNS record
// @Description Validates and creates a new DNS record in the zone
// @Tags records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zoneID path string true "Zone ID"
// @Param record body models.CreateRecordRequest true "Record to create"
// @Success 201 {object} models.DNSRecord
// @Failure 400 {object} models.ErrorResponse "Validation failure; no request was issued"
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records [post]
func (h *Handler) CreateRecord(c *gin.Context) {
	client, ok := h.requireClient(c)
	if !ok {
		return
	}

	var req models.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	recordType, ok := parseWritableType(c, req.Type)
	if !ok {
		return
	}
	if !validateRecord(c, recordType, req.Content, req.Priority) {
		return
	}

	created, err := client.CreateDnsRecord(c.Request.Context(), c.Param("zoneID"), cloudflare.CreateDnsRecord{
		Type:     recordType,
		Name:     req.Name,
		Content:  req.Content,
		TTL:      req.TTL,
		Proxied:  req.Proxied,
		Priority: req.Priority,
		Comment:  req.Comment,
	})
	metrics.ObserveCloudflare("create_record", err)
	if err != nil {
		h.writeCloudflareError(c, "create_record", err)
		return
	}

	c.JSON(http.StatusCreated, recordToModel(*created))
}

// UpdateRecord godoc
// @Summary Update a DNS record
// @Description Applies a partial update; only fields present in the body change. Content changes must name the record type.
// @Tags records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zoneID path string true "Zone ID"
// @Param recordID path string true "Record ID"
// @Param record body models.UpdateRecordRequest true "Fields to update"
// @Success 200 {object} models.DNSRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records/{recordID} [put]
func (h *Handler) UpdateRecord(c *gin.Context) {
	client, ok := h.requireClient(c)
	if !ok {
		return
	}

	var req models.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	payload := cloudflare.UpdateDnsRecord{
		Name:     req.Name,
		Content:  req.Content,
		TTL:      req.TTL,
		Proxied:  req.Proxied,
		Priority: req.Priority,
		Comment:  req.Comment,
	}

	// The record's current type is not known locally, so content can only
	// be shape-checked when the update names its type. Requiring both
	// keeps every write validated before it goes out.
	if req.Content != nil && req.Type == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Type is required when content is set"})
		return
	}

	if req.Type != nil {
		recordType, ok := parseWritableType(c, *req.Type)
		if !ok {
			return
		}
		if req.Content != nil && !validateRecord(c, recordType, *req.Content, req.Priority) {
			return
		}
		payload.Type = &recordType
	}

	updated, err := client.UpdateDnsRecord(c.Request.Context(), c.Param("zoneID"), c.Param("recordID"), payload)
	metrics.ObserveCloudflare("update_record", err)
	if err != nil {
		h.writeCloudflareError(c, "update_record", err)
		return
	}

	c.JSON(http.StatusOK, recordToModel(*updated))
}

// DeleteRecord godoc
// @Summary Delete a DNS record
// @Tags records
// @Produce json
// @Security ApiKeyAuth
// @Param zoneID path string true "Zone ID"
// @Param recordID path string true "Record ID"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records/{recordID} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	client, ok := h.requireClient(c)
	if !ok {
		return
	}

	err := client.DeleteDnsRecord(c.Request.Context(), c.Param("zoneID"), c.Param("recordID"))
	metrics.ObserveCloudflare("delete_record", err)
	if err != nil {
		h.writeCloudflareError(c, "delete_record", err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// parseWritableType maps the request's type token to a RecordType,
// rejecting anything outside the writable set.
func parseWritableType(c *gin.Context, token string) (cloudflare.RecordType, bool) {
	recordType := cloudflare.ParseRecordType(token)
	if recordType == cloudflare.TypeOther {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unsupported record type: " + token})
		return recordType, false
	}
	return recordType, true
}

// validateRecord runs the per-type shape checks before any network call,
// so an invalid record never consumes a request.
func validateRecord(c *gin.Context, recordType cloudflare.RecordType, content string, priority *uint16) bool {
	if err := recordType.ValidateContent(content); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return false
	}
	if recordType.RequiresPriority() && priority == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Priority is required for " + recordType.String() + " records"})
		return false
	}
	return true
}

func recordToModel(r cloudflare.DnsRecord) models.DNSRecord {
	return models.DNSRecord{
		ID:        r.ID,
		Type:      r.Type.String(),
		Name:      r.Name,
		Content:   r.Content,
		TTL:       r.TTL,
		Proxied:   r.Proxied,
		Proxiable: r.Proxiable,
		Priority:  r.Priority,
		Comment:   r.Comment,
	}
}
