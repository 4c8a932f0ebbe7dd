package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DivyomSharma/invoicer/invoice"
	"github.com/DivyomSharma/invoicer/models"
	"github.com/DivyomSharma/invoicer/render"
	"github.com/DivyomSharma/invoicer/storage"
)

// MaxLogoBytes caps logo uploads; oversized files are rejected before
// touching the model.
const MaxLogoBytes = 2 * 1024 * 1024

type InvoiceHandler struct {
	store    *invoice.Store
	drafts   *storage.DraftStore
	renderer render.Renderer
}

func NewInvoiceHandler(store *invoice.Store, drafts *storage.DraftStore, renderer render.Renderer) *InvoiceHandler {
	return &InvoiceHandler{
		store:    store,
		drafts:   drafts,
		renderer: renderer,
	}
}

// FieldUpdateRequest carries a single field write. Value is a string or a
// number depending on the field; unknown fields are ignored by the store.
type FieldUpdateRequest struct {
	Field string      `json:"field" binding:"required"`
	Value interface{} `json:"value"`
}

type PartyUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (h *InvoiceHandler) document() gin.H {
	data := h.store.Data()
	return gin.H{
		"invoice":        data,
		"summary":        invoice.Summarize(data),
		"currencySymbol": models.CurrencySymbol(data.Currency),
	}
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) UpdateField(c *gin.Context) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateField(req.Field, req.Value)
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) UpdateSender(c *gin.Context) {
	var req PartyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateSender(req.Field, req.Value)
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) UpdateClient(c *gin.Context) {
	var req PartyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateClient(req.Field, req.Value)
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) AddLineItem(c *gin.Context) {
	h.store.AddLineItem()
	c.JSON(http.StatusCreated, h.document())
}

func (h *InvoiceHandler) UpdateLineItem(c *gin.Context) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateLineItem(c.Param("id"), req.Field, req.Value)
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) RemoveLineItem(c *gin.Context) {
	h.store.RemoveLineItem(c.Param("id"))
	c.JSON(http.StatusOK, h.document())
}

// ResetInvoice discards the current invoice. Destructive; the frontend asks
// the user to confirm before calling it.
func (h *InvoiceHandler) ResetInvoice(c *gin.Context) {
	h.store.Reset()
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) ExportInvoice(c *gin.Context) {
	data := h.store.Data()
	raw, err := storage.ExportJSON(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export invoice"})
		return
	}
	filename := storage.ExportFilename(data)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *InvoiceHandler) ImportInvoice(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing invoice file"})
		return
	}
	defer file.Close()

	data, err := storage.ImportJSON(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON file"})
		return
	}
	h.store.Replace(data)
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing logo file"})
		return
	}
	defer file.Close()

	if header.Size > MaxLogoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Logo must be smaller than 2MB"})
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, MaxLogoBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read logo file"})
		return
	}
	if len(raw) > MaxLogoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Logo must be smaller than 2MB"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(raw)
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(raw))
	h.store.SetLogo(dataURL)
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) RemoveLogo(c *gin.Context) {
	h.store.RemoveLogo()
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.drafts.TemplateNames(c.Request.Context())})
}

func (h *InvoiceHandler) SaveTemplate(c *gin.Context) {
	name := c.Param("name")
	if err := h.drafts.SaveTemplate(c.Request.Context(), name, h.store.Data()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": name})
}

// ApplyTemplate replaces the whole current invoice with the named template,
// same semantics as an import.
func (h *InvoiceHandler) ApplyTemplate(c *gin.Context) {
	data, ok := h.drafts.Template(c.Request.Context(), c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	h.store.Replace(data)
	c.JSON(http.StatusOK, h.document())
}

func (h *InvoiceHandler) DeleteTemplate(c *gin.Context) {
	if err := h.drafts.DeleteTemplate(c.Request.Context(), c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvoiceHandler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": models.Currencies})
}

func (h *InvoiceHandler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": models.IndianStates})
}

// DownloadPDF delegates to the document-rendering collaborator.
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	data := h.store.Data()
	raw, err := h.renderer.Render(data, invoice.Summarize(data))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate PDF: %v", err)})
		return
	}
	number := data.InvoiceNumber
	if number == "" {
		number = "draft"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", number))
	c.Data(http.StatusOK, "application/pdf", raw)
}
