package main

import (
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"receiptd/models"
	"receiptd/pkg/ocr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var hlog = logrus.StandardLogger().WithField("package", "http")

// Stable machine-readable error kinds. The JSON "error" field carries a
// safe message, never raw driver/engine text.
const (
	codeMissingFile   = "missing_file"
	codeEmptyFilename = "empty_filename"
	codeInvalidType   = "invalid_type"
	codeDecodeFailed  = "decode_failed"
	codeOCRFailed     = "ocr_failed"
	codeDBFailed      = "db_failed"
)

// extractText is a seam over the Tesseract extractor so handler tests
// can stub recognition.
var extractText = func(img image.Image) (string, error) {
	return ocr.ExtractText(img, cfg.OCRLanguage, cfg.TessdataPrefix)
}

func setupRoutes(r *gin.Engine) {
	r.GET("/", indexHandler)
	r.POST("/upload", uploadHandler)
	r.GET("/receipts", listReceiptsHandler)
	r.GET("/receipts/:id", getReceiptHandler)
}

func indexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

var allowedExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

func allowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// jsonError reports a logical failure. The upload API has always
// answered HTTP 200 with an "error" field and the front-end branches on
// that field, not the status code, so the status stays 200 even for
// errors.
func jsonError(c *gin.Context, code, msg string) {
	c.JSON(http.StatusOK, gin.H{"error": msg, "code": code})
}

// uploadHandler runs one upload through the whole pipeline: validate,
// normalize, extract, clean, parse, persist. Any validation failure
// short-circuits before OCR and before any database write.
func uploadHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		jsonError(c, codeMissingFile, "No file part")
		return
	}
	if fh.Filename == "" {
		jsonError(c, codeEmptyFilename, "No selected file")
		return
	}
	if !allowedFile(fh.Filename) {
		jsonError(c, codeInvalidType, "Invalid file type")
		return
	}

	f, err := fh.Open()
	if err != nil {
		jsonError(c, codeDecodeFailed, "Could not read uploaded file")
		return
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		jsonError(c, codeDecodeFailed, "Could not read uploaded file")
		return
	}

	normalized, err := ocr.Normalize(data, nil)
	if err != nil {
		hlog.WithError(err).WithField("file", fh.Filename).Warn("image decode failed")
		jsonError(c, codeDecodeFailed, "Could not decode image")
		return
	}
	text, err := extractText(normalized)
	if err != nil {
		hlog.WithError(err).WithField("file", fh.Filename).Error("ocr failed")
		jsonError(c, codeOCRFailed, "Text recognition failed")
		return
	}
	text = ocr.CleanText(text)
	items := ocr.ParseLineItems(text)
	hlog.WithFields(logrus.Fields{
		"file":  fh.Filename,
		"items": len(items),
		"text":  ocr.Snippet(ocr.CollapseWhitespace(text), 120),
	}).Info("extracted text")

	rec := models.Receipt{
		ImageFilename: fh.Filename,
		StorePath:     storeOriginal(data, fh.Filename),
		ExtractedText: text,
	}
	if err := persistReceipt(&rec); err != nil {
		hlog.WithError(err).WithField("file", fh.Filename).Error("receipt insert failed")
		jsonError(c, codeDBFailed, "Could not save receipt")
		return
	}
	saved := persistItems(rec.ID, items)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "File processed successfully",
		"extracted_text": text,
		"receipt_id":     rec.ID,
		"items_saved":    saved,
	})
}

// storeOriginal keeps a uuid-named copy of the raw upload on disk so a
// bad OCR result can be reprocessed later. Best effort: on any error
// the receipt row simply has no stored path.
func storeOriginal(data []byte, filename string) string {
	if cfg.UploadDir == "" {
		return ""
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(cfg.UploadDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		hlog.WithError(err).WithField("path", path).Warn("failed to store upload copy")
		return ""
	}
	return path
}

// listReceiptsHandler returns recent receipts, newest first.
func listReceiptsHandler(c *gin.Context) {
	var receipts []models.Receipt
	if err := db.Model(&models.Receipt{}).Order("id desc").Limit(100).Find(&receipts).Error; err != nil {
		jsonError(c, codeDBFailed, "Query failed")
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// getReceiptHandler returns one receipt with the items parsed from it.
func getReceiptHandler(c *gin.Context) {
	id := c.Param("id")
	var rec models.Receipt
	if err := db.First(&rec, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var items []models.Item
	db.Where("receipt_id = ?", rec.ID).Order("id asc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"receipt": rec, "items": items})
}
