package main

import (
	"bytes"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIntegrationServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN (or the
	// RECEIPTD_* database flags) to run them against a real Postgres.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	var err error
	cfg, err = parseConfig(nil)
	require.NoError(t, err)
	cfg.UploadDir = t.TempDir()
	initDB(cfg)
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	setupRoutes(r)
	return r
}

func TestIntegrationUploadFlow(t *testing.T) {
	r := setupIntegrationServer(t)

	// OCR is stubbed even here: the test asserts the persistence path,
	// not Tesseract accuracy.
	origExtract := extractText
	t.Cleanup(func() { extractText = origExtract })
	extractText = func(img image.Image) (string, error) {
		return "TEST\nMilk $4.00\n", nil
	}

	// index page
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// invalid extension short-circuits
	resp := uploadRequest(t, r, "file", "notes.txt", []byte("nope"))
	assert.Equal(t, codeInvalidType, resp["code"])

	// valid upload is persisted
	resp = uploadRequest(t, r, "file", "receipt.png", pngBytes(t))
	require.Equal(t, true, resp["success"], "upload failed: %v", resp)
	assert.Contains(t, resp["extracted_text"], "TEST")
	receiptID := resp["receipt_id"]

	// shows up in the listing
	req, _ = http.NewRequest(http.MethodGet, "/receipts", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.NotEmpty(t, listing)
	assert.Equal(t, receiptID, listing[0]["ID"])

	// detail endpoint carries the parsed items
	req, _ = http.NewRequest(http.MethodGet, "/receipts/"+jsonNumber(receiptID), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte("Milk")))
}

// jsonNumber renders a decoded JSON number as its integer path segment.
func jsonNumber(v any) string {
	b, _ := json.Marshal(v)
	s := string(b)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s[:i]
		}
	}
	return s
}
