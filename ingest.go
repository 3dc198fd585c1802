package main

import (
	"os"
	"path/filepath"

	"receiptd/models"
	"receiptd/pkg/ocr"

	"github.com/sirupsen/logrus"
)

var ingestlog = logrus.StandardLogger().WithField("package", "ingest")

// processDroppedFile runs a file from the watch folder through the same
// pipeline as an HTTP upload. Errors fail only this file; the watcher
// keeps going.
func processDroppedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	normalized, err := ocr.Normalize(data, nil)
	if err != nil {
		return err
	}
	text, err := extractText(normalized)
	if err != nil {
		return err
	}
	text = ocr.CleanText(text)
	items := ocr.ParseLineItems(text)

	rec := models.Receipt{
		ImageFilename: filepath.Base(path),
		StorePath:     storeOriginal(data, path),
		ExtractedText: text,
	}
	if err := persistReceipt(&rec); err != nil {
		return err
	}
	saved := persistItems(rec.ID, items)
	ingestlog.WithFields(logrus.Fields{
		"file":        filepath.Base(path),
		"receipt_id":  rec.ID,
		"items_saved": saved,
	}).Info("ingested dropped receipt")
	return nil
}
