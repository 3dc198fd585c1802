package main

import (
	"time"

	"receiptd/models"
	"receiptd/pkg/ocr"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var storelog = logrus.StandardLogger().WithField("package", "store")

// Seams so handler tests can stub persistence without a database.
var (
	persistReceipt = saveReceipt
	persistItems   = saveItems
	insertItem     = insertItemDB
)

// saveReceipt inserts one receipt row in its own transaction. A failure
// rolls the transaction back and fails the whole request; no items are
// attempted after a receipt failure.
func saveReceipt(rec *models.Receipt) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
}

// saveItems inserts parsed items best-effort, one transaction per item:
// a failed item is rolled back and logged and the rest of the batch is
// still attempted. Returns the number of rows that made it in.
func saveItems(receiptID uint, items []ocr.LineItem) int {
	saved := 0
	for _, it := range items {
		row := models.Item{
			ReceiptID:    &receiptID,
			ItemName:     it.Name,
			Price:        it.Price,
			Quantity:     it.Quantity,
			PurchaseDate: time.Now(),
		}
		if err := insertItem(&row); err != nil {
			storelog.WithError(err).WithField("item", it.Name).Warn("item insert failed, continuing")
			continue
		}
		saved++
	}
	return saved
}

func insertItemDB(row *models.Item) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
}
