// ocrdump runs the OCR pipeline on a local image and prints the result.
// Useful for tuning preprocessing without the server or a database.
//
// Usage: ocrdump [-save-debug dir] image.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"receiptd/pkg/ocr"

	"github.com/disintegration/imaging"
)

func main() {
	saveDebug := flag.String("save-debug", "", "directory to write intermediate images to")
	lang := flag.String("lang", "eng", "tesseract language")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ocrdump [-save-debug dir] [-lang eng] image.png")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	normalized, err := ocr.Normalize(data, nil)
	if err != nil {
		log.Fatalf("normalize: %v", err)
	}

	if *saveDebug != "" {
		base := filepath.Base(path)
		if err := imaging.Save(normalized, filepath.Join(*saveDebug, "normalized-"+base+".png")); err != nil {
			log.Printf("save normalized: %v", err)
		}
		// global-threshold variant for comparison against the adaptive one
		gray := imaging.Grayscale(normalized)
		flat := ocr.Binarize(gray, 210)
		if err := imaging.Save(flat, filepath.Join(*saveDebug, "binarized-"+base+".png")); err != nil {
			log.Printf("save binarized: %v", err)
		}
	}

	text, err := ocr.ExtractText(normalized, *lang, os.Getenv("TESSDATA_PREFIX"))
	if err != nil {
		log.Fatalf("extract: %v", err)
	}
	text = ocr.CleanText(text)

	fmt.Println("--- cleaned text ---")
	fmt.Println(text)
	fmt.Println("--- line items ---")
	for _, it := range ocr.ParseLineItems(text) {
		fmt.Printf("%-30s %10s x%d\n", it.Name, it.Price, it.Quantity)
	}
}
