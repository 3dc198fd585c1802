package main

import (
	"github.com/peterbourgon/ff/v4"
)

// Config carries the database coordinates, Tesseract configuration and
// listen address. Every field is settable as a flag or a RECEIPTD_*
// environment variable.
type Config struct {
	Host     string
	User     string
	Password string
	Database string

	ListenHost string
	ListenPort int
	DebugMode  bool

	OCRLanguage    string
	TessdataPrefix string

	UploadDir string
	WatchDir  string
}

func parseConfig(args []string) (Config, error) {
	fs := ff.NewFlagSet("receiptd")
	var (
		host     = fs.StringLong("host", "localhost", "Postgres host")
		user     = fs.StringLong("user", "postgres", "Postgres user")
		password = fs.StringLong("password", "", "Postgres password")
		database = fs.StringLong("database", "receipts_db", "Postgres database name")
		lHost    = fs.StringLong("listen-host", "0.0.0.0", "HTTP listen host")
		lPort    = fs.IntLong("listen-port", 8080, "HTTP listen port")
		debug    = fs.BoolLong("debug-mode", "Run gin in debug mode with verbose logging")
		ocrLang  = fs.StringLong("ocr-language", "eng", "Tesseract language hint")
		// gosseract links libtesseract rather than exec'ing a binary,
		// so the engine location knob is the tessdata directory.
		tessdata  = fs.StringLong("ocr-tessdata-prefix", "", "Tesseract tessdata directory (empty uses the system default)")
		uploadDir = fs.StringLong("upload-dir", "uploads", "Directory for stored copies of uploaded images (empty disables storing)")
		watchDir  = fs.StringLong("watch-dir", "", "Directory to watch for dropped receipt images (empty disables the watcher)")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("RECEIPTD")); err != nil {
		return Config{}, err
	}
	return Config{
		Host:           *host,
		User:           *user,
		Password:       *password,
		Database:       *database,
		ListenHost:     *lHost,
		ListenPort:     *lPort,
		DebugMode:      *debug,
		OCRLanguage:    *ocrLang,
		TessdataPrefix: *tessdata,
		UploadDir:      *uploadDir,
		WatchDir:       *watchDir,
	}, nil
}
