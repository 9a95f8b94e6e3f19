package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"log"
	"os"

	"github.com/disintegration/imaging"
)

const (
	// Logos print at 120px in the header; keep the embedded copy small.
	logoMaxSize     = 240
	logoJpegQuality = 85
)

// LoadLogoDataURI reads the dealership logo, scales it down, and returns it
// as a base64 data URI so the quotation HTML needs no external asset when
// Chrome prints it. A missing logo is not an error: the header simply prints
// without it.
func LoadLogoDataURI(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("⚠️  Warning: Logo file not found at %s", path)
		return ""
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("⚠️  Warning: Failed to decode logo %s: %v", path, err)
		return ""
	}

	resized := imaging.Fit(img, logoMaxSize, logoMaxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: logoJpegQuality}); err != nil {
		log.Printf("⚠️  Warning: Failed to encode logo: %v", err)
		return ""
	}

	return fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(buf.Bytes()))
}
