package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// make_data_url.go - Utility to wrap an image file in a base64 data URL
//
// Usage:
//   go run scripts/make_data_url.go <image file>
//
// Example:
//   go run scripts/make_data_url.go face.jpg > payload.txt
//   curl -X POST localhost:3000/predict -H 'Content-Type: application/json' \
//     -d "{\"image\": \"$(cat payload.txt)\"}"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run make_data_url.go <image file>")
		fmt.Println("")
		fmt.Println("Example:")
		fmt.Println("  go run scripts/make_data_url.go face.jpg")
		os.Exit(1)
	}

	path := os.Args[1]
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	mimeType := "image/jpeg"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mimeType = "image/png"
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	}

	fmt.Printf("data:%s;base64,%s\n", mimeType, base64.StdEncoding.EncodeToString(raw))
}
