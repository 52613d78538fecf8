package main

import (
	"bytes"
	"log"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	nameFace text.Face
	hudFace  text.Face
)

func initFont() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	nameFace = &text.GoTextFace{
		Source: src,
		Size:   12,
	}
	hudFace = &text.GoTextFace{
		Source: src,
		Size:   14,
	}
}
