package utils

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

func LoadLocalHtml(data []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return doc, nil
}
