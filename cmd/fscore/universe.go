package main

import (
	"fmt"
	"io"
	"os"

	l1_service "fscoreportfolio/internal/service/l1"

	"github.com/gocarina/gocsv"
)

type universeRow struct {
	Symbol string `csv:"symbol"`
}

func loadUniverse(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open universe file: %w", err)
	}
	defer f.Close()
	return parseUniverse(f)
}

func parseUniverse(r io.Reader) ([]string, error) {
	rows := []universeRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse universe csv: %w", err)
	}
	symbols := make([]string, 0, len(rows))
	for _, row := range rows {
		symbols = append(symbols, row.Symbol)
	}
	return l1_service.NormalizeSymbols(symbols), nil
}
