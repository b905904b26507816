//go:build ignore

package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type fiat struct {
	Name   string
	Code   string
	Symbol string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "fiat_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of fiat definitions
	fiats, err := convertDataToFiats(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the fiat definitions using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "fiat_data.tmpl"), fiats)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	err = writeToFile("fiat_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToFiats(data [][]string) ([]fiat, error) {
	sort.Slice(data, func(i, j int) bool {
		return data[i][1] < data[j][1]
	})

	fiats := make([]fiat, 0, len(data))
	seen := make(map[string]bool, len(data))
	for i, rec := range data {
		code := strings.ToUpper(strings.TrimSpace(rec[1]))
		if len(code) != 3 {
			return nil, fmt.Errorf("record %v: invalid code %q", i+1, rec[1])
		}
		if seen[code] {
			return nil, fmt.Errorf("record %v: duplicate code %q", i+1, code)
		}
		seen[code] = true
		fiats = append(fiats, fiat{
			Name:   strings.TrimSpace(rec[0]),
			Code:   code,
			Symbol: strings.TrimSpace(rec[2]),
		})
	}
	return fiats, nil
}

func generateGoCode(filename string, fiats []fiat) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, fiats)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err = writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
