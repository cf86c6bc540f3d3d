package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseSchedule reads the route-related tables out of a GTFS zip archive.
// Files other than routes.txt and agency.txt are skipped.
func ParseSchedule(zipBytes []byte) (*Schedule, error) {
	archive, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}

	var (
		agencies []Agency
		routes   []Route
		sawRoute bool
	)
	fileMap := map[string]any{
		"agency.txt": &agencies,
		"routes.txt": &routes,
	}

	for _, f := range archive.File {
		// Some publishers nest the feed inside a folder.
		name := strings.ToLower(f.Name)
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		destination, ok := fileMap[name]
		if !ok {
			continue
		}
		log.Debug().Str("file", f.Name).Msg("Loading gtfs file")
		if err := consumeCSV(f, destination); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Name, err)
		}
		if name == "routes.txt" {
			sawRoute = true
		}
	}
	if !sawRoute {
		return nil, fmt.Errorf("gtfs zip has no routes.txt")
	}

	return newSchedule(agencies, routes), nil
}

func consumeCSV(f *zip.File, destination any) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	body = bytes.TrimPrefix(body, utf8BOM)
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	// Ragged rows are common in the wild.
	csvr := csv.NewReader(bytes.NewReader(body))
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true
	return gocsv.UnmarshalCSV(csvr, destination)
}
