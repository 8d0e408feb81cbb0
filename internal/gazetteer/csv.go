package gazetteer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"jp-address-api/internal/models"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Column layout of the block-level address reference CSV.
const (
	colPrefecture = 0
	colCity       = 1
	colTown       = 2
	colKoaza      = 3
	colBlockLot   = 4
	colLatitude   = 8
	colLongitude  = 9
	minColumns    = 10
)

// Encodings accepted by LoadLocations.
const (
	EncodingUTF8     = "utf8"
	EncodingShiftJIS = "sjis"
)

// ShiftJIS wraps r so Shift_JIS encoded reference files can be read as UTF-8.
func ShiftJIS(r io.Reader) io.Reader {
	return transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
}

// ReadLocations parses reference rows from r. The first line is a header.
func ReadLocations(r io.Reader) ([]models.Location, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("gazetteer: failed to read header: %w", err)
	}

	var locations []models.Location
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gazetteer: failed to read record: %w", err)
		}

		if len(record) < minColumns {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("gazetteer: line %d: invalid record length: %d, expected at least %d columns", line, len(record), minColumns)
		}

		lat, err := strconv.ParseFloat(record[colLatitude], 64)
		if err != nil {
			return nil, fmt.Errorf("gazetteer: invalid latitude: %s", record[colLatitude])
		}
		lon, err := strconv.ParseFloat(record[colLongitude], 64)
		if err != nil {
			return nil, fmt.Errorf("gazetteer: invalid longitude: %s", record[colLongitude])
		}

		locations = append(locations, models.Location{
			Prefecture: record[colPrefecture],
			City:       record[colCity],
			Town:       record[colTown],
			Koaza:      record[colKoaza],
			BlockLot:   record[colBlockLot],
			Latitude:   lat,
			Longitude:  lon,
		})
	}

	return locations, nil
}

// LoadLocations reads the reference CSV at path in the given encoding.
func LoadLocations(path, encoding string) ([]models.Location, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: failed to open file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	switch encoding {
	case EncodingUTF8, "":
	case EncodingShiftJIS:
		r = ShiftJIS(file)
	default:
		return nil, fmt.Errorf("gazetteer: unknown encoding %q", encoding)
	}

	return ReadLocations(r)
}
