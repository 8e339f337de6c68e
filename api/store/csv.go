/* csv.go
 * Writes normalized records to CSV files. Schedule files are appended to so several stages (and several
 * runs) can share a file, video files are replaced on every run
 * Authors: owl-scraper contributors
 */

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Row is a record that can be written as one CSV line
type Row interface {
	Values() map[string]string
}

// Append writes rows to the end of filename, creating it with a header row if it doesn't exist yet
// Preconditions: Receives the file to write, the column order and the rows to write
// Postconditions: File is closed before returning. Returns an error if the file can't be opened or written
func Append[R Row](filename string, fields []string, rows []R) (err error) {
	_, err = os.Stat(filename)
	fileExists := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error checking %s: %w", filename, err)
	}

	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", filename, err)
	}
	defer closeFile(file, &err)

	return writeRows(file, fields, rows, !fileExists)
}

// Overwrite replaces filename with a header row followed by rows
func Overwrite[R Row](filename string, fields []string, rows []R) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", filename, err)
	}
	defer closeFile(file, &err)

	return writeRows(file, fields, rows, true)
}

// closeFile closes a file opened for writing, reporting the close error through err unless an earlier
// error is already set
func closeFile(file *os.File, err *error) {
	if closeErr := file.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("error closing %s: %w", file.Name(), closeErr)
	}
}

func writeRows[R Row](w io.Writer, fields []string, rows []R, header bool) error {
	writer := csv.NewWriter(w)
	if header {
		if err := writer.Write(fields); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}

	line := make([]string, len(fields))
	for _, row := range rows {
		values := row.Values()
		for i, field := range fields {
			line[i] = values[field]
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("error writing row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Read loads every row of a CSV file written by Append or Overwrite, keyed by the header
// Preconditions: Receives path to a CSV file with a header row
// Postconditions: Returns the rows in file order, or an error if the file can't be read
func Read(filename string) ([]map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", filename, err)
	}
	defer file.Close()

	lines, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	if len(lines) == 0 {
		return nil, nil
	}

	header := lines[0]
	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		row := make(map[string]string, len(header))
		for i, field := range header {
			row[field] = line[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
