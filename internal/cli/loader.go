package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/strelka-dev/a7p/internal/record"
)

// profileExtensions lists the document extensions the loader picks up when
// walking a directory.
var profileExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// loadRecord reads and decodes one profile document into a generic record.
func loadRecord(path string) (record.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "cannot read " + path, Err: err}
	}
	v, err := record.Decode(data)
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "cannot decode " + path, Err: err}
	}
	obj, ok := v.(record.Object)
	if !ok {
		return nil, &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("%s: document root must be a mapping", path)}
	}
	return obj, nil
}

// encodeDocument renders a record in the format implied by the output
// path: JSON for a .json extension, YAML otherwise.
func encodeDocument(rec record.Object, outputPath string) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(outputPath), ".json") {
		return record.EncodeJSON(rec)
	}
	return record.Encode(rec)
}

// collectFiles expands a file-or-directory argument into the list of
// profile documents to process, in deterministic walk order.
func collectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "cannot stat " + root, Err: err}
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if profileExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "cannot walk " + root, Err: err}
	}
	if len(files) == 0 {
		return nil, &ExitError{Code: ExitCommandError, Message: "no profile documents under " + root}
	}
	return files, nil
}
