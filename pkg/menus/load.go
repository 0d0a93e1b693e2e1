package menus

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/menumap/pkg/errors"
)

// LoadFile reads and parses the dataset at path.
// Files ending in .yaml or .yml are accepted as YAML; anything else is JSON.
// Every failure is returned as an *errors.StartupError.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapStartup(path, errors.WrapIO("read", path, err))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.WrapStartup(path, errors.WrapParse("yaml", path, err))
		}
	}

	return Parse(data, path)
}

// Load reads a JSON document from r. name is used in error messages.
func Load(r io.Reader, name string) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapStartup(name, errors.WrapIO("read", name, err))
	}
	return Parse(data, name)
}

// Parse decodes a JSON document in either layout and validates it.
//
// The top level is an array of restaurants or menu items, or an object
// holding one under "restaurants" or "items". For a bare array the first
// element decides: it is flat when it carries "restaurant_name".
func Parse(data []byte, name string) (*Dataset, error) {
	ds, err := parse(data, name)
	if err != nil {
		return nil, errors.WrapStartup(name, err)
	}
	return ds, nil
}

func parse(data []byte, name string) (*Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.NewParseError("json", name, "document is empty", nil)
	}
	if !utf8.Valid(trimmed) {
		return nil, errors.NewParseError("json", name, "document is not valid UTF-8", nil)
	}
	if !json.Valid(trimmed) {
		return nil, syntaxError(trimmed, name)
	}

	switch trimmed[0] {
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, decodeError(trimmed, name, err)
		}
		if len(records) == 0 {
			return NewDataset(LayoutNested, nil, WithSource(name))
		}
		flat, err := isFlat(records[0])
		if err != nil {
			return nil, errors.NewParseError("json", name, "[0]: "+err.Error(), err)
		}
		if flat {
			return parseFlat(trimmed, name)
		}
		return parseNested(trimmed, name)

	case '{':
		var doc struct {
			Restaurants json.RawMessage `json:"restaurants"`
			Items       json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, decodeError(trimmed, name, err)
		}
		switch {
		case doc.Restaurants != nil:
			return parseNested(doc.Restaurants, name)
		case doc.Items != nil:
			return parseFlat(doc.Items, name)
		}
		return nil, errors.NewParseError("json", name, `object must hold a "restaurants" or "items" array`, nil)
	}

	return nil, errors.NewParseError("json", name, "top-level value must be an array or object", nil)
}

func isFlat(first json.RawMessage) (bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(first, &fields); err != nil {
		return false, errors.New("expected an object")
	}
	_, flat := fields["restaurant_name"]
	return flat, nil
}

func parseNested(data []byte, name string) (*Dataset, error) {
	var records []restaurantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, decodeError(data, name, err)
	}

	restaurants := make([]Restaurant, len(records))
	for i, record := range records {
		if err := checkRecord(i, record); err != nil {
			return nil, err
		}
		restaurants[i] = record.restaurant()
	}
	return NewDataset(LayoutNested, restaurants, WithSource(name))
}

func parseFlat(data []byte, name string) (*Dataset, error) {
	var records []flatRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, decodeError(data, name, err)
	}

	items := make([]MenuItem, len(records))
	for i, record := range records {
		if err := checkRecord(i, record); err != nil {
			return nil, err
		}
		items[i] = record.item()
	}
	return FromItems(items, WithSource(name))
}

// decodeError turns encoding/json failures into ParseErrors.
func decodeError(data []byte, name string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		msg := fmt.Sprintf("%s must be %s, got %s", fieldOrValue(typeErr.Field), typeErr.Type, typeErr.Value)
		pe := errors.NewParseError("json", name, msg, err)
		pe.Line, pe.Column = position(data, typeErr.Offset)
		return pe
	}
	return errors.WrapParse("json", name, err)
}

func syntaxError(data []byte, name string) error {
	var v any
	err := json.Unmarshal(data, &v)
	pe := errors.NewParseError("json", name, "invalid JSON", err)
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		pe.Message = syntaxErr.Error()
		pe.Line, pe.Column = position(data, syntaxErr.Offset)
	}
	return pe
}

func fieldOrValue(field string) string {
	if field == "" {
		return "value"
	}
	return field
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset <= 0 || offset > int64(len(data)) {
		return 0, 0
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	column := int(offset) - bytes.LastIndexByte(before, '\n') - 1
	return line, column
}
