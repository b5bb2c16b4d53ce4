package settingsrouter

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// TableFile is the on-disk form of a route table:
//
//	origin = "chrome://settings"
//
//	[[route]]
//	name = "BASIC"
//	path = "/"
//	kind = "page"
type TableFile struct {
	Origin string      `toml:"origin,omitempty"`
	Routes []RouteSpec `toml:"route"`
}

// Table returns the routes as a Table.
func (tf *TableFile) Table() Table { return Table(tf.Routes) }

// Marshal encodes tf as TOML.
func (tf *TableFile) Marshal() ([]byte, error) {
	b, err := toml.Marshal(tf)
	if err != nil {
		return nil, fmt.Errorf("marshaling route table: %w", err)
	}
	return b, nil
}

// ParseTable decodes a TOML route table.
func ParseTable(data []byte) (*TableFile, error) {
	var tf TableFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing route table: %w", err)
	}
	return &tf, nil
}

// LoadTable reads and decodes a TOML route table file.
func LoadTable(path string) (*TableFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route table: %w", err)
	}
	return ParseTable(data)
}
