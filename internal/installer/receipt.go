package installer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Receipt is the metadata file the installer leaves in each keg.
type Receipt struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// InstalledAsDependency is nil for receipts written before the field existed.
	InstalledAsDependency *bool `json:"installed_as_dependency,omitempty"`

	InstalledAt time.Time `json:"installed_at,omitempty"`
}

func ReceiptPath(kegPath string) string {
	return filepath.Join(kegPath, ReceiptFileName)
}

// ReadReceipt loads the receipt of a keg. Errors are returned unwrapped so
// callers can test for os.ErrNotExist.
func ReadReceipt(kegPath string) (*Receipt, error) {
	data, err := os.ReadFile(ReceiptPath(kegPath))
	if err != nil {
		return nil, err
	}

	var receipt Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
