package store

import (
	"fmt"
	"os"
)

const corruptSuffix = ".corrupt"

// sqliteSideFiles are the suffixes of files SQLite keeps next to a database.
var sqliteSideFiles = []string{"-journal", "-wal", "-shm"}

// quarantine renames the unreadable store at path to path+".corrupt",
// replacing an older one, so a fresh store can be created in its place.
// Files named path+suffix are removed. A missing file is not an error.
func quarantine(path string, sideSuffixes ...string) error {
	if err := os.Rename(path, path+corruptSuffix); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: move unreadable store aside: %w", ErrWritingStore, err)
	}

	for _, suffix := range sideSuffixes {
		if err := os.Remove(path + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: remove %s: %w", ErrWritingStore, path+suffix, err)
		}
	}

	return nil
}
