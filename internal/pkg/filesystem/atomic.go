package filesystem

import (
	"os"

	"github.com/google/renameio/v2"
)

// NewFilePermissions apply to files created by WriteFileAtomic.
const NewFilePermissions os.FileMode = 0o644

// WriteFileAtomic replaces path with data through a temporary file and a
// rename, so readers never see a partial write. An existing file keeps its
// permissions.
func WriteFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, NewFilePermissions, renameio.WithExistingPermissions())
}
