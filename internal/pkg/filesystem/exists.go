package filesystem

import "os"

// Exists reports whether path resolves to an existing file or directory.
// A dangling symlink does not exist.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsSymlink reports whether path itself is a symbolic link, dangling or not.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}
