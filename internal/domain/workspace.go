package domain

import "strings"

// Translation file extensions recognised in a workspace.
var TranslationExtensions = []string{".xlf", ".xliff"}

// DefaultLanguage is the language of a file without a language prefix.
const DefaultLanguage = "default"

// IsTranslationFile reports whether name has a translation file extension.
func IsTranslationFile(name string) bool {
	for _, ext := range TranslationExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// FileEntry is one translation file found under a folder.
type FileEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	IsDirectory bool   `json:"isDirectory"`
}

// FileInfo is the subset of file metadata the UI asks for.
type FileInfo struct {
	IsFile      bool  `json:"isFile"`
	IsDirectory bool  `json:"isDirectory"`
	ModTimeMS   int64 `json:"modTime"`
}

// TranslationFile is a translation file with its name split into language and
// base name ("de.locallang.xlf" is language "de", base "locallang").
type TranslationFile struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Language  string `json:"language"`
	BaseName  string `json:"baseName"`
	Directory string `json:"directory"`
}

// TranslationGroup holds the language variants of one base file.
type TranslationGroup struct {
	ID        string                     `json:"id"`
	BaseName  string                     `json:"baseName"`
	Directory string                     `json:"directory"`
	Files     map[string]TranslationFile `json:"files"`
	// SourceFile is the variant without a language prefix, if present.
	SourceFile *TranslationFile `json:"sourceFile"`
}

// WorkspaceScan is the result of scanning a folder for translation files.
type WorkspaceScan struct {
	RootPath   string              `json:"rootPath"`
	Groups     []*TranslationGroup `json:"groups"`
	TotalFiles int                 `json:"totalFiles"`
}

// FileChange is the kind of a watched filesystem change.
type FileChange string

const (
	FileCreated  FileChange = "create"
	FileModified FileChange = "modify"
	FileDeleted  FileChange = "delete"
	FileRenamed  FileChange = "rename"
)

// FileWatchEvent is the payload of EventFileChanged.
type FileWatchEvent struct {
	Type FileChange `json:"type"`
	Path string     `json:"path"`
	// OldPath is set for renames when the previous name is known.
	OldPath string `json:"oldPath,omitempty"`
}
