// Package workspace finds translation files under a folder and groups the
// language variants of each file together.
package workspace

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

// languagePrefixed matches "<lang>.<base>.xlf", e.g. "de.locallang.xlf".
var languagePrefixed = regexp.MustCompile(`^([a-z]{2})\.(.+)\.xlf$`)

// ParseFileName splits a translation file name into its language and base
// name. Names without a two-letter language prefix belong to the default
// language.
func ParseFileName(name string) (language, baseName string) {
	if m := languagePrefixed.FindStringSubmatch(name); m != nil {
		return m[1], m[2]
	}
	for _, ext := range domain.TranslationExtensions {
		if strings.HasSuffix(name, ext) {
			return domain.DefaultLanguage, strings.TrimSuffix(name, ext)
		}
	}
	return domain.DefaultLanguage, name
}

// List returns every translation file below root, in walk order.
func List(root string) ([]domain.FileEntry, error) {
	entries := []domain.FileEntry{}
	err := walk(root, func(path string, d fs.DirEntry) {
		entries = append(entries, domain.FileEntry{Name: d.Name(), Path: path})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Scan groups the translation files below root by directory and base name.
// Groups are sorted by their display name.
func Scan(root string) (*domain.WorkspaceScan, error) {
	groups := map[string]*domain.TranslationGroup{}
	total := 0

	err := walk(root, func(path string, d fs.DirEntry) {
		total++
		name := d.Name()
		language, baseName := ParseFileName(name)
		dir := filepath.Dir(path)
		key := filepath.Join(dir, baseName)

		group, ok := groups[key]
		if !ok {
			display := baseName
			if rel, err := filepath.Rel(root, dir); err == nil && rel != "." {
				display = filepath.Join(rel, baseName)
			}
			group = &domain.TranslationGroup{
				ID:        key,
				BaseName:  display,
				Directory: dir,
				Files:     map[string]domain.TranslationFile{},
			}
			groups[key] = group
		}

		file := domain.TranslationFile{
			Path:      path,
			Name:      name,
			Language:  language,
			BaseName:  baseName,
			Directory: dir,
		}
		group.Files[language] = file
		if language == domain.DefaultLanguage {
			group.SourceFile = &file
		}
	})
	if err != nil {
		return nil, err
	}

	sorted := make([]*domain.TranslationGroup, 0, len(groups))
	for _, group := range groups {
		sorted = append(sorted, group)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].BaseName < sorted[j].BaseName })

	return &domain.WorkspaceScan{RootPath: root, Groups: sorted, TotalFiles: total}, nil
}

// Languages lists the languages of group with the default language first.
func Languages(group *domain.TranslationGroup) []string {
	languages := make([]string, 0, len(group.Files))
	for language := range group.Files {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		if languages[i] == domain.DefaultLanguage || languages[j] == domain.DefaultLanguage {
			return languages[i] == domain.DefaultLanguage
		}
		return languages[i] < languages[j]
	})
	return languages
}

// walk visits translation files below root, skipping hidden directories
// other than root itself.
func walk(root string, visit func(path string, d fs.DirEntry)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if domain.IsTranslationFile(d.Name()) {
			visit(path, d)
		}
		return nil
	})
}
