package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte) (map[string]any, error)

var decoders = map[string]decodeFunc{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".json": decodeJSON,
	".toml": decodeTOML,
}

// WithYAMLDir returns an Option that loads translations from YAML files in an fs.FS.
//
// Two layouts are recognized and may be mixed:
//
//	en.yaml              whole tree of locale "en"
//	en/common.yaml       tree placed under the top-level key "common"
//	en/pages/home.yml    tree placed under "pages.home"
func WithYAMLDir(fsys fs.FS) Option {
	return func(s *Store) error {
		return loadDir(s, fsys, ".yaml", ".yml")
	}
}

// WithJSONDir returns an Option that loads translations from JSON files in an fs.FS.
// The layout is the same as for WithYAMLDir.
func WithJSONDir(fsys fs.FS) Option {
	return func(s *Store) error {
		return loadDir(s, fsys, ".json")
	}
}

// WithTOMLDir returns an Option that loads translations from TOML files in an fs.FS.
// The layout is the same as for WithYAMLDir.
func WithTOMLDir(fsys fs.FS) Option {
	return func(s *Store) error {
		return loadDir(s, fsys, ".toml")
	}
}

// WithDir loads YAML, JSON and TOML files, choosing the decoder by extension.
func WithDir(fsys fs.FS) Option {
	return func(s *Store) error {
		return loadDir(s, fsys, ".yaml", ".yml", ".json", ".toml")
	}
}

func loadDir(s *Store, fsys fs.FS, exts ...string) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// Case-insensitive so .YAML and .yaml load alike.
		ext := strings.ToLower(path.Ext(filePath))
		if !hasExt(exts, ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		return s.addFile(filePath, data)
	})
}

// addFile decodes one translation file and merges it into its locale.
func (s *Store) addFile(filePath string, data []byte) error {
	ext := strings.ToLower(path.Ext(filePath))
	decode, ok := decoders[ext]
	if !ok {
		return fmt.Errorf("%w: %q: unsupported extension", ErrInvalidFile, filePath)
	}

	lang, namespace := splitFilePath(filePath)
	if lang == "" {
		return fmt.Errorf("%w: %q: cannot determine locale", ErrInvalidFile, filePath)
	}

	tree, err := decode(data)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
	}

	node, err := FromValue(tree)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidFile, filePath, err)
	}
	for i := len(namespace) - 1; i >= 0; i-- {
		node = NewMapping(map[string]*Node{namespace[i]: node})
	}

	if err := s.merge(lang, node); err != nil {
		return fmt.Errorf("%q: %w", filePath, err)
	}
	return nil
}

// splitFilePath maps "en.yaml" to ("en", nil) and "en/pages/home.yaml" to
// ("en", ["pages", "home"]).
func splitFilePath(filePath string) (string, []string) {
	trimmed := strings.TrimSuffix(path.Clean(filePath), path.Ext(filePath))
	parts := strings.Split(strings.TrimPrefix(trimmed, "/"), "/")
	return parts[0], parts[1:]
}

func hasExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

func decodeYAML(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree map[string]any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
