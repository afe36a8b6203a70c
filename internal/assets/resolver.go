// Package assets resolves texture URIs against search paths and decodes
// images into the RGBA8 layout the uploader expects.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Resolver locates asset files by URI. A URI is either a plain relative path
// tried against each search path in order, or a file:// URI used as-is.
type Resolver struct {
	log         *zap.Logger
	searchPaths []string
}

func NewResolver(searchPaths []string, log *zap.Logger) *Resolver {
	return &Resolver{
		log:         log,
		searchPaths: searchPaths,
	}
}

// Resolve reads the bytes for uri. The error for an unresolvable URI lists
// every path that was tried.
func (r *Resolver) Resolve(uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "file://") {
		path := strings.TrimPrefix(uri, "file://")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	}

	tried := make([]string, 0, len(r.searchPaths))
	for _, base := range r.searchPaths {
		path := filepath.Join(base, uri)
		data, err := os.ReadFile(path)
		if err == nil {
			r.log.Debug("asset resolved", zap.String("uri", uri), zap.String("path", path))
			return data, nil
		}
		tried = append(tried, path)
	}
	return nil, fmt.Errorf("asset %q not found, tried: %s", uri, strings.Join(tried, ", "))
}
