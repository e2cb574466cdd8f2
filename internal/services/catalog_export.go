package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
)

const catalogExportPrefix = "catalog/"

// ObjectWriter is the subset of object storage used for exports.
type ObjectWriter interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Bucket() string
}

// CatalogSnapshot is the document written by CatalogExporter.
type CatalogSnapshot struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Roles       []RoleSkills `json:"roles"`
}

// CatalogExporter writes the job-role catalog to object storage.
type CatalogExporter struct {
	skills *SkillService
	writer ObjectWriter
	now    func() time.Time
}

func NewCatalogExporter(skills *SkillService, writer ObjectWriter) *CatalogExporter {
	return &CatalogExporter{skills: skills, writer: writer, now: time.Now}
}

// Export uploads a JSON snapshot of the catalog and returns its object key.
func (e *CatalogExporter) Export(ctx context.Context) (string, error) {
	roles, err := e.skills.Catalog(ctx)
	if err != nil {
		return "", fmt.Errorf("load catalog: %w", err)
	}

	generatedAt := e.now().UTC()
	data, err := json.MarshalIndent(CatalogSnapshot{GeneratedAt: generatedAt, Roles: roles}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode catalog: %w", err)
	}

	key := fmt.Sprintf("%s%s-%s.json", catalogExportPrefix, generatedAt.Format("20060102T150405Z"), uuid.NewString()[:8])
	if err := e.writer.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return "", fmt.Errorf("upload %s to %s: %w", key, e.writer.Bucket(), err)
	}
	return key, nil
}

// Exports returns the keys of earlier exports, oldest first.
func (e *CatalogExporter) Exports(ctx context.Context) ([]string, error) {
	keys, err := e.writer.List(ctx, catalogExportPrefix)
	if err != nil {
		return nil, fmt.Errorf("list exports in %s: %w", e.writer.Bucket(), err)
	}
	sort.Strings(keys)
	return keys, nil
}
