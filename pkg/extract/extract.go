// Package extract unpacks CSV payloads from zip archives into a flat
// working directory. Extraction is idempotent: re-running overwrites prior
// extracts by filename and never deletes anything.
package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// Result summarizes one extraction pass.
type Result struct {
	Archives  int
	Extracted []string
}

// Run scans archiveDir for zip files and writes every CSV entry into
// workDir under its base filename. A corrupt or unreadable archive is
// logged and skipped; extraction continues with the rest. Finding no
// archives is reported but left for the loader to treat as fatal, since
// pre-existing files in workDir still count as extracted output.
func Run(archiveDir, workDir string) (*Result, error) {
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}

	archives, err := filepath.Glob(filepath.Join(archiveDir, "*.zip"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", archiveDir, err)
	}
	if len(archives) == 0 {
		log.Printf("❌ No ZIP files found in %s", archiveDir)
		return &Result{}, nil
	}

	log.Printf("🗂  Found %d ZIP files. Extracting all CSVs...", len(archives))
	result := &Result{Archives: len(archives)}
	digests := make(map[uint64]string)

	for _, archive := range archives {
		if err := extractArchive(archive, workDir, result, digests); err != nil {
			log.Printf("❌ Error extracting %s: %v", archive, err)
		}
	}
	return result, nil
}

func extractArchive(path, workDir string, result *Result, digests map[uint64]string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, entry := range zr.File {
		if filepath.Ext(entry.Name) != ".csv" {
			continue
		}
		dest := filepath.Join(workDir, filepath.Base(entry.Name))
		digest, err := extractEntry(entry, dest)
		if err != nil {
			log.Printf("❌ Error extracting %s from %s: %v", entry.Name, path, err)
			continue
		}

		if prev, dup := digests[digest]; dup {
			log.Printf("⚠️  Warning: %s has identical content to %s", dest, prev)
		} else {
			digests[digest] = dest
		}

		log.Printf("✅ Extracted: %s → %s (digest %016x)", entry.Name, dest, digest)
		result.Extracted = append(result.Extracted, dest)
	}
	return nil
}

// extractEntry writes one payload byte-for-byte and returns its content
// digest, used to flag duplicate exports across archives.
func extractEntry(entry *zip.File, dest string) (uint64, error) {
	src, err := entry.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	hash := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, hash), src); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}
