// Package partsdb maintains a small local parts database alongside decoded
// boards: a key-value store of per-footprint rotation corrections and a
// full-text index over component designators, values, footprints and net
// names, used by the otx index/search commands.
package partsdb

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

const (
	storeName = "parts.db"
	indexName = "parts.bleve"

	rotationsBucket = "rotations"
)

// DB bundles the bolt store and the bleve index under one directory.
type DB struct {
	db    *bolt.DB
	index bleve.Index
}

// Open creates or opens the parts database rooted at dir.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, storeName), 0o644, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts store: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(rotationsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	indexPath := filepath.Join(dir, indexName)
	var index bleve.Index
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		index, err = bleve.New(indexPath, bleve.NewIndexMapping())
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create search index: %w", err)
		}
	} else {
		index, err = bleve.Open(indexPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to open search index: %w", err)
		}
	}

	return &DB{db: db, index: index}, nil
}

// Close releases the store and the index.
func (d *DB) Close() error {
	ierr := d.index.Close()
	berr := d.db.Close()
	if berr != nil {
		return berr
	}
	return ierr
}

// marshal gob-encodes a stored value.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshal gob-decodes a stored value.
func unmarshal(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// SetRotation records a rotation correction in degrees for a footprint.
func (d *DB) SetRotation(footprint string, degrees float64) error {
	data, err := marshal(degrees)
	if err != nil {
		return fmt.Errorf("failed to encode rotation: %w", err)
	}
	return d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(rotationsBucket)).Put([]byte(footprint), data)
	})
}

// Rotation returns the recorded rotation correction for a footprint.
func (d *DB) Rotation(footprint string) (float64, bool) {
	var degrees float64
	found := false
	d.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(rotationsBucket)).Get([]byte(footprint))
		if data == nil {
			return nil
		}
		if err := unmarshal(data, &degrees); err == nil {
			found = true
		}
		return nil
	})
	return degrees, found
}

// IndexedComponent is the document shape stored in the search index.
type IndexedComponent struct {
	Board     string   `json:"board"`
	Reference string   `json:"reference"`
	Value     string   `json:"value"`
	Footprint string   `json:"footprint"`
	Nets      []string `json:"nets"`
}

// IndexBoard indexes every component of a decoded board under the id
// "<board>/<reference>".
func (d *DB) IndexBoard(b *board.Board) error {
	batch := d.index.NewBatch()
	for i := range b.Components {
		c := &b.Components[i]

		var nets []string
		seen := make(map[int]bool)
		for j := range c.Pins {
			id := c.Pins[j].NetID
			if seen[id] {
				continue
			}
			seen[id] = true
			if name := b.NetName(id); name != "" {
				nets = append(nets, name)
			}
		}

		doc := IndexedComponent{
			Board:     b.Name,
			Reference: c.Reference,
			Value:     c.Value,
			Footprint: c.Footprint,
			Nets:      nets,
		}
		if err := batch.Index(b.Name+"/"+c.Reference, doc); err != nil {
			return fmt.Errorf("failed to index %s: %w", c.Reference, err)
		}
	}
	if err := d.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to commit index batch: %w", err)
	}
	return nil
}

// Search runs a query-string search and returns matching document ids.
func (d *DB) Search(query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	req := bleve.NewSearchRequest(bleve.NewQueryStringQuery(query))
	req.Size = limit

	result, err := d.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
