// internal/client/storage/store.go

// Package storage is the durable key-value layer the app-side stores persist
// into, playing the role AsyncStorage plays on the device. Values are JSON
// blobs written whole; a write fully replaces the previous value.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("app_state")

type Store struct {
	db *bolt.DB
}

// Open creates or opens the store file. The bucket is created eagerly so
// reads never have to special-case a missing bucket.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create storage bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ReadJSON unmarshals the value stored under key into out and reports
// whether it succeeded. A missing key, unreadable file, or corrupt value all
// return false and leave out untouched; callers fall back to their zero
// state instead of failing.
func (s *Store) ReadJSON(key string, out interface{}) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Storage read failed")
		return false
	}
	if raw == nil {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Discarding corrupt stored value")
		return false
	}
	return true
}

// WriteJSON serializes v and replaces whatever is under key. The serialize
// and write happen in one transaction, so concurrent writers cannot
// interleave partial values; last writer wins.
func (s *Store) WriteJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %s: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
