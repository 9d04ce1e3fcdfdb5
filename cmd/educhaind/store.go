package main

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/storage"
	"github.com/goodnatureofminers/educhain-backend/internal/storage/bolt"
	"github.com/goodnatureofminers/educhain-backend/internal/storage/file"
	"github.com/goodnatureofminers/educhain-backend/internal/storage/memory"
)

const (
	storeMemory = "memory"
	storeBolt   = "bolt"
	storeFile   = "file"
)

func openStore(kind, path string, timeout time.Duration) (storage.Store, func() error, error) {
	noop := func() error { return nil }
	switch kind {
	case storeMemory:
		return memory.New(nil), noop, nil
	case storeBolt:
		s, err := bolt.Open(path, timeout)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case storeFile:
		s, err := file.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
