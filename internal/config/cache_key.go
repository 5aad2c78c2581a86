package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ExportLockKey returns the key guarding a single export output file.
func (r *CacheKeyStruct) ExportLockKey(format, table string) string {
	return fmt.Sprintf("export:%s:%s:lock", format, table)
}

// ExportStatusKey returns the key holding the last run of an export format.
func (r *CacheKeyStruct) ExportStatusKey(format string) string {
	return fmt.Sprintf("export:%s:last_run", format)
}

// CacheKey is the shared key builder instance.
var CacheKey = NewCacheKeyStruct()
