package models

// StateEntry is an opaque value kept between runs, e.g. the watcher's last checked publication time.
type StateEntry struct {
	ID    string `gorm:"primaryKey"`
	Value []byte
}
