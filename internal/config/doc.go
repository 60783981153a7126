package config

// Package config implements the durable preferences store. A Settings
// value is a plain snapshot of every user-configurable option; Store
// persists snapshots through the Fyne preferences API with per-field
// default substitution on load and all-or-nothing validation on commit.
