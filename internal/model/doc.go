package model

// Package model defines domain data structures shared across the app:
// download tasks, per-download request options, and status enums.
// Structures are designed for direct binding in the UI and explicit
// state transitions.
