package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires buttons and menus to the actions controller and provides the dialog,
// notice and text display implementations the controller talks to. All UI
// chrome strings are localized via Localization.
