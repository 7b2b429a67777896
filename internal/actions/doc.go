// Package actions implements the user actions of the app (fetch, search and
// playlist management) against narrow ports, so the flows run the same with
// Fyne dialogs or with test doubles.
package actions
