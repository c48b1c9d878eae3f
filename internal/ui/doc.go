// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and editing the catalog:
//  1. [CollectionListView] : Browse the user's collections
//  2. [GameListView] : Browse the games inside a collection
//  3. [InputView] : Name a new collection or rename an existing one
//  4. [ConfirmView] : Confirm a destructive operation
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via typed message structs.
// Mutations are confirmed by the backend before the visible lists are reconciled, so the UI never shows state the server has not accepted.
// Transient notifications are rendered above the active view and dismiss themselves after a short interval.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
