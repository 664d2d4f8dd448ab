// Package ui renders the LinkBird dashboard with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or region with its own Init, Update and View (Elm-style)
//   - Panel and Layout: the sidebar and content regions of the shell
//   - FocusManager: which panel receives keys
//   - ViewStack: push/pop navigation inside a page (campaign detail)
//   - Overlay: modal views with a dismiss key (lead sheet, confirmations)
//
// AppModel owns a store.Store and mounts one page view at a time, chosen by
// the store's active page through pageBuilders. Navigating away disposes the
// old page, which closes its paginator.
package ui
