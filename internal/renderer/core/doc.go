// Package core provides the styled-cell vocabulary shared by the renderer,
// the status line and the terminal backends.
// This package breaks import cycles between renderer and backend.
package core
