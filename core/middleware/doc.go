// Package middleware groups the fiber middleware installed by the start command.
//
// rayid runs first so every request log line carries an id; the swagger UI is
// mounted next and stays public; auth guards everything registered after it.
package middleware
