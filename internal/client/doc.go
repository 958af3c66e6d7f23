// Package client assembles the offline-first point-of-sale terminal
// runtime: the local SQLite store, the remote backend adapter, the
// connectivity monitor and the background sync worker. The package owns
// startup ordering and graceful shutdown; the domain behaviour itself lives
// in the service layer.
package client
