// Package nmdbus contains clients for NetworkManager's D-Bus
// interfaces, generated from the introspection data in the
// introspection directory.
//
// The clients expose raw wire types. Package networkmanager wraps
// them in typed facades.
package nmdbus

//go:generate go run ../../cmd/nm generate --package=nmdbus --out=. introspection
