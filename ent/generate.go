// Package ent holds the generated entity client. Run `go generate ./ent`
// after changing any schema under ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
