// Package config loads declarative routing documents.
//
// A routing document is a JSON file describing permission sets,
// translation mappings, and parser options. Documents are validated
// against a JSON Schema before decoding, and the Build* methods
// compile the sections into engine objects:
//
//	cfg, err := config.Load("routing.json")
//	perms, err := cfg.BuildPermissions()
//	trans, err := cfg.BuildTranslator()
//	parser := cfg.BuildParser()
package config
