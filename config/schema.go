package config

// documentSchema is the JSON Schema every routing document must
// satisfy before decoding.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Routing Document",
  "type": "object",
  "required": ["version"],
  "additionalProperties": false,
  "properties": {
    "version": {
      "type": "string",
      "minLength": 1
    },
    "permissions": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "default_policy": {
          "type": "string",
          "enum": ["allow", "deny"]
        },
        "rules": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["pattern", "policy"],
            "additionalProperties": false,
            "properties": {
              "pattern": {"type": "string", "minLength": 1},
              "policy": {"type": "string", "enum": ["allow", "deny"]},
              "operations": {
                "type": "array",
                "items": {
                  "type": "string",
                  "enum": ["publish", "subscribe", "request"]
                }
              },
              "description": {"type": "string"}
            }
          }
        }
      }
    },
    "translations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "source", "template"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "source": {"type": "string", "minLength": 1},
          "template": {"type": "string", "minLength": 1},
          "target": {"type": "string", "minLength": 1},
          "reverse": {"type": "string", "minLength": 1}
        }
      }
    },
    "parser": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "standard_rules": {"type": "boolean"},
        "flexible_contexts": {
          "type": "array",
          "items": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`
