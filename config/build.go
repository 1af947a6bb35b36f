package config

import (
	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/parser"
	"github.com/c360/semsubject/pattern"
	"github.com/c360/semsubject/permission"
	"github.com/c360/semsubject/translator"
)

// BuildPermissions compiles the permissions section into a permission
// set. An absent section yields deny-everything.
func (c *Config) BuildPermissions() (permission.Permissions, error) {
	b := permission.NewBuilder()

	switch c.Permissions.DefaultPolicy {
	case "", "deny":
		b.DefaultPolicy(permission.Deny)
	case "allow":
		b.DefaultPolicy(permission.Allow)
	default:
		return permission.Permissions{}, errors.Validationf(
			"unknown default policy %q", c.Permissions.DefaultPolicy)
	}

	for _, rc := range c.Permissions.Rules {
		ops, err := parseOperations(rc.Operations)
		if err != nil {
			return permission.Permissions{}, err
		}
		// An omitted operations list means the rule covers every
		// operation.
		if len(ops) == 0 {
			ops = permission.AllOperations()
		}

		switch rc.Policy {
		case "allow":
			b.Allow(rc.Pattern, ops...)
		case "deny":
			b.Deny(rc.Pattern, ops...)
		default:
			return permission.Permissions{}, errors.Validationf(
				"rule %q has unknown policy %q", rc.Pattern, rc.Policy)
		}
	}

	return b.Build()
}

// BuildTranslator compiles the translations section. An absent section
// yields a pass-through translator.
func (c *Config) BuildTranslator() (*translator.Translator, error) {
	b := translator.NewBuilder()
	for _, mc := range c.Translations {
		rule, err := buildMapping(mc)
		if err != nil {
			return nil, err
		}
		b.Rule(rule)
	}
	return b.Build()
}

// BuildParser compiles the parser section.
func (c *Config) BuildParser() *parser.Parser {
	b := parser.NewBuilder()
	if c.Parser.StandardRules {
		b.WithStandardRules()
	}
	for _, context := range c.Parser.FlexibleContexts {
		b.WithFlexibleContext(context)
	}
	return b.Build()
}

func buildMapping(mc MappingConfig) (translator.Rule, error) {
	source, err := pattern.New(mc.Source)
	if err != nil {
		return translator.Rule{}, errors.Wrap(err, errors.KindValidation,
			"mapping "+mc.Name+" source pattern")
	}

	rule := translator.NewRule(mc.Name, source, translator.Template(mc.Template))

	if mc.Target != "" {
		target, err := pattern.New(mc.Target)
		if err != nil {
			return translator.Rule{}, errors.Wrap(err, errors.KindValidation,
				"mapping "+mc.Name+" target pattern")
		}
		rule = rule.WithTargetPattern(target)
	}
	if mc.Reverse != "" {
		rule = rule.WithReverse(translator.Template(mc.Reverse))
	}
	return rule, nil
}

func parseOperations(names []string) ([]permission.Operation, error) {
	ops := make([]permission.Operation, 0, len(names))
	for _, name := range names {
		switch name {
		case "publish":
			ops = append(ops, permission.Publish)
		case "subscribe":
			ops = append(ops, permission.Subscribe)
		case "request":
			ops = append(ops, permission.Request)
		default:
			return nil, errors.Validationf("unknown operation %q", name)
		}
	}
	return ops, nil
}
