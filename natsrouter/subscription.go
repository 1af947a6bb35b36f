package natsrouter

import (
	"strings"

	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/pattern"
)

// Subscription describes how to subscribe for a pattern: the wire
// subject to pass to the connection and a queue group derived from
// the pattern's literal prefix.
type Subscription struct {
	Subject string
	Queue   string
}

// SubscriptionFor derives a subscription from a pattern. The queue
// group joins the literal tokens before the first wildcard with
// dashes, so every subscriber to "orders.*.created.v1" shares the
// "orders" group.
func SubscriptionFor(p pattern.Pattern) Subscription {
	return Subscription{
		Subject: p.String(),
		Queue:   queueGroup(p.String()),
	}
}

// SubscriptionForString is SubscriptionFor over a raw pattern string.
func SubscriptionForString(raw string) (Subscription, error) {
	p, err := pattern.New(raw)
	if err != nil {
		return Subscription{}, errors.Wrap(err, errors.KindInvalidPattern, "subscription pattern")
	}
	return SubscriptionFor(p), nil
}

func queueGroup(raw string) string {
	tokens := strings.Split(raw, ".")
	literals := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "*" || tok == ">" {
			break
		}
		literals = append(literals, tok)
	}
	if len(literals) == 0 {
		return "all"
	}
	return strings.Join(literals, "-")
}
