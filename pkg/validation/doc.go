// Package validation is the orchestration layer of the engine: it executes
// one or many validations against the registry, caches results, and bounds
// recursive or repeated validation of the same input with a loop guard.
//
// A Service wraps a registry and a Store (Redis-backed or in-memory). Each
// call checks the result cache first; on a miss it atomically increments the
// loop counter for the (symbol, value) pair, executes the rule, attaches
// JSON-LD when the spec carries schema metadata, writes the result back with
// a TTL, and decrements the counter. Cache hits bypass loop accounting
// entirely.
//
//	store := validation.NewMemoryStore()
//	svc := validation.New(registry.New(rules.Builtin()), store)
//	res := svc.Validate(ctx, "luhn", "4111 1111 1111 1111")
//
// Store failures never fail a validation: the service proceeds as if the
// cache and loop guard were empty and logs the condition. Store calls are
// bounded by a short timeout for the same reason.
package validation
