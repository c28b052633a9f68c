// Package httpapi exposes the validator engine over a JSON HTTP API.
//
// The router is a chi mux with request-ID, CORS and optional rate-limit
// middleware applied to every route. Discovery endpoints describe the rule
// table; validation endpoints delegate to the validation service so results
// are cached and loop-guarded exactly like programmatic callers.
//
//	GET  /validators                      all rule summaries
//	GET  /validators/fields               {fields: [symbols]}
//	GET  /validators/{id}                 one summary, 404 if unknown
//	GET  /validators/{id}/examples        {valid, invalid}
//	GET  /validators/{id}/regex           {regex: string|null}
//	GET  /validators/{id}/jsonld?value=   JSON-LD object or 404
//	POST /validators/{id}/validate        {value} -> {valid, errors, jsonld}
//	POST /validators/{id}/batch_validate  {values} -> [{valid, errors, jsonld}]
//	GET  /health                          liveness/readiness probe
//	GET  /metrics                         Prometheus exposition
//
// Unknown symbols map to 404, a missing value to 400, and loop-guard
// rejections to 429. Other internal failures render a generic 500 body,
// never a stack trace.
package httpapi
