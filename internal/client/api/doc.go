// Package api is the single point of contact with the remote BookSwap REST
// API. Cross-cutting request/response policy (bearer-token attachment,
// request ids, reaction to authorization failures) is applied by an explicit
// hook pipeline, so the resource-specific methods stay thin parameter
// shapers with no error handling of their own.
package api
