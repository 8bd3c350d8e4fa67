// Package http implements the REST transport of go-box-keeper.
//
// Every privileged route carries the admin credentials in the request body
// under "login"; there are no sessions or tokens. Request bodies are
// decoded key by key so that each malformed field is reported with the
// message clients of the API already rely on.
package http
