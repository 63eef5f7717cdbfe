// Package http implements the HTTP transport of the account server.
//
// It wires the chi router, the CORS policy for the web front-end and the
// request middleware (trace id, access log, gzip, timeout), then maps the
// three account endpoints onto [service.AccountService]. Every response body
// other than a profile or login result is a {"msg": ...} object whose text
// comes from package app.
package http
