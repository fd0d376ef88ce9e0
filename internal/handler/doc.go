// Package handler maps the HTTP surface onto the services.
//
// Each handler decodes path parameters and/or a JSON body, invokes one
// service call, and writes the shared response envelope. Status mapping is
// centralized in respondServiceError so every route reports not-found,
// conflict, bad-reference, in-use and store-failure conditions the same
// way. No field-content validation happens here; the services own the
// uniqueness and existence rules.
package handler
