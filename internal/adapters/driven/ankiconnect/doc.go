// Package ankiconnect provides a NoteClient adapter for the AnkiConnect
// add-on's HTTP API.
//
// Every request is a JSON POST to the add-on endpoint:
//
//	{"action": "findNotes", "version": 6, "params": {"query": "deck:Default"}}
//
// and every response carries a result and an error member:
//
//	{"result": [1502298033753], "error": null}
//
// # Error Handling
//
// Failures are classified into the domain error kinds so callers can
// branch with errors.Is:
//
//   - [domain.ErrConnection]: the endpoint could not be reached
//   - [domain.ErrTimeout]: no response within the configured timeout
//   - [domain.ErrProtocol]: the body is not JSON, or the add-on reported an
//     error (returned as *APIError)
//   - [domain.ErrApplication]: anything else, including invalid notes
//
// Nothing is retried. Updates stop at the first failure.
package ankiconnect
