// Package fetch calls JSON HTTP APIs.
//
// JSON sends one request and decodes the response body into T:
//
//	type User struct {
//		ID   int    `json:"id"`
//		Name string `json:"name"`
//	}
//
//	user, err := fetch.JSON[User](ctx, "https://api.example.com/users/1", fetch.Options{})
//
//	created, err := fetch.JSON[User](ctx, "https://api.example.com/users", fetch.Options{
//		Method: http.MethodPost,
//		Body:   map[string]any{"name": "John Doe"},
//	})
//
// There are no retries. Cancellation and deadlines come from ctx.
//
// # Errors
//
// Failures wrap sentinel errors for errors.Is:
//
//   - ErrNetwork: the request could not be sent, or the status was not 2xx
//   - ErrApplication: the server answered with a 4xx status
//   - ErrDecode: the response body is not valid JSON for T
//
// A non-2xx response is returned as *StatusError carrying the status.
package fetch
