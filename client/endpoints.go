package client

import (
	"fmt"
	"net/url"
)

type Endpoint struct {
	Method string
	Uri    string
}

// Format fills path placeholders, escaping each argument so opaque
// identifiers survive interpolation.
func (e Endpoint) Format(args ...any) Endpoint {
	escaped := make([]any, len(args))
	for i := range args {
		escaped[i] = url.PathEscape(fmt.Sprint(args[i]))
	}
	return Endpoint{Method: e.Method, Uri: fmt.Sprintf(e.Uri, escaped...)}
}

func (e Endpoint) Url(host string) string {
	return fmt.Sprintf("%s/%s", host, e.Uri)
}
