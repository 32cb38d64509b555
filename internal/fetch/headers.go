package fetch

import "net/http"

// defaultHeaders are added to every request that does not set them.
var defaultHeaders = [][2]string{
	{"Connection", "keep-alive"},
	{"Accept", "*/*"},
	{"Accept-Language", "*"},
	{"Sec-Fetch-Mode", "cors"},
	{"Accept-Encoding", "gzip, deflate"},
}

// MergeDefaults returns a copy of h with every missing default header added.
// Values supplied by the caller are never replaced.
func MergeDefaults(h http.Header) http.Header {
	out := make(http.Header, len(h)+len(defaultHeaders))
	for k, v := range h {
		out[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	for _, kv := range defaultHeaders {
		if _, ok := out[kv[0]]; !ok {
			out.Set(kv[0], kv[1])
		}
	}

	return out
}
