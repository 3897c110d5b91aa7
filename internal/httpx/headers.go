package httpx

import "net/http"

// CombineHeaders merges header sets left to right. Later sets win on
// conflicting names; names compare case-insensitively. Empty values remove
// the header.
func CombineHeaders(sets ...map[string]string) http.Header {
	h := make(http.Header)
	for _, set := range sets {
		for k, v := range set {
			if v == "" {
				h.Del(k)
				continue
			}
			h.Set(k, v)
		}
	}
	return h
}
