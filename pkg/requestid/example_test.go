package requestid_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/xrequestid/pkg/requestid"
)

func ExampleExtract() {
	h := http.Header{}
	h.Set("x-request-id", "0196583C-4D2A-7087-9BEB-6214D18EC924 ")

	id, err := requestid.Extract(h)
	fmt.Println(id, err)

	h.Set("x-request-id", "not-a-uuid")
	_, err = requestid.Extract(h)
	fmt.Println(err)
	// Output:
	// 0196583c-4d2a-7087-9beb-6214d18ec924 <nil>
	// Invalid X-Request-Id : Not a valid UUID
}

func ExampleMiddleware() {
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, requestid.FromContext(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "00000000-0000-4000-8000-000000000000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	fmt.Println(rec.Code, rec.Body.String())
	// Output: 400 Invalid X-Request-Id : Not an UUID v7
}
