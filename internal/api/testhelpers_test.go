package api

import (
	"net/http"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
)

// restClient builds a pipeline client pointed at a test server, with no
// session store or navigator wired in.
func restClient(srvURL string) *rest.Client {
	return &rest.Client{BaseURL: srvURL, HTTP: &http.Client{}}
}
